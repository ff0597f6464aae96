package db

import (
	"fmt"
	"strings"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.DbDriver {
	case config.DriverSQLite:
		return ConnectSQLite(conf.SqlitePath)
	case config.DriverMySQL, "":
		return connectMySQL(conf)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", conf.DbDriver)
	}
}

func connectMySQL(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectSQLite opens a SQLite database with foreign keys enforced. Use
// ":memory:" for a throwaway database.
func ConnectSQLite(path string) (*sqlx.DB, error) {
	dsn := path
	if path == ":memory:" {
		dsn = "file::memory:"
	}
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	dsn += separator + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	db, err := sqlx.Connect(sqliteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// One connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}
