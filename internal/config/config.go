package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	AppEnv             string
	AppPort            string
	DbDriver           string
	SqlitePath         string
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	DbParams           string
	DbAutoMigrate      bool
	TrustedProxies     []string
	CorsAllowedOrigins []string
	TranslationFolder  string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppEnv:             getEnv("APP_ENV", "production"),
		AppPort:            getEnv("APP_PORT", "8080"),
		DbDriver:           strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
		SqlitePath:         getEnv("SQLITE_PATH", "todo.db"),
		DbHost:             getEnv("MYSQL_HOST", "db"),
		DbPort:             getEnv("MYSQL_PORT", "3306"),
		DbUser:             getEnv("MYSQL_USER", "todo"),
		DbPassword:         getEnv("MYSQL_PASSWORD", "todo"),
		DbName:             getEnv("MYSQL_DATABASE", "todo"),
		DbParams:           getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		DbAutoMigrate:      getBoolEnv("DB_AUTO_MIGRATE", true),
		TrustedProxies:     parseList(os.Getenv("TRUSTED_PROXIES")),
		CorsAllowedOrigins: parseList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		TranslationFolder:  getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
	}
}

// IsDevelopment reports whether verbose, human-readable logging should be used.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
