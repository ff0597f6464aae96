package db

import (
	"context"
	"fmt"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/ports"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Store hands out repositories that share one query runner: the pool, or a
// transaction inside WithinTx.
type Store struct {
	db *sqlx.DB
	q  sqlx.ExtContext
}

var _ ports.Store = (*Store)(nil)

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db, q: db}
}

func (s *Store) Categories() ports.CategoryRepository {
	return NewCategoryRepository(s.q)
}

func (s *Store) TodoLists() ports.TodoListRepository {
	return NewTodoListRepository(s.q)
}

func (s *Store) Tasks() ports.TaskRepository {
	return NewTaskRepository(s.q)
}

func (s *Store) WithinTx(ctx context.Context, fn func(ports.Store) error) error {
	// Already inside a transaction.
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(&Store{q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			zap.L().Warn("failed to roll back transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
