package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/domain"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/ports"

	"github.com/jmoiron/sqlx"
)

type CategoryRepository struct {
	q sqlx.ExtContext
}

type categoryRow struct {
	ID   uint64 `db:"id"`
	Name string `db:"name"`
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(q sqlx.ExtContext) *CategoryRepository {
	return &CategoryRepository{q: q}
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, "SELECT id, name FROM categories ORDER BY id"); err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, domain.Category{ID: row.ID, Name: row.Name})
	}
	return categories, nil
}

func (r *CategoryRepository) Get(ctx context.Context, id uint64) (domain.Category, error) {
	var row categoryRow
	err := sqlx.GetContext(ctx, r.q, &row, r.q.Rebind("SELECT id, name FROM categories WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	if err != nil {
		return domain.Category{}, fmt.Errorf("getting category %d: %w", id, err)
	}
	return domain.Category{ID: row.ID, Name: row.Name}, nil
}

func (r *CategoryRepository) Create(ctx context.Context, name string) (domain.Category, error) {
	result, err := r.q.ExecContext(ctx, r.q.Rebind("INSERT INTO categories (name) VALUES (?)"), name)
	if err != nil {
		return domain.Category{}, fmt.Errorf("creating category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Category{}, fmt.Errorf("reading category id: %w", err)
	}
	return domain.Category{ID: uint64(id), Name: name}, nil
}

// Rename does not report a missing row; MySQL counts unchanged rows as
// unaffected, so callers check existence first.
func (r *CategoryRepository) Rename(ctx context.Context, id uint64, name string) error {
	if _, err := r.q.ExecContext(ctx, r.q.Rebind("UPDATE categories SET name = ? WHERE id = ?"), name, id); err != nil {
		return fmt.Errorf("renaming category %d: %w", id, err)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.q.ExecContext(ctx, r.q.Rebind("DELETE FROM categories WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("deleting category %d: %w", id, err)
	}
	return requireAffected(result, domain.ErrCategoryNotFound)
}

func requireAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
