package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/domain"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/ports"

	"github.com/jmoiron/sqlx"
)

const selectTodoListsQuery = `
SELECT
  tl.id,
  tl.title,
  tl.description,
  tl.category_id,
  tl.created_at,
  c.name AS category_name
FROM todo_lists tl
LEFT JOIN categories c ON c.id = tl.category_id
`

const newestFirst = " ORDER BY tl.created_at DESC, tl.id DESC"

type TodoListRepository struct {
	q sqlx.ExtContext
}

type todoListRow struct {
	ID           uint64         `db:"id"`
	Title        string         `db:"title"`
	Description  string         `db:"description"`
	CategoryID   sql.NullInt64  `db:"category_id"`
	CreatedAt    time.Time      `db:"created_at"`
	CategoryName sql.NullString `db:"category_name"`
}

var _ ports.TodoListRepository = (*TodoListRepository)(nil)

func NewTodoListRepository(q sqlx.ExtContext) *TodoListRepository {
	return &TodoListRepository{q: q}
}

func (r *TodoListRepository) List(ctx context.Context) ([]domain.TodoList, error) {
	return r.selectWithTasks(ctx, selectTodoListsQuery+newestFirst)
}

func (r *TodoListRepository) ListByCategory(ctx context.Context, categoryID uint64) ([]domain.TodoList, error) {
	return r.selectWithTasks(ctx, selectTodoListsQuery+" WHERE tl.category_id = ?"+newestFirst, categoryID)
}

func (r *TodoListRepository) Get(ctx context.Context, id uint64) (domain.TodoList, error) {
	var row todoListRow
	err := sqlx.GetContext(ctx, r.q, &row, r.q.Rebind(selectTodoListsQuery+" WHERE tl.id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TodoList{}, domain.ErrTodoListNotFound
	}
	if err != nil {
		return domain.TodoList{}, fmt.Errorf("getting todo list %d: %w", id, err)
	}

	tasks, err := listTasksByTodoLists(ctx, r.q, []uint64{id})
	if err != nil {
		return domain.TodoList{}, err
	}

	todoList := mapTodoListRowToDomain(row)
	todoList.Tasks = tasks[id]
	return todoList, nil
}

func (r *TodoListRepository) Create(ctx context.Context, input domain.CreateTodoListInput) (uint64, error) {
	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	result, err := r.q.ExecContext(
		ctx,
		r.q.Rebind("INSERT INTO todo_lists (title, description, category_id, created_at) VALUES (?, ?, ?, ?)"),
		input.Title,
		input.Description,
		input.CategoryID,
		createdAt,
	)
	if err != nil {
		return 0, fmt.Errorf("creating todo list: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading todo list id: %w", err)
	}
	return uint64(id), nil
}

// Update writes only the fields set in input and returns
// domain.ErrTodoListNotFound when the list does not exist.
func (r *TodoListRepository) Update(ctx context.Context, id uint64, input domain.UpdateTodoListInput) error {
	current, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	title := current.Title
	if input.Title != nil {
		title = *input.Title
	}
	description := current.Description
	if input.Description != nil {
		description = *input.Description
	}

	if _, err := r.q.ExecContext(
		ctx,
		r.q.Rebind("UPDATE todo_lists SET title = ?, description = ? WHERE id = ?"),
		title,
		description,
		id,
	); err != nil {
		return fmt.Errorf("updating todo list %d: %w", id, err)
	}
	return nil
}

func (r *TodoListRepository) SetCategory(ctx context.Context, id uint64, categoryID *uint64) error {
	if _, err := r.q.ExecContext(
		ctx,
		r.q.Rebind("UPDATE todo_lists SET category_id = ? WHERE id = ?"),
		categoryID,
		id,
	); err != nil {
		return fmt.Errorf("setting category of todo list %d: %w", id, err)
	}
	return nil
}

func (r *TodoListRepository) DetachCategory(ctx context.Context, categoryID uint64) (int64, error) {
	result, err := r.q.ExecContext(
		ctx,
		r.q.Rebind("UPDATE todo_lists SET category_id = NULL WHERE category_id = ?"),
		categoryID,
	)
	if err != nil {
		return 0, fmt.Errorf("detaching todo lists from category %d: %w", categoryID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}
	return rows, nil
}

func (r *TodoListRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.q.ExecContext(ctx, r.q.Rebind("DELETE FROM todo_lists WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("deleting todo list %d: %w", id, err)
	}
	return requireAffected(result, domain.ErrTodoListNotFound)
}

func (r *TodoListRepository) selectWithTasks(ctx context.Context, query string, args ...any) ([]domain.TodoList, error) {
	var rows []todoListRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, r.q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("listing todo lists: %w", err)
	}

	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	tasks, err := listTasksByTodoLists(ctx, r.q, ids)
	if err != nil {
		return nil, err
	}

	todoLists := make([]domain.TodoList, 0, len(rows))
	for _, row := range rows {
		todoList := mapTodoListRowToDomain(row)
		todoList.Tasks = tasks[row.ID]
		todoLists = append(todoLists, todoList)
	}
	return todoLists, nil
}

func mapTodoListRowToDomain(row todoListRow) domain.TodoList {
	todoList := domain.TodoList{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		CreatedAt:   row.CreatedAt.UTC(),
	}

	if row.CategoryID.Valid {
		categoryID := uint64(row.CategoryID.Int64)
		todoList.CategoryID = &categoryID

		if row.CategoryName.Valid {
			todoList.Category = &domain.Category{
				ID:   categoryID,
				Name: row.CategoryName.String,
			}
		}
	}

	return todoList
}
