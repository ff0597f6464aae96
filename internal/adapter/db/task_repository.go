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

const selectTaskColumns = "SELECT id, name, is_completed, todo_list_id FROM tasks"

type TaskRepository struct {
	q sqlx.ExtContext
}

type taskRow struct {
	ID          uint64 `db:"id"`
	Name        string `db:"name"`
	IsCompleted bool   `db:"is_completed"`
	TodoListID  uint64 `db:"todo_list_id"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(q sqlx.ExtContext) *TaskRepository {
	return &TaskRepository{q: q}
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	result, err := r.q.ExecContext(
		ctx,
		r.q.Rebind("INSERT INTO tasks (name, is_completed, todo_list_id) VALUES (?, ?, ?)"),
		input.Name,
		false,
		input.TodoListID,
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("creating task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, fmt.Errorf("reading task id: %w", err)
	}

	return domain.Task{
		ID:         uint64(id),
		Name:       input.Name,
		TodoListID: input.TodoListID,
	}, nil
}

func (r *TaskRepository) Get(ctx context.Context, todoListID, taskID uint64) (domain.Task, error) {
	var row taskRow
	err := sqlx.GetContext(
		ctx,
		r.q,
		&row,
		r.q.Rebind(selectTaskColumns+" WHERE id = ? AND todo_list_id = ?"),
		taskID,
		todoListID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("getting task %d: %w", taskID, err)
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Toggle(ctx context.Context, todoListID, taskID uint64) error {
	result, err := r.q.ExecContext(
		ctx,
		r.q.Rebind("UPDATE tasks SET is_completed = CASE WHEN is_completed = 0 THEN 1 ELSE 0 END WHERE id = ? AND todo_list_id = ?"),
		taskID,
		todoListID,
	)
	if err != nil {
		return fmt.Errorf("toggling task %d: %w", taskID, err)
	}
	return requireAffected(result, domain.ErrTaskNotFound)
}

func (r *TaskRepository) Delete(ctx context.Context, todoListID, taskID uint64) error {
	result, err := r.q.ExecContext(
		ctx,
		r.q.Rebind("DELETE FROM tasks WHERE id = ? AND todo_list_id = ?"),
		taskID,
		todoListID,
	)
	if err != nil {
		return fmt.Errorf("deleting task %d: %w", taskID, err)
	}
	return requireAffected(result, domain.ErrTaskNotFound)
}

func (r *TaskRepository) DeleteByTodoList(ctx context.Context, todoListID uint64) (int64, error) {
	result, err := r.q.ExecContext(ctx, r.q.Rebind("DELETE FROM tasks WHERE todo_list_id = ?"), todoListID)
	if err != nil {
		return 0, fmt.Errorf("deleting tasks of todo list %d: %w", todoListID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}
	return rows, nil
}

// listTasksByTodoLists loads the tasks of every given list, keyed by list id.
func listTasksByTodoLists(ctx context.Context, q sqlx.ExtContext, todoListIDs []uint64) (map[uint64][]domain.Task, error) {
	tasks := make(map[uint64][]domain.Task, len(todoListIDs))
	if len(todoListIDs) == 0 {
		return tasks, nil
	}

	query, args, err := sqlx.In(selectTaskColumns+" WHERE todo_list_id IN (?) ORDER BY id", todoListIDs)
	if err != nil {
		return nil, fmt.Errorf("building task query: %w", err)
	}

	var rows []taskRow
	if err := sqlx.SelectContext(ctx, q, &rows, q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	for _, row := range rows {
		tasks[row.TodoListID] = append(tasks[row.TodoListID], mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		Name:        row.Name,
		IsCompleted: row.IsCompleted,
		TodoListID:  row.TodoListID,
	}
}
