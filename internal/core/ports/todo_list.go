package ports

import (
	"context"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/domain"
)

type TodoListRepository interface {
	// List returns every todo list newest first, with category and tasks loaded.
	List(ctx context.Context) ([]domain.TodoList, error)
	ListByCategory(ctx context.Context, categoryID uint64) ([]domain.TodoList, error)
	Get(ctx context.Context, id uint64) (domain.TodoList, error)
	Create(ctx context.Context, input domain.CreateTodoListInput) (uint64, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTodoListInput) error
	SetCategory(ctx context.Context, id uint64, categoryID *uint64) error
	DetachCategory(ctx context.Context, categoryID uint64) (int64, error)
	Delete(ctx context.Context, id uint64) error
}

type TodoListService interface {
	List(ctx context.Context) ([]domain.TodoListSummary, error)
	Create(ctx context.Context, input domain.CreateTodoListInput) (domain.TodoListDetail, error)
	Get(ctx context.Context, id uint64) (domain.TodoListDetail, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTodoListInput) (domain.TodoListDetail, error)
	Delete(ctx context.Context, id uint64) (domain.TodoListDetail, error)
}
