package ports

import (
	"context"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Get(ctx context.Context, todoListID, taskID uint64) (domain.Task, error)
	Toggle(ctx context.Context, todoListID, taskID uint64) error
	Delete(ctx context.Context, todoListID, taskID uint64) error
	DeleteByTodoList(ctx context.Context, todoListID uint64) (int64, error)
}

type TaskService interface {
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Toggle(ctx context.Context, todoListID, taskID uint64) (domain.Task, error)
	Delete(ctx context.Context, todoListID, taskID uint64) (domain.Task, error)
}
