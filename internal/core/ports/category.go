package ports

import (
	"context"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/domain"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id uint64) (domain.Category, error)
	Create(ctx context.Context, name string) (domain.Category, error)
	Rename(ctx context.Context, id uint64, name string) error
	Delete(ctx context.Context, id uint64) error
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name string) (domain.Category, error)
	Get(ctx context.Context, id uint64) (domain.CategoryDetail, error)
	AssignTodoList(ctx context.Context, categoryID, todoListID uint64) (domain.Category, error)
	Rename(ctx context.Context, id uint64, name string) (domain.Category, error)
	Delete(ctx context.Context, id uint64) (domain.Category, error)
}
