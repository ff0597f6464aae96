package service

import (
	"context"
	"strings"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/domain"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/ports"

	"go.uber.org/zap"
)

type CategoryService struct {
	store ports.Store
}

func NewCategoryService(store ports.Store) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.store.Categories().List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, name string) (domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Category{}, domain.ErrInvalidInput
	}
	return s.store.Categories().Create(ctx, name)
}

func (s *CategoryService) Get(ctx context.Context, id uint64) (domain.CategoryDetail, error) {
	var detail domain.CategoryDetail
	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		category, err := tx.Categories().Get(ctx, id)
		if err != nil {
			return err
		}

		todoLists, err := tx.TodoLists().ListByCategory(ctx, id)
		if err != nil {
			return err
		}

		detail.Category = category
		detail.Todos = make([]domain.TodoListSummary, 0, len(todoLists))
		for _, todoList := range todoLists {
			detail.Todos = append(detail.Todos, todoList.Summary())
		}
		return nil
	})
	if err != nil {
		return domain.CategoryDetail{}, err
	}

	return detail, nil
}

// AssignTodoList moves an existing todo list under the category, replacing
// any previous category of that list.
func (s *CategoryService) AssignTodoList(ctx context.Context, categoryID, todoListID uint64) (domain.Category, error) {
	var category domain.Category
	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		if _, err := tx.TodoLists().Get(ctx, todoListID); err != nil {
			return err
		}

		var err error
		category, err = tx.Categories().Get(ctx, categoryID)
		if err != nil {
			return err
		}

		return tx.TodoLists().SetCategory(ctx, todoListID, &categoryID)
	})
	if err != nil {
		return domain.Category{}, err
	}

	return category, nil
}

func (s *CategoryService) Rename(ctx context.Context, id uint64, name string) (domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Category{}, domain.ErrInvalidInput
	}

	var category domain.Category
	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		if _, err := tx.Categories().Get(ctx, id); err != nil {
			return err
		}

		if err := tx.Categories().Rename(ctx, id, name); err != nil {
			return err
		}

		var err error
		category, err = tx.Categories().Get(ctx, id)
		return err
	})
	if err != nil {
		return domain.Category{}, err
	}

	return category, nil
}

// Delete detaches the category's todo lists and then removes the category.
// The todo lists themselves are kept.
func (s *CategoryService) Delete(ctx context.Context, id uint64) (domain.Category, error) {
	var category domain.Category
	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		var err error
		category, err = tx.Categories().Get(ctx, id)
		if err != nil {
			return err
		}

		detached, err := tx.TodoLists().DetachCategory(ctx, id)
		if err != nil {
			return err
		}
		if detached > 0 {
			zap.L().Info("detached todo lists from deleted category", zap.Uint64("category_id", id), zap.Int64("count", detached))
		}

		return tx.Categories().Delete(ctx, id)
	})
	if err != nil {
		return domain.Category{}, err
	}

	return category, nil
}

var _ ports.CategoryService = (*CategoryService)(nil)
