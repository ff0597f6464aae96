package service

import (
	"context"
	"strings"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/domain"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/ports"
)

type TodoListService struct {
	store ports.Store
}

func NewTodoListService(store ports.Store) *TodoListService {
	return &TodoListService{store: store}
}

func (s *TodoListService) List(ctx context.Context) ([]domain.TodoListSummary, error) {
	todoLists, err := s.store.TodoLists().List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.TodoListSummary, 0, len(todoLists))
	for _, todoList := range todoLists {
		summaries = append(summaries, todoList.Summary())
	}
	return summaries, nil
}

// Create stores a new todo list, optionally bound to an existing category.
func (s *TodoListService) Create(ctx context.Context, input domain.CreateTodoListInput) (domain.TodoListDetail, error) {
	if strings.TrimSpace(input.Title) == "" {
		return domain.TodoListDetail{}, domain.ErrInvalidInput
	}

	var created domain.TodoList
	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		if input.CategoryID != nil {
			if _, err := tx.Categories().Get(ctx, *input.CategoryID); err != nil {
				return err
			}
		}

		id, err := tx.TodoLists().Create(ctx, input)
		if err != nil {
			return err
		}

		created, err = tx.TodoLists().Get(ctx, id)
		return err
	})
	if err != nil {
		return domain.TodoListDetail{}, err
	}

	return created.Detail(), nil
}

func (s *TodoListService) Get(ctx context.Context, id uint64) (domain.TodoListDetail, error) {
	todoList, err := s.store.TodoLists().Get(ctx, id)
	if err != nil {
		return domain.TodoListDetail{}, err
	}
	return todoList.Detail(), nil
}

func (s *TodoListService) Update(ctx context.Context, id uint64, input domain.UpdateTodoListInput) (domain.TodoListDetail, error) {
	if input.Title == nil && input.Description == nil {
		return domain.TodoListDetail{}, domain.ErrInvalidInput
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return domain.TodoListDetail{}, domain.ErrInvalidInput
	}

	var updated domain.TodoList
	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		if err := tx.TodoLists().Update(ctx, id, input); err != nil {
			return err
		}

		var err error
		updated, err = tx.TodoLists().Get(ctx, id)
		return err
	})
	if err != nil {
		return domain.TodoListDetail{}, err
	}

	return updated.Detail(), nil
}

// Delete removes the list's tasks before the list itself and returns the list
// as it was before deletion.
func (s *TodoListService) Delete(ctx context.Context, id uint64) (domain.TodoListDetail, error) {
	var deleted domain.TodoList
	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		var err error
		deleted, err = tx.TodoLists().Get(ctx, id)
		if err != nil {
			return err
		}

		if _, err := tx.Tasks().DeleteByTodoList(ctx, id); err != nil {
			return err
		}

		return tx.TodoLists().Delete(ctx, id)
	})
	if err != nil {
		return domain.TodoListDetail{}, err
	}

	return deleted.Detail(), nil
}

var _ ports.TodoListService = (*TodoListService)(nil)
