package service

import (
	"context"
	"strings"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/domain"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/ports"
)

type TaskService struct {
	store ports.Store
}

func NewTaskService(store ports.Store) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if strings.TrimSpace(input.Name) == "" {
		return domain.Task{}, domain.ErrInvalidInput
	}

	var task domain.Task
	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		if _, err := tx.TodoLists().Get(ctx, input.TodoListID); err != nil {
			return err
		}

		var err error
		task, err = tx.Tasks().Create(ctx, input)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

// Toggle flips the completion flag of a task that belongs to the given list.
func (s *TaskService) Toggle(ctx context.Context, todoListID, taskID uint64) (domain.Task, error) {
	var task domain.Task
	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		if _, err := tx.Tasks().Get(ctx, todoListID, taskID); err != nil {
			return err
		}

		if err := tx.Tasks().Toggle(ctx, todoListID, taskID); err != nil {
			return err
		}

		var err error
		task, err = tx.Tasks().Get(ctx, todoListID, taskID)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, todoListID, taskID uint64) (domain.Task, error) {
	var task domain.Task
	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		var err error
		task, err = tx.Tasks().Get(ctx, todoListID, taskID)
		if err != nil {
			return err
		}

		return tx.Tasks().Delete(ctx, todoListID, taskID)
	})
	if err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

var _ ports.TaskService = (*TaskService)(nil)
