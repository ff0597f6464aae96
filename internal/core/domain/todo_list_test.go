package domain_test

import (
	"testing"
	"time"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestTodoList_SummaryAndDetailAgreeOnCompletion(t *testing.T) {
	category := &domain.Category{ID: 1, Name: "Work"}
	snapshots := [][]domain.Task{
		nil,
		{{ID: 1, IsCompleted: false}},
		{{ID: 1, IsCompleted: true}},
		{{ID: 1, IsCompleted: true}, {ID: 2, IsCompleted: false}},
	}

	for _, tasks := range snapshots {
		list := domain.TodoList{
			ID:          7,
			Title:       "Report",
			Description: "Q3",
			Category:    category,
			CreatedAt:   time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
			Tasks:       tasks,
		}

		require.Equal(t, list.Summary().Completed, list.Detail().Completed)
		require.Equal(t, domain.IsListCompleted(tasks), list.Summary().Completed)
	}
}

func TestTodoList_DetailNeverReturnsNilTasks(t *testing.T) {
	detail := domain.TodoList{ID: 1, Title: "Empty"}.Detail()

	require.NotNil(t, detail.Tasks)
	require.Empty(t, detail.Tasks)
	require.False(t, detail.Completed)
}
