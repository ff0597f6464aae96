package mapper

import (
	"time"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/dto"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/domain"
)

func ToCategory(category domain.Category) dto.Category {
	return dto.Category{ID: category.ID, Name: category.Name}
}

func ToCategories(categories []domain.Category) []dto.Category {
	items := make([]dto.Category, 0, len(categories))
	for _, category := range categories {
		items = append(items, ToCategory(category))
	}
	return items
}

func ToTask(task domain.Task) dto.Task {
	return dto.Task{
		ID:          task.ID,
		Name:        task.Name,
		IsCompleted: task.IsCompleted,
		TodoListID:  task.TodoListID,
	}
}

func ToTodoItems(todos []domain.TodoListSummary) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(todos))
	for _, todo := range todos {
		items = append(items, dto.TodoItem{
			ID:          todo.ID,
			Title:       todo.Title,
			Description: todo.Description,
			Category:    toCategoryRef(todo.Category),
			Completed:   todo.Completed,
		})
	}
	return items
}

func ToTodoDetail(todo domain.TodoListDetail) dto.TodoDetail {
	tasks := make([]dto.Task, 0, len(todo.Tasks))
	for _, task := range todo.Tasks {
		tasks = append(tasks, ToTask(task))
	}

	return dto.TodoDetail{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Category:    toCategoryRef(todo.Category),
		Completed:   todo.Completed,
		CreatedAt:   todo.CreatedAt.Format(time.RFC3339Nano),
		Tasks:       tasks,
	}
}

func ToCategoryDetail(detail domain.CategoryDetail) dto.CategoryDetail {
	todos := make([]dto.CategoryTodoItem, 0, len(detail.Todos))
	for _, todo := range detail.Todos {
		todos = append(todos, dto.CategoryTodoItem{
			ID:          todo.ID,
			Title:       todo.Title,
			Description: todo.Description,
			Completed:   todo.Completed,
		})
	}

	return dto.CategoryDetail{
		Category: ToCategory(detail.Category),
		Todos:    todos,
	}
}

func toCategoryRef(category *domain.Category) *dto.Category {
	if category == nil {
		return nil
	}
	value := ToCategory(*category)
	return &value
}
