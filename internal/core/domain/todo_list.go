package domain

import "time"

type TodoList struct {
	ID          uint64
	Title       string
	Description string
	CategoryID  *uint64
	Category    *Category
	CreatedAt   time.Time
	Tasks       []Task
}

type TodoListSummary struct {
	ID          uint64
	Title       string
	Description string
	Category    *Category
	Completed   bool
}

type TodoListDetail struct {
	ID          uint64
	Title       string
	Description string
	Category    *Category
	Completed   bool
	CreatedAt   time.Time
	Tasks       []Task
}

type CreateTodoListInput struct {
	Title       string
	Description string
	CategoryID  *uint64
}

// UpdateTodoListInput carries a partial update; nil fields are left untouched.
type UpdateTodoListInput struct {
	Title       *string
	Description *string
}

// Summary projects the list as shown in collection views.
func (t TodoList) Summary() TodoListSummary {
	return TodoListSummary{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Completed:   IsListCompleted(t.Tasks),
	}
}

// Detail projects the list with its full tasks.
func (t TodoList) Detail() TodoListDetail {
	tasks := t.Tasks
	if tasks == nil {
		tasks = []Task{}
	}
	return TodoListDetail{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Completed:   IsListCompleted(t.Tasks),
		CreatedAt:   t.CreatedAt,
		Tasks:       tasks,
	}
}
