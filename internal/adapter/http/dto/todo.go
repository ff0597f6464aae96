package dto

import "encoding/json"

type Category struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type Task struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	IsCompleted bool   `json:"isCompleted"`
	TodoListID  uint64 `json:"todoListId"`
}

type TodoItem struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    *Category `json:"category"`
	Completed   bool      `json:"completed"`
}

type TodoDetail struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    *Category `json:"category"`
	Completed   bool      `json:"completed"`
	CreatedAt   string    `json:"createdAt"`
	Tasks       []Task    `json:"tasks"`
}

// CategoryTodoItem is a todo as listed inside a category.
type CategoryTodoItem struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type CategoryDetail struct {
	Category Category           `json:"category"`
	Todos    []CategoryTodoItem `json:"todos"`
}

type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=65535"`
}

type UpdateTodoRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
}

type CreateTaskRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

type CategoryNameRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// AssignTodoRequest takes todoId as a JSON number or a numeric string.
type AssignTodoRequest struct {
	TodoID json.Number `json:"todoId" binding:"required"`
}
