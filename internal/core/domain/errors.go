package domain

import "errors"

var (
	ErrTodoListNotFound = errors.New("todo list not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidInput     = errors.New("invalid input")
)
