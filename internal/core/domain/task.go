package domain

type Task struct {
	ID          uint64
	Name        string
	IsCompleted bool
	TodoListID  uint64
}

type CreateTaskInput struct {
	TodoListID uint64
	Name       string
}
