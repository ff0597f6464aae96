package domain

type Category struct {
	ID   uint64
	Name string
}

// CategoryDetail is a category together with the todo lists grouped under it.
type CategoryDetail struct {
	Category Category
	Todos    []TodoListSummary
}
