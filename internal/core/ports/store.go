package ports

import "context"

// Store groups the repositories behind one unit of work.
type Store interface {
	Categories() CategoryRepository
	TodoLists() TodoListRepository
	Tasks() TaskRepository

	// WithinTx runs fn against a store bound to a single transaction. The
	// transaction is committed when fn returns nil and rolled back otherwise.
	WithinTx(ctx context.Context, fn func(Store) error) error
}
