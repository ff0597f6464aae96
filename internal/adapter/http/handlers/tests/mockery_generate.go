package tests

// Mock generation for handler tests.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TodoListService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename todo_list_service_mock.go --with-expecter
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name CategoryService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename category_service_mock.go --with-expecter
