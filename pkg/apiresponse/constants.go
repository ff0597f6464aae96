package apiresponse

const (
	MsgTodosRetrieved = "todosRetrieved"
	MsgTodoCreated    = "todoCreated"
	MsgTodoRetrieved  = "todoRetrieved"
	MsgTodoUpdated    = "todoUpdated"
	MsgTodoDeleted    = "todoDeleted"

	MsgTaskCreated = "taskCreated"
	MsgTaskUpdated = "taskUpdated"
	MsgTaskDeleted = "taskDeleted"

	MsgCategoriesRetrieved = "categoriesRetrieved"
	MsgCategoryCreated     = "categoryCreated"
	MsgCategoryRetrieved   = "categoryRetrieved"
	MsgCategoryUpdated     = "categoryUpdated"
	MsgCategoryDeleted     = "categoryDeleted"

	MsgInvalidID              = "invalidID"
	MsgInvalidTodoPayload     = "invalidTodoPayload"
	MsgInvalidTaskPayload     = "invalidTaskPayload"
	MsgInvalidCategoryPayload = "invalidCategoryPayload"

	MsgTodoNotFound     = "todoNotFound"
	MsgTaskNotFound     = "taskNotFound"
	MsgCategoryNotFound = "categoryNotFound"

	MsgFailListTodos      = "failListTodos"
	MsgFailCreateTodo     = "failCreateTodo"
	MsgFailGetTodo        = "failGetTodo"
	MsgFailUpdateTodo     = "failUpdateTodo"
	MsgFailDeleteTodo     = "failDeleteTodo"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailListCategories = "failListCategories"
	MsgFailCreateCategory = "failCreateCategory"
	MsgFailGetCategory    = "failGetCategory"
	MsgFailUpdateCategory = "failUpdateCategory"
	MsgFailDeleteCategory = "failDeleteCategory"
)
