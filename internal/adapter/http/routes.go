package http

import (
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/handlers"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Todo     *handlers.TodoHandler
	Task     *handlers.TaskHandler
	Category *handlers.CategoryHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/todos", h.Todo.ListTodos)
		api.POST("/todos", h.Todo.CreateTodo)
		api.GET("/todos/:id", h.Todo.GetTodo)
		api.PUT("/todos/:id", h.Todo.UpdateTodo)
		api.DELETE("/todos/:id", h.Todo.DeleteTodo)

		api.POST("/todos/:id/tasks", h.Task.CreateTask)
		api.PATCH("/todos/:id/tasks/:taskId", h.Task.ToggleTask)
		api.DELETE("/todos/:id/tasks/:taskId", h.Task.DeleteTask)

		api.GET("/category", h.Category.ListCategories)
		api.POST("/category", h.Category.CreateCategory)
		api.GET("/category/:id", h.Category.GetCategory)
		api.POST("/category/:id", h.Category.CreateTodo)
		api.PUT("/category/:id", h.Category.AssignTodo)
		api.PATCH("/category/:id", h.Category.RenameCategory)
		api.DELETE("/category/:id", h.Category.DeleteCategory)
	}
}
