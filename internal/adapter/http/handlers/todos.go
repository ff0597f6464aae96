package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/dto"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/mapper"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/validation"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/ports"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/pkg/apiresponse"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type TodoHandler struct {
	todoService ports.TodoListService
}

func NewTodoHandler(todoService ports.TodoListService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	todos, err := h.todoService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, apiresponse.MsgFailListTodos, apiresponse.MsgInvalidTodoPayload)
		return
	}

	respond(c, apiresponse.MsgTodosRetrieved, mapper.ToTodoItems(todos))
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apiresponse.MsgInvalidTodoPayload)
		return
	}

	input, err := validation.BuildCreateTodoListInput(req, nil)
	if err != nil {
		respondError(c, http.StatusBadRequest, apiresponse.MsgInvalidTodoPayload)
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, apiresponse.MsgFailCreateTodo, apiresponse.MsgInvalidTodoPayload)
		return
	}

	respond(c, apiresponse.MsgTodoCreated, mapper.ToTodoDetail(todo))
}

func (h *TodoHandler) GetTodo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	todo, err := h.todoService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, apiresponse.MsgFailGetTodo, apiresponse.MsgInvalidTodoPayload)
		return
	}

	respond(c, apiresponse.MsgTodoRetrieved, mapper.ToTodoDetail(todo))
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondError(c, http.StatusBadRequest, apiresponse.MsgInvalidTodoPayload)
		return
	}
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondError(c, http.StatusBadRequest, apiresponse.MsgInvalidTodoPayload)
		return
	}

	input, err := validation.BuildUpdateTodoListInput(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apiresponse.MsgInvalidTodoPayload)
		return
	}

	todo, err := h.todoService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err, apiresponse.MsgFailUpdateTodo, apiresponse.MsgInvalidTodoPayload)
		return
	}

	respond(c, apiresponse.MsgTodoUpdated, mapper.ToTodoDetail(todo))
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	todo, err := h.todoService.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, apiresponse.MsgFailDeleteTodo, apiresponse.MsgInvalidTodoPayload)
		return
	}

	respond(c, apiresponse.MsgTodoDeleted, mapper.ToTodoDetail(todo))
}
