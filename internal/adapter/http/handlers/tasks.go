package handlers

import (
	"net/http"
	"strings"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/dto"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/mapper"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/domain"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/ports"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/pkg/apiresponse"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	todoID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apiresponse.MsgInvalidTaskPayload)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		respondError(c, http.StatusBadRequest, apiresponse.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), domain.CreateTaskInput{
		TodoListID: todoID,
		Name:       req.Title,
	})
	if err != nil {
		respondServiceError(c, err, apiresponse.MsgFailCreateTask, apiresponse.MsgInvalidTaskPayload)
		return
	}

	respond(c, apiresponse.MsgTaskCreated, mapper.ToTask(task))
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	todoID, ok := parseID(c, "id")
	if !ok {
		return
	}
	taskID, ok := parseID(c, "taskId")
	if !ok {
		return
	}

	task, err := h.taskService.Toggle(c.Request.Context(), todoID, taskID)
	if err != nil {
		respondServiceError(c, err, apiresponse.MsgFailUpdateTask, apiresponse.MsgInvalidTaskPayload)
		return
	}

	respond(c, apiresponse.MsgTaskUpdated, mapper.ToTask(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	todoID, ok := parseID(c, "id")
	if !ok {
		return
	}
	taskID, ok := parseID(c, "taskId")
	if !ok {
		return
	}

	task, err := h.taskService.Delete(c.Request.Context(), todoID, taskID)
	if err != nil {
		respondServiceError(c, err, apiresponse.MsgFailDeleteTask, apiresponse.MsgInvalidTaskPayload)
		return
	}

	respond(c, apiresponse.MsgTaskDeleted, mapper.ToTask(task))
}
