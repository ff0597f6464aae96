package handlers

import (
	"net/http"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/dto"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/mapper"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/validation"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/ports"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/pkg/apiresponse"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
	todoService     ports.TodoListService
}

func NewCategoryHandler(categoryService ports.CategoryService, todoService ports.TodoListService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, todoService: todoService}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, apiresponse.MsgFailListCategories, apiresponse.MsgInvalidCategoryPayload)
		return
	}

	respond(c, apiresponse.MsgCategoriesRetrieved, mapper.ToCategories(categories))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apiresponse.MsgInvalidCategoryPayload)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondServiceError(c, err, apiresponse.MsgFailCreateCategory, apiresponse.MsgInvalidCategoryPayload)
		return
	}

	respond(c, apiresponse.MsgCategoryCreated, mapper.ToCategory(category))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	detail, err := h.categoryService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, apiresponse.MsgFailGetCategory, apiresponse.MsgInvalidCategoryPayload)
		return
	}

	respond(c, apiresponse.MsgCategoryRetrieved, mapper.ToCategoryDetail(detail))
}

// CreateTodo creates a todo list already bound to the category in the path.
func (h *CategoryHandler) CreateTodo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apiresponse.MsgInvalidTodoPayload)
		return
	}

	input, err := validation.BuildCreateTodoListInput(req, &id)
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

func (h *CategoryHandler) AssignTodo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.AssignTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apiresponse.MsgInvalidCategoryPayload)
		return
	}

	todoID, err := validation.ParseID(req.TodoID.String())
	if err != nil {
		respondError(c, http.StatusBadRequest, apiresponse.MsgInvalidCategoryPayload)
		return
	}

	category, err := h.categoryService.AssignTodoList(c.Request.Context(), id, todoID)
	if err != nil {
		respondServiceError(c, err, apiresponse.MsgFailUpdateCategory, apiresponse.MsgInvalidCategoryPayload)
		return
	}

	respond(c, apiresponse.MsgCategoryUpdated, mapper.ToCategory(category))
}

func (h *CategoryHandler) RenameCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CategoryNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apiresponse.MsgInvalidCategoryPayload)
		return
	}

	category, err := h.categoryService.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		respondServiceError(c, err, apiresponse.MsgFailUpdateCategory, apiresponse.MsgInvalidCategoryPayload)
		return
	}

	respond(c, apiresponse.MsgCategoryUpdated, mapper.ToCategory(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, apiresponse.MsgFailDeleteCategory, apiresponse.MsgInvalidCategoryPayload)
		return
	}

	respond(c, apiresponse.MsgCategoryDeleted, mapper.ToCategory(category))
}
