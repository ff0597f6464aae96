package handlers

import (
	"errors"
	"net/http"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/middleware"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/validation"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/domain"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/pkg/apiresponse"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func respond(c *gin.Context, msgKey string, data any) {
	c.JSON(http.StatusOK, apiresponse.New(http.StatusOK, msgKey, middleware.GetLang(c), data))
}

func respondError(c *gin.Context, code int, msgKey string) {
	c.JSON(code, apiresponse.CreateError(code, msgKey, middleware.GetLang(c)))
}

// respondServiceError maps a service error to its envelope. Unknown errors
// are logged and answered with failMsgKey.
func respondServiceError(c *gin.Context, err error, failMsgKey string, invalidMsgKey string) {
	switch {
	case errors.Is(err, domain.ErrTodoListNotFound):
		respondError(c, http.StatusNotFound, apiresponse.MsgTodoNotFound)
	case errors.Is(err, domain.ErrTaskNotFound):
		respondError(c, http.StatusNotFound, apiresponse.MsgTaskNotFound)
	case errors.Is(err, domain.ErrCategoryNotFound):
		respondError(c, http.StatusNotFound, apiresponse.MsgCategoryNotFound)
	case errors.Is(err, domain.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, invalidMsgKey)
	default:
		zap.L().Error(
			"request failed",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, failMsgKey)
	}
}

// parseID reads a positive integer path parameter, answering 400 otherwise.
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := validation.ParseID(c.Param(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, apiresponse.MsgInvalidID)
		return 0, false
	}
	return id, true
}
