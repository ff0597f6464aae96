package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dbadapter "github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/db"
	httpadapter "github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/handlers"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/middleware"
	appservice "github.com/ChaiyasitZ/backend-project-AdvCompro/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newRouter wires the full application on top of db, the same way cmd/api does.
func newRouter(db *sqlx.DB) *gin.Engine {
	store := dbadapter.NewStore(db)
	todoService := appservice.NewTodoListService(store)
	taskService := appservice.NewTaskService(store)
	categoryService := appservice.NewCategoryService(store)

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db),
		Todo:     handlers.NewTodoHandler(todoService),
		Task:     handlers.NewTaskHandler(taskService),
		Category: handlers.NewCategoryHandler(categoryService, todoService),
	})
	return router
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// call sends a JSON request and decodes the envelope. When dest is not nil the
// payload is decoded into it.
func call(t *testing.T, router *gin.Engine, method, target, body string, dest any) envelope {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var got envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got), rec.Body.String())
	require.Equal(t, rec.Code, got.Status)

	if dest != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(got.Data, dest))
	}
	return got
}
