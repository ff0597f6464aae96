package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/domain"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type todoServiceMock struct {
	mock.Mock
}

var _ ports.TodoListService = (*todoServiceMock)(nil)

func (m *todoServiceMock) List(ctx context.Context) ([]domain.TodoListSummary, error) {
	args := m.Called(ctx)

	var todos []domain.TodoListSummary
	if value := args.Get(0); value != nil {
		todos = value.([]domain.TodoListSummary)
	}
	return todos, args.Error(1)
}

func (m *todoServiceMock) Create(ctx context.Context, input domain.CreateTodoListInput) (domain.TodoListDetail, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.TodoListDetail), args.Error(1)
}

func (m *todoServiceMock) Get(ctx context.Context, id uint64) (domain.TodoListDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TodoListDetail), args.Error(1)
}

func (m *todoServiceMock) Update(ctx context.Context, id uint64, input domain.UpdateTodoListInput) (domain.TodoListDetail, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.TodoListDetail), args.Error(1)
}

func (m *todoServiceMock) Delete(ctx context.Context, id uint64) (domain.TodoListDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TodoListDetail), args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

var _ ports.TaskService = (*taskServiceMock)(nil)

func (m *taskServiceMock) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Toggle(ctx context.Context, todoListID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, todoListID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, todoListID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, todoListID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

type categoryServiceMock struct {
	mock.Mock
}

var _ ports.CategoryService = (*categoryServiceMock)(nil)

func (m *categoryServiceMock) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryServiceMock) Create(ctx context.Context, name string) (domain.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) Get(ctx context.Context, id uint64) (domain.CategoryDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.CategoryDetail), args.Error(1)
}

func (m *categoryServiceMock) AssignTodoList(ctx context.Context, categoryID, todoListID uint64) (domain.Category, error) {
	args := m.Called(ctx, categoryID, todoListID)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) Rename(ctx context.Context, id uint64, name string) (domain.Category, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) Delete(ctx context.Context, id uint64) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

// envelope mirrors apiresponse.Envelope with a raw payload for per-test decoding.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func serve(t *testing.T, router *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := record(router, newRequest(method, target, body))

	var got envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, rec.Code, got.Status)
	return rec, got
}

func decodeData(t *testing.T, got envelope, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(got.Data, dest))
}

func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func record(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
