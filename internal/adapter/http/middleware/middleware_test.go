package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestLanguageMiddleware(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{header: "", want: "en"},
		{header: "*", want: "en"},
		{header: "fr", want: "fr"},
		{header: "fr-CH, fr;q=0.9, en;q=0.8", want: "fr-CH"},
		{header: "en;q=0.5", want: "en"},
	}

	for _, tt := range tests {
		router := gin.New()
		router.GET("/", LanguageMiddleware(), func(c *gin.Context) {
			c.String(http.StatusOK, GetLang(c))
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set("Accept-Language", tt.header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, tt.want, rec.Body.String(), "header %q", tt.header)
	}
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	router := gin.New()
	router.GET("/", RequestIDMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requestID := rec.Header().Get(RequestIDHeader)
	require.Equal(t, requestID, rec.Body.String())
	_, err := uuid.Parse(requestID)
	require.NoError(t, err)
}

func TestRequestIDMiddleware_KeepsCallerID(t *testing.T) {
	router := gin.New()
	router.GET("/", RequestIDMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestGinZapMiddleware_LogsLevelByStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	router := gin.New()
	router.Use(RequestIDMiddleware(), GinZapMiddleware(logger))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok?x=1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := logs.All()
	require.Len(t, entries, 2)

	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, "/ok?x=1", entries[0].ContextMap()["path"])
	require.NotEmpty(t, entries[0].ContextMap()["request_id"])

	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	require.Equal(t, int64(http.StatusInternalServerError), entries[1].ContextMap()["status"])
}

func TestCORSMiddleware_AllowsConfiguredOrigin(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware([]string{"http://localhost:3000"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
