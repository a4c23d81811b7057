package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func setupRequestIDTestRouter(handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(requestIDMiddleware())
	r.GET("/ping", handler)
	return r
}

func TestRequestIDMiddleware_Generates(t *testing.T) {
	var seen string

	router := setupRequestIDTestRouter(func(ctx *gin.Context) {
		seen = ctx.GetString(ctxRequestIDKey)
		require.NotNil(t, requestLogger(ctx))
		ctx.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	require.Equal(t, seen, resp.Header().Get(RequestIDHeader))
}

func TestRequestIDMiddleware_ReusesValidID(t *testing.T) {
	id := uuid.NewString()

	router := setupRequestIDTestRouter(func(ctx *gin.Context) {
		require.Equal(t, id, ctx.GetString(ctxRequestIDKey))
		ctx.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, id)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, id, resp.Header().Get(RequestIDHeader))
}

func TestRequestIDMiddleware_ReplacesInvalidID(t *testing.T) {
	router := setupRequestIDTestRouter(func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	got := resp.Header().Get(RequestIDHeader)
	require.NotEqual(t, "<script>", got)

	_, err := uuid.Parse(got)
	require.NoError(t, err)
}
