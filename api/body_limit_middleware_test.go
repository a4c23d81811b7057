package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupBodyLimitTestRouter(limit int64, handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(bodyLimitMiddleware(limit))
	r.POST("/echo", handler)
	return r
}

func TestBodyLimitMiddleware_UnderLimit(t *testing.T) {
	router := setupBodyLimitTestRouter(16, func(ctx *gin.Context) {
		data, err := io.ReadAll(ctx.Request.Body)
		require.NoError(t, err)
		ctx.String(http.StatusOK, string(data))
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("hello"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "hello", resp.Body.String())
}

func TestBodyLimitMiddleware_DeclaredTooLarge(t *testing.T) {
	called := false
	router := setupBodyLimitTestRouter(16, func(ctx *gin.Context) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 17)))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.False(t, called)
	require.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)

	res, err := extractErrorFromBuffer(resp.Body)
	require.NoError(t, err)
	require.Equal(t, ErrRequestTooLarge.Error(), res.Error)
}

func TestBodyLimitMiddleware_UndeclaredTooLarge(t *testing.T) {
	router := setupBodyLimitTestRouter(16, func(ctx *gin.Context) {
		_, err := io.ReadAll(ctx.Request.Body)

		var maxErr *http.MaxBytesError
		require.ErrorAs(t, err, &maxErr)
		ctx.Status(http.StatusBadRequest)
	})

	// unknown length, as with chunked encoding
	req := httptest.NewRequest(http.MethodPost, "/echo", io.NopCloser(strings.NewReader(strings.Repeat("x", 17))))
	req.ContentLength = -1
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestMaxRequestBytes(t *testing.T) {
	service := newTestService(t, nil, nil)
	require.Equal(t, int64(testConfig.MaxPostBytes*6+4096), service.maxRequestBytes())
}
