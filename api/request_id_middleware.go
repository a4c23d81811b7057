package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const ctxRequestIDKey = "request_id"

// requestIDMiddleware tags every request with an id and logs its outcome.
// A valid UUID sent by the client in X-Request-ID is reused.
func requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		ctx.Set(ctxRequestIDKey, requestID)
		ctx.Header(RequestIDHeader, requestID)

		logger := log.With().Str("request_id", requestID).Logger()
		ctx.Request = ctx.Request.WithContext(logger.WithContext(ctx.Request.Context()))

		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()

		event := logger.Info()
		if status >= 500 {
			event = logger.Error()
		}

		event.
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("received an HTTP request")
	}
}

// Logger bound to the current request.
func requestLogger(ctx *gin.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx.Request.Context())
}
