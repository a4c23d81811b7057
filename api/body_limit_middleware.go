package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// jsonEscapeOverhead is the most bytes a single body byte takes in a JSON string ("\u0000").
const jsonEscapeOverhead = 6

// requestEnvelopeBytes leaves room for the other request fields.
const requestEnvelopeBytes = 4 << 10

// Largest request that can still carry a post body of MaxPostBytes.
func (s *Service) maxRequestBytes() int64 {
	return int64(s.config.MaxPostBytes)*jsonEscapeOverhead + requestEnvelopeBytes
}

// bodyLimitMiddleware rejects requests declaring a larger body with 413
// and stops reading the others after limit bytes.
func bodyLimitMiddleware(limit int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.ContentLength > limit {
			ctx.AbortWithStatusJSON(
				http.StatusRequestEntityTooLarge,
				NewErrorResponse(ErrRequestTooLarge),
			)
			return
		}

		if ctx.Request.Body != nil {
			ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)
		}

		ctx.Next()
	}
}
