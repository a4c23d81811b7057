package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Drolfothesgnir/sillypost/sillycode"
	"github.com/Drolfothesgnir/sillypost/tmpstore"
	"github.com/gin-gonic/gin"
)

type ParseSillycodeRequest struct {
	Body string `json:"body"`
}

type ParseSillycodeResponse struct {
	Parts  []sillycode.SerializablePart `json:"parts"`
	Length int                          `json:"length"`
	Markup string                       `json:"markup"`
}

type RenderSillycodeRequest struct {
	Body   string `json:"body"`
	Editor bool   `json:"editor"`
}

type RenderSillycodeResponse struct {
	HTML   string `json:"html"`
	Length int    `json:"length"`
	Cached bool   `json:"cached"`
}

// checkPostBody aborts the request with 400 when the body is over one of the configured
// limits: raw size, visible characters, or the size of the HTML it renders to.
// Returns the parts, their visible length and true if the request may go on.
func (s *Service) checkPostBody(ctx *gin.Context, body string, isEditor bool) ([]sillycode.Part, int, bool) {
	abort := func(err error, msg string) ([]sillycode.Part, int, bool) {
		errField := ErrorField{FieldName: "body", ErrorMessage: msg}
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err, errField))
		return nil, 0, false
	}

	if len(body) > s.config.MaxPostBytes {
		return abort(ErrPostTooLarge, fmt.Sprintf("Body has %d bytes, the maximum is %d", len(body), s.config.MaxPostBytes))
	}

	parts := sillycode.Parse(body)

	length := sillycode.Length(parts)
	if length > s.config.MaxPostLength {
		return abort(ErrPostTooLong, fmt.Sprintf("Body has %d visible characters, the maximum is %d", length, s.config.MaxPostLength))
	}

	// newlines and misnested tags reopen every open element, so short markup can render huge
	if sillycode.RenderSize(parts, isEditor, s.config.MaxRenderBytes) > s.config.MaxRenderBytes {
		return abort(ErrPostTooComplex, fmt.Sprintf("Body renders to more than %d bytes of HTML", s.config.MaxRenderBytes))
	}

	return parts, length, true
}

func (s *Service) parseSillycode(ctx *gin.Context) {
	var req ParseSillycodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	parts, length, ok := s.checkPostBody(ctx, req.Body, false)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, ParseSillycodeResponse{
		Parts:  sillycode.Serialize(parts),
		Length: length,
		Markup: sillycode.Format(parts),
	})
}

// Renders the body to HTML, consulting the render cache once the body passed the limits.
// Cache failures are logged and never fail the request.
func (s *Service) renderSillycode(ctx *gin.Context) {
	var req RenderSillycodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	parts, length, ok := s.checkPostBody(ctx, req.Body, req.Editor)
	if !ok {
		return
	}

	logger := requestLogger(ctx)
	key := tmpstore.RenderKey(req.Body, req.Editor)

	if s.cache != nil {
		entry, err := s.cache.GetRender(ctx, key)
		if err == nil {
			ctx.JSON(http.StatusOK, RenderSillycodeResponse{
				HTML:   entry.HTML,
				Length: entry.Length,
				Cached: true,
			})
			return
		}

		if !errors.Is(err, tmpstore.ErrCacheMiss) {
			logger.Warn().Err(err).Msg("cannot read render cache")
		}
	}

	html := sillycode.Render(parts, req.Editor)

	if s.cache != nil {
		entry := tmpstore.RenderEntry{
			HTML:       html,
			Length:     length,
			RenderedAt: time.Now().UTC(),
		}

		if err := s.cache.SaveRender(ctx, key, entry, s.config.RenderCacheTTL); err != nil {
			logger.Error().Err(err).Msg("cannot save render cache entry")
		}
	}

	ctx.JSON(http.StatusOK, RenderSillycodeResponse{
		HTML:   html,
		Length: length,
		Cached: false,
	})
}
