package api

import (
	"errors"
	"fmt"
	"net/http"

	db "github.com/Drolfothesgnir/sillypost/db/sqlc"
	"github.com/Drolfothesgnir/sillypost/sillycode"
	"github.com/gin-gonic/gin"
)

type UpdatePostRequest struct {
	Body string `json:"body" binding:"required"`
}

func (s *Service) updatePost(ctx *gin.Context) {
	var req UpdatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	postID := extractPostIDFromCtx(ctx)
	parts, length, ok := s.checkPostBody(ctx, req.Body, false)
	if !ok {
		return
	}

	post, err := s.store.UpdatePostTx(ctx, db.UpdatePostTxParams{
		ID:         postID,
		Body:       req.Body,
		BodyHtml:   sillycode.Render(parts, false),
		BodyLength: int32(length),
	})

	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, createPostResponse(post))

	// 1. The post doesn't exist
	case errors.Is(err, db.ErrEntityNotFound):
		errField := ErrorField{"post_id", fmt.Sprintf("Post with ID [%d] does not exist", postID)}
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrPostNotFound, errField))

	// 2. The post is deleted
	case errors.Is(err, db.ErrEntityDeleted):
		errField := ErrorField{"post_id", fmt.Sprintf("Post with ID [%d] is deleted and cannot be updated", postID)}
		ctx.JSON(http.StatusGone, NewErrorResponse(ErrPostDeleted, errField))

	// 3. The new values are rejected by the table constraints
	case errors.Is(err, db.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams))

	// 4. Any other db error
	default:
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
	}
}
