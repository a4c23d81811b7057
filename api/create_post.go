package api

import (
	"errors"
	"net/http"

	db "github.com/Drolfothesgnir/sillypost/db/sqlc"
	"github.com/Drolfothesgnir/sillypost/sillycode"
	"github.com/Drolfothesgnir/sillypost/util"
	"github.com/gin-gonic/gin"
)

type CreatePostRequest struct {
	Title *string `json:"title" binding:"omitempty,max=128"`
	Body  string  `json:"body" binding:"required"`
}

func (s *Service) createPost(ctx *gin.Context) {
	var req CreatePostRequest
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

	post, err := s.store.CreatePost(ctx, db.CreatePostParams{
		Title:      util.StringToPgxText(req.Title),
		Body:       req.Body,
		BodyHtml:   sillycode.Render(parts, false),
		BodyLength: int32(length),
	})

	if err != nil {
		var opErr *db.OpError
		if errors.As(err, &opErr) && opErr.Kind == db.KindInvalid {
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, createPostResponse(post))
}
