package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

func (s *Service) getPost(ctx *gin.Context) {
	postID := extractPostIDFromCtx(ctx)

	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			errField := ErrorField{"post_id", fmt.Sprintf("Post with ID [%d] does not exist", postID)}
			ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrPostNotFound, errField))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	// deleted posts are indistinguishable from missing ones for readers
	if post.IsDeleted {
		errField := ErrorField{"post_id", fmt.Sprintf("Post with ID [%d] does not exist", postID)}
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrPostNotFound, errField))
		return
	}

	ctx.JSON(http.StatusOK, createPostResponse(post))
}
