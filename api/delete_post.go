package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// Soft deletes the post. Deleting an already deleted post succeeds.
func (s *Service) deletePost(ctx *gin.Context) {
	postID := extractPostIDFromCtx(ctx)

	n, err := s.store.DeletePost(ctx, postID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	if n > 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	// nothing was deleted: the post is either gone already or never existed
	_, err = s.store.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			errField := ErrorField{"post_id", fmt.Sprintf("Post with ID [%d] does not exist", postID)}
			ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrPostNotFound, errField))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
