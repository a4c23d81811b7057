package api

import (
	"net/http"

	db "github.com/Drolfothesgnir/sillypost/db/sqlc"
	"github.com/gin-gonic/gin"
)

const defaultPostsLimit = 20

type ListPostsQuery struct {
	Limit  int32 `form:"limit" json:"limit" binding:"min=1,max=100"`
	Offset int32 `form:"offset" json:"offset" binding:"min=0"`
}

type ListPostsResponse struct {
	Posts []PostResponse `json:"posts"`
}

func (s *Service) listPosts(ctx *gin.Context) {
	// pre-filled with default values
	req := ListPostsQuery{
		Limit:  defaultPostsLimit,
		Offset: 0,
	}

	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	posts, err := s.store.ListPosts(ctx, db.ListPostsParams{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	resp := ListPostsResponse{
		Posts: make([]PostResponse, 0, len(posts)),
	}

	for _, post := range posts {
		resp.Posts = append(resp.Posts, createPostResponse(post))
	}

	ctx.JSON(http.StatusOK, resp)
}
