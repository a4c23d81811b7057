package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

const opUpdatePost = "update-post"

type UpdatePostTxParams struct {
	ID         int64  `json:"id"`
	Body       string `json:"body"`
	BodyHtml   string `json:"body_html"`
	BodyLength int32  `json:"body_length"`
}

// UpdatePostTx replaces the body of a post together with its rendered HTML and length.
// The row is locked for the duration of the transaction.
// Returns KindNotFound if the post does not exist, KindDeleted if it is soft-deleted,
// KindInvalid if the new values violate table constraints, or KindInternal otherwise.
func (store *SQLStore) UpdatePostTx(ctx context.Context, arg UpdatePostTxParams) (Post, error) {
	var result Post

	err := store.execTx(ctx, func(q *Queries) error {
		post, err := q.GetPostForUpdate(ctx, arg.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return notFoundError(opUpdatePost, entPost, arg.ID)
			}
			return sqlError(opUpdatePost, entPost, arg.ID, err)
		}

		if post.IsDeleted {
			return deletedError(opUpdatePost, entPost, arg.ID)
		}

		result, err = q.UpdatePostBody(ctx, UpdatePostBodyParams{
			ID:         arg.ID,
			Body:       arg.Body,
			BodyHtml:   arg.BodyHtml,
			BodyLength: arg.BodyLength,
		})
		if err != nil {
			return sqlError(opUpdatePost, entPost, arg.ID, err)
		}

		return nil
	})

	return result, err
}
