package api

import (
	"time"

	db "github.com/Drolfothesgnir/sillypost/db/sqlc"
)

type PostResponse struct {
	ID             int64     `json:"id"`
	Title          *string   `json:"title,omitempty"`
	Body           string    `json:"body"`
	BodyHTML       string    `json:"body_html"`
	BodyLength     int32     `json:"body_length"`
	CreatedAt      time.Time `json:"created_at"`
	LastModifiedAt time.Time `json:"last_modified_at"`
}

func createPostResponse(post db.Post) PostResponse {
	resp := PostResponse{
		ID:             post.ID,
		Body:           post.Body,
		BodyHTML:       post.BodyHtml,
		BodyLength:     post.BodyLength,
		CreatedAt:      post.CreatedAt,
		LastModifiedAt: post.LastModifiedAt,
	}

	if post.Title.Valid {
		title := post.Title.String
		resp.Title = &title
	}

	return resp
}
