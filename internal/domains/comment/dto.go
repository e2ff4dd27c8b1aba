package comment

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MinContentLength = 1
	MaxContentLength = 1000
)

// CreateCommentRequest is the POST /comments body. The target post is
// addressed in the body, not the path.
type CreateCommentRequest struct {
	Content string `json:"content"`
	PostID  int64  `json:"post_id"`
}

// Normalize trims surrounding whitespace.
func (r *CreateCommentRequest) Normalize() {
	r.Content = strings.TrimSpace(r.Content)
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(MinContentLength, MaxContentLength),
		),
		validation.Field(&r.PostID,
			validation.Required.Error("post_id is required"),
			validation.Min(int64(1)).Error("post_id must be positive"),
		),
	)
}

// CommentDTO is the public comment shape.
type CommentDTO struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	PostID    int64     `json:"post_id"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
