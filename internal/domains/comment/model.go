package comment

import "blog-backend/internal/shared"

// Comment is the domain entity, mapped 1:1 to the comments table.
type Comment struct {
	ID       int64  `db:"id" json:"id"`
	Content  string `db:"content" json:"content"`
	PostID   int64  `db:"post_id" json:"post_id"`
	AuthorID int64  `db:"author_id" json:"author_id"`

	shared.Timestamps
	shared.SoftDelete
}

// ToDTO returns the public shape of the comment.
func (c *Comment) ToDTO() CommentDTO {
	return CommentDTO{
		ID:        c.ID,
		Content:   c.Content,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
