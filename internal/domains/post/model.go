package post

import (
	"blog-backend/internal/domains/tag"
	"blog-backend/internal/shared"
)

// Post is the domain entity, mapped 1:1 to the posts table. Tags are
// loaded explicitly by the queries that need them, never lazily.
type Post struct {
	ID       int64  `db:"id" json:"id"`
	Title    string `db:"title" json:"title"`
	Content  string `db:"content" json:"content"`
	AuthorID int64  `db:"author_id" json:"author_id"`

	// Populated by queries that request the association.
	Tags []tag.Tag `db:"-" json:"tags"`

	shared.Timestamps
	shared.SoftDelete
}

// ToDTO returns the public shape of the post with its tags embedded.
func (p *Post) ToDTO() PostDTO {
	tags := make([]tag.TagDTO, 0, len(p.Tags))
	for i := range p.Tags {
		tags = append(tags, p.Tags[i].ToDTO())
	}

	return PostDTO{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		Tags:      tags,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
