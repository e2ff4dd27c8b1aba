package post

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/tag"
)

const (
	MinTitleLength = 1
	MaxTitleLength = 200
)

// CreatePostRequest is the POST /posts body.
type CreatePostRequest struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	TagIDs  []int64 `json:"tag_ids,omitempty"`
}

// Normalize trims the text fields and de-duplicates tag ids keeping
// first-occurrence order.
func (r *CreatePostRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
	r.TagIDs = DedupeTagIDs(r.TagIDs)
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(MinTitleLength, MaxTitleLength),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.TagIDs,
			validation.Each(validation.Min(int64(1)).Error("tag ids must be positive")),
		),
	)
}

// UpdatePostRequest is the PUT /posts/:id body. All fields optional:
// nil means "leave untouched". A present tag_ids list, even empty,
// replaces the whole association set.
type UpdatePostRequest struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	TagIDs  *[]int64 `json:"tag_ids"`
}

// Normalize trims supplied fields and de-duplicates a supplied tag id
// list, preserving the nil/non-nil distinction.
func (r *UpdatePostRequest) Normalize() {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
	if r.Content != nil {
		ct := strings.TrimSpace(*r.Content)
		r.Content = &ct
	}
	if r.TagIDs != nil {
		ids := DedupeTagIDs(*r.TagIDs)
		r.TagIDs = &ids
	}
}

func (r UpdatePostRequest) Validate() error {
	errs := validation.Errors{}

	if r.Title != nil {
		if err := validation.Validate(*r.Title,
			validation.Required.Error("title cannot be blank"),
			validation.Length(MinTitleLength, MaxTitleLength),
		); err != nil {
			errs["title"] = err
		}
	}
	if r.Content != nil {
		if err := validation.Validate(*r.Content,
			validation.Required.Error("content cannot be blank"),
		); err != nil {
			errs["content"] = err
		}
	}
	if r.TagIDs != nil {
		if err := validation.Validate(*r.TagIDs,
			validation.Each(validation.Min(int64(1)).Error("tag ids must be positive")),
		); err != nil {
			errs["tag_ids"] = err
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DedupeTagIDs removes duplicate ids, keeping the first occurrence.
func DedupeTagIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return ids
	}

	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}

// PostDTO is the public post shape.
type PostDTO struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	AuthorID  int64        `json:"author_id"`
	Tags      []tag.TagDTO `json:"tags"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
