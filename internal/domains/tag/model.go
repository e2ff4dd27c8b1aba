package tag

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/shared"
)

const (
	MinNameLength = 1
	MaxNameLength = 50
)

var nameRe = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Tag is the domain entity, mapped 1:1 to the tags table. Tags associate
// with posts through the post_tags table.
type Tag struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`

	shared.Timestamps
	shared.SoftDelete
}

// TagDTO is the shape embedded in post responses.
type TagDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToDTO returns the public shape of the tag.
func (t *Tag) ToDTO() TagDTO {
	return TagDTO{ID: t.ID, Name: t.Name}
}

// NormalizeName lowercases and trims a tag name to its canonical form.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidateName checks a normalized tag name against the storage charset.
func ValidateName(name string) error {
	return validation.Validate(name,
		validation.Required.Error("tag name is required"),
		validation.Length(MinNameLength, MaxNameLength),
		validation.Match(nameRe).Error("tag name may contain lowercase letters, digits, _ and -"),
	)
}
