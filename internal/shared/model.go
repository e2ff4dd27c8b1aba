package shared

import "time"

// Timestamps is embedded by every entity. CreatedAt is set once at insert;
// UpdatedAt is refreshed on every mutation.
type Timestamps struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Touch initializes both timestamps for a new entity.
func (t *Timestamps) Touch() {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
}

// SoftDelete marks rows inactive instead of removing them. Soft-deleted
// rows are excluded from all normal read paths but stay in storage.
type SoftDelete struct {
	IsDeleted bool       `db:"is_deleted" json:"-"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
}

// MarkDeleted flags the row as deleted and stamps the deletion time.
func (s *SoftDelete) MarkDeleted() {
	now := time.Now().UTC()
	s.IsDeleted = true
	s.DeletedAt = &now
}
