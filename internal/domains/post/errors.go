package post

import "errors"

var (
	ErrPostNotFound = errors.New("Post not found")

	// Ownership violations. The messages mirror the operation so the
	// client sees which action was refused.
	ErrUpdateForbidden = errors.New("Not authorized to update this post")
	ErrDeleteForbidden = errors.New("Not authorized to delete this post")
)
