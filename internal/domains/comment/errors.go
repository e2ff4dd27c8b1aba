package comment

import "errors"

var (
	ErrCommentNotFound = errors.New("Comment not found")
	ErrDeleteForbidden = errors.New("Not authorized to delete this comment")
)
