package tag

import "errors"

var (
	ErrTagNotFound  = errors.New("Tag not found")
	ErrNameTaken    = errors.New("Tag name already exists")
	ErrInvalidTagID = errors.New("One or more tag IDs are invalid")
)
