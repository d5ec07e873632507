package utils

import "errors"

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrNotAuthorized    = errors.New("acting identity required")
	ErrInvalidPage      = errors.New("invalid page parameter")
	ErrInvalidPageSize  = errors.New("invalid page size parameter")
	ErrDatabaseError    = errors.New("database error")
)
