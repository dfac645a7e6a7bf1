package storage

import "errors"

var (
	ErrNotFound   = errors.New("document not found")
	ErrTooLarge   = errors.New("document exceeds maximum size")
	ErrEmptyKey   = errors.New("storage key must not be empty")
	ErrInvalidKey = errors.New("storage key must be a relative path without traversal")
)
