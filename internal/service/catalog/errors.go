package catalog

import "errors"

var (
	ErrNotFound     = errors.New("entity not found")
	ErrConflict     = errors.New("entity conflicts with existing data")
	ErrInvalidInput = errors.New("invalid input")
)
