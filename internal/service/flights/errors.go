package flights

import "errors"

var (
	ErrNotFound     = errors.New("flight not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrBadReference = errors.New("referenced entity does not exist")
)
