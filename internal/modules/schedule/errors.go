package schedule

import "errors"

var (
	ErrValidation = errors.New("invalid blocked slot")
	ErrNotFound   = errors.New("blocked slot not found")
)
