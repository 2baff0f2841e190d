package settings

import "errors"

var ErrValidation = errors.New("invalid settings")
