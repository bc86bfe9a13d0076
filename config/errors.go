package config

import "errors"

// ErrInvalidConfig indicates a loaded configuration fails Config.Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")
