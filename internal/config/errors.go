package config

import "errors"

// Validation errors returned by Config.Validate.
var (
	ErrInvalidStorageConfig = errors.New("invalid storage configuration")
	ErrInvalidLogConfig     = errors.New("invalid log configuration")
	ErrInvalidExportConfig  = errors.New("invalid export configuration")
)
