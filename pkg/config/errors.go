package config

import "errors"

// Config-specific error types.
var (
	ErrConfigNotInitialized = errors.New("configuration not initialized")
	ErrConfigFileParse      = errors.New("failed to parse config file")
	ErrInvalidConfig        = errors.New("invalid configuration")
)
