package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrNoPayload indicates that no integration file path was given.
	ErrNoPayload = errors.New("integration payload path is required")
	// ErrInvalidAdapterConfigs indicates a negative request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates a non-positive token duration or an
	// unknown log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)

// Errors returned by [LoadIntegration].
var (
	ErrIntegrationFileNotFound  = errors.New("integration file not found")
	ErrIntegrationFileMalformed = errors.New("integration file is not valid JSON")
)
