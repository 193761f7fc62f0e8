package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// supplied. There is no default: the server fails closed.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrMissingDatabaseDSN indicates that no database connection string
	// was supplied through any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
	// ErrMissingFrontendURL indicates that no frontend origin was supplied
	// while running outside dev mode, which would leave the CORS policy
	// without an allowed origin.
	ErrMissingFrontendURL = errors.New("frontend URL is required outside dev mode")
)
