// SPDX-License-Identifier: Apache-2.0

package config

import "time"

const (
	defaultHTTPAddress   = ":8080"
	defaultTokenIssuer   = "checkin-auth"
	defaultTokenDuration = time.Hour
	defaultBcryptCost    = 10
)

// applyDefaults fills the fields that have safe, non-secret defaults.
// Secrets are deliberately excluded: a missing signing key must fail
// validation instead of being silently substituted.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}

	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = defaultBcryptCost
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token signing key has no fallback: the process refuses to start
// without it rather than running with a guessable secret.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if !cfg.Web.DevMode && cfg.Web.FrontendURL == "" {
		return ErrMissingFrontendURL
	}

	return nil
}
