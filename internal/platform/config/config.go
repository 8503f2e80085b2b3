// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, token codec) via constructors.
  - Zero Hidden State: No global variables are used to store config.
  - Fail Fast: An empty signing key or an unrecognized token-lifetime unit
    aborts startup instead of silently falling back to a default.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/inkwell-app/inkwell/internal/platform/apperr"
)

// # Token Lifetime Units

// ExpiryUnit is the closed set of recognized access-token lifetime units.
//
// Comparison is case-sensitive: "Hours" is not a valid unit.
type ExpiryUnit string

const (
	UnitMinutes ExpiryUnit = "minutes"
	UnitHours   ExpiryUnit = "hours"
	UnitDays    ExpiryUnit = "days"
)

// Duration converts a (magnitude, unit) pair into a [time.Duration].
func (u ExpiryUnit) Duration(magnitude int) time.Duration {
	switch u {
	case UnitMinutes:
		return time.Duration(magnitude) * time.Minute
	case UnitHours:
		return time.Duration(magnitude) * time.Hour
	case UnitDays:
		return time.Duration(magnitude) * 24 * time.Hour
	}
	return 0
}

// valid reports whether the unit is a member of the closed set.
func (u ExpiryUnit) valid() bool {
	switch u {
	case UnitMinutes, UnitHours, UnitDays:
		return true
	}
	return false
}

// # Configuration Schema

// Config holds all runtime configuration for the Inkwell API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Signing configuration for identity tokens.
	// JWTSecretKey must be non-empty; the access-token lifetime defaults
	// to a 10-hour window when the expiry variables are absent.
	JWTSecretKey          string     `env:"JWT_SECRET_KEY,required"`
	AccessTokenExpiry     int        `env:"ACCESS_TOKEN_EXPIRY"      envDefault:"10"`
	AccessTokenExpiryUnit ExpiryUnit `env:"ACCESS_TOKEN_EXPIRY_UNIT" envDefault:"hours"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate enforces the semantic invariants the env tags cannot express.
func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return apperr.ConfigInvalid("JWT_SECRET_KEY must not be empty")
	}

	if c.AccessTokenExpiry <= 0 {
		return apperr.ConfigInvalid(fmt.Sprintf("ACCESS_TOKEN_EXPIRY must be positive, got %d", c.AccessTokenExpiry))
	}

	if !c.AccessTokenExpiryUnit.valid() {
		return apperr.ConfigInvalid(fmt.Sprintf(
			"ACCESS_TOKEN_EXPIRY_UNIT must be one of minutes, hours, days (case-sensitive), got %q",
			c.AccessTokenExpiryUnit,
		))
	}

	return nil
}

// AccessTokenTTL returns the configured access-token lifetime.
func (c *Config) AccessTokenTTL() time.Duration {
	return c.AccessTokenExpiryUnit.Duration(c.AccessTokenExpiry)
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns additional CORS origins configured via EXTRA_ORIGINS,
// split on commas with surrounding whitespace trimmed.
func (c *Config) AllowedOrigins() []string {
	if c.ExtraOrigins == "" {
		return nil
	}

	raw := strings.Split(c.ExtraOrigins, ",")
	origins := make([]string, 0, len(raw))

	for _, origin := range raw {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
