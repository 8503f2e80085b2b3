// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-app/inkwell/internal/platform/apperr"
	"github.com/inkwell-app/inkwell/internal/platform/config"
)

// validConfig returns a configuration that passes all semantic checks.
func validConfig() *config.Config {
	return &config.Config{
		DatabaseURL:           "postgres://localhost:5432/inkwell",
		RedisURL:              "redis://localhost:6379/0",
		JWTSecretKey:          "s3cr3t",
		AccessTokenExpiry:     10,
		AccessTokenExpiryUnit: config.UnitHours,
	}
}

/*
TestConfig_Validate_SigningKey verifies the non-empty signing key invariant.
*/
func TestConfig_Validate_SigningKey(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecretKey = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeConfigInvalid))
}

/*
TestConfig_Validate_ExpiryUnit verifies the closed lifetime-unit enumeration.

Unknown units must fail startup rather than silently fall back to a default,
and comparison is case-sensitive.
*/
func TestConfig_Validate_ExpiryUnit(t *testing.T) {
	tests := []struct {
		name    string
		unit    config.ExpiryUnit
		isValid bool
	}{
		{"minutes", config.UnitMinutes, true},
		{"hours", config.UnitHours, true},
		{"days", config.UnitDays, true},
		{"unknown", "weeks", false},
		{"wrong_case", "Hours", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.AccessTokenExpiryUnit = tt.unit

			err := cfg.Validate()
			if tt.isValid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, apperr.HasCode(err, apperr.CodeConfigInvalid))
			}
		})
	}
}

/*
TestConfig_AccessTokenTTL verifies the (magnitude, unit) arithmetic.
*/
func TestConfig_AccessTokenTTL(t *testing.T) {
	tests := []struct {
		name      string
		magnitude int
		unit      config.ExpiryUnit
		want      time.Duration
	}{
		{"default_ten_hours", 10, config.UnitHours, 10 * time.Hour},
		{"thirty_minutes", 30, config.UnitMinutes, 30 * time.Minute},
		{"two_days", 2, config.UnitDays, 48 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.AccessTokenExpiry = tt.magnitude
			cfg.AccessTokenExpiryUnit = tt.unit

			assert.Equal(t, tt.want, cfg.AccessTokenTTL())
		})
	}
}

/*
TestConfig_Validate_NegativeExpiry rejects non-positive lifetime magnitudes.
*/
func TestConfig_Validate_NegativeExpiry(t *testing.T) {
	cfg := validConfig()
	cfg.AccessTokenExpiry = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeConfigInvalid))
}
