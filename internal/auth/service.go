// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

/*
Package auth implements login and token refresh for the Inkwell API.

It owns the credential verification flow and the issuance of access and
refresh token pairs. No server-side session state exists: a token pair
is self-contained and previously issued pairs stay valid until their
embedded expiry passes.

# Failure Taxonomy

Every failure maps to exactly one code from the closed set in apperr:

  - USER_NOT_FOUND: No live account matched the lookup. The password is
    never inspected on this path.
  - CREDENTIALS_INVALID: The account exists but the password mismatched.
  - TOKEN_ISSUANCE_FAILED: Signing failed; no partial pair is returned.
*/
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/inkwell-app/inkwell/internal/platform/apperr"
	"github.com/inkwell-app/inkwell/internal/platform/sec"
	"github.com/inkwell-app/inkwell/internal/users"
)

// # Dependency Contracts

// UserDirectory is the narrow account lookup surface the session manager
// needs. The users repository satisfies it.
type UserDirectory interface {
	FindByUsername(context context.Context, username string) (*users.User, error)
	FindByID(context context.Context, id uuid.UUID) (*users.User, error)
}

// TokenIssuer mints token pairs. The sec codec satisfies it.
type TokenIssuer interface {
	IssuePair(subject string) (*sec.TokenPair, error)
}

// CredentialVerifier compares a plaintext password against a stored hash.
//
// Injected so tests can observe that it is never invoked for unknown
// usernames. Production wiring passes [sec.VerifyPassword].
type CredentialVerifier func(plainTextPassword, storedHash string) (bool, error)

// # Service Layer

// Service orchestrates the authentication flows.
type Service struct {
	directory UserDirectory
	issuer    TokenIssuer
	verifier  CredentialVerifier
	logger    *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(directory UserDirectory, issuer TokenIssuer, verifier CredentialVerifier, logger *slog.Logger) *Service {
	return &Service{
		directory: directory,
		issuer:    issuer,
		verifier:  verifier,
		logger:    logger,
	}
}

/*
Login verifies a username/password pair and issues a fresh token pair.

Description: The flow is strictly ordered. An unknown or deactivated
username fails before any hash comparison, a password mismatch fails
before any signing, and a signing failure yields no partial pair.
There are no retries at this layer.

Parameters:
  - context: context.Context
  - username: string
  - password: string (plaintext, never logged)

Returns:
  - *sec.TokenPair: Freshly issued access and refresh tokens
  - error: One code from the closed failure taxonomy
*/
func (service *Service) Login(context context.Context, username, password string) (*sec.TokenPair, error) {

	// ── 1. Account Lookup ─────────────────────────────────────────────────
	user, err := service.directory.FindByUsername(context, username)
	if err != nil {
		if apperr.HasCode(err, "NOT_FOUND") {
			return nil, apperr.UserNotFound()
		}
		return nil, err
	}

	// ── 2. Credential Verification ────────────────────────────────────────
	match, err := service.verifier(password, user.PasswordHash)
	if err != nil || !match {
		service.logger.Warn("login_credential_mismatch", slog.String("user_id", user.ID.String()))
		return nil, apperr.CredentialsInvalid()
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────
	pair, err := service.issuer.IssuePair(user.ID.String())
	if err != nil {
		return nil, apperr.TokenIssuanceFailed(err)
	}

	service.logger.Info("login_succeeded", slog.String("user_id", user.ID.String()))

	return pair, nil
}

/*
Refresh issues a new token pair for an already-authenticated user.

Description: Confirms the account still exists and is not deactivated,
then mints a fresh pair. The password is never re-validated and the
pair presented by the caller is not revoked; it simply ages out.

Parameters:
  - context: context.Context
  - userID: uuid.UUID (resolved from the Authorization header)

Returns:
  - *sec.TokenPair: Freshly issued access and refresh tokens
  - error: USER_NOT_FOUND or TOKEN_ISSUANCE_FAILED
*/
func (service *Service) Refresh(context context.Context, userID uuid.UUID) (*sec.TokenPair, error) {

	// The account may have been deactivated since the token was issued
	user, err := service.directory.FindByID(context, userID)
	if err != nil {
		if apperr.HasCode(err, "NOT_FOUND") {
			return nil, apperr.UserNotFound()
		}
		return nil, err
	}

	pair, err := service.issuer.IssuePair(user.ID.String())
	if err != nil {
		return nil, apperr.TokenIssuanceFailed(err)
	}

	service.logger.Info("token_refreshed", slog.String("user_id", user.ID.String()))

	return pair, nil
}
