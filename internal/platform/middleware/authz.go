// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/inkwell-app/inkwell/internal/platform/apperr"
	"github.com/inkwell-app/inkwell/internal/platform/constants"
	"github.com/inkwell-app/inkwell/internal/platform/ctxutil"
	"github.com/inkwell-app/inkwell/internal/platform/respond"
	"github.com/inkwell-app/inkwell/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the concrete
// [sec.TokenCodec], allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	ParseAndVerify(tokenStr string) (*sec.IdentityClaims, error)
}

// ResolveIdentity extracts and verifies the caller identity from the
// Authorization header of a request.
//
// # Flow
//  1. Read the 'Authorization' header. Absent means no credentials at all.
//  2. The header must consist of exactly two space-separated parts, a scheme
//     and a non-empty token. Any other shape is malformed.
//  3. Parse and verify the token via the [TokenVerifier]. Expiry is reported
//     distinctly from every other verification failure.
//  4. The token subject must parse as a UUID. A valid token carrying a
//     non-UUID subject is rejected, never mapped to a placeholder identity.
//
// # Returns
//   - The authenticated user ID on success.
//   - An [*apperr.AppError] carrying one of the authorization codes otherwise.
func ResolveIdentity(request *http.Request, verifier TokenVerifier) (uuid.UUID, error) {
	authHeader := request.Header.Get(constants.HeaderAuthorization)

	// ── 1. Presence Check ─────────────────────────────────────────────────
	if authHeader == "" {
		return uuid.UUID{}, apperr.AuthorizationMissing()
	}

	// ── 2. Shape Check ────────────────────────────────────────────────────
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[1] == "" {
		return uuid.UUID{}, apperr.AuthorizationMalformed()
	}

	// ── 3. Token Verification ─────────────────────────────────────────────
	claims, err := verifier.ParseAndVerify(parts[1])
	if err != nil {
		if errors.Is(err, sec.ErrTokenExpired) {
			return uuid.UUID{}, apperr.TokenExpired()
		}
		return uuid.UUID{}, apperr.AuthorizationInvalid()
	}

	// ── 4. Subject Decoding ───────────────────────────────────────────────
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.UUID{}, apperr.AuthorizationInvalid()
	}

	return userID, nil
}

// Authenticate blocks requests that do not carry a valid access token.
//
// # Usage
//
// Mounted on protected route groups only. Public routes (registration,
// login) are never wrapped by it.
//
// # Flow
//  1. Resolve the caller identity via [ResolveIdentity].
//  2. On failure, abort with the resolver's error (HTTP 401).
//  3. On success, inject the user ID into the request context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			userID, err := ResolveIdentity(request, verifier)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			ctx := ctxutil.WithUserID(request.Context(), userID)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
