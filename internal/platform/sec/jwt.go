// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, JWT signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via constructors — the signing configuration is never
// ambient global state.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Token Lifetimes

// RefreshTokenTTL is the fixed lifetime of a refresh token.
//
// It is deliberately independent of the configured access-token lifetime:
// 52 weeks, regardless of configuration.
const RefreshTokenTTL = 52 * 7 * 24 * time.Hour

// # Verification Failures

// The closed set of token verification failures. Callers branch on these
// with [errors.Is]; the distinction drives the HTTP error taxonomy
// (expired vs. invalid authorization).
var (
	// ErrEmptySigningKey is returned at construction time when the signing
	// secret is empty. The process must refuse to start in that case.
	ErrEmptySigningKey = errors.New("sec: signing key must not be empty")

	// ErrTokenExpired is returned when the embedded expiry is not strictly
	// in the future at verification time.
	ErrTokenExpired = errors.New("sec: token has expired")

	// ErrTokenMalformed is returned when the token cannot be decoded or
	// structured as a compact JWT.
	ErrTokenMalformed = errors.New("sec: token is malformed")

	// ErrInvalidSignature is returned when the signature does not verify
	// under the current signing key.
	ErrInvalidSignature = errors.New("sec: token signature is invalid")
)

// IdentityClaims is the payload embedded inside a signed identity token.
//
// # Why so small?
//
// Only the subject (the user's stable ID) and the expiry travel inside the
// token. Handlers that need more than the caller's identity load it from
// storage; keeping the claim shape minimal means access and refresh tokens
// are structurally identical and differ only in lifetime.
type IdentityClaims struct {
	// Subject is the opaque identity string (a user UUID).
	Subject string

	// ExpiresAt is the absolute expiry instant encoded in the token.
	ExpiresAt time.Time
}

// TokenPair is the credential set handed to a freshly authenticated caller.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenCodec creates and parses signed, time-limited identity tokens.
//
// Both access and refresh tokens are signed with the same symmetric key and
// algorithm (HS256). Symmetric signing is sufficient because issuer and
// verifier are the same process.
type TokenCodec struct {
	signingKey []byte
	accessTTL  time.Duration
}

// NewTokenCodec creates a new TokenCodec.
//
// # Parameters
//   - secret: The shared signing secret. Must be non-empty.
//   - accessTTL: The configured access-token lifetime.
//
// # Returns
//   - [ErrEmptySigningKey] when the secret is empty.
func NewTokenCodec(secret string, accessTTL time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, ErrEmptySigningKey
	}

	return &TokenCodec{
		signingKey: []byte(secret),
		accessTTL:  accessTTL,
	}, nil
}

// Issue encodes {sub, exp} into a signed compact HS256 token.
//
// The output is deterministic for identical (subject, expiry) inputs.
func (codec *TokenCodec) Issue(subject string, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(codec.signingKey)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// IssuePair issues an access token (configured lifetime) and a refresh token
// (fixed [RefreshTokenTTL]) for the same subject at the same instant.
//
// Either both tokens are issued or neither is — a partial pair is never
// returned.
func (codec *TokenCodec) IssuePair(subject string) (*TokenPair, error) {
	now := time.Now()

	accessToken, err := codec.Issue(subject, now.Add(codec.accessTTL))
	if err != nil {
		return nil, err
	}

	refreshToken, err := codec.Issue(subject, now.Add(RefreshTokenTTL))
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ParseAndVerify checks the signature and validity of a token string.
//
// # Failure Modes
//   - [ErrTokenExpired]: the embedded expiry is not strictly in the future.
//   - [ErrInvalidSignature]: the signature does not verify under this codec's key.
//   - [ErrTokenMalformed]: the token cannot be decoded or lacks an expiry.
//
// Success requires all three: valid signature, parsable structure, and an
// expiry in the future.
func (codec *TokenCodec) ParseAndVerify(tokenString string) (*IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return codec.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.ExpiresAt == nil {
		return nil, ErrTokenMalformed
	}

	return &IdentityClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
