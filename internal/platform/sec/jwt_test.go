// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-app/inkwell/internal/platform/sec"
)

const testSubject = "11111111-1111-1111-1111-111111111111"

func newTestCodec(t *testing.T) *sec.TokenCodec {
	t.Helper()

	codec, err := sec.NewTokenCodec("s3cr3t", 2*time.Hour)
	require.NoError(t, err)
	return codec
}

/*
TestNewTokenCodec_EmptyKey verifies that construction refuses an empty secret.
*/
func TestNewTokenCodec_EmptyKey(t *testing.T) {
	codec, err := sec.NewTokenCodec("", time.Hour)

	assert.Nil(t, codec)
	assert.ErrorIs(t, err, sec.ErrEmptySigningKey)
}

/*
TestTokenCodec_RoundTrip verifies that a freshly issued token parses back to
the same subject.
*/
func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Issue(testSubject, time.Now().Add(2*time.Hour))
	require.NoError(t, err)

	claims, err := codec.ParseAndVerify(token)
	require.NoError(t, err)
	assert.Equal(t, testSubject, claims.Subject)
}

/*
TestTokenCodec_Expired verifies that a token with a past expiry fails with
ErrTokenExpired — never as malformed, never as a success.
*/
func TestTokenCodec_Expired(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Issue(testSubject, time.Now().Add(-1*time.Minute))
	require.NoError(t, err)

	claims, err := codec.ParseAndVerify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
	assert.NotErrorIs(t, err, sec.ErrTokenMalformed)
}

/*
TestTokenCodec_WrongKey verifies that a token signed under a different key
fails with ErrInvalidSignature.
*/
func TestTokenCodec_WrongKey(t *testing.T) {
	issuer, err := sec.NewTokenCodec("another-secret", 2*time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue(testSubject, time.Now().Add(2*time.Hour))
	require.NoError(t, err)

	verifier := newTestCodec(t)
	claims, err := verifier.ParseAndVerify(token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, sec.ErrInvalidSignature)
}

/*
TestTokenCodec_Malformed verifies garbage input is classified as malformed.
*/
func TestTokenCodec_Malformed(t *testing.T) {
	codec := newTestCodec(t)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not_a_jwt", "definitely-not-a-token"},
		{"two_segments", "abc.def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := codec.ParseAndVerify(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, sec.ErrTokenMalformed)
		})
	}
}

/*
TestTokenCodec_IssuePair verifies that the access and refresh tokens are two
distinct strings with different expiries but the same subject.
*/
func TestTokenCodec_IssuePair(t *testing.T) {
	codec := newTestCodec(t)

	pair, err := codec.IssuePair(testSubject)
	require.NoError(t, err)
	require.NotNil(t, pair)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	accessClaims, err := codec.ParseAndVerify(pair.AccessToken)
	require.NoError(t, err)
	refreshClaims, err := codec.ParseAndVerify(pair.RefreshToken)
	require.NoError(t, err)

	assert.Equal(t, testSubject, accessClaims.Subject)
	assert.Equal(t, testSubject, refreshClaims.Subject)

	// Refresh expiry is fixed at 52 weeks; with a 2h access TTL the refresh
	// token must outlive the access token.
	assert.True(t, refreshClaims.ExpiresAt.After(accessClaims.ExpiresAt))
}
