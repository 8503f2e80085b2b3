// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-app/inkwell/internal/platform/apperr"
	"github.com/inkwell-app/inkwell/internal/platform/constants"
	"github.com/inkwell-app/inkwell/internal/platform/ctxutil"
	"github.com/inkwell-app/inkwell/internal/platform/sec"
)

const testSubject = "11111111-1111-1111-1111-111111111111"

func newTestCodec(t *testing.T) *sec.TokenCodec {
	t.Helper()

	codec, err := sec.NewTokenCodec("s3cr3t", 2*time.Hour)
	require.NoError(t, err)

	return codec
}

func newRequest(authHeader string) *http.Request {
	request := httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil)
	if authHeader != "" {
		request.Header.Set(constants.HeaderAuthorization, authHeader)
	}
	return request
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, code), "expected code %s, got %v", code, err)
}

func TestResolveIdentity_MissingHeader(t *testing.T) {
	codec := newTestCodec(t)

	_, err := ResolveIdentity(newRequest(""), codec)

	requireCode(t, err, apperr.CodeAuthorizationMissing)
}

func TestResolveIdentity_MalformedHeader(t *testing.T) {
	codec := newTestCodec(t)

	testCases := []struct {
		name   string
		header string
	}{
		{name: "scheme only", header: "Bearer"},
		{name: "empty token", header: "Bearer "},
		{name: "three parts", header: "Bearer abc def"},
		{name: "no scheme separator", header: "token-without-scheme"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := ResolveIdentity(newRequest(testCase.header), codec)
			requireCode(t, err, apperr.CodeAuthorizationMalformed)
		})
	}
}

func TestResolveIdentity_ExpiredToken(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Issue(testSubject, time.Now().Add(-1*time.Minute))
	require.NoError(t, err)

	_, resolveErr := ResolveIdentity(newRequest("Bearer "+token), codec)

	// Expiry must be distinguishable from every other verification failure.
	requireCode(t, resolveErr, apperr.CodeTokenExpired)
}

func TestResolveIdentity_WrongKey(t *testing.T) {
	codec := newTestCodec(t)

	otherCodec, err := sec.NewTokenCodec("a-completely-different-key", 2*time.Hour)
	require.NoError(t, err)

	token, err := otherCodec.Issue(testSubject, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, resolveErr := ResolveIdentity(newRequest("Bearer "+token), codec)

	requireCode(t, resolveErr, apperr.CodeAuthorizationInvalid)
}

func TestResolveIdentity_GarbageToken(t *testing.T) {
	codec := newTestCodec(t)

	_, err := ResolveIdentity(newRequest("Bearer not.a.jwt"), codec)

	requireCode(t, err, apperr.CodeAuthorizationInvalid)
}

func TestResolveIdentity_NonUUIDSubject(t *testing.T) {
	codec := newTestCodec(t)

	// A validly signed token whose subject is not a UUID must be rejected,
	// never silently replaced with a placeholder identity.
	token, err := codec.Issue("definitely-not-a-uuid", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, resolveErr := ResolveIdentity(newRequest("Bearer "+token), codec)

	requireCode(t, resolveErr, apperr.CodeAuthorizationInvalid)
}

func TestResolveIdentity_Success(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Issue(testSubject, time.Now().Add(time.Hour))
	require.NoError(t, err)

	userID, resolveErr := ResolveIdentity(newRequest("Bearer "+token), codec)

	require.NoError(t, resolveErr)
	assert.Equal(t, testSubject, userID.String())
}

func TestAuthenticate_BlocksAnonymous(t *testing.T) {
	codec := newTestCodec(t)

	nextCalled := false
	handler := Authenticate(codec)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		nextCalled = true
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, newRequest(""))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, nextCalled, "anonymous request must never reach the handler")
}

func TestAuthenticate_InjectsUserID(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Issue(testSubject, time.Now().Add(time.Hour))
	require.NoError(t, err)

	var seenID string
	handler := Authenticate(codec)(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		userID, ok := ctxutil.GetUserID(request.Context())
		require.True(t, ok)
		seenID = userID.String()
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, newRequest("Bearer "+token))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, testSubject, seenID)
}
