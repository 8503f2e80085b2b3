// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-app/inkwell/internal/platform/sec"
)

/*
TestPassword_HashAndVerify covers the normal credential verification flow.
*/
func TestPassword_HashAndVerify(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// Correct password verifies.
	ok, err := sec.VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	// A mismatch is a normal false result, not an error.
	ok, err = sec.VerifyPassword("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

/*
TestPassword_MalformedHash verifies that an unusable stored hash is an error,
distinct from a mismatch.
*/
func TestPassword_MalformedHash(t *testing.T) {
	ok, err := sec.VerifyPassword("anything", "not-a-bcrypt-hash")

	assert.False(t, ok)
	assert.Error(t, err)
}
