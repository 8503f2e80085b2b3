// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package users

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-app/inkwell/internal/platform/apperr"
	"github.com/inkwell-app/inkwell/internal/platform/dberr"
	"github.com/inkwell-app/inkwell/pkg/pointer"
)

// fakeRepository is an in-memory stand-in for the Postgres store.
type fakeRepository struct {
	byID       map[uuid.UUID]*User
	byUsername map[string]*User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:       make(map[uuid.UUID]*User),
		byUsername: make(map[string]*User),
	}
}

func (f *fakeRepository) Create(_ context.Context, user *User) error {
	if _, exists := f.byUsername[user.Username]; exists {
		return apperr.Conflict("Username already exists")
	}
	clone := *user
	f.byID[user.ID] = &clone
	f.byUsername[user.Username] = &clone
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id uuid.UUID) (*User, error) {
	user, ok := f.byID[id]
	if !ok || user.DeletedAt != nil {
		return nil, dberr.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	user, ok := f.byUsername[username]
	if !ok || user.DeletedAt != nil {
		return nil, dberr.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeRepository) Update(_ context.Context, user *User) error {
	stored, ok := f.byID[user.ID]
	if !ok || stored.DeletedAt != nil {
		return dberr.ErrNotFound
	}
	if other, exists := f.byUsername[user.Username]; exists && other.ID != user.ID {
		return apperr.Conflict("Username already exists")
	}
	delete(f.byUsername, stored.Username)
	clone := *user
	f.byID[user.ID] = &clone
	f.byUsername[user.Username] = &clone
	return nil
}

func (f *fakeRepository) SoftDelete(_ context.Context, id uuid.UUID) error {
	user, ok := f.byID[id]
	if !ok || user.DeletedAt != nil {
		return dberr.ErrNotFound
	}
	now := time.Now()
	user.DeletedAt = &now
	return nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.Default())
}

func TestService_Register_HashesPassword(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	user, err := service.Register(context.Background(), RegisterInput{
		Username: "margaret",
		Password: "opensesame",
	})
	require.NoError(t, err)

	// The stored credential must be a bcrypt hash, never the plaintext.
	assert.NotEqual(t, "opensesame", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("opensesame")))
	assert.NotEqual(t, uuid.UUID{}, user.ID)
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	_, err := service.Register(context.Background(), RegisterInput{Username: "margaret", Password: "opensesame"})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), RegisterInput{Username: "margaret", Password: "different"})
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "CONFLICT"))
}

func TestService_Update_RehashesPassword(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	user, err := service.Register(context.Background(), RegisterInput{Username: "margaret", Password: "original"})
	require.NoError(t, err)
	originalHash := user.PasswordHash

	updated, err := service.Update(context.Background(), user.ID, UpdateInput{
		Password: pointer.To("replacement"),
		Fullname: pointer.To("Margaret Blake"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, originalHash, updated.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("replacement")))
	require.NotNil(t, updated.Fullname)
	assert.Equal(t, "Margaret Blake", *updated.Fullname)

	// Untouched fields survive the partial update.
	assert.Equal(t, "margaret", updated.Username)
}

func TestService_Deactivate_HidesUser(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	user, err := service.Register(context.Background(), RegisterInput{Username: "margaret", Password: "opensesame"})
	require.NoError(t, err)

	require.NoError(t, service.Deactivate(context.Background(), user.ID))

	// A deactivated account is indistinguishable from one that never existed.
	_, err = service.GetDetail(context.Background(), user.ID)
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))

	// Repeating the deactivation reports not found as well.
	err = service.Deactivate(context.Background(), user.ID)
	require.Error(t, err)
}
