// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package users

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/inkwell-app/inkwell/internal/platform/sec"
	uuidgen "github.com/inkwell-app/inkwell/pkg/uuid"
)

// # Service Layer

// Service orchestrates business logic for user accounts.
//
// It enforces registration constraints, keeps password hashing behind
// the storage boundary, and applies partial profile updates.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// RegisterInput carries the validated payload for account creation.
type RegisterInput struct {
	Username    string
	Password    string
	Fullname    *string
	Email       *string
	PhoneNumber *string
}

/*
Register creates a new user account.

Description: Hashes the plaintext password with bcrypt, assigns a
time-ordered ID, and inserts the row. Username uniqueness is enforced
by the database constraint and surfaces as a conflict error.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: The created account (hash never serialized)
  - error: apperr.Conflict on duplicate username, or storage failures
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Hash the credential before it ever reaches storage
	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("users_service_hash_failed: %w", err)
	}

	user := &User{
		ID:           uuidgen.NewID(),
		Username:     input.Username,
		PasswordHash: hash,
		Fullname:     input.Fullname,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
	}

	// Persist changes
	if err := service.repository.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_registered", slog.String("user_id", user.ID.String()))

	return user, nil
}

/*
GetDetail retrieves the caller's own profile.

Parameters:
  - context: context.Context
  - userID: uuid.UUID

Returns:
  - *User: The hydrated user profile
  - error: Not found or execution failures
*/
func (service *Service) GetDetail(context context.Context, userID uuid.UUID) (*User, error) {
	user, err := service.repository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateInput defines the mutable subset of user fields.
//
// Nil pointers mean "leave unchanged".
type UpdateInput struct {
	Username    *string
	Password    *string
	Fullname    *string
	Email       *string
	PhoneNumber *string
}

/*
Update applies a partial set of changes to the caller's account.

Description: Fetches the existing user state, overrides provided fields,
re-hashes the password when a new one is supplied, and synchronizes the
change to persistent storage.

Parameters:
  - context: context.Context
  - userID: uuid.UUID
  - input: UpdateInput

Returns:
  - *User: The updated account
  - error: Conflict, not found, or storage failures
*/
func (service *Service) Update(context context.Context, userID uuid.UUID, input UpdateInput) (*User, error) {

	user, err := service.repository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	// Apply delta updates
	if input.Username != nil {
		user.Username = *input.Username
	}

	if input.Password != nil {
		hash, hashErr := sec.HashPassword(*input.Password)
		if hashErr != nil {
			return nil, fmt.Errorf("users_service_rehash_failed: %w", hashErr)
		}
		user.PasswordHash = hash
	}

	if input.Fullname != nil {
		user.Fullname = input.Fullname
	}

	if input.Email != nil {
		user.Email = input.Email
	}

	if input.PhoneNumber != nil {
		user.PhoneNumber = input.PhoneNumber
	}

	// Persist changes
	if err := service.repository.Update(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_profile_updated", slog.String("user_id", userID.String()))

	return user, nil
}

/*
Deactivate performs a soft-deletion of the caller's account.

Description: The row stays in storage but becomes invisible to every
lookup, so the username can no longer authenticate.

Parameters:
  - context: context.Context
  - userID: uuid.UUID

Returns:
  - error: Not found or execution failures
*/
func (service *Service) Deactivate(context context.Context, userID uuid.UUID) error {
	if err := service.repository.SoftDelete(context, userID); err != nil {
		return err
	}

	service.logger.Warn("user_account_deactivated", slog.String("user_id", userID.String()))

	return nil
}
