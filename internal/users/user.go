// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

/*
Package users handles registration and self-service profile management.

It provides functionalities for visitors to create an account and for
authenticated users to view, update, and deactivate their own profile.

# Architecture

  - Entities: User.
  - Storage: PostgreSQL with soft deletes. A deactivated row is invisible
    to every lookup in this package.
  - Security: Passwords are stored as bcrypt hashes and never serialized.
*/
package users

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// # Domain Entities

// User represents a registered account.
//
// PasswordHash is excluded from JSON so the credential never leaks
// through an API response.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Fullname     *string    `json:"fullname,omitempty"`
	Email        *string    `json:"email,omitempty"`
	PhoneNumber  *string    `json:"phone_number,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-"`
}

// # Repository Contracts

// Repository defines the persistence contract for user accounts.
type Repository interface {
	/*
		Create inserts a new user row.

		Parameters:
		  - context: context.Context
		  - user: *User (ID and timestamps are filled by the store)

		Returns:
		  - error: apperr.Conflict on duplicate username, or storage failures
	*/
	Create(context context.Context, user *User) error

	/*
		FindByID retrieves a live user record by its unique ID.

		Parameters:
		  - context: context.Context
		  - id: uuid.UUID

		Returns:
		  - *User: Loaded account entity
		  - error: dberr.ErrNotFound or storage failures
	*/
	FindByID(context context.Context, id uuid.UUID) (*User, error)

	/*
		FindByUsername retrieves a live user record by its username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Loaded account entity
		  - error: dberr.ErrNotFound or storage failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		Update persists the mutable fields of an existing user.

		Parameters:
		  - context: context.Context
		  - user: *User (Hydrated entity with changes)

		Returns:
		  - error: apperr.Conflict on duplicate username, or storage failures
	*/
	Update(context context.Context, user *User) error

	/*
		SoftDelete flags an account as logically deleted.

		Parameters:
		  - context: context.Context
		  - id: uuid.UUID

		Returns:
		  - error: dberr.ErrNotFound if already gone, or execution failures
	*/
	SoftDelete(context context.Context, id uuid.UUID) error
}
