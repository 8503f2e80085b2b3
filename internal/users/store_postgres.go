// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package users

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-app/inkwell/internal/platform/database/schema"
	"github.com/inkwell-app/inkwell/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates the Postgres implementation of the user store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
Create inserts a new user row, generating the server-side timestamps.

Parameters:
  - context: context.Context
  - user: *User (ID must already be assigned by the service)

Returns:
  - error: apperr.Conflict on duplicate username, or execution failure
*/
func (repository *PostgresRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.Users.Table,
		schema.Users.ID, schema.Users.Username, schema.Users.Password, schema.Users.Fullname,
		schema.Users.Email, schema.Users.PhoneNumber, schema.Users.CreatedAt, schema.Users.UpdatedAt,
		schema.Users.CreatedAt, schema.Users.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Fullname,
		user.Email,
		user.PhoneNumber,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	return dberr.Wrap(err, "create_user")
}

/*
FindByID retrieves a live user record by its unique ID.

Soft-deleted rows are filtered out at the query level so they are
indistinguishable from rows that never existed.
*/
func (repository *PostgresRepository) FindByID(context context.Context, id uuid.UUID) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.Users.ID, schema.Users.Username, schema.Users.Password, schema.Users.Fullname,
		schema.Users.Email, schema.Users.PhoneNumber, schema.Users.CreatedAt, schema.Users.UpdatedAt,
		schema.Users.Table, schema.Users.ID, schema.Users.DeletedAt,
	)

	user := &User{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Fullname,
		&user.Email,
		&user.PhoneNumber,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_id")
	}

	return user, nil
}

/*
FindByUsername retrieves a live user record by its username.
*/
func (repository *PostgresRepository) FindByUsername(context context.Context, username string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.Users.ID, schema.Users.Username, schema.Users.Password, schema.Users.Fullname,
		schema.Users.Email, schema.Users.PhoneNumber, schema.Users.CreatedAt, schema.Users.UpdatedAt,
		schema.Users.Table, schema.Users.Username, schema.Users.DeletedAt,
	)

	user := &User{}
	err := repository.db.QueryRow(context, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Fullname,
		&user.Email,
		&user.PhoneNumber,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_username")
	}

	return user, nil
}

/*
Update persists the mutable fields of an existing user.

Description: Syncs username, password hash, and the optional profile
fields, refreshing the updated_at timestamp.
*/
func (repository *PostgresRepository) Update(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.Users.Table,
		schema.Users.Username, schema.Users.Password, schema.Users.Fullname,
		schema.Users.Email, schema.Users.PhoneNumber, schema.Users.UpdatedAt,
		schema.Users.ID, schema.Users.DeletedAt,
		schema.Users.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Fullname,
		user.Email,
		user.PhoneNumber,
		time.Now(),
	).Scan(&user.UpdatedAt)

	return dberr.Wrap(err, "update_user")
}

/*
SoftDelete flags a user account as logically destroyed.
*/
func (repository *PostgresRepository) SoftDelete(context context.Context, id uuid.UUID) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.Users.Table, schema.Users.DeletedAt, schema.Users.ID, schema.Users.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "soft_delete_user")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
