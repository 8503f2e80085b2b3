// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

// Package schema centralizes table and column names used by the Postgres
// repositories. Queries are assembled from these definitions so a rename
// happens in exactly one place.
package schema

// UsersTable represents the 'users' table
type UsersTable struct {
	Table       string
	ID          string
	Username    string
	Password    string
	Fullname    string
	Email       string
	PhoneNumber string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// Users is the schema definition for users
var Users = UsersTable{
	Table:       "users",
	ID:          "id",
	Username:    "username",
	Password:    "password_hash",
	Fullname:    "fullname",
	Email:       "email",
	PhoneNumber: "phone_number",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
	DeletedAt:   "deleted_at",
}

// Columns returns all standard column names
func (t UsersTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Password, t.Fullname, t.Email,
		t.PhoneNumber, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
