// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

/*
Package notes implements the note-taking resource, the primary content
domain of the Inkwell API.

It provides authenticated CRUD over notes with pagination, substring
filtering, whitelisted sorting, and a Redis read-through cache for
single-note lookups.

# Architecture

  - Entities: Note.
  - Storage: PostgreSQL with soft deletes; title uniqueness is enforced
    among live rows only.
  - Cache: Single-note reads go through Redis; every mutation
    invalidates the cached entry.
*/
package notes

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// # Domain Entities

// Note represents a single note owned by the platform's users.
type Note struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Category  *string    `json:"category,omitempty"`
	Published bool       `json:"published"`
	CreatedBy uuid.UUID  `json:"created_by"`
	UpdatedBy *uuid.UUID `json:"updated_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// # Listing

// Sortable columns exposed to clients. Anything else falls back to the
// default so raw query input never reaches the ORDER BY clause.
const (
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
	SortByTitle     = "title"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Filter narrows and orders a note listing.
type Filter struct {
	Title     string // substring match on title
	Content   string // substring match on content
	Published *bool  // nil means both drafts and published notes
	SortBy    string // one of the SortBy constants
	SortOrder string // asc or desc
}

// Normalize clamps the sort fields to the whitelist.
func (f Filter) Normalize() Filter {
	switch f.SortBy {
	case SortByCreatedAt, SortByUpdatedAt, SortByTitle:
	default:
		f.SortBy = SortByCreatedAt
	}

	switch f.SortOrder {
	case SortOrderAsc, SortOrderDesc:
	default:
		f.SortOrder = SortOrderDesc
	}

	return f
}

// # Repository Contracts

// Repository defines the persistence contract for notes.
type Repository interface {
	/*
		List retrieves a page of live notes matching the filter.

		Parameters:
		  - context: context.Context
		  - filter: Filter (normalized by the caller)
		  - limit, offset: int

		Returns:
		  - []*Note: The requested page
		  - int: Total number of matching rows across all pages
		  - error: Retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Note, int, error)

	/*
		Get retrieves a live note by its ID.

		Returns:
		  - *Note: Hydrated entity
		  - error: dberr.ErrNotFound or storage failures
	*/
	Get(context context.Context, id uuid.UUID) (*Note, error)

	/*
		Create inserts a new note row.

		Returns:
		  - error: apperr.Conflict when the title is already taken by a
		    live note, or execution failures
	*/
	Create(context context.Context, note *Note) error

	/*
		Update persists the mutable fields of an existing note.

		Returns:
		  - error: Conflict, not found, or execution failures
	*/
	Update(context context.Context, note *Note) error

	/*
		SoftDelete flags a note as logically deleted.

		Returns:
		  - error: dberr.ErrNotFound if no live row matched
	*/
	SoftDelete(context context.Context, id uuid.UUID) error
}

// Cache defines the read-through contract for single-note lookups.
type Cache interface {
	// Get returns the cached note, or nil when absent. Cache failures are
	// reported so callers can degrade to storage.
	Get(context context.Context, id uuid.UUID) (*Note, error)

	// Set stores the note under its ID with the package TTL.
	Set(context context.Context, note *Note) error

	// Invalidate drops the cached entry for the given ID.
	Invalidate(context context.Context, id uuid.UUID) error
}
