// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package notes

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	uuidgen "github.com/inkwell-app/inkwell/pkg/uuid"
)

// # Service Layer

// Service orchestrates business logic for notes.
//
// Single-note reads go through the cache; every mutation writes to
// storage first and then drops the cached entry. Cache failures are
// logged and degraded, never surfaced to the client.
type Service struct {
	repository Repository
	cache      Cache
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		cache:      cache,
		logger:     logger,
	}
}

/*
List retrieves a page of notes matching the filter.

Parameters:
  - context: context.Context
  - filter: Filter (sort fields are clamped to the whitelist here)
  - limit, offset: int

Returns:
  - []*Note: The requested page
  - int: Total matching rows
  - error: Retrieval failures
*/
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Note, int, error) {
	return service.repository.List(context, filter.Normalize(), limit, offset)
}

// CreateInput carries the validated payload for note creation.
type CreateInput struct {
	Title     string
	Content   string
	Category  *string
	Published bool
}

/*
Create inserts a new note authored by the given user.

Description: Title uniqueness among live notes is enforced by a partial
unique index and surfaces as a conflict error.

Parameters:
  - context: context.Context
  - authorID: uuid.UUID (the authenticated caller)
  - input: CreateInput

Returns:
  - *Note: The created note
  - error: apperr.Conflict on duplicate title, or storage failures
*/
func (service *Service) Create(context context.Context, authorID uuid.UUID, input CreateInput) (*Note, error) {
	note := &Note{
		ID:        uuidgen.NewID(),
		Title:     input.Title,
		Content:   input.Content,
		Category:  input.Category,
		Published: input.Published,
		CreatedBy: authorID,
	}

	if err := service.repository.Create(context, note); err != nil {
		return nil, err
	}

	service.logger.Info("note_created",
		slog.String("note_id", note.ID.String()),
		slog.String("user_id", authorID.String()),
	)

	return note, nil
}

/*
Get retrieves a single note, preferring the cache.

Description: On a cache miss the note is loaded from storage and then
stored for subsequent reads. A failing cache degrades to storage.

Parameters:
  - context: context.Context
  - id: uuid.UUID

Returns:
  - *Note: Hydrated entity
  - error: dberr.ErrNotFound or storage failures
*/
func (service *Service) Get(context context.Context, id uuid.UUID) (*Note, error) {

	// 1. Try the cache first
	cached, err := service.cache.Get(context, id)
	if err != nil {
		service.logger.Warn("note_cache_read_degraded", slog.String("error", err.Error()))
	}
	if cached != nil {
		return cached, nil
	}

	// 2. Fall through to storage
	note, err := service.repository.Get(context, id)
	if err != nil {
		return nil, err
	}

	// 3. Populate the cache for subsequent reads
	if err := service.cache.Set(context, note); err != nil {
		service.logger.Warn("note_cache_write_degraded", slog.String("error", err.Error()))
	}

	return note, nil
}

// UpdateInput defines the mutable subset of note fields.
//
// Nil pointers mean "leave unchanged".
type UpdateInput struct {
	Title     *string
	Content   *string
	Category  *string
	Published *bool
}

/*
Update applies a partial set of changes to a note.

Description: Fetches the existing note, overrides provided fields,
records the editor, persists, and drops the cached entry.

Parameters:
  - context: context.Context
  - id: uuid.UUID
  - editorID: uuid.UUID (the authenticated caller)
  - input: UpdateInput

Returns:
  - *Note: The updated note
  - error: Conflict, not found, or storage failures
*/
func (service *Service) Update(context context.Context, id, editorID uuid.UUID, input UpdateInput) (*Note, error) {

	note, err := service.repository.Get(context, id)
	if err != nil {
		return nil, err
	}

	// Apply delta updates
	if input.Title != nil {
		note.Title = *input.Title
	}

	if input.Content != nil {
		note.Content = *input.Content
	}

	if input.Category != nil {
		note.Category = input.Category
	}

	if input.Published != nil {
		note.Published = *input.Published
	}

	note.UpdatedBy = &editorID

	// Persist changes
	if err := service.repository.Update(context, note); err != nil {
		return nil, err
	}

	// Drop the stale cache entry
	if err := service.cache.Invalidate(context, id); err != nil {
		service.logger.Warn("note_cache_invalidate_degraded", slog.String("error", err.Error()))
	}

	service.logger.Info("note_updated",
		slog.String("note_id", id.String()),
		slog.String("user_id", editorID.String()),
	)

	return note, nil
}

/*
Delete performs a soft-deletion of a note and drops its cache entry.

Parameters:
  - context: context.Context
  - id: uuid.UUID
  - editorID: uuid.UUID (the authenticated caller, for audit logging)

Returns:
  - error: Not found or execution failures
*/
func (service *Service) Delete(context context.Context, id, editorID uuid.UUID) error {
	if err := service.repository.SoftDelete(context, id); err != nil {
		return err
	}

	if err := service.cache.Invalidate(context, id); err != nil {
		service.logger.Warn("note_cache_invalidate_degraded", slog.String("error", err.Error()))
	}

	service.logger.Info("note_deleted",
		slog.String("note_id", id.String()),
		slog.String("user_id", editorID.String()),
	)

	return nil
}
