// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package notes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/inkwell-app/inkwell/internal/platform/request"
	"github.com/inkwell-app/inkwell/internal/platform/respond"
	"github.com/inkwell-app/inkwell/internal/platform/validate"
	"github.com/inkwell-app/inkwell/pkg/convert"
	"github.com/inkwell-app/inkwell/pkg/pagination"
	"github.com/inkwell-app/inkwell/pkg/pointer"
)

// Handler implements the HTTP layer for notes. Every endpoint requires
// an authenticated caller.
type Handler struct {
	noteService *Service
}

// NewHandler constructs a new notes [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{noteService: service}
}

// Routes returns a [chi.Router] configured with the notes endpoints.
// The whole group sits behind the strict authentication middleware.
func (handler *Handler) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Use(authenticate)

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{id}", handler.get)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)

	return router
}

// # Listing

/*
GET /api/v1/notes.

Description: Retrieves a paginated listing of live notes.

Query:
  - page, limit: Pagination envelope
  - title, content: Optional substring filters
  - published: Optional boolean filter
  - sort_by: created_at | updated_at | title
  - sort_order: asc | desc

Response:
  - 200: []Note with pagination metadata
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	query := request.URL.Query()

	filter := Filter{
		Title:     query.Get("title"),
		Content:   query.Get("content"),
		SortBy:    query.Get("sort_by"),
		SortOrder: query.Get("sort_order"),
	}

	if raw := query.Get("published"); raw != "" {
		filter.Published = pointer.To(convert.ToBool(raw))
	}

	collection, total, err := handler.noteService.List(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Serialize an empty page as [] rather than null
	if collection == nil {
		collection = []*Note{}
	}

	respond.Paginated(writer, collection, pagination.NewMeta(params.Page, params.Limit, total))
}

// # Mutations

// createRequest defines the expected JSON payload for note creation.
type createRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Category  *string `json:"category"`
	Published bool    `json:"published"`
}

/*
POST /api/v1/notes.

Description: Creates a new note authored by the caller.

Request:
  - body: createRequest

Response:
  - 201: Note: The created note
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 409: Conflict: Title already taken by a live note
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required("title", input.Title).MaxLen("title", input.Title, 255)
	v.Required("content", input.Content)
	if input.Category != nil {
		v.MaxLen("category", *input.Category, 100)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	note, err := handler.noteService.Create(request.Context(), userID, CreateInput{
		Title:     input.Title,
		Content:   input.Content,
		Category:  input.Category,
		Published: input.Published,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, note)
}

/*
GET /api/v1/notes/{id}.

Description: Retrieves a single note through the read-through cache.

Response:
  - 200: Note
  - 400: Validation: Malformed identifier
  - 404: NotFound: Missing or soft-deleted
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	noteID, err := requestutil.UUIDParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	note, err := handler.noteService.Get(request.Context(), noteID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, note)
}

// updateNoteRequest defines the expected JSON payload for note updates.
type updateNoteRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Category  *string `json:"category"`
	Published *bool   `json:"published"`
}

/*
PUT /api/v1/notes/{id}.

Description: Applies a partial merge update. The caller is recorded as
the note's last editor and the cache entry is dropped.

Request:
  - body: updateNoteRequest (Partial JSON)

Response:
  - 200: Note: The updated note
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 404: NotFound: Missing or soft-deleted
  - 409: Conflict: Title already taken by a live note
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	noteID, err := requestutil.UUIDParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateNoteRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	if input.Title != nil {
		v.Required("title", *input.Title).MaxLen("title", *input.Title, 255)
	}
	if input.Content != nil {
		v.Required("content", *input.Content)
	}
	if input.Category != nil {
		v.MaxLen("category", *input.Category, 100)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	note, err := handler.noteService.Update(request.Context(), noteID, userID, UpdateInput{
		Title:     input.Title,
		Content:   input.Content,
		Category:  input.Category,
		Published: input.Published,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, note)
}

/*
DELETE /api/v1/notes/{id}.

Description: Soft-deletes a note and drops its cache entry.

Response:
  - 204: No Content
  - 404: NotFound: Missing or already deleted
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	noteID, err := requestutil.UUIDParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.noteService.Delete(request.Context(), noteID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
