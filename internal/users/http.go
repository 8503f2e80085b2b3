// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/inkwell-app/inkwell/internal/platform/request"
	"github.com/inkwell-app/inkwell/internal/platform/respond"
	"github.com/inkwell-app/inkwell/internal/platform/validate"
)

// Handler implements the HTTP layer for user accounts.
type Handler struct {
	userService *Service
}

// NewHandler constructs a new users [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{userService: service}
}

// Routes returns a [chi.Router] with the user account endpoints.
//
// Registration stays public; the self-service endpoints sit behind the
// strict authentication middleware.
func (handler *Handler) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)

	router.Group(func(protected chi.Router) {
		protected.Use(authenticate)

		protected.Get("/detail", handler.getDetail)
		protected.Patch("/", handler.update)
		protected.Delete("/", handler.deactivate)
	})

	return router
}

// # Registration

// registerRequest defines the expected JSON payload for account creation.
type registerRequest struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	Fullname    *string `json:"fullname"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}

/*
POST /api/v1/users/register.

Description: Creates a new account from a public registration payload.

Request:
  - body: registerRequest

Response:
  - 201: User: The created account
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 409: Conflict: Username already taken
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required("username", input.Username).MinLen("username", input.Username, 4)
	v.Required("password", input.Password).MinLen("password", input.Password, 6)
	if input.Fullname != nil {
		v.MinLen("fullname", *input.Fullname, 3)
	}
	if input.Email != nil && *input.Email != "" {
		v.Email("email", *input.Email)
	}
	if input.PhoneNumber != nil && *input.PhoneNumber != "" {
		v.PhoneNumber("phone_number", *input.PhoneNumber)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.userService.Register(request.Context(), RegisterInput{
		Username:    input.Username,
		Password:    input.Password,
		Fullname:    input.Fullname,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

// # Self-Service Profile Endpoints

/*
GET /api/v1/users/detail.

Description: Retrieves the authenticated user's own profile.

Response:
  - 200: User: Fully hydrated profile, hash omitted
  - 401: Authorization errors from the middleware
*/
func (handler *Handler) getDetail(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.userService.GetDetail(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// updateRequest defines the expected JSON payload for profile updates.
type updateRequest struct {
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	Fullname    *string `json:"fullname"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}

/*
PATCH /api/v1/users.

Description: Applies partial updates to the authenticated user's account.
A supplied password is re-hashed before storage.

Request:
  - body: updateRequest (Partial JSON)

Response:
  - 200: User: The updated account
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 409: Conflict: Username already taken
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	if input.Username != nil {
		v.MinLen("username", *input.Username, 4)
	}
	if input.Password != nil {
		v.MinLen("password", *input.Password, 6)
	}
	if input.Fullname != nil {
		v.MinLen("fullname", *input.Fullname, 3)
	}
	if input.Email != nil && *input.Email != "" {
		v.Email("email", *input.Email)
	}
	if input.PhoneNumber != nil && *input.PhoneNumber != "" {
		v.PhoneNumber("phone_number", *input.PhoneNumber)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.userService.Update(request.Context(), userID, UpdateInput{
		Username:    input.Username,
		Password:    input.Password,
		Fullname:    input.Fullname,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
DELETE /api/v1/users.

Description: Soft-deletes the authenticated user's account. The row is
retained but becomes invisible to every lookup.

Response:
  - 204: No Content: Account deactivated
  - 404: NotFound: Account already gone
*/
func (handler *Handler) deactivate(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.userService.Deactivate(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
