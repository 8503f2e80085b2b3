// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell-app/inkwell/internal/platform/constants"
	requestutil "github.com/inkwell-app/inkwell/internal/platform/request"
	"github.com/inkwell-app/inkwell/internal/platform/respond"
	"github.com/inkwell-app/inkwell/internal/platform/validate"
)

// Handler implements the HTTP layer for authentication.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new auth [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] with the authentication endpoints.
//
// Login and health stay public; token refresh sits behind the strict
// authentication middleware so the extractor resolves the caller.
func (handler *Handler) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Get("/health", handler.health)

	router.Group(func(protected chi.Router) {
		protected.Use(authenticate)

		protected.Post("/refresh-token", handler.refreshToken)
	})

	return router
}

// # Login

// loginRequest defines the expected JSON payload for login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
POST /api/v1/auth/login.

Description: Verifies credentials and returns a fresh token pair.

Request:
  - body: loginRequest

Response:
  - 200: TokenPair: access_token and refresh_token
  - 400: USER_NOT_FOUND / CREDENTIALS_INVALID / Validation
  - 500: TOKEN_ISSUANCE_FAILED
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required("username", input.Username)
	v.Required("password", input.Password)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, err := handler.authService.Login(request.Context(), input.Username, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, pair)
}

// # Refresh

/*
POST /api/v1/auth/refresh-token.

Description: Issues a new token pair for the caller identified by the
Authorization header. Works with either token of a pair; the password
is never re-validated.

Response:
  - 200: TokenPair: A brand-new pair
  - 400: USER_NOT_FOUND: Account deactivated since issuance
  - 401: Authorization errors from the middleware
  - 500: TOKEN_ISSUANCE_FAILED
*/
func (handler *Handler) refreshToken(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, err := handler.authService.Refresh(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, pair)
}

// # Health

/*
GET /api/v1/auth/health.

Description: Lightweight liveness signal for the authentication surface.

Response:
  - 200: Static status payload
*/
func (handler *Handler) health(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{
		constants.FieldStatus: "ok",
		constants.FieldApp:    constants.AppName,
	})
}
