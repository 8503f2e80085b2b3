// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/inkwell-app/inkwell/internal/platform/apperr"
	"github.com/inkwell-app/inkwell/internal/platform/ctxutil"
	"github.com/inkwell-app/inkwell/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
UUIDParam retrieves a named URL parameter and parses it as a UUID.

Returns:
  - uuid.UUID: The parsed identifier
  - error: apperr.ValidationError if the parameter is not a valid UUID
*/
func UUIDParam(request *http.Request, name string) (uuid.UUID, error) {
	value, err := uuid.Parse(chi.URLParam(request, name))
	if err != nil {
		return uuid.UUID{}, apperr.ValidationError("Invalid identifier in URL path")
	}
	return value, nil
}

/*
RequiredUserID returns the User ID of the currently logged-in user.

Handlers mounted behind the authentication middleware can rely on the ID
being present. The error branch exists for handlers reachable without it.

Returns:
  - uuid.UUID: Authenticated user ID
  - error: apperr.AuthorizationMissing if not authenticated
*/
func RequiredUserID(request *http.Request) (uuid.UUID, error) {

	// Get the identity injected by the authentication middleware
	userID, ok := ctxutil.GetUserID(request.Context())

	// If the user is not authenticated, return an error
	if !ok {
		return uuid.UUID{}, apperr.AuthorizationMissing()
	}

	return userID, nil
}
