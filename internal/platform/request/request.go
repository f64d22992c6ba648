// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the router's parameter extraction and body decoding, so
handlers report malformed input the same way.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/webtoon/internal/platform/apperr"
	"github.com/taibuivan/webtoon/internal/platform/constants"
	"github.com/taibuivan/webtoon/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Unknown fields are rejected so typos in optional fields do not pass silently.

Returns:
  - error: validate.ErrInvalidJSON if the body is empty, oversized or malformed
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	body := http.MaxBytesReader(writer, request.Body, constants.MaxRequestBodyBytes)

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperr.ValidationError("Invalid JSON payload", apperr.FieldError{
				Field:   typeErr.Field,
				Message: "Must be of type " + typeErr.Type.String(),
			})
		}
		return validate.ErrInvalidJSON
	}

	// Trailing data after the first JSON value is malformed input
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return validate.ErrInvalidJSON
	}

	return nil
}

// Param retrieves a named URL parameter from the request.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// Query retrieves a single query-string value.
func Query(request *http.Request, name string) string {
	return request.URL.Query().Get(name)
}
