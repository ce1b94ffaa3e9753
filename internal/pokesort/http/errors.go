package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/service"
	"github.com/aussiebroadwan/pokesort/pkg/pokesdk"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// decodeJSON reads a single JSON value from the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(v)
}

func toValidationError(verr *service.ValidationError) *pokesdk.APIError {
	details := make([]pokesdk.FieldError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		details = append(details, pokesdk.FieldError{Field: f.Field, Message: f.Message})
	}
	return pokesdk.NewValidationError(details)
}

// inputError maps the errors every input-taking service method can return.
// It reports false for anything else.
func inputError(err error) (*pokesdk.APIError, bool) {
	var verr *service.ValidationError
	var dup *service.DuplicateError

	switch {
	case errors.As(err, &verr):
		return toValidationError(verr), true
	case errors.As(err, &dup):
		return pokesdk.NewDuplicateError(dup.Field, dup.Message), true
	default:
		return nil, false
	}
}
