package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/market-api/internal/api/shared"
	"github.com/phrazzld/market-api/internal/domain"
)

// getPathUUID parses a UUID path parameter. A missing or malformed value is
// reported as a validation error on that parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "required", "is required")
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "uuid", "must be a valid UUID")
	}

	return id, nil
}

// decodeAndValidate reads the JSON body into req and checks its validate
// tags. On failure it writes a 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}

	if err := shared.Validate(req); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}

	return true
}
