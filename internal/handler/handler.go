package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"shop-catalog/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code. The status
// line is already on the wire when encoding runs, so a failure here cannot be
// reported to the client.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeMessage writes a success envelope with the given message and data.
func writeMessage(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, model.APIResponse{Message: message, Data: data})
}

// writeError writes an error envelope with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.APIResponse{Message: message})
}

// writeDomainError translates a service error into the transport status. The
// handler layer is the only place where error kinds become status codes.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, "internal server error", logger)
		return
	}

	writeError(w, statusForCode(domainErr.Code), domainErr.Message, logger)
}

// statusForCode maps a domain error code to an HTTP status.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeCategoryNotFound, model.ErrCodeProductNotFound, model.ErrCodeImageNotFound:
		return http.StatusNotFound
	case model.ErrCodeCategoryExists, model.ErrCodeCategoryInUse:
		return http.StatusConflict
	case model.ErrCodeInvalidJSON, model.ErrCodeInvalidID, model.ErrCodeMissingField, model.ErrCodeEmptyUpload:
		return http.StatusBadRequest
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// pathID parses the {id} path value as an int64.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, model.NewDomainError(model.ErrCodeInvalidID, "Invalid id in request path")
	}
	return id, nil
}
