package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hongminglow/library-be/internal/http/respond"
	"github.com/hongminglow/library-be/internal/library"
)

const msgInvalidJSON = "invalid JSON payload"

// writeServiceError maps service error kinds to status codes. Anything unexpected is
// logged and reported as a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, library.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, library.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, library.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, library.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, library.ErrConflict):
		status = http.StatusConflict
	}

	msg := library.Message(err)
	if status == http.StatusInternalServerError || msg == "" {
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.Error(w, status, msg)
}

// pathID parses a positive integer path value. ok is false when the value cannot name a record.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
