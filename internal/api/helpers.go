package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Black-png/trackers-api/internal/entity"
)

type ResponseError struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// statusFromErr maps domain errors to HTTP statuses. Anything unknown is 500.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, entity.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, entity.ErrNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// SendErr writes err with the status statusFromErr picks. The error text is
// only put in the body when exposeDetails is set.
func SendErr(ctx context.Context, w http.ResponseWriter, err error, exposeDetails bool) {
	code := statusFromErr(err)

	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", err, "code", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", err, "code", code)
	}

	resp := ResponseError{Message: http.StatusText(code)}
	if exposeDetails {
		resp.Error = err.Error()
	}

	SendJSON(ctx, w, code, resp)
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err, "code", code)
	}
}
