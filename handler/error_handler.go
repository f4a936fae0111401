package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/requestid"
	"github.com/dmitrymomot/authkit/pkg/validator"
	"github.com/dmitrymomot/authkit/svc/auth"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	StatusCode int                 `json:"statusCode"`
	Message    string              `json:"message"`
	Error      string              `json:"error"`
	Details    map[string][]string `json:"details,omitempty"`
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind auth.Kind) int {
	switch kind {
	case auth.KindValidation:
		return http.StatusBadRequest
	case auth.KindConflict:
		return http.StatusConflict
	case auth.KindUnauthenticated:
		return http.StatusUnauthorized
	case auth.KindInternal:
		return http.StatusInternalServerError
	default:
		panic(fmt.Sprintf("handler: unhandled error kind %d", kind))
	}
}

// NewErrorHandler creates the JSON error handler. A nil logger discards logs.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	write := NewErrorWriter(log)
	return func(ctx Context, err error) {
		write(ctx.ResponseWriter(), ctx.Request(), err)
	}
}

// NewErrorWriter returns the plain net/http form of the error handler, for
// middleware that rejects requests before a handler runs.
func NewErrorWriter(log *slog.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("error_handler"))

	return func(w http.ResponseWriter, r *http.Request, err error) {
		kind := auth.KindOf(err)
		status := StatusFor(kind)

		level := slog.LevelWarn
		if kind == auth.KindInternal {
			level = slog.LevelError
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.String("kind", kind.String()),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		body := ErrorBody{
			StatusCode: status,
			Message:    auth.PublicMessage(err),
			Error:      http.StatusText(status),
		}
		if kind == auth.KindValidation {
			if verrs := validator.ExtractValidationErrors(err); verrs != nil {
				body.Details = verrs.Map()
			}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
			log.ErrorContext(r.Context(), "failed to write error response", logger.Error(encErr))
		}
	}
}
