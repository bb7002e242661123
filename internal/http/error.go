package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	inErrors "github.com/zgz/product-service/internal/errors"
	"github.com/zgz/product-service/internal/otel"
)

// ApiError is the uniform error envelope every failed request is rendered
// with, regardless of where the failure originated.
type ApiError struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

func NewApiError(status int, message string, path string) ApiError {
	return ApiError{
		Timestamp: time.Now().Format(TimestampFormat),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      path,
	}
}

// WriteErrorResponse translates an uncaught failure into the envelope.
// Not-found conditions map to 404; everything else is an opaque 500, the
// original cause stays in the server log only.
func WriteErrorResponse(
	c context.Context,
	w http.ResponseWriter,
	r *http.Request,
	err error,
) {
	c, span := otel.Tracer.Start(c, "WriteErrorResponse")
	defer span.End()

	logger := zerolog.Ctx(c).With().Str("tag", "WriteErrorResponse").Logger()

	status := http.StatusInternalServerError
	message := "An unexpected error occurred"
	if errors.Is(err, inErrors.ErrNotFound) {
		status = http.StatusNotFound
		message = "The requested resource was not found"
		logger.Warn().Err(err).Msgf("resource not found: %s", err.Error())
	} else {
		otel.RecordError(err, span)
		logger.Error().Err(err).Msgf("unexpected error occurred: %s", err.Error())
	}

	WriteJsonResponse(c, w, status, NewApiError(status, message, r.URL.Path))
}

// WriteValidationError renders a 400 envelope for malformed or incomplete
// request bodies. The validator message is exposed to the caller.
func WriteValidationError(
	c context.Context,
	w http.ResponseWriter,
	r *http.Request,
	err error,
) {
	WriteJsonResponse(
		c,
		w,
		http.StatusBadRequest,
		NewApiError(http.StatusBadRequest, err.Error(), r.URL.Path),
	)
}
