package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/pkg/errs"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps known
// domain errors to deterministic HTTP status codes, logs unexpected errors
// and renders a consistent JSON envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, auth middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	if code, known := statusForError(err); known {
		return code, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	// NothingEscrowed and TransferFailed land here on purpose, they mean
	// the escrow bookkeeping and the package record disagree.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// statusForError maps known domain errors to deterministic HTTP status
// codes. The second return is false for errors outside the taxonomy.
func statusForError(err error) (int, bool) {
	switch {
	case errors.Is(err, errs.ErrPackageNotFound),
		errors.Is(err, errs.ErrCourierNotRegistered),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden, true
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrDuplicatePackageID),
		errors.Is(err, errs.ErrCourierAlreadyRegistered):
		return http.StatusConflict, true
	case errors.Is(err, errs.ErrInsufficientFunds):
		return http.StatusPaymentRequired, true
	case errors.Is(err, errs.ErrInvalidAddress),
		errors.Is(err, errs.ErrInvalidScore),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, true
	}
	return 0, false
}
