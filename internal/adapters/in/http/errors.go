package http

import (
	"errors"
	"net/http"

	"laundrytrack/internal/core/application/usecases/commands"
	"laundrytrack/internal/core/application/usecases/queries"
	"laundrytrack/internal/core/domain/model/order"
	"laundrytrack/internal/core/domain/services"
	"laundrytrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps domain errors to HTTP status codes.
//
// The mapping is deliberately coarse: anything that looks like bad input is
// 400, anything the caller may not do is 403, state conflicts are 409, and
// everything else is 500. A failed tag release after a committed completion
// is 502 so callers can tell "completion failed" from "completion succeeded
// but the cleanup did not".
func respondError(ctx echo.Context, err error) error {
	status := statusFor(err)
	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAccessForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, order.ErrOrderAlreadyCompleted):
		return http.StatusConflict
	case errors.Is(err, services.ErrPoolExhausted):
		return http.StatusConflict
	case errors.Is(err, commands.ErrTagReleaseFailed):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, commands.ErrShelfLocationIsRequired),
		errors.Is(err, commands.ErrShelfCodeIsRequired),
		errors.Is(err, commands.ErrCompletionViaStatusUpdate),
		errors.Is(err, commands.ErrNothingToUpdate),
		errors.Is(err, commands.ErrClearAndAssign),
		errors.Is(err, queries.ErrShelfCodeIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
