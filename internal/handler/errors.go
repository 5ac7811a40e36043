package handler

import (
	"errors"

	"go-farmpet-api/internal/errs"
	"go-farmpet-api/internal/service"

	"github.com/google/uuid"
)

// toHTTPError maps service errors onto response statuses:
// 404 not found, 400 business rule / request shape, 409 conflict, 500 anything else.
func toHTTPError(err error) error {
	var notFound *service.NotFoundError
	var shortage *service.InsufficientStockError

	switch {
	case errors.As(err, &notFound):
		return errs.NewNotFoundError(err.Error(), errs.Code(errs.MakeUpperCaseWithUnderscores(string(notFound.Entity))+"_NOT_FOUND"))
	case service.IsNotFound(err):
		return errs.NewNotFoundError(err.Error(), nil)
	case errors.As(err, &shortage):
		return errs.NewBadRequestError(err.Error(), errs.Code("INSUFFICIENT_STOCK"))
	case errors.Is(err, service.ErrInvalidQuantity):
		return errs.NewBadRequestError(err.Error(), errs.Code("INVALID_QUANTITY"))
	case errors.Is(err, service.ErrInvalidPaymentConfig):
		return errs.NewBadRequestError(err.Error(), errs.Code("INVALID_PAYMENT_CONFIG"))
	case errors.Is(err, service.ErrInvalidAmount):
		return errs.NewBadRequestError(err.Error(), errs.Code("INVALID_AMOUNT"))
	case service.IsClientError(err):
		return errs.NewBadRequestError(err.Error(), nil)
	case errors.Is(err, service.ErrConflict):
		return errs.NewConflictError(err.Error(), nil)
	default:
		// Persistence failures keep their cause out of the response; the error handler logs it.
		return err
	}
}

// Helper untuk parse UUID dari path param
func parseID(id, entity string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("Invalid "+entity+" ID", nil)
	}
	return parsed, nil
}

var errInvalidJSON = errs.NewBadRequestError("Invalid JSON", nil)
