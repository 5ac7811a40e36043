package middleware

import (
	"errors"
	"net/http"
	"time"

	"go-farmpet-api/internal/errs"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RequestLogger logs one line per request, at a level chosen from the final status.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = statusOf(err)
		}

		var e *zerolog.Event
		switch {
		case status >= 500:
			e = log.Error().Err(err)
		case status >= 400:
			e = log.Warn()
		default:
			e = log.Info()
		}

		if requestID, ok := c.Locals("requestid").(string); ok && requestID != "" {
			e = e.Str("request_id", requestID)
		}

		e.
			Dur("latency", time.Since(start)).
			Int("status", status).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("ip", c.IP()).
			Msg("request")

		return err
	}
}

// ErrorHandler renders *errs.HTTPError values; anything else becomes a generic 500.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var httpErr *errs.HTTPError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &httpErr):
		case errors.As(err, &fiberErr):
			httpErr = &errs.HTTPError{
				Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(fiberErr.Code)),
				Message: fiberErr.Message,
				Status:  fiberErr.Code,
			}
		default:
			log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
			httpErr = errs.NewInternalServerError()
		}

		return c.Status(httpErr.Status).JSON(httpErr)
	}
}

func statusOf(err error) int {
	var httpErr *errs.HTTPError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Status
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	default:
		return fiber.StatusInternalServerError
	}
}
