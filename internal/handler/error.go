package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"country-explorer/internal/model"
)

// upstreamError marks failures of the countries API so they map to 502.
type upstreamError struct {
	err error
}

func (e *upstreamError) Error() string { return e.err.Error() }
func (e *upstreamError) Unwrap() error { return e.err }

func upstream(err error) error {
	return &upstreamError{err: err}
}

func statusFor(err error) int {
	var fiberErr *fiber.Error
	var upstreamErr *upstreamError
	var statusErr *model.StatusError

	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, model.ErrSessionNotFound),
		errors.Is(err, model.ErrNoSelection),
		errors.Is(err, model.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrInvalidCriteria):
		return fiber.StatusBadRequest
	case errors.As(err, &upstreamErr), errors.As(err, &statusErr):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
