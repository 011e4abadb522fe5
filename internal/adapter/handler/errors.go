package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
)

type errorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrPasswordMismatch),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotAuthenticated),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmailAlreadyRegistered),
		errors.Is(err, domain.ErrCheckoutStarted):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSignUpFailed),
		errors.Is(err, domain.ErrSignInFailed),
		errors.Is(err, domain.ErrProfileUpdateFailed),
		errors.Is(err, domain.ErrLedgerUnavailable),
		errors.Is(err, domain.ErrHistoryUnavailable),
		errors.Is(err, domain.ErrCartNotPersisted):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c echo.Context, err error) error {
	resp := errorResponse{Error: domain.UserMessage(err)}

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		resp.Redirect = "/login"
	case errors.Is(err, domain.ErrEmptyCart):
		resp.Redirect = "/"
	}

	return c.JSON(statusFor(err), resp)
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}
