package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/srgjo27/ticket_storefront/internal/core/services"
)

type updateProfileRequest struct {
	DisplayName string `json:"display_name"`
}

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) SignUp(c echo.Context) error {
	var req services.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid json body")
	}

	identity, err := h.svc.SignUp(c.Request().Context(), profileFrom(c).Session, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, identity)
}

func (h *AuthHandler) SignIn(c echo.Context) error {
	var req services.SignInRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid json body")
	}

	identity, err := h.svc.SignIn(c.Request().Context(), profileFrom(c).Session, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, identity)
}

func (h *AuthHandler) SignOut(c echo.Context) error {
	h.svc.SignOut(profileFrom(c).Session)
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"identity": profileFrom(c).Session.Current()})
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid json body")
	}

	identity, err := h.svc.UpdateDisplayName(c.Request().Context(), profileFrom(c).Session, req.DisplayName)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, identity)
}
