package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
	"github.com/srgjo27/ticket_storefront/internal/core/services"
)

type addItemRequest struct {
	EventID  string `json:"event_id"`
	Quantity int    `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartHandler struct {
	catalog *services.CatalogService
}

func NewCartHandler(catalog *services.CatalogService) *CartHandler {
	return &CartHandler{catalog: catalog}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, profileFrom(c).Cart.Snapshot())
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid json body")
	}

	event, err := h.catalog.Get(req.EventID)
	if err != nil {
		return respondError(c, err)
	}

	cart := profileFrom(c).Cart
	if err := cart.AddItem(c.Request().Context(), event, req.Quantity); err != nil {
		return h.mutationError(c, cart, err)
	}

	return c.JSON(http.StatusOK, cart.Snapshot())
}

func (h *CartHandler) SetQuantity(c echo.Context) error {
	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid json body")
	}

	cart := profileFrom(c).Cart
	if _, err := cart.SetQuantity(c.Request().Context(), c.Param("id"), req.Quantity); err != nil {
		return h.mutationError(c, cart, err)
	}

	return c.JSON(http.StatusOK, cart.Snapshot())
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	cart := profileFrom(c).Cart
	if _, err := cart.RemoveItem(c.Request().Context(), c.Param("id")); err != nil {
		return h.mutationError(c, cart, err)
	}

	return c.JSON(http.StatusOK, cart.Snapshot())
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	cart := profileFrom(c).Cart
	if err := cart.Clear(c.Request().Context()); err != nil {
		return h.mutationError(c, cart, err)
	}

	return c.JSON(http.StatusOK, cart.Snapshot())
}

// mutationError still returns the cart: the change was applied in memory even
// though it was not persisted.
func (h *CartHandler) mutationError(c echo.Context, cart *services.CartStore, err error) error {
	if errors.Is(err, domain.ErrCartNotPersisted) {
		return c.JSON(http.StatusAccepted, map[string]any{
			"cart":    cart.Snapshot(),
			"warning": "Your cart could not be saved and may be lost on reload",
		})
	}

	return respondError(c, err)
}
