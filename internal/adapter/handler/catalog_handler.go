package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/srgjo27/ticket_storefront/internal/core/services"
)

type CatalogHandler struct {
	svc *services.CatalogService
}

func NewCatalogHandler(svc *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) ListEvents(c echo.Context) error {
	events := h.svc.Search(c.QueryParam("q"), services.SortOrder(c.QueryParam("sort")))
	return c.JSON(http.StatusOK, map[string]any{"events": events})
}

func (h *CatalogHandler) GetEvent(c echo.Context) error {
	event, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, event)
}
