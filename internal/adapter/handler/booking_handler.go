package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
	"github.com/srgjo27/ticket_storefront/internal/core/services"
)

const headerIdempotencyKey = "Idempotency-Key"

type CheckoutResponse struct {
	BookingID        string          `json:"booking_id"`
	ConfirmationCode string          `json:"confirmation_code"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	State            string          `json:"state"`
}

type BookingHandler struct {
	checkouts *services.CheckoutRegistry
	history   *services.HistoryService
}

func NewBookingHandler(checkouts *services.CheckoutRegistry, history *services.HistoryService) *BookingHandler {
	return &BookingHandler{
		checkouts: checkouts,
		history:   history,
	}
}

func (h *BookingHandler) Checkout(c echo.Context) error {
	profile := profileFrom(c)
	finalizer := h.checkouts.Attempt(profile, c.Request().Header.Get(headerIdempotencyKey))

	booking, err := finalizer.Finalize(c.Request().Context())
	if errors.Is(err, domain.ErrCheckoutStarted) {
		if booking != nil {
			return c.JSON(http.StatusOK, newCheckoutResponse(booking, finalizer.State()))
		}

		// A failed attempt is final; its key cannot be retried.
		if finalizer.State() == services.StateFailed {
			return respondError(c, finalizer.Err())
		}
	}

	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, newCheckoutResponse(booking, finalizer.State()))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.history.History(c.Request().Context(), profileFrom(c).Session.Current())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"bookings": bookings})
}

func newCheckoutResponse(b *domain.Booking, state services.CheckoutState) CheckoutResponse {
	return CheckoutResponse{
		BookingID:        b.ID.String(),
		ConfirmationCode: b.ConfirmationCode(),
		TotalAmount:      b.TotalAmount,
		State:            state.String(),
	}
}
