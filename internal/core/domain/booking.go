package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const confirmationCodeLength = 10

// Booking is a finalized cart. ID and CreatedAt are assigned by the ledger.
type Booking struct {
	ID          uuid.UUID       `json:"id"`
	UserID      string          `json:"user_id"`
	UserEmail   string          `json:"user_email"`
	Items       []CartLine      `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (b Booking) ConfirmationCode() string {
	id := b.ID.String()
	if len(id) > confirmationCodeLength {
		return id[:confirmationCodeLength]
	}

	return id
}
