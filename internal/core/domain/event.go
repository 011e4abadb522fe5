package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Event struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Date        time.Time       `json:"date"`
	Location    string          `json:"location"`
	Price       decimal.Decimal `json:"price"`
	Thumbnail   string          `json:"thumbnail"`
	Description string          `json:"description"`
}
