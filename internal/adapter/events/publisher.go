package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/shopspring/decimal"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
)

type Header struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"published_at"`
}

func NewHeader() Header {
	return Header{
		ID:          watermill.NewUUID(),
		PublishedAt: time.Now().UTC(),
	}
}

type BookingPlaced struct {
	Header           Header          `json:"header"`
	BookingID        string          `json:"booking_id"`
	ConfirmationCode string          `json:"confirmation_code"`
	UserID           string          `json:"user_id"`
	UserEmail        string          `json:"user_email"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Tickets          int             `json:"tickets"`
	CreatedAt        time.Time       `json:"created_at"`
}

func (e BookingPlaced) Type() string {
	return "BookingPlaced"
}

func NewBookingPlaced(b domain.Booking) BookingPlaced {
	tickets := 0
	for _, item := range b.Items {
		tickets += item.Quantity
	}

	return BookingPlaced{
		Header:           NewHeader(),
		BookingID:        b.ID.String(),
		ConfirmationCode: b.ConfirmationCode(),
		UserID:           b.UserID,
		UserEmail:        b.UserEmail,
		TotalAmount:      b.TotalAmount,
		Tickets:          tickets,
		CreatedAt:        b.CreatedAt,
	}
}

// Publisher sends booking events to a single topic.
type Publisher struct {
	publisher message.Publisher
	topic     string
}

func NewPublisher(publisher message.Publisher, topic string) *Publisher {
	return &Publisher{
		publisher: publisher,
		topic:     topic,
	}
}

func (p *Publisher) PublishBookingPlaced(ctx context.Context, booking domain.Booking) error {
	e := NewBookingPlaced(booking)

	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshalling event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("type", e.Type())
	msg.SetContext(ctx)

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("publishing message to topic '%s': %w", p.topic, err)
	}

	return nil
}
