package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
	"github.com/srgjo27/ticket_storefront/internal/core/ports"
)

// HistoryIndexName is the composite index the ordered history query needs.
const HistoryIndexName = "bookings_user_created_idx"

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingRow struct {
	ID          uuid.UUID       `db:"id"`
	UserID      string          `db:"user_id"`
	UserEmail   string          `db:"user_email"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	CreatedAt   time.Time       `db:"created_at"`
}

type bookingItemRow struct {
	BookingID uuid.UUID       `db:"booking_id"`
	EventID   string          `db:"event_id"`
	Title     string          `db:"title"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Quantity  int             `db:"quantity"`
	Location  string          `db:"location"`
	Thumbnail string          `db:"thumbnail"`
}

// Append writes the booking header and its items in one transaction. The id
// and created_at are assigned here and by the database.
func (r *BookingRepository) Append(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer tx.Rollback()

	id := uuid.New()

	queryHeader := `
	INSERT INTO bookings (id, user_id, user_email, total_amount)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at
	`

	var createdAt time.Time
	err = tx.QueryRowContext(ctx, queryHeader, id, booking.UserID, booking.UserEmail, booking.TotalAmount).Scan(&createdAt)
	if err != nil {
		return fmt.Errorf("failed to insert booking header: %w", err)
	}

	queryItem := `
	INSERT INTO booking_items (booking_id, position, event_id, title, unit_price, quantity, location, thumbnail)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	stmt, err := tx.PrepareContext(ctx, queryItem)
	if err != nil {
		return fmt.Errorf("failed to prepare item statement: %w", err)
	}

	defer stmt.Close()

	for i, item := range booking.Items {
		_, err := stmt.ExecContext(ctx, id, i, item.EventID, item.Title, item.UnitPrice, item.Quantity, item.Location, item.Thumbnail)
		if err != nil {
			return fmt.Errorf("failed to insert booking item %s: %w", item.EventID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	booking.ID = id
	booking.CreatedAt = createdAt

	return nil
}

// QueryByUser returns ports.ErrIndexUnavailable for an ordered query when the
// history index has not been created.
func (r *BookingRepository) QueryByUser(ctx context.Context, userID string, orderByDateDesc bool) ([]domain.Booking, error) {
	query := `
	SELECT id, user_id, user_email, total_amount, created_at
	FROM bookings
	WHERE user_id = $1
	`

	if orderByDateDesc {
		ok, err := r.historyIndexExists(ctx)
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, fmt.Errorf("%w: %s", ports.ErrIndexUnavailable, HistoryIndexName)
		}

		query += `ORDER BY created_at DESC`
	}

	var rows []bookingRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("querying bookings: %w", err)
	}

	if len(rows) == 0 {
		return []domain.Booking{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, len(rows))
	for i, row := range rows {
		bookings[i] = domain.Booking{
			ID:          row.ID,
			UserID:      row.UserID,
			UserEmail:   row.UserEmail,
			Items:       items[row.ID],
			TotalAmount: row.TotalAmount,
			CreatedAt:   row.CreatedAt,
		}
	}

	return bookings, nil
}

func (r *BookingRepository) historyIndexExists(ctx context.Context) (bool, error) {
	query := `
	SELECT EXISTS (
		SELECT 1 FROM pg_indexes
		WHERE tablename = 'bookings' AND indexname = $1
	)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, HistoryIndexName); err != nil {
		return false, fmt.Errorf("checking history index: %w", err)
	}

	return exists, nil
}

func (r *BookingRepository) itemsFor(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID][]domain.CartLine, error) {
	query := `
	SELECT booking_id, event_id, title, unit_price, quantity, location, thumbnail
	FROM booking_items
	WHERE booking_id = ANY($1::uuid[])
	ORDER BY booking_id, position
	`

	ids := make([]string, len(bookingIDs))
	for i, id := range bookingIDs {
		ids[i] = id.String()
	}

	var rows []bookingItemRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("querying booking items: %w", err)
	}

	items := make(map[uuid.UUID][]domain.CartLine, len(bookingIDs))
	for _, row := range rows {
		items[row.BookingID] = append(items[row.BookingID], domain.CartLine{
			EventID:   row.EventID,
			Title:     row.Title,
			UnitPrice: row.UnitPrice,
			Quantity:  row.Quantity,
			Location:  row.Location,
			Thumbnail: row.Thumbnail,
		})
	}

	return items, nil
}
