package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrInsufficientCapacity = errors.New("not enough available spots")
	ErrNotFound             = errors.New("booking not found")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateBooking performs the decrement and the insert inside one transaction.
// The decrement is conditional on remaining capacity, so two concurrent
// bookings racing for the last spots cannot both commit: the second UPDATE
// matches zero rows and the whole transaction rolls back.
func (r *repository) CreateBooking(ctx context.Context, b *Booking) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE slots
		SET available_spots = available_spots - $2
		WHERE id = $1 AND available_spots >= $2
	`, b.SlotID, b.Quantity)
	if err != nil {
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, ErrInsufficientCapacity
	}

	query := `
		INSERT INTO bookings (reference_id, experience_id, slot_id, full_name, email, quantity,
			promo_code, subtotal, discount, taxes, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, reference_id, experience_id, slot_id, full_name, email, quantity,
			promo_code, subtotal, discount, taxes, total, status, created_at
	`

	var created Booking
	err = tx.QueryRowxContext(ctx, query,
		b.ReferenceID, b.ExperienceID, b.SlotID, b.FullName, b.Email, b.Quantity,
		b.PromoCode, b.Subtotal, b.Discount, b.Taxes, b.Total, b.Status,
	).StructScan(&created)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByReferenceID(ctx context.Context, referenceID string) (*Booking, error) {
	query := `
		SELECT id, reference_id, experience_id, slot_id, full_name, email, quantity,
			promo_code, subtotal, discount, taxes, total, status, created_at
		FROM bookings
		WHERE reference_id = $1
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, referenceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetBookingsBySlot(ctx context.Context, slotID int) ([]Booking, error) {
	query := `
		SELECT id, reference_id, experience_id, slot_id, full_name, email, quantity,
			promo_code, subtotal, discount, taxes, total, status, created_at
		FROM bookings
		WHERE slot_id = $1
		ORDER BY created_at DESC
	`

	bookings := []Booking{}
	err := r.db.SelectContext(ctx, &bookings, query, slotID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
