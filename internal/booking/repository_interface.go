package booking

import "context"

type Repository interface {
	// CreateBooking inserts the booking and decrements the slot's remaining
	// capacity in one transaction. Returns ErrInsufficientCapacity when the
	// slot cannot cover the quantity; nothing is written in that case.
	CreateBooking(ctx context.Context, b *Booking) (*Booking, error)
	GetByReferenceID(ctx context.Context, referenceID string) (*Booking, error)
	GetBookingsBySlot(ctx context.Context, slotID int) ([]Booking, error)
}
