package booking

import (
	"database/sql"
	"encoding/json"
	"time"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

type Booking struct {
	ID           int            `db:"id"`
	ReferenceID  string         `db:"reference_id"`
	ExperienceID int            `db:"experience_id"`
	SlotID       int            `db:"slot_id"`
	FullName     string         `db:"full_name"`
	Email        string         `db:"email"`
	Quantity     int            `db:"quantity"`
	PromoCode    sql.NullString `db:"promo_code"`
	Subtotal     int64          `db:"subtotal"`
	Discount     int64          `db:"discount"`
	Taxes        int64          `db:"taxes"`
	Total        int64          `db:"total"`
	Status       string         `db:"status"`
	CreatedAt    time.Time      `db:"created_at"`
}

type bookingView struct {
	ID           int       `json:"id"`
	ReferenceID  string    `json:"referenceId"`
	ExperienceID int       `json:"experienceId"`
	SlotID       int       `json:"slotId"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Quantity     int       `json:"quantity"`
	PromoCode    string    `json:"promoCode,omitempty"`
	Subtotal     int64     `json:"subtotal"`
	Discount     int64     `json:"discount"`
	Taxes        int64     `json:"taxes"`
	Total        int64     `json:"total"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (b Booking) MarshalJSON() ([]byte, error) {
	return json.Marshal(bookingView{
		ID:           b.ID,
		ReferenceID:  b.ReferenceID,
		ExperienceID: b.ExperienceID,
		SlotID:       b.SlotID,
		FullName:     b.FullName,
		Email:        b.Email,
		Quantity:     b.Quantity,
		PromoCode:    b.PromoCode.String,
		Subtotal:     b.Subtotal,
		Discount:     b.Discount,
		Taxes:        b.Taxes,
		Total:        b.Total,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	})
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var v bookingView
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = Booking{
		ID:           v.ID,
		ReferenceID:  v.ReferenceID,
		ExperienceID: v.ExperienceID,
		SlotID:       v.SlotID,
		FullName:     v.FullName,
		Email:        v.Email,
		Quantity:     v.Quantity,
		PromoCode:    sql.NullString{String: v.PromoCode, Valid: v.PromoCode != ""},
		Subtotal:     v.Subtotal,
		Discount:     v.Discount,
		Taxes:        v.Taxes,
		Total:        v.Total,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
	}
	return nil
}

// CreateBookingRequest is the POST /api/bookings body. The client still sends
// its locally computed pricing figures; the server recomputes them from the
// catalog and only uses the client copy for a mismatch warning.
type CreateBookingRequest struct {
	ExperienceID int    `json:"experienceId" binding:"required"`
	SlotID       int    `json:"slotId" binding:"required"`
	FullName     string `json:"fullName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Quantity     int    `json:"quantity" binding:"required,gt=0"`
	PromoCode    string `json:"promoCode"`

	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Taxes    int64 `json:"taxes"`
	Total    int64 `json:"total"`
}
