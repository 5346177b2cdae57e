package promo

import "time"

type PromoCode struct {
	ID        int       `db:"id" json:"id"`
	Code      string    `db:"code" json:"code"`
	Discount  int64     `db:"discount" json:"discount"`
	Type      string    `db:"type" json:"type"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type ValidateRequest struct {
	Code string `json:"code" binding:"required"`
}

// Resolved is the discount descriptor returned by POST /api/promo/validate.
type Resolved struct {
	Code     string `json:"code"`
	Discount int64  `json:"discount"`
	Type     string `json:"type"`
}

type CreatePromoRequest struct {
	Code     string `json:"code" binding:"required"`
	Discount int64  `json:"discount" binding:"required,gt=0"`
	Type     string `json:"type" binding:"required,oneof=percentage fixed"`
	Active   *bool  `json:"active"`
}
