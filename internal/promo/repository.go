package promo

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"trailbook/internal/db"
)

var (
	ErrNotFound  = errors.New("promo code not found")
	ErrCodeTaken = errors.New("promo code already exists")
)

type Repository interface {
	GetByCode(ctx context.Context, code string) (*PromoCode, error)
	Create(ctx context.Context, req CreatePromoRequest) (*PromoCode, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByCode(ctx context.Context, code string) (*PromoCode, error) {
	query := `
		SELECT id, code, discount, type, active, created_at
		FROM promo_codes
		WHERE code = $1
	`

	var promo PromoCode
	err := r.db.GetContext(ctx, &promo, query, strings.ToUpper(code))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &promo, nil
}

func (r *repository) Create(ctx context.Context, req CreatePromoRequest) (*PromoCode, error) {
	code := strings.ToUpper(req.Code)

	taken, err := db.Exists(ctx, r.db, "SELECT EXISTS(SELECT 1 FROM promo_codes WHERE code = $1)", code)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrCodeTaken
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	query := `
		INSERT INTO promo_codes (code, discount, type, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, code, discount, type, active, created_at
	`

	var promo PromoCode
	if err := r.db.GetContext(ctx, &promo, query, code, req.Discount, req.Type, active); err != nil {
		return nil, err
	}

	return &promo, nil
}
