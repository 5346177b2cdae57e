package promo

import (
	"context"
	"errors"

	"trailbook/internal/metrics"
)

type Service interface {
	Validate(ctx context.Context, code string) (*Resolved, error)
	Create(ctx context.Context, req CreatePromoRequest) (*PromoCode, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Validate resolves a code to its discount descriptor. Unknown and inactive
// codes are indistinguishable to the caller: both are ErrNotFound.
func (s *service) Validate(ctx context.Context, code string) (*Resolved, error) {
	promo, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			metrics.RecordPromoValidation("not_found")
		}
		return nil, err
	}

	if !promo.Active {
		metrics.RecordPromoValidation("not_found")
		return nil, ErrNotFound
	}

	metrics.RecordPromoValidation("valid")
	return &Resolved{
		Code:     promo.Code,
		Discount: promo.Discount,
		Type:     promo.Type,
	}, nil
}

func (s *service) Create(ctx context.Context, req CreatePromoRequest) (*PromoCode, error) {
	return s.repo.Create(ctx, req)
}
