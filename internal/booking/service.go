package booking

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"trailbook/internal/email"
	"trailbook/internal/experience"
	"trailbook/internal/logger"
	"trailbook/internal/metrics"
	"trailbook/internal/pricing"
	"trailbook/internal/promo"
)

var (
	ErrSlotNotFound       = errors.New("slot not found")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrPromoNotFound      = errors.New("invalid or inactive promo code")
)

type Service interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	GetByReferenceID(ctx context.Context, referenceID string) (*Booking, error)
	GetBookingsBySlot(ctx context.Context, slotID int) ([]Booking, error)
}

type service struct {
	repo         Repository
	catalogRepo  experience.Repository
	promoRepo    promo.Repository
	catalogCache *experience.Cache
	emailService *email.Service
}

func NewService(
	repo Repository,
	catalogRepo experience.Repository,
	promoRepo promo.Repository,
	catalogCache *experience.Cache,
	emailService *email.Service,
) Service {
	return &service{
		repo:         repo,
		catalogRepo:  catalogRepo,
		promoRepo:    promoRepo,
		catalogCache: catalogCache,
		emailService: emailService,
	}
}

// newReferenceID builds the shareable confirmation code: "BK" plus the first
// eight hex characters of a random UUID, uppercased.
func newReferenceID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BK" + strings.ToUpper(id[:8])
}

func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	slot, err := s.catalogRepo.GetSlotByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, experience.ErrSlotNotFound) {
			metrics.RecordBooking("slot_not_found")
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	exp, err := s.catalogRepo.GetExperienceByID(ctx, req.ExperienceID)
	if err != nil {
		if errors.Is(err, experience.ErrNotFound) {
			metrics.RecordBooking("experience_not_found")
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}

	// Cheap pre-check; the transaction below is what actually guarantees
	// capacity, this just avoids burning a reference ID on obvious rejects.
	if slot.AvailableSpots < req.Quantity {
		metrics.RecordBooking("insufficient_capacity")
		return nil, ErrInsufficientCapacity
	}

	// Promo codes are re-validated here, not trusted from the client.
	var discount *pricing.Discount
	var promoCode sql.NullString
	if req.PromoCode != "" {
		p, err := s.promoRepo.GetByCode(ctx, req.PromoCode)
		if err != nil {
			if errors.Is(err, promo.ErrNotFound) {
				metrics.RecordBooking("promo_not_found")
				return nil, ErrPromoNotFound
			}
			return nil, err
		}
		if !p.Active {
			metrics.RecordBooking("promo_not_found")
			return nil, ErrPromoNotFound
		}
		discount = &pricing.Discount{Type: p.Type, Value: p.Discount}
		promoCode = sql.NullString{String: p.Code, Valid: true}
	}

	// The server's quote is authoritative; the client copy is only compared.
	quote := pricing.Calculate(exp.Price, req.Quantity, discount)
	if !quote.Matches(req.Subtotal, req.Discount, req.Taxes, req.Total) {
		metrics.RecordPricingMismatch()
		logger.Info("client pricing mismatch",
			"slot_id", req.SlotID,
			"client_total", req.Total,
			"server_total", quote.Total,
		)
	}

	b := &Booking{
		ReferenceID:  newReferenceID(),
		ExperienceID: req.ExperienceID,
		SlotID:       req.SlotID,
		FullName:     req.FullName,
		Email:        req.Email,
		Quantity:     req.Quantity,
		PromoCode:    promoCode,
		Subtotal:     quote.Subtotal,
		Discount:     quote.Discount,
		Taxes:        quote.Taxes,
		Total:        quote.Total,
		Status:       StatusConfirmed,
	}

	created, err := s.repo.CreateBooking(ctx, b)
	if err != nil {
		if errors.Is(err, ErrInsufficientCapacity) {
			metrics.RecordBooking("insufficient_capacity")
		} else {
			metrics.RecordBooking("error")
		}
		return nil, err
	}

	metrics.RecordBooking("confirmed")
	metrics.RecordBookingRevenue(created.Total)
	s.catalogCache.Invalidate(ctx, created.ExperienceID)

	if s.emailService != nil {
		s.emailService.SendBookingConfirmation(
			ctx,
			created.Email,
			created.FullName,
			created.ReferenceID,
			exp.Title,
			slot.Date+" "+slot.Time,
			created.Total,
		)
	}

	return created, nil
}

func (s *service) GetByReferenceID(ctx context.Context, referenceID string) (*Booking, error) {
	return s.repo.GetByReferenceID(ctx, referenceID)
}

func (s *service) GetBookingsBySlot(ctx context.Context, slotID int) ([]Booking, error) {
	return s.repo.GetBookingsBySlot(ctx, slotID)
}
