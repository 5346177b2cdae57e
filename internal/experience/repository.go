package experience

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound     = errors.New("experience not found")
	ErrSlotNotFound = errors.New("slot not found")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateExperience(ctx context.Context, req CreateExperienceRequest) (*Experience, error) {
	query := `
		INSERT INTO experiences (title, location, image, price, description, full_description, about)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, location, image, price, description, full_description, about, created_at
	`

	fullDescription := sql.NullString{String: req.FullDescription, Valid: req.FullDescription != ""}
	about := sql.NullString{String: req.About, Valid: req.About != ""}

	var exp Experience
	err := r.db.GetContext(ctx, &exp, query,
		req.Title, req.Location, req.Image, req.Price, req.Description, fullDescription, about)
	if err != nil {
		return nil, err
	}

	return &exp, nil
}

func (r *repository) GetAllExperiences(ctx context.Context) ([]Experience, error) {
	query := `
		SELECT id, title, location, image, price, description, full_description, about, created_at
		FROM experiences
		ORDER BY created_at DESC
	`

	experiences := []Experience{}
	err := r.db.SelectContext(ctx, &experiences, query)
	if err != nil {
		return nil, err
	}

	return experiences, nil
}

func (r *repository) GetExperienceByID(ctx context.Context, id int) (*Experience, error) {
	query := `
		SELECT id, title, location, image, price, description, full_description, about, created_at
		FROM experiences
		WHERE id = $1
	`

	var exp Experience
	err := r.db.GetContext(ctx, &exp, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &exp, nil
}

func (r *repository) CountExperiences(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM experiences`)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) CreateSlot(ctx context.Context, experienceID int, req CreateSlotRequest) (*Slot, error) {
	available := req.AvailableSpots
	if available == 0 {
		available = req.TotalSpots
	}

	query := `
		INSERT INTO slots (experience_id, date, time, total_spots, available_spots)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, experience_id, date, time, total_spots, available_spots, created_at
	`

	var slot Slot
	err := r.db.GetContext(ctx, &slot, query, experienceID, req.Date, req.Time, req.TotalSpots, available)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) GetSlotsByExperience(ctx context.Context, experienceID int) ([]Slot, error) {
	query := `
		SELECT id, experience_id, date, time, total_spots, available_spots, created_at
		FROM slots
		WHERE experience_id = $1
		ORDER BY date ASC, time ASC
	`

	slots := []Slot{}
	err := r.db.SelectContext(ctx, &slots, query, experienceID)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) GetSlotByID(ctx context.Context, id int) (*Slot, error) {
	query := `
		SELECT id, experience_id, date, time, total_spots, available_spots, created_at
		FROM slots
		WHERE id = $1
	`

	var slot Slot
	err := r.db.GetContext(ctx, &slot, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}

	return &slot, nil
}
