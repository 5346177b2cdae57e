package experience

import (
	"database/sql"
	"encoding/json"
	"time"
)

type Experience struct {
	ID              int            `db:"id" json:"id"`
	Title           string         `db:"title" json:"title"`
	Location        string         `db:"location" json:"location"`
	Image           string         `db:"image" json:"image"`
	Price           int64          `db:"price" json:"price"`
	Description     string         `db:"description" json:"description"`
	FullDescription sql.NullString `db:"full_description" json:"-"`
	About           sql.NullString `db:"about" json:"-"`
	CreatedAt       time.Time      `db:"created_at" json:"createdAt"`
}

// view adds the optional text columns as plain JSON fields.
type view struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Location        string    `json:"location"`
	Image           string    `json:"image"`
	Price           int64     `json:"price"`
	Description     string    `json:"description"`
	FullDescription string    `json:"fullDescription,omitempty"`
	About           string    `json:"about,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (e Experience) MarshalJSON() ([]byte, error) {
	return json.Marshal(view{
		ID:              e.ID,
		Title:           e.Title,
		Location:        e.Location,
		Image:           e.Image,
		Price:           e.Price,
		Description:     e.Description,
		FullDescription: e.FullDescription.String,
		About:           e.About.String,
		CreatedAt:       e.CreatedAt,
	})
}

func (e *Experience) UnmarshalJSON(data []byte) error {
	var v view
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*e = Experience{
		ID:              v.ID,
		Title:           v.Title,
		Location:        v.Location,
		Image:           v.Image,
		Price:           v.Price,
		Description:     v.Description,
		FullDescription: sql.NullString{String: v.FullDescription, Valid: v.FullDescription != ""},
		About:           sql.NullString{String: v.About, Valid: v.About != ""},
		CreatedAt:       v.CreatedAt,
	}
	return nil
}

type Slot struct {
	ID             int       `db:"id" json:"id"`
	ExperienceID   int       `db:"experience_id" json:"experienceId"`
	Date           string    `db:"date" json:"date"`
	Time           string    `db:"time" json:"time"`
	TotalSpots     int       `db:"total_spots" json:"totalSpots"`
	AvailableSpots int       `db:"available_spots" json:"availableSpots"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

// Detail is the payload of GET /api/experiences/:id.
type Detail struct {
	Experience Experience `json:"experience"`
	Slots      []Slot     `json:"slots"`
}

type CreateExperienceRequest struct {
	Title           string `json:"title" binding:"required"`
	Location        string `json:"location" binding:"required"`
	Image           string `json:"image" binding:"required"`
	Price           int64  `json:"price" binding:"required,gt=0"`
	Description     string `json:"description" binding:"required"`
	FullDescription string `json:"fullDescription"`
	About           string `json:"about"`
}

type CreateSlotRequest struct {
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	TotalSpots int    `json:"totalSpots" binding:"required,gt=0"`
	// AvailableSpots defaults to TotalSpots when zero.
	AvailableSpots int `json:"availableSpots" binding:"omitempty,gte=0"`
}
