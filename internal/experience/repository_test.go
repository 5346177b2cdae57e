package experience

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func experienceRows(t *testing.T) *sqlmock.Rows {
	t.Helper()
	return sqlmock.NewRows([]string{"id", "title", "location", "image", "price", "description", "full_description", "about", "created_at"})
}

func TestCreateExperience(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO experiences (title, location, image, price, description, full_description, about) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, title, location, image, price, description, full_description, about, created_at")).
		WithArgs("Kayaking in River", "Udaipur, Rajasthan", "https://img/kayak.jpg", int64(999), "Curated small-group experience.", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(experienceRows(t).AddRow(1, "Kayaking in River", "Udaipur, Rajasthan", "https://img/kayak.jpg", 999, "Curated small-group experience.", "Full text", nil, now))

	exp, err := repo.CreateExperience(context.Background(), CreateExperienceRequest{
		Title:           "Kayaking in River",
		Location:        "Udaipur, Rajasthan",
		Image:           "https://img/kayak.jpg",
		Price:           999,
		Description:     "Curated small-group experience.",
		FullDescription: "Full text",
	})
	require.NoError(t, err)
	require.Equal(t, 1, exp.ID)
	require.Equal(t, int64(999), exp.Price)
	require.True(t, exp.FullDescription.Valid)
	require.False(t, exp.About.Valid)
}

func TestGetAllExperiencesNewestFirst(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	rows := experienceRows(t).
		AddRow(2, "Scuba Diving", "Goa", "https://img/scuba.jpg", 2999, "Coral reefs.", nil, nil, now).
		AddRow(1, "Kayaking", "Udaipur", "https://img/kayak.jpg", 999, "Small groups.", nil, nil, now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, location, image, price, description, full_description, about, created_at FROM experiences ORDER BY created_at DESC")).
		WillReturnRows(rows)

	list, err := repo.GetAllExperiences(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, 2, list[0].ID)
}

func TestGetExperienceByIDNotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, location, image, price, description, full_description, about, created_at FROM experiences WHERE id = $1")).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetExperienceByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateSlotDefaultsAvailable(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO slots (experience_id, date, time, total_spots, available_spots) VALUES ($1, $2, $3, $4, $5) RETURNING id, experience_id, date, time, total_spots, available_spots, created_at")).
		WithArgs(1, "Nov 1", "07:00 AM", 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "experience_id", "date", "time", "total_spots", "available_spots", "created_at"}).
			AddRow(5, 1, "Nov 1", "07:00 AM", 10, 10, now))

	slot, err := repo.CreateSlot(context.Background(), 1, CreateSlotRequest{
		Date:       "Nov 1",
		Time:       "07:00 AM",
		TotalSpots: 10,
	})
	require.NoError(t, err)
	require.Equal(t, 5, slot.ID)
	require.Equal(t, 10, slot.AvailableSpots)
}

func TestGetSlotsByExperienceOrdered(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "experience_id", "date", "time", "total_spots", "available_spots", "created_at"}).
		AddRow(1, 1, "Nov 1", "07:00 AM", 10, 4, now).
		AddRow(2, 1, "Nov 1", "09:00 AM", 10, 9, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, experience_id, date, time, total_spots, available_spots, created_at FROM slots WHERE experience_id = $1 ORDER BY date ASC, time ASC")).
		WithArgs(1).
		WillReturnRows(rows)

	slots, err := repo.GetSlotsByExperience(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	require.Equal(t, "07:00 AM", slots[0].Time)
}

func TestGetSlotByIDNotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, experience_id, date, time, total_spots, available_spots, created_at FROM slots WHERE id = $1")).
		WithArgs(404).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSlotByID(context.Background(), 404)
	require.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCountExperiences(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM experiences")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(8))

	count, err := repo.CountExperiences(context.Background())
	require.NoError(t, err)
	require.Equal(t, 8, count)
}
