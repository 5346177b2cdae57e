package experience

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateExperience(ctx context.Context, req CreateExperienceRequest) (*Experience, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Experience), args.Error(1)
}

func (m *MockRepository) GetAllExperiences(ctx context.Context) ([]Experience, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Experience), args.Error(1)
}

func (m *MockRepository) GetExperienceByID(ctx context.Context, id int) (*Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Experience), args.Error(1)
}

func (m *MockRepository) CountExperiences(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CreateSlot(ctx context.Context, experienceID int, req CreateSlotRequest) (*Slot, error) {
	args := m.Called(ctx, experienceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Slot), args.Error(1)
}

func (m *MockRepository) GetSlotsByExperience(ctx context.Context, experienceID int) ([]Slot, error) {
	args := m.Called(ctx, experienceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Slot), args.Error(1)
}

func (m *MockRepository) GetSlotByID(ctx context.Context, id int) (*Slot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Slot), args.Error(1)
}

func TestServiceListExperiences(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, nil)

	mockRepo.On("GetAllExperiences", mock.Anything).Return([]Experience{
		{ID: 1, Title: "Kayaking"},
		{ID: 2, Title: "Trekking"},
	}, nil)

	list, err := svc.ListExperiences(context.Background())

	assert.NoError(t, err)
	assert.Len(t, list, 2)
	mockRepo.AssertExpectations(t)
}

func TestServiceGetExperienceDetail(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, nil)

	mockRepo.On("GetExperienceByID", mock.Anything, 1).Return(&Experience{ID: 1, Title: "Kayaking"}, nil)
	mockRepo.On("GetSlotsByExperience", mock.Anything, 1).Return([]Slot{
		{ID: 10, ExperienceID: 1, Date: "Nov 1", Time: "07:00 AM", TotalSpots: 10, AvailableSpots: 4},
	}, nil)

	detail, err := svc.GetExperienceDetail(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 1, detail.Experience.ID)
	assert.Len(t, detail.Slots, 1)
	mockRepo.AssertExpectations(t)
}

func TestServiceGetExperienceDetailNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, nil)

	mockRepo.On("GetExperienceByID", mock.Anything, 99).Return(nil, ErrNotFound)

	_, err := svc.GetExperienceDetail(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceCreateSlotChecksExperience(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, nil)

	mockRepo.On("GetExperienceByID", mock.Anything, 7).Return(nil, ErrNotFound)

	_, err := svc.CreateSlot(context.Background(), 7, CreateSlotRequest{Date: "Nov 1", Time: "07:00 AM", TotalSpots: 10})

	assert.ErrorIs(t, err, ErrNotFound)
	mockRepo.AssertNotCalled(t, "CreateSlot")
}

func TestServiceCreateExperienceError(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, nil)

	mockRepo.On("CreateExperience", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.CreateExperience(context.Background(), CreateExperienceRequest{Title: "X"})

	assert.Error(t, err)
}
