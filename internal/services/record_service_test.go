package services_test

import (
	"fmt"
	"testing"

	"vinylstore/internal/dto"
	"vinylstore/internal/models"
	"vinylstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRecordRepository is a mock implementation of repositories.RecordRepository
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) GetAll() ([]models.Record, error) {
	args := m.Called()
	return args.Get(0).([]models.Record), args.Error(1)
}

func (m *MockRecordRepository) GetByID(id int) (*models.Record, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Record), args.Error(1)
}

func (m *MockRecordRepository) GetSortedByTitle(ascending bool) ([]models.Record, error) {
	args := m.Called(ascending)
	return args.Get(0).([]models.Record), args.Error(1)
}

func (m *MockRecordRepository) SearchByTitle(text string) ([]models.Record, error) {
	args := m.Called(text)
	return args.Get(0).([]models.Record), args.Error(1)
}

func (m *MockRecordRepository) GetByPriceRange(min, max float64) ([]models.Record, error) {
	args := m.Called(min, max)
	return args.Get(0).([]models.Record), args.Error(1)
}

func (m *MockRecordRepository) GroupExists(groupID int) (bool, error) {
	args := m.Called(groupID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecordRepository) Create(record *models.Record) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockRecordRepository) Update(record *models.Record) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockRecordRepository) UpdateStock(id, expectedStock, newStock int) (bool, error) {
	args := m.Called(id, expectedStock, newStock)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecordRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func newStoredRecord(stock int) *models.Record {
	return &models.Record{
		ID:          1,
		Title:       "Dark Side of the Moon",
		Year:        1973,
		ImageRecord: "https://i.imgur.com/darkside.jpg",
		Price:       29.99,
		Stock:       stock,
		GroupID:     1,
	}
}

func TestRecordService_AdjustStock_Decrease(t *testing.T) {
	mockRepo := new(MockRecordRepository)
	service := services.NewRecordService(mockRepo, nil)

	mockRepo.On("GetByID", 1).Return(newStoredRecord(5), nil).Once()
	mockRepo.On("UpdateStock", 1, 5, 0).Return(true, nil).Once()

	result, err := service.AdjustStock(1, -5)

	assert.NoError(t, err)
	assert.Equal(t, 5, result.PreviousStock)
	assert.Equal(t, 0, result.NewStock)
	assert.Equal(t, "Dark Side of the Moon", result.Title)
	mockRepo.AssertExpectations(t)
}

func TestRecordService_AdjustStock_Increase(t *testing.T) {
	mockRepo := new(MockRecordRepository)
	service := services.NewRecordService(mockRepo, nil)

	mockRepo.On("GetByID", 1).Return(newStoredRecord(0), nil).Once()
	mockRepo.On("UpdateStock", 1, 0, 3).Return(true, nil).Once()

	result, err := service.AdjustStock(1, 3)

	assert.NoError(t, err)
	assert.Equal(t, 0, result.PreviousStock)
	assert.Equal(t, 3, result.NewStock)
	mockRepo.AssertExpectations(t)
}

func TestRecordService_AdjustStock_ExceedsAvailable(t *testing.T) {
	mockRepo := new(MockRecordRepository)
	service := services.NewRecordService(mockRepo, nil)

	// Decrease of 6 against a stock of 5 must fail without writing.
	mockRepo.On("GetByID", 1).Return(newStoredRecord(5), nil).Once()

	result, err := service.AdjustStock(1, -6)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrStockExceeded)
	assert.Contains(t, err.Error(), "requested 6, available 5")
	mockRepo.AssertNotCalled(t, "UpdateStock", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestRecordService_AdjustStock_NotFound(t *testing.T) {
	mockRepo := new(MockRecordRepository)
	service := services.NewRecordService(mockRepo, nil)

	mockRepo.On("GetByID", 99).Return(nil, nil).Once()

	result, err := service.AdjustStock(99, 1)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestRecordService_AdjustStock_RetriesOnContention(t *testing.T) {
	mockRepo := new(MockRecordRepository)
	service := services.NewRecordService(mockRepo, nil)

	// First attempt loses the conditional write; the re-read sees the
	// stock another adjustment left behind and the second write lands.
	mockRepo.On("GetByID", 1).Return(newStoredRecord(5), nil).Once()
	mockRepo.On("UpdateStock", 1, 5, 4).Return(false, nil).Once()
	mockRepo.On("GetByID", 1).Return(newStoredRecord(4), nil).Once()
	mockRepo.On("UpdateStock", 1, 4, 3).Return(true, nil).Once()

	result, err := service.AdjustStock(1, -1)

	assert.NoError(t, err)
	assert.Equal(t, 4, result.PreviousStock)
	assert.Equal(t, 3, result.NewStock)
	mockRepo.AssertExpectations(t)
}

func TestRecordService_AdjustStock_ConflictAfterRetries(t *testing.T) {
	mockRepo := new(MockRecordRepository)
	service := services.NewRecordService(mockRepo, nil)

	mockRepo.On("GetByID", 1).Return(newStoredRecord(5), nil).Twice()
	mockRepo.On("UpdateStock", 1, 5, 4).Return(false, nil).Twice()

	result, err := service.AdjustStock(1, -1)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrStockConflict)
	mockRepo.AssertExpectations(t)
}

func TestRecordService_Create(t *testing.T) {
	mockRepo := new(MockRecordRepository)
	service := services.NewRecordService(mockRepo, nil)

	in := dto.RecordInsertDTO{
		Title:    "Wish You Were Here",
		Year:     1975,
		ImageURL: "https://i.imgur.com/wish.jpg",
		Price:    24.99,
		Stock:    10,
		GroupID:  1,
	}

	// Test successful creation
	mockRepo.On("GroupExists", 1).Return(true, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Record")).Return(nil).Once()

	result, err := service.Create(in)
	assert.NoError(t, err)
	assert.Equal(t, "Wish You Were Here", result.Title)
	assert.Equal(t, "https://i.imgur.com/wish.jpg", result.ImageURL)
	mockRepo.AssertExpectations(t)

	// Test creation against a missing group
	in.GroupID = 99
	mockRepo.On("GroupExists", 99).Return(false, nil).Once()

	result, err = service.Create(in)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrGroupNotFound)
	mockRepo.AssertExpectations(t)
}

func TestRecordService_Update_KeepsImageWhenEmpty(t *testing.T) {
	mockRepo := new(MockRecordRepository)
	service := services.NewRecordService(mockRepo, nil)

	stored := newStoredRecord(5)
	mockRepo.On("GetByID", 1).Return(stored, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Record")).Return(nil).Once()

	result, err := service.Update(1, dto.RecordUpdateDTO{
		ID:      1,
		Title:   "Dark Side of the Moon (Remaster)",
		Year:    1973,
		Price:   34.99,
		Stock:   5,
		GroupID: 1,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Dark Side of the Moon (Remaster)", result.Title)
	assert.Equal(t, "https://i.imgur.com/darkside.jpg", result.ImageURL)
	mockRepo.AssertExpectations(t)
}

func TestRecordService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockRecordRepository)
	service := services.NewRecordService(mockRepo, nil)

	mockRepo.On("GetByID", 99).Return(nil, nil).Once()

	result, err := service.Update(99, dto.RecordUpdateDTO{ID: 99})
	assert.NoError(t, err)
	assert.Nil(t, result)
	mockRepo.AssertExpectations(t)
}

func TestRecordService_GetByPriceRange(t *testing.T) {
	mockRepo := new(MockRecordRepository)
	service := services.NewRecordService(mockRepo, nil)

	expected := []models.Record{*newStoredRecord(5)}
	mockRepo.On("GetByPriceRange", 10.0, 50.0).Return(expected, nil).Once()

	records, err := service.GetByPriceRange(10.0, 50.0)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "Dark Side of the Moon", records[0].Title)
	mockRepo.AssertExpectations(t)
}

func TestRecordService_Delete(t *testing.T) {
	mockRepo := new(MockRecordRepository)
	service := services.NewRecordService(mockRepo, nil)

	// Test successful deletion
	mockRepo.On("GetByID", 1).Return(newStoredRecord(5), nil).Once()
	mockRepo.On("Delete", 1).Return(nil).Once()

	result, err := service.Delete(1)
	assert.NoError(t, err)
	assert.Equal(t, "Dark Side of the Moon", result.Title)
	mockRepo.AssertExpectations(t)

	// Test deletion of a missing record
	mockRepo.On("GetByID", 99).Return(nil, nil).Once()

	result, err = service.Delete(99)
	assert.NoError(t, err)
	assert.Nil(t, result)
	mockRepo.AssertExpectations(t)

	// Test repository failure
	mockRepo.On("GetByID", 1).Return(newStoredRecord(5), nil).Once()
	mockRepo.On("Delete", 1).Return(fmt.Errorf("database error")).Once()

	result, err = service.Delete(1)
	assert.Error(t, err)
	assert.Nil(t, result)
	mockRepo.AssertExpectations(t)
}
