package services_test

import (
	"testing"

	"vinylstore/internal/dto"
	"vinylstore/internal/models"
	"vinylstore/internal/repositories"
	"vinylstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGroupRepository is a mock implementation of repositories.GroupRepository
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) GetAll() ([]models.Group, error) {
	args := m.Called()
	return args.Get(0).([]models.Group), args.Error(1)
}

func (m *MockGroupRepository) GetByID(id int) (*models.Group, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupRepository) GetByIDWithRecords(id int) (*models.Group, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupRepository) GetAllWithRecords() ([]models.Group, error) {
	args := m.Called()
	return args.Get(0).([]models.Group), args.Error(1)
}

func (m *MockGroupRepository) SearchByName(text string) ([]models.Group, error) {
	args := m.Called(text)
	return args.Get(0).([]models.Group), args.Error(1)
}

func (m *MockGroupRepository) GetSortedByName(ascending bool) ([]models.Group, error) {
	args := m.Called(ascending)
	return args.Get(0).([]models.Group), args.Error(1)
}

func (m *MockGroupRepository) HasRecords(groupID int) (bool, error) {
	args := m.Called(groupID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGroupRepository) GenreExists(genreID int) (bool, error) {
	args := m.Called(genreID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGroupRepository) Create(group *models.Group) error {
	args := m.Called(group)
	return args.Error(0)
}

func (m *MockGroupRepository) Update(group *models.Group) error {
	args := m.Called(group)
	return args.Error(0)
}

func (m *MockGroupRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func newStoredGroup() *models.Group {
	return &models.Group{
		ID:           1,
		Name:         "Pink Floyd",
		ImageGroup:   "https://i.imgur.com/pinkfloyd.jpg",
		MusicGenreID: 1,
	}
}

func TestGroupService_Create(t *testing.T) {
	mockRepo := new(MockGroupRepository)
	service := services.NewGroupService(mockRepo)

	in := dto.GroupInsertDTO{
		Name:         "Pink Floyd",
		ImageURL:     "https://i.imgur.com/pinkfloyd.jpg",
		MusicGenreID: 1,
	}

	// Test successful creation
	mockRepo.On("GenreExists", 1).Return(true, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Group")).Return(nil).Once()

	result, err := service.Create(in)
	assert.NoError(t, err)
	assert.Equal(t, "Pink Floyd", result.Name)
	mockRepo.AssertExpectations(t)

	// Test creation against a missing genre
	in.MusicGenreID = 99
	mockRepo.On("GenreExists", 99).Return(false, nil).Once()

	result, err = service.Create(in)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrGenreNotFound)
	mockRepo.AssertExpectations(t)
}

func TestGroupService_Update_KeepsImageWhenEmpty(t *testing.T) {
	mockRepo := new(MockGroupRepository)
	service := services.NewGroupService(mockRepo)

	mockRepo.On("GetByID", 1).Return(newStoredGroup(), nil).Once()
	mockRepo.On("GenreExists", 2).Return(true, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Group")).Return(nil).Once()

	result, err := service.Update(1, dto.GroupUpdateDTO{
		ID:           1,
		Name:         "Pink Floyd (Reissue)",
		MusicGenreID: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Pink Floyd (Reissue)", result.Name)
	assert.Equal(t, "https://i.imgur.com/pinkfloyd.jpg", result.ImageURL)
	assert.Equal(t, 2, result.MusicGenreID)
	mockRepo.AssertExpectations(t)
}

func TestGroupService_Delete(t *testing.T) {
	mockRepo := new(MockGroupRepository)
	service := services.NewGroupService(mockRepo)

	// Test successful deletion of a group without records
	mockRepo.On("GetByID", 1).Return(newStoredGroup(), nil).Once()
	mockRepo.On("Delete", 1).Return(nil).Once()

	result, err := service.Delete(1)
	assert.NoError(t, err)
	assert.Equal(t, "Pink Floyd", result.Name)
	mockRepo.AssertExpectations(t)

	// Test deletion blocked while records reference the group
	mockRepo.On("GetByID", 1).Return(newStoredGroup(), nil).Once()
	mockRepo.On("Delete", 1).Return(repositories.ErrDependentRows).Once()

	result, err = service.Delete(1)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrHasDependents)
	mockRepo.AssertExpectations(t)

	// Test deletion of a missing group
	mockRepo.On("GetByID", 99).Return(nil, nil).Once()

	result, err = service.Delete(99)
	assert.NoError(t, err)
	assert.Nil(t, result)
	mockRepo.AssertExpectations(t)
}

func TestGroupService_SearchByName(t *testing.T) {
	mockRepo := new(MockGroupRepository)
	service := services.NewGroupService(mockRepo)

	mockRepo.On("SearchByName", "floyd").Return([]models.Group{*newStoredGroup()}, nil).Once()

	groups, err := service.SearchByName("floyd")
	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, "Pink Floyd", groups[0].Name)
	mockRepo.AssertExpectations(t)
}

func TestGroupService_GetGroupsRecords(t *testing.T) {
	mockRepo := new(MockGroupRepository)
	service := services.NewGroupService(mockRepo)

	group := newStoredGroup()
	group.Records = []models.Record{
		{ID: 1, Title: "The Wall", Year: 1979, GroupID: 1},
		{ID: 2, Title: "Animals", Year: 1977, GroupID: 1},
	}
	mockRepo.On("GetAllWithRecords").Return([]models.Group{*group}, nil).Once()

	groups, err := service.GetGroupsRecords()
	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].TotalRecords)
	assert.Len(t, groups[0].Records, 2)
	mockRepo.AssertExpectations(t)
}
