package services

import (
	"errors"
	"fmt"

	"vinylstore/internal/dto"
	"vinylstore/internal/repositories"
)

// GroupService handles business logic related to groups.
type GroupService struct {
	repo repositories.GroupRepository
}

// NewGroupService creates a new GroupService.
func NewGroupService(repo repositories.GroupRepository) *GroupService {
	return &GroupService{
		repo: repo,
	}
}

// GetAll retrieves all groups with genre names and record counts.
func (s *GroupService) GetAll() ([]dto.GroupDTO, error) {
	groups, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.GroupDTO, 0, len(groups))
	for i := range groups {
		out = append(out, dto.NewGroupDTO(&groups[i]))
	}
	return out, nil
}

// GetByID retrieves a single group, or nil when the id does not exist.
func (s *GroupService) GetByID(id int) (*dto.GroupItemDTO, error) {
	group, err := s.repo.GetByID(id)
	if err != nil || group == nil {
		return nil, err
	}
	d := dto.NewGroupItemDTO(group)
	return &d, nil
}

// GetGroupsRecords retrieves all groups along with their records.
func (s *GroupService) GetGroupsRecords() ([]dto.GroupRecordsDTO, error) {
	groups, err := s.repo.GetAllWithRecords()
	if err != nil {
		return nil, err
	}
	out := make([]dto.GroupRecordsDTO, 0, len(groups))
	for i := range groups {
		out = append(out, dto.NewGroupRecordsDTO(&groups[i]))
	}
	return out, nil
}

// GetRecordsByGroup retrieves one group with its records, or nil when
// the id does not exist.
func (s *GroupService) GetRecordsByGroup(id int) (*dto.GroupRecordsDTO, error) {
	group, err := s.repo.GetByIDWithRecords(id)
	if err != nil || group == nil {
		return nil, err
	}
	d := dto.NewGroupRecordsDTO(group)
	return &d, nil
}

// SearchByName retrieves groups whose name contains the given text,
// case-insensitively. Minimum search length is enforced by the handler.
func (s *GroupService) SearchByName(text string) ([]dto.GroupItemDTO, error) {
	groups, err := s.repo.SearchByName(text)
	if err != nil {
		return nil, err
	}
	return dto.NewGroupItemDTOs(groups), nil
}

// GetSortedByName retrieves all groups ordered by name.
func (s *GroupService) GetSortedByName(ascending bool) ([]dto.GroupItemDTO, error) {
	groups, err := s.repo.GetSortedByName(ascending)
	if err != nil {
		return nil, err
	}
	return dto.NewGroupItemDTOs(groups), nil
}

// Create persists a new group after checking that the referenced music
// genre exists.
func (s *GroupService) Create(in dto.GroupInsertDTO) (*dto.GroupItemDTO, error) {
	exists, err := s.repo.GenreExists(in.MusicGenreID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("music genre with ID %d: %w", in.MusicGenreID, ErrGenreNotFound)
	}

	group := in.ToModel()
	if err := s.repo.Create(&group); err != nil {
		return nil, err
	}

	d := dto.NewGroupItemDTO(&group)
	return &d, nil
}

// Update overwrites the group's fields from the payload. The stored
// image is kept when the incoming URL is empty. Returns nil when the id
// does not exist.
func (s *GroupService) Update(id int, in dto.GroupUpdateDTO) (*dto.GroupItemDTO, error) {
	group, err := s.repo.GetByID(id)
	if err != nil || group == nil {
		return nil, err
	}

	exists, err := s.repo.GenreExists(in.MusicGenreID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("music genre with ID %d: %w", in.MusicGenreID, ErrGenreNotFound)
	}

	in.Apply(group)
	if err := s.repo.Update(group); err != nil {
		return nil, err
	}

	d := dto.NewGroupItemDTO(group)
	return &d, nil
}

// HasRecords reports whether the group still owns records.
func (s *GroupService) HasRecords(id int) (bool, error) {
	return s.repo.HasRecords(id)
}

// Delete removes a group and returns its last transfer shape, or nil
// when the id does not exist. A group that still owns records cannot be
// deleted; the repository re-checks that inside the delete transaction
// and the service reports it as ErrHasDependents.
func (s *GroupService) Delete(id int) (*dto.GroupItemDTO, error) {
	group, err := s.repo.GetByID(id)
	if err != nil || group == nil {
		return nil, err
	}

	d := dto.NewGroupItemDTO(group)
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrDependentRows) {
			return nil, fmt.Errorf("group with ID %d has associated records: %w", id, ErrHasDependents)
		}
		return nil, err
	}
	return &d, nil
}
