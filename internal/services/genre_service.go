package services

import (
	"errors"
	"fmt"

	"vinylstore/internal/dto"
	"vinylstore/internal/models"
	"vinylstore/internal/repositories"
)

// MusicGenreService handles business logic related to music genres.
type MusicGenreService struct {
	repo repositories.MusicGenreRepository
}

// NewMusicGenreService creates a new MusicGenreService.
func NewMusicGenreService(repo repositories.MusicGenreRepository) *MusicGenreService {
	return &MusicGenreService{
		repo: repo,
	}
}

// GetAll retrieves all genres with their group counts.
func (s *MusicGenreService) GetAll() ([]dto.MusicGenreDTO, error) {
	genres, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return dto.NewMusicGenreDTOs(genres), nil
}

// GetByID retrieves a single genre, or nil when the id does not exist.
func (s *MusicGenreService) GetByID(id int) (*dto.MusicGenreDTO, error) {
	genre, err := s.repo.GetByID(id)
	if err != nil || genre == nil {
		return nil, err
	}
	d := dto.NewMusicGenreDTO(genre)
	return &d, nil
}

// Create persists a new genre.
func (s *MusicGenreService) Create(in dto.MusicGenreInsertDTO) (*dto.MusicGenreDTO, error) {
	genre := models.MusicGenre{Name: in.Name}
	if err := s.repo.Create(&genre); err != nil {
		return nil, err
	}
	d := dto.NewMusicGenreDTO(&genre)
	return &d, nil
}

// Update overwrites the genre's fields from the payload. Returns nil
// when the id does not exist.
func (s *MusicGenreService) Update(id int, in dto.MusicGenreUpdateDTO) (*dto.MusicGenreDTO, error) {
	genre, err := s.repo.GetByID(id)
	if err != nil || genre == nil {
		return nil, err
	}

	genre.Name = in.Name
	if err := s.repo.Update(genre); err != nil {
		return nil, err
	}

	d := dto.NewMusicGenreDTO(genre)
	return &d, nil
}

// Delete removes a genre and returns its last transfer shape, or nil
// when the id does not exist. A genre still referenced by groups cannot
// be deleted.
func (s *MusicGenreService) Delete(id int) (*dto.MusicGenreDTO, error) {
	genre, err := s.repo.GetByID(id)
	if err != nil || genre == nil {
		return nil, err
	}

	d := dto.NewMusicGenreDTO(genre)
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrDependentRows) {
			return nil, fmt.Errorf("music genre with ID %d has associated groups: %w", id, ErrHasDependents)
		}
		return nil, err
	}
	return &d, nil
}
