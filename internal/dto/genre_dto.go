package dto

import "vinylstore/internal/models"

// MusicGenreDTO is the transfer shape for a music genre.
type MusicGenreDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	TotalGroups int    `json:"total_groups"`
}

// MusicGenreInsertDTO carries the fields for creating a genre.
type MusicGenreInsertDTO struct {
	Name string `json:"name"`
}

// MusicGenreUpdateDTO carries a full-field overwrite for a genre.
type MusicGenreUpdateDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NewMusicGenreDTO converts a genre entity to its transfer shape.
func NewMusicGenreDTO(g *models.MusicGenre) MusicGenreDTO {
	return MusicGenreDTO{
		ID:          g.ID,
		Name:        g.Name,
		TotalGroups: len(g.Groups),
	}
}

// NewMusicGenreDTOs converts a slice of genre entities.
func NewMusicGenreDTOs(genres []models.MusicGenre) []MusicGenreDTO {
	out := make([]MusicGenreDTO, 0, len(genres))
	for i := range genres {
		out = append(out, NewMusicGenreDTO(&genres[i]))
	}
	return out
}
