// Package validation checks catalog payloads before any persistence
// action. Each Validate* function returns the violation messages in
// rule order; an empty slice means the payload is accepted.
package validation

import (
	"regexp"
	"strings"

	"vinylstore/internal/dto"
)

// Image URLs must point at Imgur.
var imgurPattern = regexp.MustCompile(`(?i)^https?://(i\.)?imgur\.com/.*\.(jpg|jpeg|png|gif)$`)

// IsImgurURL reports whether url matches the required Imgur shape.
// Whitespace-only input does not match.
func IsImgurURL(url string) bool {
	if strings.TrimSpace(url) == "" {
		return false
	}
	return imgurPattern.MatchString(url)
}

// optionalURLAbsent treats empty and whitespace-only values as absent,
// so optional image fields skip the pattern check instead of failing it.
func optionalURLAbsent(url string) bool {
	return strings.TrimSpace(url) == ""
}

func nameLengthValid(s string) bool {
	n := len([]rune(s))
	return n >= 2 && n <= 100
}

// ValidateGroupInsert checks a group creation payload.
func ValidateGroupInsert(in dto.GroupInsertDTO) []string {
	var errs []string
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "The group name is required.")
	} else if !nameLengthValid(in.Name) {
		errs = append(errs, "The group name must be between 2 and 100 characters.")
	}
	if !optionalURLAbsent(in.ImageURL) && !IsImgurURL(in.ImageURL) {
		errs = append(errs, "The URL must be from Imgur (e.g.: https://i.imgur.com/example.jpg)")
	}
	if in.MusicGenreID <= 0 {
		errs = append(errs, "The music genre ID is required.")
	}
	return errs
}

// ValidateGroupUpdate checks a group update payload.
func ValidateGroupUpdate(in dto.GroupUpdateDTO) []string {
	var errs []string
	if in.ID <= 0 {
		errs = append(errs, "The group ID is required.")
	}
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "The group name is required.")
	} else if !nameLengthValid(in.Name) {
		errs = append(errs, "The group name must be between 2 and 100 characters.")
	}
	if !optionalURLAbsent(in.ImageURL) && !IsImgurURL(in.ImageURL) {
		errs = append(errs, "The URL must be from Imgur (e.g.: https://i.imgur.com/example.jpg)")
	}
	if in.MusicGenreID <= 0 {
		errs = append(errs, "The music genre ID is required.")
	}
	return errs
}

// ValidateRecordInsert checks a record creation payload. The image URL
// is mandatory here, unlike group payloads and record updates.
func ValidateRecordInsert(in dto.RecordInsertDTO) []string {
	var errs []string
	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, "The title is required")
	} else if !nameLengthValid(in.Title) {
		errs = append(errs, "The title must be between 2 and 100 characters")
	}
	if in.Year < 1900 || in.Year > 2100 {
		errs = append(errs, "The publication year must be between 1900 and 2100")
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		errs = append(errs, "The image URL is required")
	} else if !IsImgurURL(in.ImageURL) {
		errs = append(errs, "The URL must be from Imgur (e.g.: https://i.imgur.com/example.jpg)")
	}
	if in.Price <= 0 {
		errs = append(errs, "The price must be greater than zero")
	}
	if in.Stock < 0 {
		errs = append(errs, "Stock cannot be negative")
	}
	if in.GroupID <= 0 {
		errs = append(errs, "The group ID is required")
	}
	return errs
}

// ValidateRecordUpdate checks a record update payload. The image URL is
// optional; when absent the stored image is kept.
func ValidateRecordUpdate(in dto.RecordUpdateDTO) []string {
	var errs []string
	if in.ID <= 0 {
		errs = append(errs, "The record ID is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, "The album title is required")
	} else if !nameLengthValid(in.Title) {
		errs = append(errs, "The album title must be between 2 and 100 characters")
	}
	if in.Year < 1900 || in.Year > 2100 {
		errs = append(errs, "The publication year must be between 1900 and 2100")
	}
	if !optionalURLAbsent(in.ImageURL) && !IsImgurURL(in.ImageURL) {
		errs = append(errs, "The URL must be from Imgur (e.g.: https://i.imgur.com/example.jpg)")
	}
	if in.Price <= 0 {
		errs = append(errs, "The price must be greater than zero")
	}
	if in.Stock < 0 {
		errs = append(errs, "Stock cannot be negative")
	}
	if in.GroupID <= 0 {
		errs = append(errs, "The group ID is required")
	}
	return errs
}

// ValidateGenreInsert checks a genre creation payload.
func ValidateGenreInsert(in dto.MusicGenreInsertDTO) []string {
	var errs []string
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "The genre name is required")
	} else if !nameLengthValid(in.Name) {
		errs = append(errs, "The genre name must be between 2 and 100 characters")
	}
	return errs
}

// ValidateGenreUpdate checks a genre update payload.
func ValidateGenreUpdate(in dto.MusicGenreUpdateDTO) []string {
	var errs []string
	if in.ID <= 0 {
		errs = append(errs, "The genre ID is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "The genre name is required")
	} else if !nameLengthValid(in.Name) {
		errs = append(errs, "The genre name must be between 2 and 100 characters")
	}
	return errs
}

// ValidateCartItem checks an add-to-cart request.
func ValidateCartItem(in dto.CartItemInsertDTO) []string {
	var errs []string
	if in.RecordID <= 0 {
		errs = append(errs, "The record ID is required")
	}
	if in.Quantity < 1 {
		errs = append(errs, "The quantity must be at least 1")
	}
	return errs
}
