package validation_test

import (
	"strings"
	"testing"

	"vinylstore/internal/dto"
	"vinylstore/internal/validation"

	"github.com/stretchr/testify/assert"
)

func validRecordInsert() dto.RecordInsertDTO {
	return dto.RecordInsertDTO{
		Title:    "Abbey Road",
		Year:     1969,
		ImageURL: "https://i.imgur.com/abc.jpg",
		Price:    19.99,
		Stock:    10,
		GroupID:  1,
	}
}

func TestValidateRecordInsert_Valid(t *testing.T) {
	errs := validation.ValidateRecordInsert(validRecordInsert())
	assert.Empty(t, errs)
}

func TestValidateRecordInsert_TitleBoundaries(t *testing.T) {
	cases := []struct {
		name  string
		title string
		valid bool
	}{
		{"empty", "", false},
		{"one char", "A", false},
		{"exactly two chars", "AB", true},
		{"exactly hundred chars", strings.Repeat("a", 100), true},
		{"hundred and one chars", strings.Repeat("a", 101), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRecordInsert()
			in.Title = tc.title
			errs := validation.ValidateRecordInsert(in)
			if tc.valid {
				assert.Empty(t, errs)
			} else {
				assert.NotEmpty(t, errs)
			}
		})
	}
}

func TestValidateRecordInsert_YearBoundaries(t *testing.T) {
	cases := []struct {
		year  int
		valid bool
	}{
		{1899, false},
		{1900, true},
		{2100, true},
		{2101, false},
	}
	for _, tc := range cases {
		in := validRecordInsert()
		in.Year = tc.year
		errs := validation.ValidateRecordInsert(in)
		if tc.valid {
			assert.Empty(t, errs, "year %d should be accepted", tc.year)
		} else {
			assert.Contains(t, errs, "The publication year must be between 1900 and 2100")
		}
	}
}

func TestValidateRecordInsert_ImageURLMandatory(t *testing.T) {
	in := validRecordInsert()
	in.ImageURL = ""
	errs := validation.ValidateRecordInsert(in)
	assert.Contains(t, errs, "The image URL is required")

	in.ImageURL = "   "
	errs = validation.ValidateRecordInsert(in)
	assert.Contains(t, errs, "The image URL is required")

	in.ImageURL = "https://example.com/abc.jpg"
	errs = validation.ValidateRecordInsert(in)
	assert.Contains(t, errs, "The URL must be from Imgur (e.g.: https://i.imgur.com/example.jpg)")
}

func TestValidateRecordInsert_PriceAndStock(t *testing.T) {
	in := validRecordInsert()
	in.Price = 0
	errs := validation.ValidateRecordInsert(in)
	assert.Contains(t, errs, "The price must be greater than zero")

	in = validRecordInsert()
	in.Stock = -1
	errs = validation.ValidateRecordInsert(in)
	assert.Contains(t, errs, "Stock cannot be negative")

	in = validRecordInsert()
	in.Stock = 0
	assert.Empty(t, validation.ValidateRecordInsert(in))
}

func TestValidateRecordInsert_GroupID(t *testing.T) {
	in := validRecordInsert()
	in.GroupID = 0
	errs := validation.ValidateRecordInsert(in)
	assert.Contains(t, errs, "The group ID is required")
}

func TestValidateRecordInsert_CollectsAllViolations(t *testing.T) {
	errs := validation.ValidateRecordInsert(dto.RecordInsertDTO{})
	// Title, year, image, price and group id are all wrong; stock zero is fine.
	assert.Len(t, errs, 5)
	assert.Equal(t, "The title is required", errs[0])
}

func TestValidateRecordUpdate_OptionalImage(t *testing.T) {
	in := dto.RecordUpdateDTO{
		ID:      1,
		Title:   "Abbey Road",
		Year:    1969,
		Price:   19.99,
		Stock:   5,
		GroupID: 1,
	}
	// Absent URL is skipped, not failed.
	assert.Empty(t, validation.ValidateRecordUpdate(in))

	in.ImageURL = "   "
	assert.Empty(t, validation.ValidateRecordUpdate(in))

	in.ImageURL = "https://example.com/abc.png"
	errs := validation.ValidateRecordUpdate(in)
	assert.Contains(t, errs, "The URL must be from Imgur (e.g.: https://i.imgur.com/example.jpg)")

	in.ImageURL = "https://i.imgur.com/abc.png"
	assert.Empty(t, validation.ValidateRecordUpdate(in))
}

func TestValidateRecordUpdate_RequiresID(t *testing.T) {
	in := dto.RecordUpdateDTO{Title: "Abbey Road", Year: 1969, Price: 1, Stock: 0, GroupID: 1}
	errs := validation.ValidateRecordUpdate(in)
	assert.Contains(t, errs, "The record ID is required")
}

func TestValidateGroupInsert(t *testing.T) {
	valid := dto.GroupInsertDTO{Name: "Pink Floyd", MusicGenreID: 1}
	assert.Empty(t, validation.ValidateGroupInsert(valid))

	// Image is optional for groups.
	valid.ImageURL = "https://imgur.com/floyd.gif"
	assert.Empty(t, validation.ValidateGroupInsert(valid))

	in := dto.GroupInsertDTO{Name: "P", MusicGenreID: 0, ImageURL: "https://example.com/x.jpg"}
	errs := validation.ValidateGroupInsert(in)
	assert.Equal(t, []string{
		"The group name must be between 2 and 100 characters.",
		"The URL must be from Imgur (e.g.: https://i.imgur.com/example.jpg)",
		"The music genre ID is required.",
	}, errs)
}

func TestValidateGroupUpdate(t *testing.T) {
	valid := dto.GroupUpdateDTO{ID: 3, Name: "Pink Floyd", MusicGenreID: 1}
	assert.Empty(t, validation.ValidateGroupUpdate(valid))

	in := dto.GroupUpdateDTO{Name: "Pink Floyd", MusicGenreID: 1}
	errs := validation.ValidateGroupUpdate(in)
	assert.Equal(t, []string{"The group ID is required."}, errs)
}

func TestIsImgurURL(t *testing.T) {
	cases := []struct {
		url   string
		match bool
	}{
		{"https://i.imgur.com/abc.jpg", true},
		{"http://imgur.com/abc.jpeg", true},
		{"HTTPS://I.IMGUR.COM/ABC.PNG", true},
		{"https://i.imgur.com/abc.gif", true},
		{"https://example.com/abc.jpg", false},
		{"https://i.imgur.com/abc.webp", false},
		{"", false},
		{"   ", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.match, validation.IsImgurURL(tc.url), "url %q", tc.url)
	}
}

func TestValidateCartItem(t *testing.T) {
	assert.Empty(t, validation.ValidateCartItem(dto.CartItemInsertDTO{RecordID: 1, Quantity: 1}))

	errs := validation.ValidateCartItem(dto.CartItemInsertDTO{RecordID: 0, Quantity: 0})
	assert.Equal(t, []string{
		"The record ID is required",
		"The quantity must be at least 1",
	}, errs)
}
