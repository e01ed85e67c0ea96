package handlers

import (
	"fmt"
	"log"

	"vinylstore/internal/dto"
	"vinylstore/internal/services"
	"vinylstore/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// MusicGenreHandler handles HTTP requests for music genres.
type MusicGenreHandler struct {
	service *services.MusicGenreService
}

// NewMusicGenreHandler creates a new MusicGenreHandler.
func NewMusicGenreHandler(service *services.MusicGenreService) *MusicGenreHandler {
	return &MusicGenreHandler{
		service: service,
	}
}

// RegisterRoutes registers the genre routes.
func (h *MusicGenreHandler) RegisterRoutes(public, admin fiber.Router) {
	genres := public.Group("/genres")
	genres.Get("/", h.HandleGetAll)
	genres.Get("/:id", h.HandleGetByID)

	adminGenres := admin.Group("/genres")
	adminGenres.Post("/", h.HandleCreate)
	adminGenres.Put("/:id", h.HandleUpdate)
	adminGenres.Delete("/:id", h.HandleDelete)
}

// HandleGetAll retrieves all music genres.
func (h *MusicGenreHandler) HandleGetAll(c *fiber.Ctx) error {
	genres, err := h.service.GetAll()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(genres)
}

// HandleGetByID retrieves a single genre by its ID.
func (h *MusicGenreHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The genre ID must be greater than zero",
		})
	}

	genre, err := h.service.GetByID(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if genre == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("The music genre with ID %d was not found", id),
		})
	}
	return c.JSON(genre)
}

// HandleCreate adds a new music genre.
func (h *MusicGenreHandler) HandleCreate(c *fiber.Ctx) error {
	var in dto.MusicGenreInsertDTO
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing genre insert body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if errs := validation.ValidateGenreInsert(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  errs,
		})
	}

	genre, err := h.service.Create(in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(genre)
}

// HandleUpdate updates an existing music genre.
func (h *MusicGenreHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The genre ID must be greater than zero",
		})
	}

	var in dto.MusicGenreUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing genre update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if errs := validation.ValidateGenreUpdate(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  errs,
		})
	}

	if id != in.ID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The ID of the route does not match the ID of the genre",
		})
	}

	genre, err := h.service.Update(id, in)
	if err != nil {
		return respondServiceError(c, err)
	}
	if genre == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("The music genre with ID %d was not found", id),
		})
	}
	return c.JSON(genre)
}

// HandleDelete deletes a music genre by its ID. Deletion is blocked
// while groups still reference the genre.
func (h *MusicGenreHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The genre ID must be greater than zero",
		})
	}

	genre, err := h.service.Delete(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if genre == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("The music genre with ID %d was not found", id),
		})
	}
	return c.JSON(genre)
}
