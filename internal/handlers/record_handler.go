package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"vinylstore/internal/dto"
	"vinylstore/internal/services"
	"vinylstore/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// RecordHandler handles HTTP requests for records.
type RecordHandler struct {
	service *services.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(service *services.RecordService) *RecordHandler {
	return &RecordHandler{
		service: service,
	}
}

// RegisterRoutes registers the record routes. Read endpoints and the
// stock adjustment are public; mutations go on the admin router.
func (h *RecordHandler) RegisterRoutes(public, admin fiber.Router) {
	records := public.Group("/records")
	records.Get("/", h.HandleGetAll)
	records.Get("/sorted/:asc", h.HandleGetSortedByTitle)
	records.Get("/search/:text", h.HandleSearchByTitle)
	records.Get("/price-range", h.HandleGetByPriceRange)
	records.Get("/:id", h.HandleGetByID)
	records.Put("/:id/stock/:amount", h.HandleAdjustStock)

	adminRecords := admin.Group("/records")
	adminRecords.Post("/", h.HandleCreate)
	adminRecords.Put("/:id", h.HandleUpdate)
	adminRecords.Delete("/:id", h.HandleDelete)
}

// HandleGetAll retrieves all records.
func (h *RecordHandler) HandleGetAll(c *fiber.Ctx) error {
	records, err := h.service.GetAll()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(records)
}

// HandleGetByID retrieves a single record by its ID.
func (h *RecordHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The record ID is not valid",
		})
	}

	record, err := h.service.GetByID(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("The record with ID %d was not found", id),
		})
	}
	return c.JSON(record)
}

// HandleGetSortedByTitle retrieves all records sorted by title.
func (h *RecordHandler) HandleGetSortedByTitle(c *fiber.Ctx) error {
	ascending, err := strconv.ParseBool(c.Params("asc"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The sort direction must be true or false",
		})
	}

	records, err := h.service.GetSortedByTitle(ascending)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(records)
}

// HandleSearchByTitle retrieves records whose title contains the text.
func (h *RecordHandler) HandleSearchByTitle(c *fiber.Ctx) error {
	text := strings.TrimSpace(c.Params("text"))
	if text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The search text cannot be empty",
		})
	}

	records, err := h.service.SearchByTitle(text)
	if err != nil {
		return respondServiceError(c, err)
	}
	if len(records) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("No records were found that match the text '%s'", text),
		})
	}
	return c.JSON(records)
}

// HandleGetByPriceRange retrieves records priced within [min, max].
func (h *RecordHandler) HandleGetByPriceRange(c *fiber.Ctx) error {
	min := c.QueryFloat("min")
	max := c.QueryFloat("max")

	if min < 0 || max < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The prices cannot be negative",
		})
	}
	if min > max {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The minimum price cannot be greater than the maximum price",
		})
	}

	records, err := h.service.GetByPriceRange(min, max)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(records)
}

// HandleCreate adds a new record.
func (h *RecordHandler) HandleCreate(c *fiber.Ctx) error {
	var in dto.RecordInsertDTO
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing record insert body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if errs := validation.ValidateRecordInsert(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  errs,
		})
	}

	record, err := h.service.Create(in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// HandleUpdate updates an existing record. The route id must match the
// id in the payload.
func (h *RecordHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The record ID is not valid",
		})
	}

	var in dto.RecordUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing record update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if id != in.ID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The ID of the route does not match the ID of the record",
		})
	}

	if errs := validation.ValidateRecordUpdate(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  errs,
		})
	}

	record, err := h.service.Update(id, in)
	if err != nil {
		return respondServiceError(c, err)
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("The record with ID %d was not found", id),
		})
	}
	return c.JSON(record)
}

// HandleAdjustStock applies a positive or negative delta to a record's
// stock. The invariant that stock never goes negative is enforced by
// the service regardless of what the caller last saw.
func (h *RecordHandler) HandleAdjustStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The record ID is not valid",
		})
	}
	amount, err := c.ParamsInt("amount")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The stock amount is not valid",
		})
	}

	result, err := h.service.AdjustStock(id, amount)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":        fmt.Sprintf("The stock of the record with ID %d has been updated by %d units", id, amount),
		"title":          result.Title,
		"previous_stock": result.PreviousStock,
		"new_stock":      result.NewStock,
	})
}

// HandleDelete deletes a record by its ID, returning the deleted record.
func (h *RecordHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The record ID is not valid",
		})
	}

	record, err := h.service.Delete(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("The record with ID %d was not found", id),
		})
	}
	return c.JSON(record)
}
