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

// GroupHandler handles HTTP requests for groups.
type GroupHandler struct {
	service *services.GroupService
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(service *services.GroupService) *GroupHandler {
	return &GroupHandler{
		service: service,
	}
}

// RegisterRoutes registers the group routes. Read endpoints are public;
// mutations go on the admin router.
func (h *GroupHandler) RegisterRoutes(public, admin fiber.Router) {
	groups := public.Group("/groups")
	groups.Get("/", h.HandleGetAll)
	groups.Get("/records", h.HandleGetGroupsRecords)
	groups.Get("/sorted/:asc", h.HandleGetSortedByName)
	groups.Get("/search/:text", h.HandleSearchByName)
	groups.Get("/:id", h.HandleGetByID)
	groups.Get("/:id/records", h.HandleGetRecordsByGroup)

	adminGroups := admin.Group("/groups")
	adminGroups.Post("/", h.HandleCreate)
	adminGroups.Put("/:id", h.HandleUpdate)
	adminGroups.Delete("/:id", h.HandleDelete)
}

// HandleGetAll retrieves all groups with genre names and record counts.
func (h *GroupHandler) HandleGetAll(c *fiber.Ctx) error {
	groups, err := h.service.GetAll()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(groups)
}

// HandleGetByID retrieves a single group by its ID.
func (h *GroupHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The group ID must be greater than zero",
		})
	}

	group, err := h.service.GetByID(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if group == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("The group with ID %d was not found", id),
		})
	}
	return c.JSON(group)
}

// HandleGetGroupsRecords retrieves all groups along with their records.
func (h *GroupHandler) HandleGetGroupsRecords(c *fiber.Ctx) error {
	groups, err := h.service.GetGroupsRecords()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(groups)
}

// HandleGetRecordsByGroup retrieves one group with its records.
func (h *GroupHandler) HandleGetRecordsByGroup(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The group ID must be greater than zero",
		})
	}

	group, err := h.service.GetRecordsByGroup(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if group == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("The group with ID %d was not found", id),
		})
	}
	return c.JSON(group)
}

// HandleSearchByName retrieves groups whose name contains the text. The
// minimum search length is enforced here, not in the service.
func (h *GroupHandler) HandleSearchByName(c *fiber.Ctx) error {
	text := strings.TrimSpace(c.Params("text"))
	if text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The search text cannot be empty",
		})
	}
	if len(text) < 2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The search text must have at least 2 characters",
		})
	}

	groups, err := h.service.SearchByName(text)
	if err != nil {
		return respondServiceError(c, err)
	}
	if len(groups) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("No groups found with the name '%s'", text),
		})
	}
	return c.JSON(groups)
}

// HandleGetSortedByName retrieves all groups sorted by name.
func (h *GroupHandler) HandleGetSortedByName(c *fiber.Ctx) error {
	ascending, err := strconv.ParseBool(c.Params("asc"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The sort direction must be true or false",
		})
	}

	groups, err := h.service.GetSortedByName(ascending)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(groups)
}

// HandleCreate adds a new group.
func (h *GroupHandler) HandleCreate(c *fiber.Ctx) error {
	var in dto.GroupInsertDTO
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing group insert body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if errs := validation.ValidateGroupInsert(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  errs,
		})
	}

	group, err := h.service.Create(in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Group created successfully",
		"data":    group,
	})
}

// HandleUpdate updates an existing group. The route id must match the
// id in the payload.
func (h *GroupHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The group ID must be greater than zero",
		})
	}

	var in dto.GroupUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing group update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if errs := validation.ValidateGroupUpdate(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  errs,
		})
	}

	if id != in.ID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The ID of the route does not match the ID of the group",
		})
	}

	group, err := h.service.Update(id, in)
	if err != nil {
		return respondServiceError(c, err)
	}
	if group == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("The group with ID %d was not found", id),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Group updated successfully",
		"data":    group,
	})
}

// HandleDelete deletes a group by its ID. Deletion is blocked while
// records still reference the group.
func (h *GroupHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The group ID must be greater than zero",
		})
	}

	group, err := h.service.Delete(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if group == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("The group with ID %d was not found", id),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Group deleted successfully",
		"data":    group,
	})
}
