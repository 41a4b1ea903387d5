package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/guisandroni/classroom-service/internal/api/dto"
	"github.com/guisandroni/classroom-service/internal/domain"
	"github.com/guisandroni/classroom-service/internal/service"
	apperrors "github.com/guisandroni/classroom-service/pkg/util"
)

// ResourcesHandler exposes resource endpoints.
type ResourcesHandler struct {
	resources *service.ResourceService
}

// NewResourcesHandler constructs handler.
func NewResourcesHandler(resources *service.ResourceService) *ResourcesHandler {
	return &ResourcesHandler{resources: resources}
}

// List handles GET /api/resources.
func (h *ResourcesHandler) List(c *fiber.Ctx) error {
	resources, err := h.resources.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewResourceResponses(resources))
}

// Get handles GET /api/resources/:id.
func (h *ResourcesHandler) Get(c *fiber.Ctx) error {
	resource, err := h.resources.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewResourceResponse(resource))
}

// ListByClass handles GET /api/resources/class/:classId.
func (h *ResourcesHandler) ListByClass(c *fiber.Ctx) error {
	resources, err := h.resources.ListByClass(c.Context(), c.Params("classId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewResourceResponses(resources))
}

// Create handles POST /api/resources.
func (h *ResourcesHandler) Create(c *fiber.Ctx) error {
	input, err := h.parseInput(c)
	if err != nil {
		return err
	}
	resource, err := h.resources.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewResourceResponse(resource))
}

// Update handles PUT /api/resources/:id.
func (h *ResourcesHandler) Update(c *fiber.Ctx) error {
	input, err := h.parseInput(c)
	if err != nil {
		return err
	}
	resource, err := h.resources.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewResourceResponse(resource))
}

// Delete handles DELETE /api/resources/:id.
func (h *ResourcesHandler) Delete(c *fiber.Ctx) error {
	if err := h.resources.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ResourcesHandler) parseInput(c *fiber.Ctx) (service.ResourceInput, error) {
	var req dto.ResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return service.ResourceInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClassID == "" || req.Name == "" || req.ResourceType == "" {
		return service.ResourceInput{}, apperrors.NewValidationError("classId, name, resourceType required", nil)
	}
	return service.ResourceInput{
		ClassID:        req.ClassID,
		ResourceType:   domain.ResourceType(req.ResourceType),
		PreviousAccess: req.PreviousAccess,
		Draft:          req.Draft,
		Name:           req.Name,
		Description:    req.Description,
	}, nil
}
