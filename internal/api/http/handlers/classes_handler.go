package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/guisandroni/classroom-service/internal/api/dto"
	"github.com/guisandroni/classroom-service/internal/service"
	apperrors "github.com/guisandroni/classroom-service/pkg/util"
)

// ClassesHandler exposes class endpoints.
type ClassesHandler struct {
	classes *service.ClassService
}

// NewClassesHandler constructs handler.
func NewClassesHandler(classes *service.ClassService) *ClassesHandler {
	return &ClassesHandler{classes: classes}
}

// List handles GET /api/classes.
func (h *ClassesHandler) List(c *fiber.Ctx) error {
	classes, err := h.classes.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewClassResponses(classes))
}

// Get handles GET /api/classes/:id.
func (h *ClassesHandler) Get(c *fiber.Ctx) error {
	class, err := h.classes.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewClassResponse(class))
}

// ListByTraining handles GET /api/classes/training/:trainingId.
func (h *ClassesHandler) ListByTraining(c *fiber.Ctx) error {
	classes, err := h.classes.ListByTraining(c.Context(), c.Params("trainingId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewClassResponses(classes))
}

// Create handles POST /api/classes.
func (h *ClassesHandler) Create(c *fiber.Ctx) error {
	input, err := h.parseInput(c)
	if err != nil {
		return err
	}
	class, err := h.classes.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewClassResponse(class))
}

// Update handles PUT /api/classes/:id.
func (h *ClassesHandler) Update(c *fiber.Ctx) error {
	input, err := h.parseInput(c)
	if err != nil {
		return err
	}
	class, err := h.classes.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewClassResponse(class))
}

// Delete handles DELETE /api/classes/:id.
func (h *ClassesHandler) Delete(c *fiber.Ctx) error {
	if err := h.classes.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ClassesHandler) parseInput(c *fiber.Ctx) (service.ClassInput, error) {
	var req dto.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return service.ClassInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.TrainingID == "" || req.Name == "" || req.StartDate.IsZero() || req.EndDate.IsZero() {
		return service.ClassInput{}, apperrors.NewValidationError("trainingId, name, startDate, endDate required", nil)
	}
	return service.ClassInput{
		TrainingID: req.TrainingID,
		Name:       req.Name,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		AccessLink: req.AccessLink,
	}, nil
}
