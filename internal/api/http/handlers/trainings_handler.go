package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/guisandroni/classroom-service/internal/api/dto"
	"github.com/guisandroni/classroom-service/internal/auth"
	"github.com/guisandroni/classroom-service/internal/service"
	apperrors "github.com/guisandroni/classroom-service/pkg/util"
)

// TrainingsHandler exposes training endpoints.
type TrainingsHandler struct {
	trainings *service.TrainingService
}

// NewTrainingsHandler constructs handler.
func NewTrainingsHandler(trainings *service.TrainingService) *TrainingsHandler {
	return &TrainingsHandler{trainings: trainings}
}

// List handles GET /api/trainings.
func (h *TrainingsHandler) List(c *fiber.Ctx) error {
	trainings, err := h.trainings.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTrainingResponses(trainings))
}

// Get handles GET /api/trainings/:id.
func (h *TrainingsHandler) Get(c *fiber.Ctx) error {
	training, err := h.trainings.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTrainingResponse(training))
}

// ListMine handles GET /api/trainings/my: the trainings the caller's
// student profile is enrolled in.
func (h *TrainingsHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized(auth.MsgMissingToken)
	}
	trainings, err := h.trainings.ListForSubject(c.Context(), principal.Email)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTrainingResponses(trainings))
}

// Create handles POST /api/trainings.
func (h *TrainingsHandler) Create(c *fiber.Ctx) error {
	var req dto.TrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	training, err := h.trainings.Create(c.Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewTrainingResponse(training))
}

// Update handles PUT /api/trainings/:id.
func (h *TrainingsHandler) Update(c *fiber.Ctx) error {
	var req dto.TrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	training, err := h.trainings.Update(c.Context(), c.Params("id"), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTrainingResponse(training))
}

// Delete handles DELETE /api/trainings/:id.
func (h *TrainingsHandler) Delete(c *fiber.Ctx) error {
	if err := h.trainings.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
