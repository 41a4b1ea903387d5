package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/guisandroni/classroom-service/internal/api/dto"
	"github.com/guisandroni/classroom-service/internal/service"
	apperrors "github.com/guisandroni/classroom-service/pkg/util"
)

// EnrollmentsHandler exposes enrollment endpoints.
type EnrollmentsHandler struct {
	enrollments *service.EnrollmentService
}

// NewEnrollmentsHandler constructs handler.
func NewEnrollmentsHandler(enrollments *service.EnrollmentService) *EnrollmentsHandler {
	return &EnrollmentsHandler{enrollments: enrollments}
}

// List handles GET /api/enrollments.
func (h *EnrollmentsHandler) List(c *fiber.Ctx) error {
	enrollments, err := h.enrollments.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEnrollmentResponses(enrollments))
}

// Get handles GET /api/enrollments/:id.
func (h *EnrollmentsHandler) Get(c *fiber.Ctx) error {
	enrollment, err := h.enrollments.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEnrollmentResponse(enrollment))
}

// ListByClass handles GET /api/enrollments/class/:classId.
func (h *EnrollmentsHandler) ListByClass(c *fiber.Ctx) error {
	enrollments, err := h.enrollments.ListByClass(c.Context(), c.Params("classId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEnrollmentResponses(enrollments))
}

// ListByStudent handles GET /api/enrollments/student/:studentId.
func (h *EnrollmentsHandler) ListByStudent(c *fiber.Ctx) error {
	enrollments, err := h.enrollments.ListByStudent(c.Context(), c.Params("studentId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEnrollmentResponses(enrollments))
}

// Create handles POST /api/enrollments.
func (h *EnrollmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.EnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClassID == "" || req.StudentID == "" {
		return apperrors.NewValidationError("classId and studentId required", nil)
	}

	enrollment, err := h.enrollments.Create(c.Context(), req.ClassID, req.StudentID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewEnrollmentResponse(enrollment))
}

// Delete handles DELETE /api/enrollments/:id.
func (h *EnrollmentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.enrollments.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// DeleteByClassAndStudent handles DELETE /api/enrollments/class/:classId/student/:studentId.
func (h *EnrollmentsHandler) DeleteByClassAndStudent(c *fiber.Ctx) error {
	if err := h.enrollments.DeleteByClassAndStudent(c.Context(), c.Params("classId"), c.Params("studentId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
