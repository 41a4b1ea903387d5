package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/guisandroni/classroom-service/internal/api/dto"
	"github.com/guisandroni/classroom-service/internal/auth"
	"github.com/guisandroni/classroom-service/internal/service"
	apperrors "github.com/guisandroni/classroom-service/pkg/util"
)

// StudentsHandler exposes student endpoints.
type StudentsHandler struct {
	students *service.StudentService
}

// NewStudentsHandler constructs handler.
func NewStudentsHandler(students *service.StudentService) *StudentsHandler {
	return &StudentsHandler{students: students}
}

// List handles GET /api/students.
func (h *StudentsHandler) List(c *fiber.Ctx) error {
	students, err := h.students.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStudentResponses(students))
}

// Get handles GET /api/students/:id.
func (h *StudentsHandler) Get(c *fiber.Ctx) error {
	student, err := h.students.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStudentResponse(student))
}

// Me handles GET /api/students/me: the student profile behind the
// authenticated subject.
func (h *StudentsHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized(auth.MsgMissingToken)
	}
	student, err := h.students.GetByEmail(c.Context(), principal.Email)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStudentResponse(student))
}

// Create handles POST /api/students.
func (h *StudentsHandler) Create(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return err
	}
	student, err := h.students.Create(c.Context(), req.Name, req.Email, req.PhoneNumber)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewStudentResponse(student))
}

// Update handles PUT /api/students/:id.
func (h *StudentsHandler) Update(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return err
	}
	student, err := h.students.Update(c.Context(), c.Params("id"), req.Name, req.Email, req.PhoneNumber)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStudentResponse(student))
}

// Delete handles DELETE /api/students/:id.
func (h *StudentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.students.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *StudentsHandler) parseRequest(c *fiber.Ctx) (dto.StudentRequest, error) {
	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return req, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.PhoneNumber == "" {
		return req, apperrors.NewValidationError("name, email, phoneNumber required", nil)
	}
	return req, nil
}
