package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/guisandroni/classroom-service/internal/api/dto"
	"github.com/guisandroni/classroom-service/internal/domain"
	"github.com/guisandroni/classroom-service/internal/service"
	apperrors "github.com/guisandroni/classroom-service/pkg/util"
)

// AuthHandler exposes registration and login per role, mirroring the
// /api/auth/{user,student,admin} endpoint split.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// RegisterUser handles POST /api/auth/user/register.
func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	return h.register(c, domain.RoleUser)
}

// RegisterStudent handles POST /api/auth/student/register.
func (h *AuthHandler) RegisterStudent(c *fiber.Ctx) error {
	return h.register(c, domain.RoleStudent)
}

// RegisterAdmin handles POST /api/auth/admin/register.
func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	return h.register(c, domain.RoleAdmin)
}

// Login handles POST /api/auth/{user,student,admin}/login; the flow is
// role-agnostic because the role is read back from the stored credential.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(authResponse(user, token))
}

func (h *AuthHandler) register(c *fiber.Ctx, role domain.Role) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("name, email, password required", nil)
	}

	user, token, _, err := h.auth.Register(c.Context(), req.Name, req.Email, req.PhoneNumber, req.Password, role)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(authResponse(user, token))
}

func authResponse(user *domain.User, token string) dto.AuthResponse {
	return dto.AuthResponse{
		Token:       token,
		Type:        "Bearer",
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        string(user.Role),
	}
}
