package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/guisandroni/classroom-service/internal/domain"
	"github.com/guisandroni/classroom-service/internal/repository"
	apperrors "github.com/guisandroni/classroom-service/pkg/util"
)

const principalKey = "auth_principal"

// Rejection messages form a fixed, non-leaking set. Expiry is the only
// parse failure safe to disclose; everything else collapses into the
// generic message and the real cause goes to the log.
const (
	MsgInvalidToken = "Token denied: Invalid token"
	MsgExpiredToken = "Token denied: Token has expired"
	MsgMissingToken = "Token denied: Missing token"
)

// Principal is the authenticated identity published for the remainder of a
// request. It is created once per request by the middleware and never
// mutated afterwards.
type Principal struct {
	UserID string
	Email  string
	Role   domain.Role
	Token  string
}

// Middleware authenticates bearer tokens and publishes the principal.
// Requests without an Authorization header pass through anonymous; routes
// that need an identity enforce it with the guards in this package.
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
	logger *zap.Logger
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, users: users, logger: logger}
}

// Handle runs the per-request authentication pass.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	// Re-running the authenticator must not overwrite a published principal.
	if _, ok := PrincipalFromContext(c); ok {
		return c.Next()
	}

	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return c.Next()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		m.logger.Warn("token denied: bad authorization scheme")
		return apperrors.NewUnauthorized(MsgInvalidToken)
	}
	rawToken := strings.TrimSpace(parts[1])

	subject, err := m.tokens.Parse(rawToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrTokenExpired):
			m.logger.Warn("token denied: expired", zap.Error(err))
			return apperrors.NewUnauthorized(MsgExpiredToken)
		case errors.Is(err, ErrTokenSignatureInvalid):
			m.logger.Warn("token denied: signature invalid", zap.Error(err))
			return apperrors.NewUnauthorized(MsgInvalidToken)
		case errors.Is(err, ErrTokenMalformed):
			m.logger.Warn("token denied: malformed", zap.Error(err))
			return apperrors.NewUnauthorized(MsgInvalidToken)
		default:
			m.logger.Error("token denied: unexpected parse failure", zap.Error(err))
			return apperrors.NewUnauthorized(MsgInvalidToken)
		}
	}

	user, err := m.users.GetByEmail(c.Context(), subject)
	if err != nil {
		// The account may have been deleted after the token was issued.
		if errors.Is(err, pgx.ErrNoRows) {
			m.logger.Warn("token denied: unknown subject", zap.String("subject", subject))
			return apperrors.NewUnauthorized(MsgInvalidToken)
		}
		m.logger.Error("token denied: identity lookup failed", zap.Error(err))
		return apperrors.NewUnauthorized(MsgInvalidToken)
	}

	if user.Status != domain.UserStatusActive {
		m.logger.Warn("token denied: account not active", zap.String("subject", subject))
		return apperrors.NewUnauthorized(MsgInvalidToken)
	}

	c.Locals(principalKey, &Principal{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Token:  rawToken,
	})
	m.logger.Info("user authenticated", zap.String("subject", user.Email), zap.String("role", string(user.Role)))
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated identity, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
