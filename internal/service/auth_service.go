package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/guisandroni/classroom-service/internal/auth"
	"github.com/guisandroni/classroom-service/internal/config"
	"github.com/guisandroni/classroom-service/internal/domain"
	"github.com/guisandroni/classroom-service/internal/repository"
	apperrors "github.com/guisandroni/classroom-service/pkg/util"
)

// Credential failures surfaced to callers. Unknown email and wrong password
// share one error so the response does not reveal which check failed.
var (
	ErrDuplicateEmail       = apperrors.NewDomainError("DUPLICATE_EMAIL", "Email is already in use", http.StatusBadRequest, nil)
	ErrInvalidCredentials   = apperrors.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized, nil)
	ErrTooManyLoginAttempts = apperrors.NewDomainError("TOO_MANY_REQUESTS", "Too many login attempts, try again later", http.StatusTooManyRequests, nil)
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	students   repository.StudentRepository
	tokenMgr   *auth.TokenManager
	throttle   *auth.LoginThrottle
	bcryptCost int
	logger     *zap.Logger
}

// AuthDependencies encapsulates collaborator requirements for the service.
type AuthDependencies struct {
	UserRepo    repository.UserRepository
	StudentRepo repository.StudentRepository
	Throttle    *auth.LoginThrottle
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		students:   deps.StudentRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		throttle:   deps.Throttle,
		bcryptCost: cfg.Auth.BcryptCost,
		logger:     logger,
	}
}

// Register creates an account with the given role. Student accounts also get
// an enrollable student profile, matching email. Uniqueness is enforced by
// the storage layer; a concurrent duplicate surfaces as ErrDuplicateEmail
// rather than a second credential.
func (s *AuthService) Register(ctx context.Context, name, email, phone, password string, role domain.Role) (*domain.User, string, time.Time, error) {
	email = NormalizeEmail(email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if exists {
		return nil, "", time.Time{}, ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: hash,
		Role:         role,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, "", time.Time{}, ErrDuplicateEmail
		}
		return nil, "", time.Time{}, err
	}

	if role == domain.RoleStudent {
		student := &domain.Student{Name: name, Email: email, PhoneNumber: phone}
		if err := s.students.Create(ctx, student); err != nil && !isUniqueViolation(err) {
			return nil, "", time.Time{}, err
		}
	}

	token, exp, err := s.tokenMgr.Issue(user.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	s.logger.Info("user registered", zap.String("subject", user.Email), zap.String("role", string(role)))
	return user, token, exp, nil
}

// Login verifies credentials and issues a token. Both unknown-subject and
// wrong-password paths cost one bcrypt comparison and return the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	email = NormalizeEmail(email)

	if !s.throttle.Allow(ctx, email) {
		return nil, "", time.Time{}, ErrTooManyLoginAttempts
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			auth.CompareDummy(password)
			s.throttle.RecordFailure(ctx, email)
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.throttle.RecordFailure(ctx, email)
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	if user.Status != domain.UserStatusActive {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.tokenMgr.Issue(user.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	s.throttle.Reset(ctx, email)
	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// NormalizeEmail applies the same normalization to storage and lookup so a
// subject compares equal regardless of submitted casing.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
