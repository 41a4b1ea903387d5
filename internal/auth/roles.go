package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/guisandroni/classroom-service/internal/domain"
	apperrors "github.com/guisandroni/classroom-service/pkg/util"
)

// HasRole reports whether the principal holds one of the allowed roles.
// There is no role hierarchy; matching is exact.
func HasRole(principal *Principal, allowed ...domain.Role) bool {
	if principal == nil {
		return false
	}
	for _, role := range allowed {
		if principal.Role == role {
			return true
		}
	}
	return false
}

// RequireAuthenticated ensures a principal was published for the request.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized(MsgMissingToken)
		}
		return c.Next()
	}
}

// RequireRoles ensures the principal holds one of the allowed roles.
func RequireRoles(allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized(MsgMissingToken)
		}
		if !HasRole(principal, allowed...) {
			return apperrors.NewForbidden("Access denied")
		}
		return c.Next()
	}
}

// RequireRolesOrEnrollment grants access when the principal holds one of the
// allowed roles, or failing that, is enrolled in the training named by the
// route parameter. The role check short-circuits the relational lookup.
func RequireRolesOrEnrollment(policy *EnrollmentPolicy, trainingParam string, allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized(MsgMissingToken)
		}
		if HasRole(principal, allowed...) {
			return c.Next()
		}
		if policy.IsEnrolledInTraining(c.Context(), principal, c.Params(trainingParam)) {
			return c.Next()
		}
		return apperrors.NewForbidden("Access denied")
	}
}
