package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/guisandroni/classroom-service/internal/repository"
)

// EnrollmentPolicy answers relational authorization questions against the
// enrollment facts. It never errors: an anonymous caller, a caller with no
// student profile, or a missing enrollment all evaluate to a plain deny.
type EnrollmentPolicy struct {
	students    repository.StudentRepository
	enrollments repository.EnrollmentRepository
	logger      *zap.Logger
}

// NewEnrollmentPolicy constructs the policy evaluator.
func NewEnrollmentPolicy(students repository.StudentRepository, enrollments repository.EnrollmentRepository, logger *zap.Logger) *EnrollmentPolicy {
	return &EnrollmentPolicy{students: students, enrollments: enrollments, logger: logger}
}

// IsEnrolledInTraining reports whether the principal's student profile is
// enrolled in any class of the given training. Read-only and safe to
// evaluate repeatedly within a request.
func (p *EnrollmentPolicy) IsEnrolledInTraining(ctx context.Context, principal *Principal, trainingID string) bool {
	if p == nil || principal == nil || trainingID == "" {
		return false
	}

	student, err := p.students.GetByEmail(ctx, principal.Email)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			p.logger.Warn("enrollment check: student lookup failed", zap.Error(err))
		}
		return false
	}

	enrolled, err := p.enrollments.ExistsForStudentAndTraining(ctx, student.ID, trainingID)
	if err != nil {
		p.logger.Warn("enrollment check: enrollment lookup failed", zap.Error(err))
		return false
	}
	return enrolled
}
