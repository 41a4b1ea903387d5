package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/guisandroni/classroom-service/internal/domain"
	"github.com/guisandroni/classroom-service/internal/events"
	"github.com/guisandroni/classroom-service/internal/repository"
	apperrors "github.com/guisandroni/classroom-service/pkg/util"
)

// EnrollmentService handles enrollment lifecycle and emits events consumed
// by the notification handlers.
type EnrollmentService struct {
	enrollments repository.EnrollmentRepository
	classes     repository.ClassRepository
	students    repository.StudentRepository
	dispatcher  events.Dispatcher
}

// NewEnrollmentService builds the service.
func NewEnrollmentService(
	enrollments repository.EnrollmentRepository,
	classes repository.ClassRepository,
	students repository.StudentRepository,
	dispatcher events.Dispatcher,
) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		classes:     classes,
		students:    students,
		dispatcher:  dispatcher,
	}
}

func (s *EnrollmentService) List(ctx context.Context) ([]domain.Enrollment, error) {
	return s.enrollments.List(ctx)
}

func (s *EnrollmentService) ListByClass(ctx context.Context, classID string) ([]domain.Enrollment, error) {
	return s.enrollments.ListByClass(ctx, classID)
}

func (s *EnrollmentService) ListByStudent(ctx context.Context, studentID string) ([]domain.Enrollment, error) {
	return s.enrollments.ListByStudent(ctx, studentID)
}

func (s *EnrollmentService) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Enrollment", map[string]any{"id": id})
		}
		return nil, err
	}
	return enrollment, nil
}

// Create enrolls a student in a class. The (class, student) pair is unique;
// the storage constraint backs the pre-check under concurrency.
func (s *EnrollmentService) Create(ctx context.Context, classID, studentID string) (*domain.Enrollment, error) {
	exists, err := s.enrollments.ExistsByClassAndStudent(ctx, classID, studentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewBusinessError("Student is already enrolled in this class")
	}

	if _, err := s.classes.GetByID(ctx, classID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Class", map[string]any{"id": classID})
		}
		return nil, err
	}
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Student", map[string]any{"id": studentID})
		}
		return nil, err
	}

	enrollment := &domain.Enrollment{ClassID: classID, StudentID: studentID}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewBusinessError("Student is already enrolled in this class")
		}
		return nil, err
	}

	s.publish(ctx, events.EventEnrollmentCreated, enrollment, events.EnrollmentCreatedPayload{
		ClassID:      classID,
		StudentID:    studentID,
		StudentEmail: student.Email,
	})
	return enrollment, nil
}

func (s *EnrollmentService) Delete(ctx context.Context, id string) error {
	enrollment, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.enrollments.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventEnrollmentDeleted, enrollment, events.EnrollmentDeletedPayload{
		ClassID:   enrollment.ClassID,
		StudentID: enrollment.StudentID,
	})
	return nil
}

func (s *EnrollmentService) DeleteByClassAndStudent(ctx context.Context, classID, studentID string) error {
	if err := s.enrollments.DeleteByClassAndStudent(ctx, classID, studentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Enrollment", map[string]any{"class_id": classID, "student_id": studentID})
		}
		return err
	}
	s.publish(ctx, events.EventEnrollmentDeleted, &domain.Enrollment{ClassID: classID, StudentID: studentID}, events.EnrollmentDeletedPayload{
		ClassID:   classID,
		StudentID: studentID,
	})
	return nil
}

func (s *EnrollmentService) publish(ctx context.Context, eventType events.EventType, enrollment *domain.Enrollment, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:           uuid.NewString(),
		Type:         eventType,
		EnrollmentID: enrollment.ID,
		Timestamp:    time.Now(),
		Payload:      payload,
	})
}
