package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/guisandroni/classroom-service/internal/domain"
	"github.com/guisandroni/classroom-service/internal/repository"
	apperrors "github.com/guisandroni/classroom-service/pkg/util"
)

// StudentService handles student profile CRUD.
type StudentService struct {
	students repository.StudentRepository
}

// NewStudentService builds the service.
func NewStudentService(students repository.StudentRepository) *StudentService {
	return &StudentService{students: students}
}

func (s *StudentService) List(ctx context.Context) ([]domain.Student, error) {
	return s.students.List(ctx)
}

func (s *StudentService) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Student", map[string]any{"id": id})
		}
		return nil, err
	}
	return student, nil
}

// GetByEmail resolves a student by the subject email, backing /students/me.
func (s *StudentService) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	student, err := s.students.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Student", map[string]any{"email": email})
		}
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Create(ctx context.Context, name, email, phone string) (*domain.Student, error) {
	student := &domain.Student{Name: name, Email: NormalizeEmail(email), PhoneNumber: phone}
	if err := s.students.Create(ctx, student); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflict("student email or phone already registered", nil)
		}
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Update(ctx context.Context, id, name, email, phone string) (*domain.Student, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	student.Name = name
	student.Email = NormalizeEmail(email)
	student.PhoneNumber = phone
	if err := s.students.Update(ctx, student); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflict("student email or phone already registered", nil)
		}
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.students.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Student", map[string]any{"id": id})
		}
		return err
	}
	return nil
}
