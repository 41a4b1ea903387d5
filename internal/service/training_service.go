package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/guisandroni/classroom-service/internal/domain"
	"github.com/guisandroni/classroom-service/internal/repository"
	apperrors "github.com/guisandroni/classroom-service/pkg/util"
)

// TrainingService handles training CRUD and the per-student listing.
type TrainingService struct {
	trainings repository.TrainingRepository
	students  repository.StudentRepository
}

// NewTrainingService builds the service.
func NewTrainingService(trainings repository.TrainingRepository, students repository.StudentRepository) *TrainingService {
	return &TrainingService{trainings: trainings, students: students}
}

func (s *TrainingService) List(ctx context.Context) ([]domain.Training, error) {
	return s.trainings.List(ctx)
}

func (s *TrainingService) GetByID(ctx context.Context, id string) (*domain.Training, error) {
	training, err := s.trainings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Training", map[string]any{"id": id})
		}
		return nil, err
	}
	return training, nil
}

func (s *TrainingService) Create(ctx context.Context, name, description string) (*domain.Training, error) {
	training := &domain.Training{Name: name, Description: description}
	if err := s.trainings.Create(ctx, training); err != nil {
		return nil, err
	}
	return training, nil
}

func (s *TrainingService) Update(ctx context.Context, id, name, description string) (*domain.Training, error) {
	training, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	training.Name = name
	training.Description = description
	if err := s.trainings.Update(ctx, training); err != nil {
		return nil, err
	}
	return training, nil
}

func (s *TrainingService) Delete(ctx context.Context, id string) error {
	if err := s.trainings.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Training", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

// ListForSubject returns the trainings the caller's student profile is
// enrolled in, resolved by email.
func (s *TrainingService) ListForSubject(ctx context.Context, email string) ([]domain.Training, error) {
	student, err := s.students.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Student", map[string]any{"email": email})
		}
		return nil, err
	}
	return s.trainings.ListForStudent(ctx, student.ID)
}
