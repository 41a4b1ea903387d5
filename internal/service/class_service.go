package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/guisandroni/classroom-service/internal/domain"
	"github.com/guisandroni/classroom-service/internal/repository"
	apperrors "github.com/guisandroni/classroom-service/pkg/util"
)

// ClassInput carries the fields accepted on class create/update.
type ClassInput struct {
	TrainingID string
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	AccessLink string
}

// ClassService handles class CRUD with date-range validation.
type ClassService struct {
	classes   repository.ClassRepository
	trainings repository.TrainingRepository
}

// NewClassService builds the service.
func NewClassService(classes repository.ClassRepository, trainings repository.TrainingRepository) *ClassService {
	return &ClassService{classes: classes, trainings: trainings}
}

func (s *ClassService) List(ctx context.Context) ([]domain.Class, error) {
	return s.classes.List(ctx)
}

func (s *ClassService) ListByTraining(ctx context.Context, trainingID string) ([]domain.Class, error) {
	return s.classes.ListByTraining(ctx, trainingID)
}

func (s *ClassService) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	class, err := s.classes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Class", map[string]any{"id": id})
		}
		return nil, err
	}
	return class, nil
}

func (s *ClassService) Create(ctx context.Context, input ClassInput) (*domain.Class, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	class := &domain.Class{
		TrainingID: input.TrainingID,
		Name:       input.Name,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		AccessLink: input.AccessLink,
	}
	if err := s.classes.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) Update(ctx context.Context, id string, input ClassInput) (*domain.Class, error) {
	class, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	class.TrainingID = input.TrainingID
	class.Name = input.Name
	class.StartDate = input.StartDate
	class.EndDate = input.EndDate
	class.AccessLink = input.AccessLink
	if err := s.classes.Update(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) Delete(ctx context.Context, id string) error {
	if err := s.classes.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Class", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

func (s *ClassService) validate(ctx context.Context, input ClassInput) error {
	if _, err := s.trainings.GetByID(ctx, input.TrainingID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Training", map[string]any{"id": input.TrainingID})
		}
		return err
	}
	if input.EndDate.Before(input.StartDate) {
		return apperrors.NewBusinessError("End date must be after start date")
	}
	return nil
}
