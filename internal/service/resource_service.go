package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/guisandroni/classroom-service/internal/domain"
	"github.com/guisandroni/classroom-service/internal/repository"
	apperrors "github.com/guisandroni/classroom-service/pkg/util"
)

// ResourceInput carries the fields accepted on resource create/update.
type ResourceInput struct {
	ClassID        string
	ResourceType   domain.ResourceType
	PreviousAccess bool
	Draft          bool
	Name           string
	Description    string
}

// ResourceService handles class material CRUD.
type ResourceService struct {
	resources repository.ResourceRepository
	classes   repository.ClassRepository
}

// NewResourceService builds the service.
func NewResourceService(resources repository.ResourceRepository, classes repository.ClassRepository) *ResourceService {
	return &ResourceService{resources: resources, classes: classes}
}

func (s *ResourceService) List(ctx context.Context) ([]domain.Resource, error) {
	return s.resources.List(ctx)
}

func (s *ResourceService) ListByClass(ctx context.Context, classID string) ([]domain.Resource, error) {
	return s.resources.ListByClass(ctx, classID)
}

func (s *ResourceService) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	resource, err := s.resources.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Resource", map[string]any{"id": id})
		}
		return nil, err
	}
	return resource, nil
}

func (s *ResourceService) Create(ctx context.Context, input ResourceInput) (*domain.Resource, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	resource := &domain.Resource{
		ClassID:        input.ClassID,
		ResourceType:   input.ResourceType,
		PreviousAccess: input.PreviousAccess,
		Draft:          input.Draft,
		Name:           input.Name,
		Description:    input.Description,
	}
	if err := s.resources.Create(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *ResourceService) Update(ctx context.Context, id string, input ResourceInput) (*domain.Resource, error) {
	resource, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	resource.ClassID = input.ClassID
	resource.ResourceType = input.ResourceType
	resource.PreviousAccess = input.PreviousAccess
	resource.Draft = input.Draft
	resource.Name = input.Name
	resource.Description = input.Description
	if err := s.resources.Update(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *ResourceService) Delete(ctx context.Context, id string) error {
	if err := s.resources.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Resource", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

func (s *ResourceService) validate(ctx context.Context, input ResourceInput) error {
	switch input.ResourceType {
	case domain.ResourceTypeVideo, domain.ResourceTypeDocument, domain.ResourceTypeLink:
	default:
		return apperrors.NewValidationError(fmt.Sprintf("unknown resource type %q", input.ResourceType), nil)
	}
	if _, err := s.classes.GetByID(ctx, input.ClassID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Class", map[string]any{"id": input.ClassID})
		}
		return err
	}
	return nil
}
