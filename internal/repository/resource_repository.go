package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guisandroni/classroom-service/internal/domain"
)

// ResourceRepository manages persistence for class resources.
type ResourceRepository interface {
	Create(ctx context.Context, resource *domain.Resource) error
	Update(ctx context.Context, resource *domain.Resource) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context) ([]domain.Resource, error)
	ListByClass(ctx context.Context, classID string) ([]domain.Resource, error)
}

type resourceRepository struct {
	pool *pgxpool.Pool
}

// NewResourceRepository constructs repository.
func NewResourceRepository(pool *pgxpool.Pool) ResourceRepository {
	return &resourceRepository{pool: pool}
}

func (r *resourceRepository) Create(ctx context.Context, resource *domain.Resource) error {
	const query = `
        INSERT INTO resources (class_id, resource_type, previous_access, draft, name, description)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		resource.ClassID,
		resource.ResourceType,
		resource.PreviousAccess,
		resource.Draft,
		resource.Name,
		resource.Description,
	).Scan(&resource.ID, &resource.CreatedAt, &resource.UpdatedAt)
}

func (r *resourceRepository) Update(ctx context.Context, resource *domain.Resource) error {
	const query = `
        UPDATE resources SET class_id=$1, resource_type=$2, previous_access=$3, draft=$4, name=$5, description=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		resource.ClassID,
		resource.ResourceType,
		resource.PreviousAccess,
		resource.Draft,
		resource.Name,
		resource.Description,
		resource.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM resources WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *resourceRepository) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	const query = `
        SELECT id, class_id, resource_type, previous_access, draft, name, description, created_at, updated_at
        FROM resources WHERE id=$1`

	var res domain.Resource
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.ClassID, &res.ResourceType, &res.PreviousAccess, &res.Draft, &res.Name, &res.Description, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *resourceRepository) List(ctx context.Context) ([]domain.Resource, error) {
	const query = `
        SELECT id, class_id, resource_type, previous_access, draft, name, description, created_at, updated_at
        FROM resources ORDER BY name`

	return r.queryMany(ctx, query)
}

func (r *resourceRepository) ListByClass(ctx context.Context, classID string) ([]domain.Resource, error) {
	const query = `
        SELECT id, class_id, resource_type, previous_access, draft, name, description, created_at, updated_at
        FROM resources WHERE class_id=$1 ORDER BY name`

	return r.queryMany(ctx, query, classID)
}

func (r *resourceRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Resource, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resources := make([]domain.Resource, 0)
	for rows.Next() {
		var res domain.Resource
		if err := rows.Scan(&res.ID, &res.ClassID, &res.ResourceType, &res.PreviousAccess, &res.Draft, &res.Name, &res.Description, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}
