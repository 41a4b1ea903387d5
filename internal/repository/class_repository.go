package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guisandroni/classroom-service/internal/domain"
)

// ClassRepository manages persistence for classes.
type ClassRepository interface {
	Create(ctx context.Context, class *domain.Class) error
	Update(ctx context.Context, class *domain.Class) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Class, error)
	List(ctx context.Context) ([]domain.Class, error)
	ListByTraining(ctx context.Context, trainingID string) ([]domain.Class, error)
}

type classRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository constructs repository.
func NewClassRepository(pool *pgxpool.Pool) ClassRepository {
	return &classRepository{pool: pool}
}

func (r *classRepository) Create(ctx context.Context, class *domain.Class) error {
	const query = `
        INSERT INTO classes (training_id, name, start_date, end_date, access_link)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		class.TrainingID,
		class.Name,
		class.StartDate,
		class.EndDate,
		class.AccessLink,
	).Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
}

func (r *classRepository) Update(ctx context.Context, class *domain.Class) error {
	const query = `
        UPDATE classes SET training_id=$1, name=$2, start_date=$3, end_date=$4, access_link=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		class.TrainingID,
		class.Name,
		class.StartDate,
		class.EndDate,
		class.AccessLink,
		class.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *classRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *classRepository) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	const query = `
        SELECT id, training_id, name, start_date, end_date, access_link, created_at, updated_at
        FROM classes WHERE id=$1`

	var c domain.Class
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.TrainingID, &c.Name, &c.StartDate, &c.EndDate, &c.AccessLink, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *classRepository) List(ctx context.Context) ([]domain.Class, error) {
	const query = `
        SELECT id, training_id, name, start_date, end_date, access_link, created_at, updated_at
        FROM classes ORDER BY start_date`

	return r.queryMany(ctx, query)
}

func (r *classRepository) ListByTraining(ctx context.Context, trainingID string) ([]domain.Class, error) {
	const query = `
        SELECT id, training_id, name, start_date, end_date, access_link, created_at, updated_at
        FROM classes WHERE training_id=$1 ORDER BY start_date`

	return r.queryMany(ctx, query, trainingID)
}

func (r *classRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Class, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := make([]domain.Class, 0)
	for rows.Next() {
		var c domain.Class
		if err := rows.Scan(&c.ID, &c.TrainingID, &c.Name, &c.StartDate, &c.EndDate, &c.AccessLink, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}
