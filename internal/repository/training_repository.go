package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guisandroni/classroom-service/internal/domain"
)

// TrainingRepository manages persistence for trainings.
type TrainingRepository interface {
	Create(ctx context.Context, training *domain.Training) error
	Update(ctx context.Context, training *domain.Training) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Training, error)
	List(ctx context.Context) ([]domain.Training, error)
	ListForStudent(ctx context.Context, studentID string) ([]domain.Training, error)
}

type trainingRepository struct {
	pool *pgxpool.Pool
}

// NewTrainingRepository constructs repository.
func NewTrainingRepository(pool *pgxpool.Pool) TrainingRepository {
	return &trainingRepository{pool: pool}
}

func (r *trainingRepository) Create(ctx context.Context, training *domain.Training) error {
	const query = `
        INSERT INTO trainings (name, description)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		training.Name,
		training.Description,
	).Scan(&training.ID, &training.CreatedAt, &training.UpdatedAt)
}

func (r *trainingRepository) Update(ctx context.Context, training *domain.Training) error {
	const query = `
        UPDATE trainings SET name=$1, description=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, training.Name, training.Description, training.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *trainingRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM trainings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *trainingRepository) GetByID(ctx context.Context, id string) (*domain.Training, error) {
	const query = `
        SELECT id, name, description, created_at, updated_at
        FROM trainings WHERE id=$1`

	var t domain.Training
	if err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *trainingRepository) List(ctx context.Context) ([]domain.Training, error) {
	const query = `
        SELECT id, name, description, created_at, updated_at
        FROM trainings ORDER BY name`

	return r.queryMany(ctx, query)
}

// ListForStudent returns the distinct trainings reachable from the student's
// enrollments through the classes they belong to.
func (r *trainingRepository) ListForStudent(ctx context.Context, studentID string) ([]domain.Training, error) {
	const query = `
        SELECT DISTINCT t.id, t.name, t.description, t.created_at, t.updated_at
        FROM trainings t
        JOIN classes c ON c.training_id = t.id
        JOIN enrollments e ON e.class_id = c.id
        WHERE e.student_id = $1
        ORDER BY t.name`

	return r.queryMany(ctx, query, studentID)
}

func (r *trainingRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Training, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trainings := make([]domain.Training, 0)
	for rows.Next() {
		var t domain.Training
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		trainings = append(trainings, t)
	}
	return trainings, rows.Err()
}
