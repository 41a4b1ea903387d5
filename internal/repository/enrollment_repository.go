package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guisandroni/classroom-service/internal/domain"
)

// EnrollmentRepository manages persistence for enrollments. The existence
// checks back the authorization layer and must stay read-only.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *domain.Enrollment) error
	Delete(ctx context.Context, id string) error
	DeleteByClassAndStudent(ctx context.Context, classID, studentID string) error
	GetByID(ctx context.Context, id string) (*domain.Enrollment, error)
	List(ctx context.Context) ([]domain.Enrollment, error)
	ListByClass(ctx context.Context, classID string) ([]domain.Enrollment, error)
	ListByStudent(ctx context.Context, studentID string) ([]domain.Enrollment, error)
	ExistsByClassAndStudent(ctx context.Context, classID, studentID string) (bool, error)
	ExistsForStudentAndTraining(ctx context.Context, studentID, trainingID string) (bool, error)
}

type enrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository constructs repository.
func NewEnrollmentRepository(pool *pgxpool.Pool) EnrollmentRepository {
	return &enrollmentRepository{pool: pool}
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	const query = `
        INSERT INTO enrollments (class_id, student_id)
        VALUES ($1, $2)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		enrollment.ClassID,
		enrollment.StudentID,
	).Scan(&enrollment.ID, &enrollment.CreatedAt)
}

func (r *enrollmentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM enrollments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *enrollmentRepository) DeleteByClassAndStudent(ctx context.Context, classID, studentID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM enrollments WHERE class_id=$1 AND student_id=$2`, classID, studentID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	const query = `
        SELECT id, class_id, student_id, created_at
        FROM enrollments WHERE id=$1`

	var e domain.Enrollment
	if err := r.pool.QueryRow(ctx, query, id).Scan(&e.ID, &e.ClassID, &e.StudentID, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepository) List(ctx context.Context) ([]domain.Enrollment, error) {
	const query = `
        SELECT id, class_id, student_id, created_at
        FROM enrollments ORDER BY created_at`

	return r.queryMany(ctx, query)
}

func (r *enrollmentRepository) ListByClass(ctx context.Context, classID string) ([]domain.Enrollment, error) {
	const query = `
        SELECT id, class_id, student_id, created_at
        FROM enrollments WHERE class_id=$1 ORDER BY created_at`

	return r.queryMany(ctx, query, classID)
}

func (r *enrollmentRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.Enrollment, error) {
	const query = `
        SELECT id, class_id, student_id, created_at
        FROM enrollments WHERE student_id=$1 ORDER BY created_at`

	return r.queryMany(ctx, query, studentID)
}

func (r *enrollmentRepository) ExistsByClassAndStudent(ctx context.Context, classID, studentID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM enrollments WHERE class_id=$1 AND student_id=$2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, classID, studentID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ExistsForStudentAndTraining reports whether the student is enrolled in any
// class belonging to the training.
func (r *enrollmentRepository) ExistsForStudentAndTraining(ctx context.Context, studentID, trainingID string) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM enrollments e
            JOIN classes c ON c.id = e.class_id
            WHERE e.student_id=$1 AND c.training_id=$2
        )`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, studentID, trainingID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *enrollmentRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Enrollment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enrollments := make([]domain.Enrollment, 0)
	for rows.Next() {
		var e domain.Enrollment
		if err := rows.Scan(&e.ID, &e.ClassID, &e.StudentID, &e.CreatedAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}
