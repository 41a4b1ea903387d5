package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/guisandroni/classroom-service/internal/auth"
	"github.com/guisandroni/classroom-service/internal/domain"
)

// fakeStudentRepo is an in-memory repository.StudentRepository.
type fakeStudentRepo struct {
	byEmail map[string]*domain.Student
}

func newFakeStudentRepo(students ...*domain.Student) *fakeStudentRepo {
	repo := &fakeStudentRepo{byEmail: make(map[string]*domain.Student)}
	for _, s := range students {
		repo.byEmail[s.Email] = s
	}
	return repo
}

func (f *fakeStudentRepo) Create(_ context.Context, student *domain.Student) error {
	student.ID = "student-" + student.Email
	f.byEmail[student.Email] = student
	return nil
}

func (f *fakeStudentRepo) Update(_ context.Context, _ *domain.Student) error { return nil }
func (f *fakeStudentRepo) Delete(_ context.Context, _ string) error          { return nil }

func (f *fakeStudentRepo) GetByID(_ context.Context, id string) (*domain.Student, error) {
	for _, s := range f.byEmail {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStudentRepo) GetByEmail(_ context.Context, email string) (*domain.Student, error) {
	if s, ok := f.byEmail[email]; ok {
		return s, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStudentRepo) List(_ context.Context) ([]domain.Student, error) {
	out := make([]domain.Student, 0, len(f.byEmail))
	for _, s := range f.byEmail {
		out = append(out, *s)
	}
	return out, nil
}

// fakeEnrollmentRepo records (studentID, trainingID) facts.
type fakeEnrollmentRepo struct {
	enrolled map[[2]string]bool
	byPair   map[[2]string]bool
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		enrolled: make(map[[2]string]bool),
		byPair:   make(map[[2]string]bool),
	}
}

func (f *fakeEnrollmentRepo) enroll(studentID, trainingID string) {
	f.enrolled[[2]string{studentID, trainingID}] = true
}

func (f *fakeEnrollmentRepo) Create(_ context.Context, e *domain.Enrollment) error {
	e.ID = "enrollment-" + e.ClassID + "-" + e.StudentID
	f.byPair[[2]string{e.ClassID, e.StudentID}] = true
	return nil
}

func (f *fakeEnrollmentRepo) Delete(_ context.Context, _ string) error { return nil }
func (f *fakeEnrollmentRepo) DeleteByClassAndStudent(_ context.Context, classID, studentID string) error {
	if !f.byPair[[2]string{classID, studentID}] {
		return pgx.ErrNoRows
	}
	delete(f.byPair, [2]string{classID, studentID})
	return nil
}

func (f *fakeEnrollmentRepo) GetByID(_ context.Context, _ string) (*domain.Enrollment, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeEnrollmentRepo) List(_ context.Context) ([]domain.Enrollment, error) {
	return nil, nil
}

func (f *fakeEnrollmentRepo) ListByClass(_ context.Context, _ string) ([]domain.Enrollment, error) {
	return nil, nil
}

func (f *fakeEnrollmentRepo) ListByStudent(_ context.Context, _ string) ([]domain.Enrollment, error) {
	return nil, nil
}

func (f *fakeEnrollmentRepo) ExistsByClassAndStudent(_ context.Context, classID, studentID string) (bool, error) {
	return f.byPair[[2]string{classID, studentID}], nil
}

func (f *fakeEnrollmentRepo) ExistsForStudentAndTraining(_ context.Context, studentID, trainingID string) (bool, error) {
	return f.enrolled[[2]string{studentID, trainingID}], nil
}

func TestHasRole(t *testing.T) {
	student := &auth.Principal{Role: domain.RoleStudent}

	assert.True(t, auth.HasRole(student, domain.RoleStudent))
	assert.True(t, auth.HasRole(student, domain.RoleStudent, domain.RoleAdmin))
	assert.False(t, auth.HasRole(student, domain.RoleAdmin))
	assert.False(t, auth.HasRole(nil, domain.RoleAdmin))
	assert.False(t, auth.HasRole(student))
}

func TestIsEnrolledInTraining(t *testing.T) {
	students := newFakeStudentRepo(&domain.Student{ID: "s1", Email: "a@x.com"})
	enrollments := newFakeEnrollmentRepo()
	enrollments.enroll("s1", "t1")
	policy := auth.NewEnrollmentPolicy(students, enrollments, zap.NewNop())

	ctx := context.Background()
	enrolled := &auth.Principal{Email: "a@x.com", Role: domain.RoleStudent}

	t.Run("enrolled student is allowed", func(t *testing.T) {
		assert.True(t, policy.IsEnrolledInTraining(ctx, enrolled, "t1"))
	})

	t.Run("anonymous caller is denied, not errored", func(t *testing.T) {
		assert.False(t, policy.IsEnrolledInTraining(ctx, nil, "t1"))
	})

	t.Run("caller without student profile is denied", func(t *testing.T) {
		admin := &auth.Principal{Email: "admin@x.com", Role: domain.RoleAdmin}
		assert.False(t, policy.IsEnrolledInTraining(ctx, admin, "t1"))
	})

	t.Run("student not enrolled in the training is denied", func(t *testing.T) {
		assert.False(t, policy.IsEnrolledInTraining(ctx, enrolled, "t2"))
	})

	t.Run("repeated evaluation is stable", func(t *testing.T) {
		assert.True(t, policy.IsEnrolledInTraining(ctx, enrolled, "t1"))
		assert.True(t, policy.IsEnrolledInTraining(ctx, enrolled, "t1"))
	})
}

func TestRequireRolesGuards(t *testing.T) {
	users := newFakeUserRepo(activeStudent("a@x.com"))
	tm := auth.NewTokenManager(testSecret, 60)
	m := auth.NewMiddleware(tm, users, zap.NewNop())

	app := fiber.New(fiber.Config{ErrorHandler: domainErrorHandler})
	app.Use(m.Handle)
	app.Get("/admin-only", auth.RequireRoles(domain.RoleAdmin), okHandler)
	app.Get("/student-ok", auth.RequireRoles(domain.RoleStudent, domain.RoleAdmin), okHandler)

	token, _, err := tm.Issue("a@x.com")
	require.NoError(t, err)

	cases := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"student denied on admin endpoint", "/admin-only", token, http.StatusForbidden},
		{"student allowed on student endpoint", "/student-ok", token, http.StatusOK},
		{"anonymous rejected", "/admin-only", "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestRequireRolesOrEnrollment(t *testing.T) {
	admin := &domain.User{ID: "u1", Email: "admin@x.com", Role: domain.RoleAdmin, Status: domain.UserStatusActive}
	student := activeStudent("a@x.com")
	users := newFakeUserRepo(admin, student)
	students := newFakeStudentRepo(&domain.Student{ID: "s1", Email: "a@x.com"})
	enrollments := newFakeEnrollmentRepo()
	enrollments.enroll("s1", "t1")

	tm := auth.NewTokenManager(testSecret, 60)
	m := auth.NewMiddleware(tm, users, zap.NewNop())
	policy := auth.NewEnrollmentPolicy(students, enrollments, zap.NewNop())

	app := fiber.New(fiber.Config{ErrorHandler: domainErrorHandler})
	app.Use(m.Handle)
	app.Get("/trainings/:id", auth.RequireRolesOrEnrollment(policy, "id", domain.RoleAdmin), okHandler)

	adminToken, _, err := tm.Issue("admin@x.com")
	require.NoError(t, err)
	studentToken, _, err := tm.Issue("a@x.com")
	require.NoError(t, err)

	cases := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"admin bypasses enrollment check", "/trainings/t2", adminToken, http.StatusOK},
		{"enrolled student allowed", "/trainings/t1", studentToken, http.StatusOK},
		{"non-enrolled student denied", "/trainings/t2", studentToken, http.StatusForbidden},
		{"anonymous rejected", "/trainings/t1", "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
