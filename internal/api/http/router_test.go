package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apihttp "github.com/guisandroni/classroom-service/internal/api/http"
	"github.com/guisandroni/classroom-service/internal/api/http/handlers"
	"github.com/guisandroni/classroom-service/internal/auth"
	"github.com/guisandroni/classroom-service/internal/config"
	"github.com/guisandroni/classroom-service/internal/domain"
	"github.com/guisandroni/classroom-service/internal/events"
	"github.com/guisandroni/classroom-service/internal/observability"
	"github.com/guisandroni/classroom-service/internal/service"
)

// In-memory repositories backing the full route surface. Only the behavior
// the guard scenarios touch is faithful; list methods return empty sets.

type rtUserRepo struct {
	byEmail map[string]*domain.User
	seq     int
}

func (r *rtUserRepo) Create(_ context.Context, user *domain.User) error {
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	r.byEmail[user.Email] = user
	return nil
}

func (r *rtUserRepo) Update(_ context.Context, _ *domain.User) error { return nil }

func (r *rtUserRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}

func (r *rtUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *rtUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

type rtStudentRepo struct {
	byEmail map[string]*domain.Student
	seq     int
}

func (r *rtStudentRepo) Create(_ context.Context, student *domain.Student) error {
	r.seq++
	student.ID = fmt.Sprintf("student-%d", r.seq)
	r.byEmail[student.Email] = student
	return nil
}

func (r *rtStudentRepo) Update(_ context.Context, _ *domain.Student) error { return nil }
func (r *rtStudentRepo) Delete(_ context.Context, _ string) error          { return nil }

func (r *rtStudentRepo) GetByID(_ context.Context, id string) (*domain.Student, error) {
	for _, s := range r.byEmail {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *rtStudentRepo) GetByEmail(_ context.Context, email string) (*domain.Student, error) {
	if s, ok := r.byEmail[email]; ok {
		return s, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *rtStudentRepo) List(_ context.Context) ([]domain.Student, error) { return nil, nil }

type rtTrainingRepo struct {
	byID map[string]*domain.Training
}

func (r *rtTrainingRepo) Create(_ context.Context, training *domain.Training) error {
	training.ID = "training-" + training.Name
	r.byID[training.ID] = training
	return nil
}

func (r *rtTrainingRepo) Update(_ context.Context, _ *domain.Training) error { return nil }
func (r *rtTrainingRepo) Delete(_ context.Context, _ string) error           { return nil }

func (r *rtTrainingRepo) GetByID(_ context.Context, id string) (*domain.Training, error) {
	if tr, ok := r.byID[id]; ok {
		return tr, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *rtTrainingRepo) List(_ context.Context) ([]domain.Training, error) { return nil, nil }

func (r *rtTrainingRepo) ListForStudent(_ context.Context, _ string) ([]domain.Training, error) {
	return nil, nil
}

type rtClassRepo struct{}

func (rtClassRepo) Create(_ context.Context, _ *domain.Class) error { return nil }
func (rtClassRepo) Update(_ context.Context, _ *domain.Class) error { return nil }
func (rtClassRepo) Delete(_ context.Context, _ string) error        { return nil }
func (rtClassRepo) GetByID(_ context.Context, _ string) (*domain.Class, error) {
	return nil, pgx.ErrNoRows
}
func (rtClassRepo) List(_ context.Context) ([]domain.Class, error) { return nil, nil }
func (rtClassRepo) ListByTraining(_ context.Context, _ string) ([]domain.Class, error) {
	return nil, nil
}

type rtResourceRepo struct{}

func (rtResourceRepo) Create(_ context.Context, _ *domain.Resource) error { return nil }
func (rtResourceRepo) Update(_ context.Context, _ *domain.Resource) error { return nil }
func (rtResourceRepo) Delete(_ context.Context, _ string) error           { return nil }
func (rtResourceRepo) GetByID(_ context.Context, _ string) (*domain.Resource, error) {
	return nil, pgx.ErrNoRows
}
func (rtResourceRepo) List(_ context.Context) ([]domain.Resource, error) { return nil, nil }
func (rtResourceRepo) ListByClass(_ context.Context, _ string) ([]domain.Resource, error) {
	return nil, nil
}

type rtEnrollmentRepo struct {
	enrolled map[[2]string]bool
}

func (r *rtEnrollmentRepo) Create(_ context.Context, _ *domain.Enrollment) error { return nil }
func (r *rtEnrollmentRepo) Delete(_ context.Context, _ string) error             { return nil }
func (r *rtEnrollmentRepo) DeleteByClassAndStudent(_ context.Context, _, _ string) error {
	return nil
}
func (r *rtEnrollmentRepo) GetByID(_ context.Context, _ string) (*domain.Enrollment, error) {
	return nil, pgx.ErrNoRows
}
func (r *rtEnrollmentRepo) List(_ context.Context) ([]domain.Enrollment, error) { return nil, nil }
func (r *rtEnrollmentRepo) ListByClass(_ context.Context, _ string) ([]domain.Enrollment, error) {
	return nil, nil
}
func (r *rtEnrollmentRepo) ListByStudent(_ context.Context, _ string) ([]domain.Enrollment, error) {
	return nil, nil
}
func (r *rtEnrollmentRepo) ExistsByClassAndStudent(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}
func (r *rtEnrollmentRepo) ExistsForStudentAndTraining(_ context.Context, studentID, trainingID string) (bool, error) {
	return r.enrolled[[2]string{studentID, trainingID}], nil
}

type routerFixture struct {
	app         *fiber.App
	students    *rtStudentRepo
	enrollments *rtEnrollmentRepo
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	var cfg config.Config
	cfg.Auth = config.AuthConfig{
		JWTSecret:             "router-test-secret",
		AccessTokenTTLMinutes: 30,
		BcryptCost:            4,
	}

	users := &rtUserRepo{byEmail: make(map[string]*domain.User)}
	students := &rtStudentRepo{byEmail: make(map[string]*domain.Student)}
	trainings := &rtTrainingRepo{byID: map[string]*domain.Training{
		"t1": {ID: "t1", Name: "Go Fundamentals"},
	}}
	enrollments := &rtEnrollmentRepo{enrolled: make(map[[2]string]bool)}
	logger := zap.NewNop()

	authService := service.NewAuthService(cfg, service.AuthDependencies{
		UserRepo:    users,
		StudentRepo: students,
	}, logger)
	middleware := auth.NewMiddleware(authService.TokenManager(), users, logger)
	policy := auth.NewEnrollmentPolicy(students, enrollments, logger)

	metrics := observability.NewMetrics()
	app := fiber.New()
	apihttp.RegisterMiddlewares(app, logger, metrics, 0)
	apihttp.RegisterRoutes(app, apihttp.RouteConfig{
		Health:           handlers.NewHealthHandler("classroom-service", "test", nil, nil),
		Metrics:          handlers.NewMetricsHandler(metrics),
		Auth:             handlers.NewAuthHandler(authService),
		Trainings:        handlers.NewTrainingsHandler(service.NewTrainingService(trainings, students)),
		Classes:          handlers.NewClassesHandler(service.NewClassService(rtClassRepo{}, trainings)),
		Resources:        handlers.NewResourcesHandler(service.NewResourceService(rtResourceRepo{}, rtClassRepo{})),
		Students:         handlers.NewStudentsHandler(service.NewStudentService(students)),
		Enrollments:      handlers.NewEnrollmentsHandler(service.NewEnrollmentService(enrollments, rtClassRepo{}, students, events.NewInMemoryDispatcher())),
		AuthMiddleware:   middleware,
		EnrollmentPolicy: policy,
	})

	return &routerFixture{app: app, students: students, enrollments: enrollments}
}

func (f *routerFixture) register(t *testing.T, path, email string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"name":     "Tester",
		"email":    email,
		"password": "secret123",
	})
	req := httptest.NewRequest(nethttp.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
		Type  string `json:"type"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, "Bearer", out.Type)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func (f *routerFixture) get(t *testing.T, path, token string) *nethttp.Response {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRouteGuards(t *testing.T) {
	f := newRouterFixture(t)
	adminToken := f.register(t, "/api/auth/admin/register", "admin@example.com")
	studentToken := f.register(t, "/api/auth/student/register", "student@example.com")

	student, err := f.students.GetByEmail(context.Background(), "student@example.com")
	require.NoError(t, err)
	f.enrollments.enrolled[[2]string{student.ID, "t1"}] = true

	cases := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"health is open", "/health/live", "", nethttp.StatusOK},
		{"training list needs admin", "/api/trainings", studentToken, nethttp.StatusForbidden},
		{"training list open to admin", "/api/trainings", adminToken, nethttp.StatusOK},
		{"training detail open to admin", "/api/trainings/t1", adminToken, nethttp.StatusOK},
		{"training detail open to enrolled student", "/api/trainings/t1", studentToken, nethttp.StatusOK},
		{"unknown training denied before lookup", "/api/trainings/t2", studentToken, nethttp.StatusForbidden},
		{"my trainings open to student", "/api/trainings/my", studentToken, nethttp.StatusOK},
		{"metrics need admin", "/api/metrics", studentToken, nethttp.StatusForbidden},
		{"metrics open to admin", "/api/metrics", adminToken, nethttp.StatusOK},
		{"resources need admin", "/api/resources", studentToken, nethttp.StatusForbidden},
		{"resources open to admin", "/api/resources", adminToken, nethttp.StatusOK},
		{"students need authentication", "/api/students", "", nethttp.StatusUnauthorized},
		{"students open to any account", "/api/students", studentToken, nethttp.StatusOK},
		{"own profile resolves from token", "/api/students/me", studentToken, nethttp.StatusOK},
		{"classes need authentication", "/api/classes", "", nethttp.StatusUnauthorized},
		{"enrollments need authentication", "/api/enrollments", "", nethttp.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := f.get(t, tc.path, tc.token)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestRouteGuardsRejectBadTokens(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(nethttp.MethodGet, "/api/students", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
		Path    string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, nethttp.StatusUnauthorized, body.Status)
	assert.Equal(t, "/api/students", body.Path)
	assert.True(t, strings.HasPrefix(body.Message, "Token denied:"), "got %q", body.Message)
	assert.NotContains(t, strings.ToLower(body.Message), "malformed")
}

func TestLoginStatusOverWire(t *testing.T) {
	f := newRouterFixture(t)
	f.register(t, "/api/auth/user/register", "user@example.com")

	login := func(password string) int {
		body, _ := json.Marshal(map[string]string{"email": "user@example.com", "password": password})
		req := httptest.NewRequest(nethttp.MethodPost, "/api/auth/user/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := f.app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, nethttp.StatusOK, login("secret123"))
	assert.Equal(t, nethttp.StatusUnauthorized, login("wrong"))
}
