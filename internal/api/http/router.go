package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/guisandroni/classroom-service/internal/api/http/handlers"
	"github.com/guisandroni/classroom-service/internal/auth"
	"github.com/guisandroni/classroom-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health           *handlers.HealthHandler
	Metrics          *handlers.MetricsHandler
	Auth             *handlers.AuthHandler
	Trainings        *handlers.TrainingsHandler
	Classes          *handlers.ClassesHandler
	Resources        *handlers.ResourcesHandler
	Students         *handlers.StudentsHandler
	Enrollments      *handlers.EnrollmentsHandler
	AuthMiddleware   *auth.Middleware
	EnrollmentPolicy *auth.EnrollmentPolicy
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api", cfg.AuthMiddleware.Handle)

	api.Get("/metrics", auth.RequireRoles(domain.RoleAdmin), cfg.Metrics.Snapshot)

	authGroup := api.Group("/auth")
	authGroup.Post("/user/register", cfg.Auth.RegisterUser)
	authGroup.Post("/user/login", cfg.Auth.Login)
	authGroup.Post("/student/register", cfg.Auth.RegisterStudent)
	authGroup.Post("/student/login", cfg.Auth.Login)
	authGroup.Post("/admin/register", cfg.Auth.RegisterAdmin)
	authGroup.Post("/admin/login", cfg.Auth.Login)

	trainings := api.Group("/trainings")
	trainings.Get("/", auth.RequireRoles(domain.RoleAdmin), cfg.Trainings.List)
	trainings.Get("/my", auth.RequireRoles(domain.RoleStudent, domain.RoleAdmin), cfg.Trainings.ListMine)
	trainings.Get("/:id", auth.RequireRolesOrEnrollment(cfg.EnrollmentPolicy, "id", domain.RoleAdmin), cfg.Trainings.Get)
	trainings.Post("/", auth.RequireRoles(domain.RoleAdmin), cfg.Trainings.Create)
	trainings.Put("/:id", auth.RequireRoles(domain.RoleAdmin), cfg.Trainings.Update)
	trainings.Delete("/:id", auth.RequireRoles(domain.RoleAdmin), cfg.Trainings.Delete)

	resources := api.Group("/resources", auth.RequireRoles(domain.RoleAdmin))
	resources.Get("/", cfg.Resources.List)
	resources.Get("/class/:classId", cfg.Resources.ListByClass)
	resources.Get("/:id", cfg.Resources.Get)
	resources.Post("/", cfg.Resources.Create)
	resources.Put("/:id", cfg.Resources.Update)
	resources.Delete("/:id", cfg.Resources.Delete)

	students := api.Group("/students", auth.RequireAuthenticated())
	students.Get("/", cfg.Students.List)
	students.Get("/me", cfg.Students.Me)
	students.Get("/:id", cfg.Students.Get)
	students.Post("/", cfg.Students.Create)
	students.Put("/:id", cfg.Students.Update)
	students.Delete("/:id", cfg.Students.Delete)

	classes := api.Group("/classes", auth.RequireAuthenticated())
	classes.Get("/", cfg.Classes.List)
	classes.Get("/training/:trainingId", cfg.Classes.ListByTraining)
	classes.Get("/:id", cfg.Classes.Get)
	classes.Post("/", cfg.Classes.Create)
	classes.Put("/:id", cfg.Classes.Update)
	classes.Delete("/:id", cfg.Classes.Delete)

	enrollments := api.Group("/enrollments", auth.RequireAuthenticated())
	enrollments.Get("/", cfg.Enrollments.List)
	enrollments.Get("/class/:classId", cfg.Enrollments.ListByClass)
	enrollments.Get("/student/:studentId", cfg.Enrollments.ListByStudent)
	enrollments.Get("/:id", cfg.Enrollments.Get)
	enrollments.Post("/", cfg.Enrollments.Create)
	enrollments.Delete("/class/:classId/student/:studentId", cfg.Enrollments.DeleteByClassAndStudent)
	enrollments.Delete("/:id", cfg.Enrollments.Delete)
}
