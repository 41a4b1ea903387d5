package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/guisandroni/classroom-service/internal/api/http"
	"github.com/guisandroni/classroom-service/internal/api/http/handlers"
	"github.com/guisandroni/classroom-service/internal/auth"
	"github.com/guisandroni/classroom-service/internal/config"
	"github.com/guisandroni/classroom-service/internal/events"
	"github.com/guisandroni/classroom-service/internal/observability"
	"github.com/guisandroni/classroom-service/internal/persistence"
	"github.com/guisandroni/classroom-service/internal/repository"
	"github.com/guisandroni/classroom-service/internal/service"
	"github.com/guisandroni/classroom-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	trainingRepo := repository.NewTrainingRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	resourceRepo := repository.NewResourceRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	throttle := auth.NewLoginThrottle(redis.Client, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindowMinutes, logger)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:    userRepo,
		StudentRepo: studentRepo,
		Throttle:    throttle,
	}, logger)
	trainingService := service.NewTrainingService(trainingRepo, studentRepo)
	classService := service.NewClassService(classRepo, trainingRepo)
	resourceService := service.NewResourceService(resourceRepo, classRepo)
	studentService := service.NewStudentService(studentRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, classRepo, studentRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService, logger)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo, logger)
	enrollmentPolicy := auth.NewEnrollmentPolicy(studentRepo, enrollmentRepo, logger)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:           handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Metrics:          handlers.NewMetricsHandler(metrics),
		Auth:             handlers.NewAuthHandler(authService),
		Trainings:        handlers.NewTrainingsHandler(trainingService),
		Classes:          handlers.NewClassesHandler(classService),
		Resources:        handlers.NewResourcesHandler(resourceService),
		Students:         handlers.NewStudentsHandler(studentService),
		Enrollments:      handlers.NewEnrollmentsHandler(enrollmentService),
		AuthMiddleware:   authMiddleware,
		EnrollmentPolicy: enrollmentPolicy,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
