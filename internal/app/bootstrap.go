package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	v1 "career-compass/internal/delivery/http/routes/v1"
	"career-compass/internal/domain/recommendation"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

// Bootstrap connects the backing stores, wires the object graph and returns an
// App ready to Listen. The cleanup func stops the websocket hub and closes the
// stores.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init container: %w", err)
	}

	if err := prepareDatabase(c); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	hub := ws.NewHub(c.Logger)
	go hub.Run(hubCtx)

	app := New(c, hub)

	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return app, cleanup, nil
}

func prepareDatabase(c *Container) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if c.Config.Database.RunMigrations {
		if err := c.Migrate(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	if c.Config.Database.RunSeeders {
		if err := c.Seed(ctx); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
	}
	return nil
}

func New(c *Container, hub *ws.Hub) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	jwtSvc := jwt.NewHMACService(
		c.Config.JWT.AccessSecret,
		c.Config.JWT.RefreshSecret,
		c.Config.JWT.AccessExpiresIn,
		c.Config.JWT.RefreshExpiresIn,
	)

	users := repository.NewPostgresUserRepository(c.DB)
	tests := repository.NewPostgresTestRepository(c.DB)
	results := repository.NewPostgresTestResultRepository(c.DB)
	recs := repository.NewPostgresRecommendationRepository(c.DB)
	courses := repository.NewPostgresCourseRepository(c.DB)
	jobs := repository.NewPostgresJobRepository(c.DB)

	engine := recommendation.NewEngine(engineWeights(c.Config.Recommendation))

	authUC := usecase.NewAuthUsecase(users, jwtSvc)
	userUC := usecase.NewUserUsecase(users, results)
	testUC := usecase.NewTestAuthoringUsecase(tests, results, c.Cache, c.Logger)
	recUC := usecase.NewRecommendationUsecase(courses, jobs, results, recs, engine, c.Cache, ws.NewNotifier(hub), c.Logger)
	submitUC := usecase.NewSubmissionUsecase(testUC, results, recUC, c.Logger)
	onboardingUC := usecase.NewOnboardingUsecase(results, recs, c.Cache, c.Logger)

	registerGlobalMiddleware(f, c)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		ws.NewHandler(hub, jwtSvc, c.Logger),
		v1.Handlers{
			Auth:            handler.NewAuthHandler(authUC),
			Users:           handler.NewUserHandler(userUC),
			Tests:           handler.NewTestHandler(testUC, submitUC),
			Recommendations: handler.NewRecommendationHandler(recUC),
			Onboarding:      handler.NewOnboardingHandler(onboardingUC),
		},
		middleware.NewAuthMiddleware(jwtSvc),
	)
	registry.Register(f)

	return &App{Fiber: f}
}

// engineWeights fills unset weights from the engine defaults.
func engineWeights(cfg config.RecommendationConfig) recommendation.Weights {
	w := recommendation.DefaultWeights()
	if cfg.CourseSimilarityWeight > 0 {
		w.CourseSimilarity = cfg.CourseSimilarityWeight
	}
	if cfg.CourseBoostWeight > 0 {
		w.CourseBoost = cfg.CourseBoostWeight
	}
	if cfg.JobSimilarityWeight > 0 {
		w.JobSimilarity = cfg.JobSimilarityWeight
	}
	if cfg.JobBoostWeight > 0 {
		w.JobBoost = cfg.JobBoostWeight
	}
	if cfg.TopK > 0 {
		w.TopK = cfg.TopK
	}
	return w
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
