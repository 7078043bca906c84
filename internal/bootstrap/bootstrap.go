package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/lmsdash/internal/app/controllers"
	appRepos "github.com/yigit/lmsdash/internal/app/repositories"
	appRoutes "github.com/yigit/lmsdash/internal/app/routes"
	appServices "github.com/yigit/lmsdash/internal/app/services"
	"github.com/yigit/lmsdash/internal/config"
	appMiddleware "github.com/yigit/lmsdash/internal/middleware"
	"github.com/yigit/lmsdash/internal/pkg/idgen"
	"github.com/yigit/lmsdash/internal/pkg/logger"
	"github.com/yigit/lmsdash/internal/pkg/websocket"
	"github.com/yigit/lmsdash/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos            *appRepos.Repositories
	Services         *appServices.Services
	CourseController *appControllers.CourseController
	TaskController   *appControllers.TaskController
	UserController   *appControllers.UserController
	// Hub and EventsHandler are nil when the change feed is disabled
	Hub           *websocket.Hub
	EventsHandler *websocket.Handler
	Logger        zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Error().Err(err).Msg("Failed to load .env file")
		return nil, zerolog.Logger{}, err
	}

	cfg, err := config.LoadConfig(filepath.Join("configs", "config.yaml"))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFromSettings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the store, services, and controllers.
// Fixtures are loaded before any handler can observe the store.
func BuildDependencies(ctx context.Context, cfg *config.Config, ids idgen.Generator, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(ids)

	if cfg.Store.SeedFixtures {
		if err := seed.LoadFixtures(ctx, deps.Repos, lgr); err != nil {
			return nil, fmt.Errorf("failed to load fixtures: %w", err)
		}
	}

	// A typed nil hub must not reach the Notifier interface
	var notifier appServices.Notifier
	if cfg.Events.Enabled {
		deps.Hub = websocket.NewHub(cfg.Events.Buffer, lgr)
		deps.EventsHandler = websocket.NewHandler(deps.Hub, lgr)
		notifier = deps.Hub
	}

	deps.Services = appServices.NewServices(deps.Repos, notifier, lgr)

	deps.CourseController = appControllers.NewCourseController(deps.Services.CourseService, deps.Services.AssignmentService)
	deps.TaskController = appControllers.NewTaskController(deps.Services.TaskService, cfg.App.DemoUserID)
	deps.UserController = appControllers.NewUserController(deps.Services.UserService, cfg.App.DemoUserID)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch {
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case cfg.Server.Mode == "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("mode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(lgr),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Metrics(),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.TaskController,
		deps.UserController,
		deps.EventsHandler,
	)

	return router
}
