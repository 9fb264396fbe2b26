package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/kimhouy1997/lms-portal-sub000/docs" // Import generated swagger docs
	appControllers "github.com/kimhouy1997/lms-portal-sub000/internal/app/controllers"
	appMigrations "github.com/kimhouy1997/lms-portal-sub000/internal/app/migrations"
	appRepos "github.com/kimhouy1997/lms-portal-sub000/internal/app/repositories"
	appRoutes "github.com/kimhouy1997/lms-portal-sub000/internal/app/routes"
	appServices "github.com/kimhouy1997/lms-portal-sub000/internal/app/services"
	"github.com/kimhouy1997/lms-portal-sub000/internal/config"
	"github.com/kimhouy1997/lms-portal-sub000/internal/db"
	"github.com/kimhouy1997/lms-portal-sub000/internal/jobs"
	appMiddleware "github.com/kimhouy1997/lms-portal-sub000/internal/middleware"
	pkgAuth "github.com/kimhouy1997/lms-portal-sub000/internal/pkg/auth"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/email"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/filestorage"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/helpers"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/logger"
	"github.com/kimhouy1997/lms-portal-sub000/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          *appServices.AuthService
	CourseService        *appServices.CourseService
	TechnologyService    *appServices.TechnologyService
	InstituteService     *appServices.InstituteService
	UserService          *appServices.UserService
	AuthController       *appControllers.AuthController
	CourseController     *appControllers.CourseController
	TechnologyController *appControllers.TechnologyController
	InstituteController  *appControllers.InstituteController
	UserController       *appControllers.UserController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	EmailService         email.EmailService
	FileStorage          *filestorage.LocalStorage
	TokenCleanup         *jobs.TokenCleanupJob
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Create Default Data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Initialize file storage. The base URL must match the static file
	// serving endpoint configured on the router.
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.Username,
		Password:  cfg.Email.Password,
		FromName:  cfg.Email.FromName,
		FromEmail: cfg.Email.FromEmail,
		BaseURL:   cfg.Email.BaseURL,
	}, lgr)

	// Initialize services
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.User,
		deps.Repos.Token,
		deps.Repos.PasswordResetToken,
		deps.Repos.Institute,
		deps.JWTService,
		deps.EmailService,
		lgr,
	)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.Course,
		deps.Repos.Chapter,
		deps.Repos.Lesson,
		deps.Repos.Resource,
		deps.Repos.Assignment,
		deps.Repos.Technology,
		lgr,
	)
	deps.TechnologyService = appServices.NewTechnologyService(deps.Repos.Technology)
	deps.InstituteService = appServices.NewInstituteService(deps.Repos.Institute)
	deps.UserService = appServices.NewUserService(deps.Repos.User, deps.Repos.Token, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.User)

	// Initialize controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, deps.Repos.File, deps.FileStorage)
	deps.TechnologyController = appControllers.NewTechnologyController(deps.TechnologyService)
	deps.InstituteController = appControllers.NewInstituteController(deps.InstituteService)
	deps.UserController = appControllers.NewUserController(deps.UserService, deps.FileStorage)

	// Background jobs
	deps.TokenCleanup = jobs.NewTokenCleanupJob(deps.Repos.Token, deps.Repos.PasswordResetToken, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())
	router.Use(appMiddleware.CORS(cfg.AllowedOriginList()))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.TechnologyController,
		deps.InstituteController,
		deps.UserController,
		deps.AuthMiddleware,
	)

	return router
}
