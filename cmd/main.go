package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "film-backend/docs"
	"film-backend/internal/auth"
	"film-backend/internal/config"
	"film-backend/internal/database"
	"film-backend/internal/events"
	"film-backend/internal/handlers"
	"film-backend/internal/repository"
	"film-backend/internal/routes"
	"film-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Film Catalog API
// @version 1.0
// @description Film catalog with directors, genres, owner-scoped film editing and session authentication
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8010
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load environment variables
	loadEnvFile()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	log := setupLogger()

	if err := run(cfg, log); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource opened at startup, so its deferred cleanup has
// finished by the time main exits on an error.
func run(cfg *config.Config, log *logrus.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	for _, warning := range cfg.Warnings() {
		log.Warnf("Configuration warning: %s", warning)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.EnsureRoles(startupCtx); err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}

	sessions := setupSessionStore(cfg.Redis, log)
	publisher := setupPublisher(cfg.Broker, log)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Errorf("Error closing event publisher: %v", err)
		}
	}()
	posters := setupPosterStorage(cfg.MinIO, log)

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	filmRepo := repository.NewFilmRepository(db, cfg.Catalog.FilmsPerPage)
	directorRepo := repository.NewDirectorRepository(db)
	genreRepo := repository.NewGenreRepository(db)

	authService := services.NewAuthService(
		userRepo,
		roleRepo,
		sessions,
		auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		cfg.Auth.BcryptCost,
		log,
	)
	filmService := services.NewFilmService(filmRepo, posters, publisher, log)
	directorService := services.NewDirectorService(directorRepo, publisher, log)
	genreService := services.NewGenreService(genreRepo, publisher, log)

	if cfg.Auth.AdminUsername != "" && cfg.Auth.AdminPassword != "" {
		if err := authService.EnsureAdmin(startupCtx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
			return fmt.Errorf("failed to ensure bootstrap admin: %w", err)
		}
	}

	app := fiber.New(fiber.Config{
		AppName:               "Film Catalog API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		BodyLimit:             cfg.Server.BodyLimit,
		DisableStartupMessage: false,
		ErrorHandler:          handlers.ErrorHandler(log),
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(db))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Setup API routes
	routes.Setup(app, routes.Handlers{
		Film:     handlers.NewFilmHandler(filmService, log),
		Director: handlers.NewDirectorHandler(directorService, cfg.Catalog.PageSize, log),
		Genre:    handlers.NewGenreHandler(genreService, cfg.Catalog.PageSize, log),
		Auth:     handlers.NewAuthHandler(authService, cfg.Auth, log),
		Upload:   handlers.NewUploadHandler(posters, log),
	}, routes.Guards{
		Authenticator: authService,
		Films:         filmService,
		CookieName:    cfg.Auth.CookieName,
		LoginLimit:    cfg.Auth.LoginLimit,
		LoginWindow:   cfg.Auth.LoginWindow,
	}, log)

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("Film Catalog API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

// setupSessionStore falls back to the in-process store when Redis is
// disabled or unreachable. Sessions are then lost on restart.
func setupSessionStore(cfg config.RedisConfig, log *logrus.Logger) auth.SessionStore {
	if !cfg.Enabled {
		log.Info("Redis disabled, using in-memory session store")
		return auth.NewMemorySessionStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("Redis unreachable, using in-memory session store")
		client.Close()
		return auth.NewMemorySessionStore()
	}

	log.WithField("addr", cfg.Addr).Info("Redis session store connected")
	return auth.NewRedisSessionStore(client)
}

func setupPublisher(cfg config.BrokerConfig, log *logrus.Logger) events.Publisher {
	if !cfg.Enabled {
		return events.NewLogPublisher(log)
	}

	publisher, err := events.DialAMQP(cfg.URL, cfg.Queue)
	if err != nil {
		log.WithError(err).Warn("Failed to connect to AMQP broker, catalog events will only be logged")
		return events.NewLogPublisher(log)
	}

	log.WithField("queue", cfg.Queue).Info("AMQP event publisher connected")
	return publisher
}

// setupPosterStorage returns nil when uploads are disabled.
func setupPosterStorage(cfg config.MinIOConfig, log *logrus.Logger) services.PosterStorage {
	if !cfg.Enabled {
		log.Info("MinIO disabled, poster uploads are unavailable")
		return nil
	}

	minioService, err := services.NewMinIOService(&cfg, log)
	if err != nil {
		log.WithError(err).Warn("Failed to initialize MinIO service, poster uploads are unavailable")
		return nil
	}
	return minioService
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS, PATCH",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))
}

func healthCheckHandler(db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "film-backend",
			"version":   "1.0.0",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
