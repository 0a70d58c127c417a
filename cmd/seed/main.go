// Command seed replaces the catalog with demo genres, directors and films.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"film-backend/internal/auth"
	"film-backend/internal/config"
	"film-backend/internal/database"
	"film-backend/internal/models"
	"film-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const seedUsername = "seed"

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}
	if err := godotenv.Load("envs/.env." + env); err != nil {
		if err := godotenv.Load("envs/.env"); err != nil {
			log.Warnf("No environment file loaded: %v", err)
		}
	}

	if err := run(config.Load(), log); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config, log *logrus.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.EnsureRoles(ctx); err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}

	owner, err := seedOwner(ctx, repository.NewUserRepository(db), cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to resolve film owner: %w", err)
	}

	seed := time.Now().UnixNano()
	if v := os.Getenv("SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = n
		}
	}

	summary, err := db.SeedCatalog(ctx, owner.ID, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	log.WithFields(logrus.Fields{
		"owner":     owner.Username,
		"genres":    summary.Genres,
		"directors": summary.Directors,
		"films":     summary.Films,
		"seed":      seed,
	}).Info("Catalog seeded")
	return nil
}

// seedOwner returns the bootstrap admin when configured, otherwise a
// dedicated seed user with an unusable random password.
func seedOwner(ctx context.Context, users repository.UserRepository, cfg config.AuthConfig) (*models.User, error) {
	username, password, role := cfg.AdminUsername, cfg.AdminPassword, models.RoleAdmin
	if username == "" || password == "" {
		username, password, role = seedUsername, uuid.NewString(), models.RoleUser
	}

	existing, err := users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	hash, err := auth.HashPassword(password, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	return users.Create(ctx, username, hash, role)
}
