package database

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"film-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	seedGenres = []string{
		"Action", "Comedy", "Western", "Gangster", "Detective", "Drama", "Historical", "Melodrama",
	}

	seedDirectors = []string{
		"Sam Raimi", "Anthony Russo", "Jon Watts", "Alan Taylor",
		"James Cameron", "Marc Webb", "Shane Black", "Joanne Rowling",
	}

	seedFilms = []string{
		"Spider-Man", "Iron Man", "Hulk", "Thor", "The Avengers",
		"Terminator", "Harry Potter", "Captain America", "Black Widow", "Ant-Man",
	}
)

const (
	seedPartsPerFilm = 5
	seedPosterURL    = "https://picsum.photos/id/222/200/300.jpg"
)

// SeedSummary counts the rows written by SeedCatalog.
type SeedSummary struct {
	Genres    int
	Directors int
	Films     int
}

// EnsureRoles creates the admin and user roles when they are missing.
func (d *Database) EnsureRoles(ctx context.Context) error {
	for _, name := range []string{models.RoleAdmin, models.RoleUser} {
		role := models.Role{Name: name}
		if err := d.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("failed to ensure role %s: %w", name, err)
		}
	}
	return nil
}

// SeedCatalog replaces genres, directors and films with demo data owned by ownerID.
func (d *Database) SeedCatalog(ctx context.Context, ownerID uint, rng *rand.Rand) (SeedSummary, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var summary SeedSummary
	err := d.Transaction(ctx, func(tx *gorm.DB) error {
		for _, table := range []string{"film_genres", "films", "directors", "genres"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		genres := make([]models.Genre, 0, len(seedGenres))
		for _, name := range seedGenres {
			genres = append(genres, models.Genre{Name: name})
		}
		if err := tx.Create(&genres).Error; err != nil {
			return fmt.Errorf("failed to seed genres: %w", err)
		}

		directors := make([]models.Director, 0, len(seedDirectors))
		for _, fullName := range seedDirectors {
			first, last, _ := strings.Cut(fullName, " ")
			directors = append(directors, models.Director{FirstName: first, LastName: last})
		}
		if err := tx.Create(&directors).Error; err != nil {
			return fmt.Errorf("failed to seed directors: %w", err)
		}

		description := "Film description..."
		poster := seedPosterURL
		for _, title := range seedFilms {
			for part := 1; part <= seedPartsPerFilm; part++ {
				premiere := time.Date(2000+rng.Intn(22), time.Month(1+rng.Intn(12)), 1+rng.Intn(27), 0, 0, 0, 0, time.UTC)
				director := directors[rng.Intn(len(directors))]

				filmTitle := fmt.Sprintf("%s %d", title, part)
				film := models.Film{
					Title:        filmTitle,
					SearchTitle:  models.FoldTitle(filmTitle),
					PremiereDate: &premiere,
					Description:  &description,
					PosterURL:    &poster,
					Rating:       5 + rng.Intn(6),
					UserID:       ownerID,
					DirectorID:   &director.ID,
					Genres:       pickGenres(rng, genres),
				}
				if err := tx.Create(&film).Error; err != nil {
					return fmt.Errorf("failed to seed film %q: %w", film.Title, err)
				}
				summary.Films++
			}
		}

		summary.Genres = len(genres)
		summary.Directors = len(directors)
		return nil
	})
	if err != nil {
		return SeedSummary{}, err
	}

	logrus.WithFields(logrus.Fields{
		"genres":    summary.Genres,
		"directors": summary.Directors,
		"films":     summary.Films,
	}).Info("Catalog seeded")

	return summary, nil
}

// pickGenres returns between one and four distinct genres.
func pickGenres(rng *rand.Rand, genres []models.Genre) []models.Genre {
	n := 1 + rng.Intn(4)
	picked := make([]models.Genre, 0, n)
	for _, idx := range rng.Perm(len(genres))[:n] {
		picked = append(picked, genres[idx])
	}
	return picked
}
