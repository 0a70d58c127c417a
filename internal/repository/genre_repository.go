package repository

import (
	"context"
	"errors"

	"film-backend/internal/database"
	"film-backend/internal/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	List(ctx context.Context, opts ListOptions) ([]models.Genre, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Genre, error)
	Create(ctx context.Context, in models.GenreInput) (*models.Genre, error)
	Update(ctx context.Context, id uint, in models.GenreUpdate) (*models.Genre, error)
	// Delete removes the genre from every film before removing it.
	Delete(ctx context.Context, id uint) (*models.Genre, error)
}

type genreRepository struct {
	crudRepository[models.Genre]
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{
		crudRepository: newCRUD[models.Genre](db, "Genre"),
	}
}

// ensureNameFree fails with DuplicateError when another genre already uses
// name. Matching is case-sensitive, like the unique index.
func (r *genreRepository) ensureNameFree(tx *gorm.DB, name string, exceptID uint) error {
	var count int64
	query := tx.Model(&models.Genre{}).Where("name = ?", name)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &DuplicateError{Entity: "Genre", Field: "name", Value: name}
	}
	return nil
}

func (r *genreRepository) Create(ctx context.Context, in models.GenreInput) (*models.Genre, error) {
	genre := models.Genre{Name: in.Name}
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		if err := r.ensureNameFree(tx, in.Name, 0); err != nil {
			return err
		}
		return r.translate(tx.Create(&genre).Error, in.Name)
	})
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) Update(ctx context.Context, id uint, in models.GenreUpdate) (*models.Genre, error) {
	var updated *models.Genre
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		genre, err := r.findInTx(tx, id)
		if err != nil {
			return err
		}

		if in.Name.Present() && in.Name.Value != genre.Name {
			if err := r.ensureNameFree(tx, in.Name.Value, genre.ID); err != nil {
				return err
			}
			if err := tx.Model(genre).Update("name", in.Name.Value).Error; err != nil {
				return r.translate(err, in.Name.Value)
			}
		}

		updated, err = r.findInTx(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *genreRepository) Delete(ctx context.Context, id uint) (*models.Genre, error) {
	return r.delete(ctx, id, func(tx *gorm.DB, genre *models.Genre) error {
		return tx.Where("genre_id = ?", genre.ID).Delete(&models.FilmGenre{}).Error
	})
}

// translate maps a unique index violation raced past ensureNameFree.
func (r *genreRepository) translate(err error, name string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &DuplicateError{Entity: "Genre", Field: "name", Value: name}
	}
	return err
}
