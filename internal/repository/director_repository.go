package repository

import (
	"context"

	"film-backend/internal/database"
	"film-backend/internal/models"

	"gorm.io/gorm"
)

type DirectorRepository interface {
	List(ctx context.Context, opts ListOptions) ([]models.Director, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Director, error)
	Create(ctx context.Context, in models.DirectorInput) (*models.Director, error)
	Update(ctx context.Context, id uint, in models.DirectorUpdate) (*models.Director, error)
	// Delete detaches the director from its films before removing it.
	Delete(ctx context.Context, id uint) (*models.Director, error)
}

type directorRepository struct {
	crudRepository[models.Director]
}

func NewDirectorRepository(db *database.Database) DirectorRepository {
	return &directorRepository{
		crudRepository: newCRUD[models.Director](db, "Director"),
	}
}

func (r *directorRepository) Create(ctx context.Context, in models.DirectorInput) (*models.Director, error) {
	director := models.Director{FirstName: in.FirstName, LastName: in.LastName}
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		return tx.Create(&director).Error
	})
	if err != nil {
		return nil, err
	}
	return &director, nil
}

func (r *directorRepository) Update(ctx context.Context, id uint, in models.DirectorUpdate) (*models.Director, error) {
	var updated *models.Director
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		director, err := r.findInTx(tx, id)
		if err != nil {
			return err
		}

		changes := map[string]any{}
		if in.FirstName.Present() {
			changes["first_name"] = in.FirstName.Value
		}
		if in.LastName.Present() {
			changes["last_name"] = in.LastName.Value
		}
		if len(changes) > 0 {
			if err := tx.Model(director).Updates(changes).Error; err != nil {
				return err
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

func (r *directorRepository) Delete(ctx context.Context, id uint) (*models.Director, error) {
	return r.delete(ctx, id, func(tx *gorm.DB, director *models.Director) error {
		return tx.Model(&models.Film{}).
			Where("director_id = ?", director.ID).
			Update("director_id", nil).Error
	})
}
