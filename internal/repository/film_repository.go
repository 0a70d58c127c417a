package repository

import (
	"context"
	"fmt"

	"film-backend/internal/database"
	"film-backend/internal/models"

	"gorm.io/gorm"
)

type FilmRepository interface {
	List(ctx context.Context, q FilmQuery) ([]models.Film, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Film, error)
	// OwnerOf returns the id of the user that owns the film.
	OwnerOf(ctx context.Context, id uint) (uint, error)
	Create(ctx context.Context, in models.FilmInput) (*models.Film, error)
	Update(ctx context.Context, id uint, in models.FilmUpdate) (*models.Film, error)
	Delete(ctx context.Context, id uint) (*models.Film, error)
	Count(ctx context.Context) (int64, error)
	PerPage() int
}

type filmRepository struct {
	crudRepository[models.Film]
	perPage int
}

func NewFilmRepository(db *database.Database, perPage int) FilmRepository {
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	return &filmRepository{
		crudRepository: newCRUD[models.Film](db, "Film"),
		perPage:        perPage,
	}
}

func (r *filmRepository) PerPage() int {
	return r.perPage
}

func (r *filmRepository) preloaded(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Director").
		Preload("User").
		Preload("Genres", func(db *gorm.DB) *gorm.DB {
			return db.Order("genres.id ASC")
		})
}

func (r *filmRepository) findInTx(tx *gorm.DB, id uint) (*models.Film, error) {
	var film models.Film
	if err := r.preloaded(tx).First(&film, id).Error; err != nil {
		return nil, notFound(err, r.entity, id)
	}
	return &film, nil
}

func (r *filmRepository) List(ctx context.Context, q FilmQuery) ([]models.Film, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var (
		films []models.Film
		total int64
	)

	query := r.db.WithContext(ctx).Model(&models.Film{}).Scopes(q.filters()...)
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = r.preloaded(query).Scopes(q.ordered, q.paginate(r.perPage))
	if err := query.Find(&films).Error; err != nil {
		return nil, 0, err
	}
	return films, total, nil
}

func (r *filmRepository) FindByID(ctx context.Context, id uint) (*models.Film, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.findInTx(r.db.WithContext(ctx), id)
}

func (r *filmRepository) OwnerOf(ctx context.Context, id uint) (uint, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var film models.Film
	err := r.db.WithContext(ctx).Select("id", "user_id").First(&film, id).Error
	if err != nil {
		return 0, notFound(err, r.entity, id)
	}
	return film.UserID, nil
}

func (r *filmRepository) Create(ctx context.Context, in models.FilmInput) (*models.Film, error) {
	var created *models.Film
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		if in.DirectorID != nil {
			if err := r.ensureDirector(tx, *in.DirectorID); err != nil {
				return err
			}
		}
		genreIDs := models.UniqueIDs(in.GenreIDs)
		if err := r.ensureGenres(tx, genreIDs); err != nil {
			return err
		}

		film := models.Film{
			Title:        in.Title,
			SearchTitle:  models.FoldTitle(in.Title),
			PremiereDate: in.PremiereDate,
			Description:  in.Description,
			Rating:       in.Rating,
			PosterURL:    in.PosterURL,
			UserID:       in.UserID,
			DirectorID:   in.DirectorID,
		}
		if err := tx.Omit("Genres").Create(&film).Error; err != nil {
			return fmt.Errorf("failed to insert film: %w", err)
		}
		if err := r.linkGenres(tx, film.ID, genreIDs); err != nil {
			return err
		}

		var err error
		created, err = r.findInTx(tx, film.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *filmRepository) Update(ctx context.Context, id uint, in models.FilmUpdate) (*models.Film, error) {
	var updated *models.Film
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		var film models.Film
		if err := tx.First(&film, id).Error; err != nil {
			return notFound(err, r.entity, id)
		}

		changes := map[string]any{}
		if in.Title.Present() {
			changes["title"] = in.Title.Value
			changes["search_title"] = models.FoldTitle(in.Title.Value)
		}
		if in.Rating.Present() {
			changes["rating"] = in.Rating.Value
		}
		if in.PremiereDate.Set {
			changes["premiere_date"] = in.PremiereDate.Ptr()
		}
		if in.Description.Set {
			changes["description"] = in.Description.Ptr()
		}
		if in.PosterURL.Set {
			changes["poster_url"] = in.PosterURL.Ptr()
		}
		if in.DirectorID.Set {
			if in.DirectorID.Present() {
				if err := r.ensureDirector(tx, in.DirectorID.Value); err != nil {
					return err
				}
			}
			changes["director_id"] = in.DirectorID.Ptr()
		}

		if len(changes) > 0 {
			if err := tx.Model(&film).Updates(changes).Error; err != nil {
				return fmt.Errorf("failed to update film: %w", err)
			}
		}

		if in.GenreIDs.Set {
			genreIDs := models.UniqueIDs(in.GenreIDs.Value)
			if err := r.ensureGenres(tx, genreIDs); err != nil {
				return err
			}
			if err := tx.Where("film_id = ?", film.ID).Delete(&models.FilmGenre{}).Error; err != nil {
				return err
			}
			if err := r.linkGenres(tx, film.ID, genreIDs); err != nil {
				return err
			}
		}

		var err error
		updated, err = r.findInTx(tx, film.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *filmRepository) Delete(ctx context.Context, id uint) (*models.Film, error) {
	var deleted *models.Film
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		film, err := r.findInTx(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Where("film_id = ?", film.ID).Delete(&models.FilmGenre{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Film{}, film.ID).Error; err != nil {
			return err
		}
		deleted = film
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *filmRepository) ensureDirector(tx *gorm.DB, id uint) error {
	ok, err := exists[models.Director](tx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &ReferenceError{Field: "director_id", ID: id}
	}
	return nil
}

// ensureGenres fails on the first id, in request order, that has no genre.
func (r *filmRepository) ensureGenres(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	var found []uint
	if err := tx.Model(&models.Genre{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return err
	}
	known := make(map[uint]struct{}, len(found))
	for _, id := range found {
		known[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return &ReferenceError{Field: "genres_ids", ID: id}
		}
	}
	return nil
}

func (r *filmRepository) linkGenres(tx *gorm.DB, filmID uint, genreIDs []uint) error {
	if len(genreIDs) == 0 {
		return nil
	}
	rows := make([]models.FilmGenre, 0, len(genreIDs))
	for _, genreID := range genreIDs {
		rows = append(rows, models.FilmGenre{FilmID: filmID, GenreID: genreID})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to link genres: %w", err)
	}
	return nil
}
