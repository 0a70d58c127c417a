package services

import (
	"context"

	"film-backend/internal/auth"
	"film-backend/internal/events"
	"film-backend/internal/models"
	"film-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type FilmService interface {
	List(ctx context.Context, q repository.FilmQuery) ([]models.Film, int64, error)
	Get(ctx context.Context, id uint) (*models.Film, error)
	OwnerOf(ctx context.Context, id uint) (uint, error)
	Create(ctx context.Context, actor auth.Principal, in models.FilmInput) (*models.Film, error)
	Update(ctx context.Context, actor auth.Principal, id uint, in models.FilmUpdate) (*models.Film, error)
	Delete(ctx context.Context, actor auth.Principal, id uint) (*models.Film, error)
	PerPage() int
}

type filmService struct {
	repo    repository.FilmRepository
	posters PosterStorage
	notifier
}

// NewFilmService wires the film use cases. posters may be nil, which
// disables cleanup of replaced and deleted posters.
func NewFilmService(repo repository.FilmRepository, posters PosterStorage, publisher events.Publisher, logger *logrus.Logger) FilmService {
	return &filmService{
		repo:     repo,
		posters:  posters,
		notifier: notifier{publisher: publisher, logger: logger},
	}
}

func (s *filmService) PerPage() int {
	return s.repo.PerPage()
}

func (s *filmService) List(ctx context.Context, q repository.FilmQuery) ([]models.Film, int64, error) {
	return s.repo.List(ctx, q)
}

func (s *filmService) Get(ctx context.Context, id uint) (*models.Film, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *filmService) OwnerOf(ctx context.Context, id uint) (uint, error) {
	return s.repo.OwnerOf(ctx, id)
}

func (s *filmService) Create(ctx context.Context, actor auth.Principal, in models.FilmInput) (*models.Film, error) {
	in.UserID = actor.UserID
	film, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":    film.ID,
		"title": film.Title,
		"user":  actor.Username,
	}).Info("Created film")
	s.publish(ctx, events.New(events.FilmCreated, film.ID, actor.UserID, filmEventData(film)))

	return film, nil
}

func (s *filmService) Update(ctx context.Context, actor auth.Principal, id uint, in models.FilmUpdate) (*models.Film, error) {
	var previousPoster *string
	if s.posters != nil && in.PosterURL.Set {
		if before, err := s.repo.FindByID(ctx, id); err == nil {
			previousPoster = before.PosterURL
		}
	}

	film, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":    film.ID,
		"title": film.Title,
		"user":  actor.Username,
	}).Info("Updated film")
	s.publish(ctx, events.New(events.FilmUpdated, film.ID, actor.UserID, filmEventData(film)))

	if previousPoster != nil && (film.PosterURL == nil || *film.PosterURL != *previousPoster) {
		s.removePoster(ctx, *previousPoster)
	}

	return film, nil
}

func (s *filmService) Delete(ctx context.Context, actor auth.Principal, id uint) (*models.Film, error) {
	film, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":    film.ID,
		"title": film.Title,
		"user":  actor.Username,
	}).Info("Deleted film")
	s.publish(ctx, events.New(events.FilmDeleted, film.ID, actor.UserID, filmEventData(film)))

	if film.PosterURL != nil {
		s.removePoster(ctx, *film.PosterURL)
	}

	return film, nil
}

// removePoster deletes a poster from the managed bucket. Foreign URLs are left alone.
func (s *filmService) removePoster(ctx context.Context, posterURL string) {
	if s.posters == nil {
		return
	}
	name, ok := s.posters.ObjectName(posterURL)
	if !ok {
		return
	}
	if err := s.posters.DeleteFile(context.WithoutCancel(ctx), name); err != nil {
		s.logger.WithError(err).WithField("poster", posterURL).Warn("Failed to delete old poster")
	}
}

func filmEventData(f *models.Film) map[string]any {
	return map[string]any{
		"title":   f.Title,
		"rating":  f.Rating,
		"user_id": f.UserID,
	}
}
