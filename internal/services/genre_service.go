package services

import (
	"context"

	"film-backend/internal/auth"
	"film-backend/internal/events"
	"film-backend/internal/models"
	"film-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type GenreService interface {
	List(ctx context.Context, opts repository.ListOptions) ([]models.Genre, int64, error)
	Get(ctx context.Context, id uint) (*models.Genre, error)
	Create(ctx context.Context, actor auth.Principal, in models.GenreInput) (*models.Genre, error)
	Update(ctx context.Context, actor auth.Principal, id uint, in models.GenreUpdate) (*models.Genre, error)
	Delete(ctx context.Context, actor auth.Principal, id uint) (*models.Genre, error)
}

type genreService struct {
	repo repository.GenreRepository
	notifier
}

func NewGenreService(repo repository.GenreRepository, publisher events.Publisher, logger *logrus.Logger) GenreService {
	return &genreService{
		repo:     repo,
		notifier: notifier{publisher: publisher, logger: logger},
	}
}

func (s *genreService) List(ctx context.Context, opts repository.ListOptions) ([]models.Genre, int64, error) {
	return s.repo.List(ctx, opts)
}

func (s *genreService) Get(ctx context.Context, id uint) (*models.Genre, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *genreService) Create(ctx context.Context, actor auth.Principal, in models.GenreInput) (*models.Genre, error) {
	genre, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.audit(genre, actor, "Created genre")
	s.publish(ctx, events.New(events.GenreCreated, genre.ID, actor.UserID, genre))
	return genre, nil
}

func (s *genreService) Update(ctx context.Context, actor auth.Principal, id uint, in models.GenreUpdate) (*models.Genre, error) {
	genre, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.audit(genre, actor, "Updated genre")
	s.publish(ctx, events.New(events.GenreUpdated, genre.ID, actor.UserID, genre))
	return genre, nil
}

func (s *genreService) Delete(ctx context.Context, actor auth.Principal, id uint) (*models.Genre, error) {
	genre, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.audit(genre, actor, "Deleted genre")
	s.publish(ctx, events.New(events.GenreDeleted, genre.ID, actor.UserID, genre))
	return genre, nil
}

func (s *genreService) audit(g *models.Genre, actor auth.Principal, msg string) {
	s.logger.WithFields(logrus.Fields{
		"id":   g.ID,
		"name": g.Name,
		"user": actor.Username,
	}).Info(msg)
}
