package services

import (
	"context"

	"film-backend/internal/auth"
	"film-backend/internal/events"
	"film-backend/internal/models"
	"film-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type DirectorService interface {
	List(ctx context.Context, opts repository.ListOptions) ([]models.Director, int64, error)
	Get(ctx context.Context, id uint) (*models.Director, error)
	Create(ctx context.Context, actor auth.Principal, in models.DirectorInput) (*models.Director, error)
	Update(ctx context.Context, actor auth.Principal, id uint, in models.DirectorUpdate) (*models.Director, error)
	Delete(ctx context.Context, actor auth.Principal, id uint) (*models.Director, error)
}

type directorService struct {
	repo repository.DirectorRepository
	notifier
}

func NewDirectorService(repo repository.DirectorRepository, publisher events.Publisher, logger *logrus.Logger) DirectorService {
	return &directorService{
		repo:     repo,
		notifier: notifier{publisher: publisher, logger: logger},
	}
}

func (s *directorService) List(ctx context.Context, opts repository.ListOptions) ([]models.Director, int64, error) {
	return s.repo.List(ctx, opts)
}

func (s *directorService) Get(ctx context.Context, id uint) (*models.Director, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *directorService) Create(ctx context.Context, actor auth.Principal, in models.DirectorInput) (*models.Director, error) {
	director, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.audit(director, actor, "Created director")
	s.publish(ctx, events.New(events.DirectorCreated, director.ID, actor.UserID, director))
	return director, nil
}

func (s *directorService) Update(ctx context.Context, actor auth.Principal, id uint, in models.DirectorUpdate) (*models.Director, error) {
	director, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.audit(director, actor, "Updated director")
	s.publish(ctx, events.New(events.DirectorUpdated, director.ID, actor.UserID, director))
	return director, nil
}

func (s *directorService) Delete(ctx context.Context, actor auth.Principal, id uint) (*models.Director, error) {
	director, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.audit(director, actor, "Deleted director")
	s.publish(ctx, events.New(events.DirectorDeleted, director.ID, actor.UserID, director))
	return director, nil
}

func (s *directorService) audit(d *models.Director, actor auth.Principal, msg string) {
	s.logger.WithFields(logrus.Fields{
		"id":   d.ID,
		"name": d.FirstName + " " + d.LastName,
		"user": actor.Username,
	}).Info(msg)
}
