package services

import (
	"context"
	"time"

	"quizmaker/internal/models/db_models"
	"quizmaker/internal/models/request_models"
	"quizmaker/internal/repositories"
	"quizmaker/pkg/utils"
)

type AnnouncementServiceInterface interface {
	ListActive(ctx context.Context) ([]db_models.Announcement, error)
	ListAll(ctx context.Context) ([]db_models.Announcement, error)
	Create(ctx context.Context, req request_models.SaveAnnouncementRequest) (*db_models.Announcement, error)
	Update(ctx context.Context, id string, req request_models.SaveAnnouncementRequest) (*db_models.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type AnnouncementService struct {
	repo repositories.AnnouncementRepository
}

func NewAnnouncementService(repo repositories.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{repo: repo}
}

func (s *AnnouncementService) ListActive(ctx context.Context) ([]db_models.Announcement, error) {
	return s.repo.ListActive(ctx)
}

func (s *AnnouncementService) ListAll(ctx context.Context) ([]db_models.Announcement, error) {
	return s.repo.ListAll(ctx)
}

func (s *AnnouncementService) Create(ctx context.Context, req request_models.SaveAnnouncementRequest) (*db_models.Announcement, error) {
	announcement := &db_models.Announcement{
		Title:       req.Title,
		Body:        req.Body,
		LinkURL:     req.LinkURL,
		LinkText:    req.LinkText,
		IsActive:    req.IsActive,
		AnnouncedOn: announcedOnOrToday(req.AnnouncedOn),
	}
	if err := s.repo.Insert(ctx, announcement); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return announcement, nil
}

func (s *AnnouncementService) Update(ctx context.Context, id string, req request_models.SaveAnnouncementRequest) (*db_models.Announcement, error) {
	announcement, err := s.repo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if announcement == nil {
		return nil, utils.ErrAnnouncementNotFound
	}

	announcement.Title = req.Title
	announcement.Body = req.Body
	announcement.LinkURL = req.LinkURL
	announcement.LinkText = req.LinkText
	announcement.IsActive = req.IsActive
	announcement.AnnouncedOn = announcedOnOrToday(req.AnnouncedOn)

	if err := s.repo.Update(ctx, announcement); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return announcement, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	announcement, err := s.repo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if announcement == nil {
		return utils.ErrAnnouncementNotFound
	}
	return s.repo.Delete(ctx, id)
}

func announcedOnOrToday(date string) string {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return time.Now().Format("2006-01-02")
	}
	return date
}
