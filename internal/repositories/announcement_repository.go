package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"quizmaker/internal/models/db_models"
)

type AnnouncementRepository interface {
	Insert(ctx context.Context, a *db_models.Announcement) error
	Update(ctx context.Context, a *db_models.Announcement) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.Announcement, error)
	ListActive(ctx context.Context) ([]db_models.Announcement, error)
	ListAll(ctx context.Context) ([]db_models.Announcement, error)
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Insert(ctx context.Context, a *db_models.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *announcementRepository) Update(ctx context.Context, a *db_models.Announcement) error {
	result := r.db.WithContext(ctx).Save(a)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Announcement{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *announcementRepository) FindById(ctx context.Context, id string) (*db_models.Announcement, error) {
	var a db_models.Announcement
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepository) ListActive(ctx context.Context) ([]db_models.Announcement, error) {
	var items []db_models.Announcement
	err := r.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("announced_on DESC, created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *announcementRepository) ListAll(ctx context.Context) ([]db_models.Announcement, error) {
	var items []db_models.Announcement
	err := r.db.WithContext(ctx).
		Order("announced_on DESC, created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
