package repositories

import (
	"context"

	"gorm.io/gorm"

	"quizmaker/internal/models/db_models"
)

type LeadRepository interface {
	Insert(ctx context.Context, lead *db_models.Lead) error
	ListByQuiz(ctx context.Context, quizID int64) ([]db_models.Lead, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Insert(ctx context.Context, lead *db_models.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *leadRepository) ListByQuiz(ctx context.Context, quizID int64) ([]db_models.Lead, error) {
	var leads []db_models.Lead
	err := r.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("created_at ASC").
		Find(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *leadRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Lead{}).
		Joins("JOIN quizzes ON quizzes.id = quiz_leads.quiz_id").
		Where("quizzes.owner_id = ?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
