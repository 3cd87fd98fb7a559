package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizmaker/internal/models/db_models"
)

type PurchaseRepository interface {
	Insert(ctx context.Context, purchase *db_models.Purchase) error
	Exists(ctx context.Context, accountID uuid.UUID, quizID int64) (bool, error)
	ListQuizIDsByAccount(ctx context.Context, accountID uuid.UUID) ([]int64, error)
	ListRecent(ctx context.Context, limit int) ([]db_models.Purchase, error)
	ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]db_models.Purchase, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Insert(ctx context.Context, purchase *db_models.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepository) Exists(ctx context.Context, accountID uuid.UUID, quizID int64) (bool, error) {
	var purchase db_models.Purchase
	err := r.db.WithContext(ctx).
		First(&purchase, "account_id = ? AND quiz_id = ?", accountID, quizID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *purchaseRepository) ListQuizIDsByAccount(ctx context.Context, accountID uuid.UUID) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Purchase{}).
		Where("account_id = ?", accountID).
		Pluck("quiz_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *purchaseRepository) ListRecent(ctx context.Context, limit int) ([]db_models.Purchase, error) {
	var purchases []db_models.Purchase
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]db_models.Purchase, error) {
	var purchases []db_models.Purchase
	err := r.db.WithContext(ctx).
		Joins("JOIN quizzes ON quizzes.id = purchases.quiz_id").
		Where("quizzes.owner_id = ?", ownerID).
		Order("purchases.created_at DESC").
		Limit(limit).
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}
