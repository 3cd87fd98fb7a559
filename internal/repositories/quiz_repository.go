package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"quizmaker/internal/models/db_models"
)

// Counter columns the event endpoint may bump. Anything else is rejected
// before it reaches SQL.
const (
	CounterViews       = "views_count"
	CounterCompletions = "completions_count"
	CounterLinkClicks  = "link_clicks_count"
	CounterLikes       = "likes_count"
)

type QuizRepository interface {
	Create(ctx context.Context, quiz *db_models.Quiz) (int64, error)
	Update(ctx context.Context, quiz *db_models.Quiz) error
	Delete(ctx context.Context, id int64) error

	// FindBySlug and FindByID return (nil, nil) when no row matches, so a
	// missing quiz is distinguishable from a transport failure.
	FindBySlug(ctx context.Context, slug string) (*db_models.Quiz, error)
	FindByID(ctx context.Context, id int64) (*db_models.Quiz, error)

	List(ctx context.Context, page, pageSize int) ([]db_models.Quiz, error)
	ListByOwner(ctx context.Context, ownerID string) ([]db_models.Quiz, error)
	ListAll(ctx context.Context) ([]db_models.Quiz, error)

	IncrementCounter(ctx context.Context, id int64, column string) error
	UpdateSlug(ctx context.Context, id int64, slug string) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(ctx context.Context, quiz *db_models.Quiz) (int64, error) {
	if err := r.db.WithContext(ctx).Create(quiz).Error; err != nil {
		return 0, err
	}
	return quiz.ID, nil
}

func (r *quizRepository) Update(ctx context.Context, quiz *db_models.Quiz) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(quiz)
		if result.Error != nil {
			return fmt.Errorf("failed to update quiz: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *quizRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Quiz{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// ────────────────────────────────────────────────────────────────
// Read helpers follow the same pattern: default value + nil error
// when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *quizRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Quiz, error) {
	var quiz db_models.Quiz
	err := r.db.WithContext(ctx).First(&quiz, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByID(ctx context.Context, id int64) (*db_models.Quiz, error) {
	var quiz db_models.Quiz
	err := r.db.WithContext(ctx).First(&quiz, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Quiz, error) {
	var quizzes []db_models.Quiz
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) ListByOwner(ctx context.Context, ownerID string) ([]db_models.Quiz, error) {
	var quizzes []db_models.Quiz
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) ListAll(ctx context.Context) ([]db_models.Quiz, error) {
	var quizzes []db_models.Quiz
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) IncrementCounter(ctx context.Context, id int64, column string) error {
	switch column {
	case CounterViews, CounterCompletions, CounterLinkClicks, CounterLikes:
	default:
		return fmt.Errorf("unknown counter column: %s", column)
	}
	return r.db.WithContext(ctx).
		Model(&db_models.Quiz{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
}

func (r *quizRepository) UpdateSlug(ctx context.Context, id int64, slug string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Quiz{}).
		Where("id = ?", id).
		Update("slug", slug).Error
}
