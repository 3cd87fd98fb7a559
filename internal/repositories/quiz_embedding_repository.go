package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quizmaker/internal/models/db_models"
)

type QuizEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *db_models.QuizEmbedding) error
	FindNearest(ctx context.Context, vector pgvector.Vector, excludeQuizID int64, limit int) ([]db_models.QuizEmbedding, error)
	DeleteByQuiz(ctx context.Context, quizID int64) error
}

type quizEmbeddingRepository struct {
	db *gorm.DB
}

func NewQuizEmbeddingRepository(db *gorm.DB) QuizEmbeddingRepository {
	return &quizEmbeddingRepository{db: db}
}

func (r *quizEmbeddingRepository) Upsert(ctx context.Context, embedding *db_models.QuizEmbedding) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "quiz_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"embedding", "updated_at"}),
		}).
		Create(embedding).Error
}

func (r *quizEmbeddingRepository) FindNearest(ctx context.Context, vector pgvector.Vector, excludeQuizID int64, limit int) ([]db_models.QuizEmbedding, error) {
	var results []db_models.QuizEmbedding

	// Cosine distance; closer to 0 is better.
	query := `
        SELECT *
        FROM quiz_embeddings
        WHERE quiz_id <> ?
        ORDER BY embedding <=> ?
        LIMIT ?
    `
	err := r.db.WithContext(ctx).Raw(query, excludeQuizID, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizEmbeddingRepository) DeleteByQuiz(ctx context.Context, quizID int64) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.QuizEmbedding{}, "quiz_id = ?", quizID).Error
}
