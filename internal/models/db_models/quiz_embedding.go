package db_models

import (
	"github.com/pgvector/pgvector-go"
)

// QuizEmbedding stores one vector per quiz, computed from title,
// description and category, for the similar-quiz lookup.
type QuizEmbedding struct {
	BaseModel
	QuizID    int64           `gorm:"uniqueIndex"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
}
