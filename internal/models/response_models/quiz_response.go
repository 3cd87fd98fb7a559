package response_models

import "quizmaker/internal/models/db_models"

// ScoredResult is the outcome of one quiz attempt. Score/Total are only
// populated in test mode.
type ScoredResult struct {
	db_models.Result
	Score *int `json:"score,omitempty"`
	Total *int `json:"total,omitempty"`
}

type QuizSummary struct {
	ID               int64  `json:"id"`
	Slug             string `json:"slug"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	Color            string `json:"color"`
	Mode             string `json:"mode"`
	CollectEmail     bool   `json:"collect_email"`
	ViewsCount       int64  `json:"views_count"`
	CompletionsCount int64  `json:"completions_count"`
	LikesCount       int64  `json:"likes_count"`
	CreatedAt        int64  `json:"created_at"`
}

func ToQuizSummary(q *db_models.Quiz) QuizSummary {
	return QuizSummary{
		ID:               q.ID,
		Slug:             q.Slug,
		Title:            q.Title,
		Description:      q.Description,
		Category:         q.Category,
		Color:            q.Color,
		Mode:             string(q.Mode),
		CollectEmail:     q.CollectEmail,
		ViewsCount:       q.ViewsCount,
		CompletionsCount: q.CompletionsCount,
		LikesCount:       q.LikesCount,
		CreatedAt:        q.CreatedAt,
	}
}
