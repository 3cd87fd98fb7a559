package request_models

import "quizmaker/internal/models/db_models"

type SaveQuizRequest struct {
	Title        string                  `json:"title" binding:"required,max=120"`
	Description  string                  `json:"description"`
	Category     string                  `json:"category"`
	Color        string                  `json:"color"`
	Layout       string                  `json:"layout"`
	ImageURL     string                  `json:"image_url"`
	Mode         string                  `json:"mode"`
	CollectEmail bool                    `json:"collect_email"`
	Questions    db_models.QuestionList  `json:"questions" binding:"required"`
	Results      db_models.ResultList    `json:"results" binding:"required"`
}

// ScoreRequest carries the finished answer sheet: one selected option per
// answered question index.
type ScoreRequest struct {
	Answers map[int]db_models.Option `json:"answers" binding:"required"`
	Email   string                   `json:"email,omitempty"` // lead capture, only honored when the quiz collects emails
}
