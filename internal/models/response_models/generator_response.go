package response_models

import "quizmaker/internal/models/db_models"

// QuizDraft is the model output for one generation request. It is a
// best-effort draft the owner edits before saving; nothing here is validated
// beyond being parseable.
type QuizDraft struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Questions   db_models.QuestionList `json:"questions"`
	Results     db_models.ResultList   `json:"results"`
}
