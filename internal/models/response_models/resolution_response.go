package response_models

import "quizmaker/internal/models/db_models"

type ViewStateResponse struct {
	View string           `json:"view"`
	Quiz *db_models.Quiz  `json:"quiz,omitempty"`
}
