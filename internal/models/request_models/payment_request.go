package request_models

type CreateCheckoutRequest struct {
	QuizID      int64 `json:"quiz_id" binding:"required"`
	AmountMinor int64 `json:"amount_minor"`
}
