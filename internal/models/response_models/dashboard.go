package response_models

type QuizStat struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Slug             string  `json:"slug"`
	ViewsCount       int64   `json:"views_count"`
	CompletionsCount int64   `json:"completions_count"`
	LinkClicksCount  int64   `json:"link_clicks_count"`
	LikesCount       int64   `json:"likes_count"`
	CompletionRate   float64 `json:"completion_rate"` // percent, 0 when no views
	Unlocked         bool    `json:"unlocked"`
}

type RecentPurchase struct {
	QuizID      int64  `json:"quiz_id"`
	QuizTitle   string `json:"quiz_title"`
	AmountMinor int64  `json:"amount_minor"`
	CreatedAt   int64  `json:"created_at"`
}

type DashboardReport struct {
	TotalQuizzes     int64            `json:"total_quizzes"`
	TotalViews       int64            `json:"total_views"`
	TotalCompletions int64            `json:"total_completions"`
	TotalLeads       int64            `json:"total_leads"`
	Quizzes          []QuizStat       `json:"quizzes"`
	RecentPurchases  []RecentPurchase `json:"recent_purchases"`
}
