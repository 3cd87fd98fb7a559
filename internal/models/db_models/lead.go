package db_models

// Lead is a visitor email collected on quiz completion when the owning
// quiz has CollectEmail enabled.
type Lead struct {
	BaseModel
	QuizID int64  `gorm:"index"`
	Email  string `gorm:"size:255"`
}

// TableName matches the table the SPA has exported from since launch.
func (Lead) TableName() string { return "quiz_leads" }
