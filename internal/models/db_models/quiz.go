package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

type QuizMode string

const (
	ModeDiagnosis QuizMode = "diagnosis"
	ModeTest      QuizMode = "test"
	ModeFortune   QuizMode = "fortune"
)

// CorrectnessKey is the score key test mode counts as "the right answer".
const CorrectnessKey = "A"

type Option struct {
	Label string         `json:"label"`
	Score map[string]int `json:"score,omitempty"`
}

type Question struct {
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

type Result struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	LinkURL     string `json:"link_url,omitempty"`
	LinkText    string `json:"link_text,omitempty"`
	LineURL     string `json:"line_url,omitempty"`
	LineText    string `json:"line_text,omitempty"`
	QRURL       string `json:"qr_url,omitempty"`
	QRText      string `json:"qr_text,omitempty"`
}

type QuestionList []Question

type ResultList []Result

func (q QuestionList) Value() (driver.Value, error) {
	return json.Marshal(q)
}

func (q *QuestionList) Scan(src interface{}) error {
	return scanJSON(src, q)
}

func (r ResultList) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *ResultList) Scan(src interface{}) error {
	return scanJSON(src, r)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	case nil:
		return nil
	default:
		return errors.New("unsupported jsonb source type")
	}
}

// Quiz keeps a bigint primary key on purpose: numeric ids were shared in
// public links before slugs existed and must keep resolving.
type Quiz struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Slug         string     `gorm:"size:16;uniqueIndex"`
	Title        string     `gorm:"not null"`
	Description  string
	Category     string
	Color        string
	Layout       string     `gorm:"size:16;default:card"`
	ImageURL     string
	Mode         QuizMode   `gorm:"size:16;default:diagnosis;index"`
	OwnerID      *uuid.UUID `gorm:"type:uuid;index"` // nil for anonymous creations
	CollectEmail bool

	Questions QuestionList `gorm:"type:jsonb"`
	Results   ResultList   `gorm:"type:jsonb"`

	ViewsCount       int64 `gorm:"default:0"`
	CompletionsCount int64 `gorm:"default:0"`
	LinkClicksCount  int64 `gorm:"default:0"`
	LikesCount       int64 `gorm:"default:0"`

	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}
