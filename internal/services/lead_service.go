package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"quizmaker/internal/models/db_models"
	"quizmaker/internal/repositories"
	"quizmaker/pkg/utils"
)

type LeadServiceInterface interface {
	// ListForQuiz returns the collected emails for one quiz. Paid feature,
	// restricted to whoever may manage the quiz.
	ListForQuiz(ctx context.Context, viewer Viewer, quizID int64) ([]db_models.Lead, error)

	// ExportCSV renders the same list as a spreadsheet download.
	ExportCSV(ctx context.Context, viewer Viewer, quizID int64) ([]byte, error)
}

type LeadService struct {
	leadRepo     repositories.LeadRepository
	quizRepo     repositories.QuizRepository
	entitlements EntitlementServiceInterface
}

func NewLeadService(
	leadRepo repositories.LeadRepository,
	quizRepo repositories.QuizRepository,
	entitlements EntitlementServiceInterface,
) *LeadService {
	return &LeadService{
		leadRepo:     leadRepo,
		quizRepo:     quizRepo,
		entitlements: entitlements,
	}
}

func (s *LeadService) ListForQuiz(ctx context.Context, viewer Viewer, quizID int64) ([]db_models.Lead, error) {
	quiz, err := s.quizRepo.FindByID(ctx, quizID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if quiz == nil {
		return nil, utils.ErrQuizNotFound
	}
	if !s.entitlements.CanManage(viewer, quiz) {
		return nil, utils.ErrForbidden
	}

	unlocked, err := s.entitlements.IsUnlocked(ctx, viewer, quizID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !unlocked {
		return nil, utils.ErrFeatureLocked
	}
	return s.leadRepo.ListByQuiz(ctx, quizID)
}

func (s *LeadService) ExportCSV(ctx context.Context, viewer Viewer, quizID int64) ([]byte, error) {
	leads, err := s.ListForQuiz(ctx, viewer, quizID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"email", "collected_at"})
	for _, lead := range leads {
		_ = w.Write([]string{
			lead.Email,
			time.Unix(lead.CreatedAt, 0).UTC().Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
