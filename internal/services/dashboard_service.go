package services

import (
	"context"

	"quizmaker/internal/models/db_models"
	"quizmaker/internal/models/response_models"
	"quizmaker/internal/repositories"
	"quizmaker/pkg/utils"
)

const recentPurchaseLimit = 10

type DashboardServiceInterface interface {
	// BuildReport aggregates the signed-in owner's quizzes, counters and
	// sales into one dashboard payload. Admins see every quiz.
	BuildReport(ctx context.Context, viewer Viewer) (*response_models.DashboardReport, error)
}

type DashboardService struct {
	quizRepo     repositories.QuizRepository
	purchaseRepo repositories.PurchaseRepository
	leadRepo     repositories.LeadRepository
	entitlements EntitlementServiceInterface
}

func NewDashboardService(
	quizRepo repositories.QuizRepository,
	purchaseRepo repositories.PurchaseRepository,
	leadRepo repositories.LeadRepository,
	entitlements EntitlementServiceInterface,
) *DashboardService {
	return &DashboardService{
		quizRepo:     quizRepo,
		purchaseRepo: purchaseRepo,
		leadRepo:     leadRepo,
		entitlements: entitlements,
	}
}

func (s *DashboardService) BuildReport(ctx context.Context, viewer Viewer) (*response_models.DashboardReport, error) {
	if viewer.AccountID == nil {
		return nil, utils.ErrForbidden
	}

	var (
		quizzes []db_models.Quiz
		err     error
	)
	if viewer.IsAdmin() {
		quizzes, err = s.quizRepo.ListAll(ctx)
	} else {
		quizzes, err = s.quizRepo.ListByOwner(ctx, viewer.AccountID.String())
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	report := &response_models.DashboardReport{
		TotalQuizzes: int64(len(quizzes)),
		Quizzes:      make([]response_models.QuizStat, 0, len(quizzes)),
	}

	for _, quiz := range quizzes {
		unlocked, err := s.entitlements.IsUnlocked(ctx, viewer, quiz.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}

		rate := 0.0
		if quiz.ViewsCount > 0 {
			rate = float64(quiz.CompletionsCount) / float64(quiz.ViewsCount) * 100
		}

		report.TotalViews += quiz.ViewsCount
		report.TotalCompletions += quiz.CompletionsCount
		report.Quizzes = append(report.Quizzes, response_models.QuizStat{
			ID:               quiz.ID,
			Title:            quiz.Title,
			Slug:             quiz.Slug,
			ViewsCount:       quiz.ViewsCount,
			CompletionsCount: quiz.CompletionsCount,
			LinkClicksCount:  quiz.LinkClicksCount,
			LikesCount:       quiz.LikesCount,
			CompletionRate:   rate,
			Unlocked:         unlocked,
		})
	}

	totalLeads, err := s.leadRepo.CountByOwner(ctx, viewer.AccountID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	report.TotalLeads = totalLeads

	purchases, err := s.recentPurchases(ctx, viewer)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	report.RecentPurchases = purchases

	return report, nil
}

func (s *DashboardService) recentPurchases(ctx context.Context, viewer Viewer) ([]response_models.RecentPurchase, error) {
	var (
		rows []db_models.Purchase
		err  error
	)
	if viewer.IsAdmin() {
		rows, err = s.purchaseRepo.ListRecent(ctx, recentPurchaseLimit)
	} else {
		rows, err = s.purchaseRepo.ListRecentByOwner(ctx, *viewer.AccountID, recentPurchaseLimit)
	}
	if err != nil {
		return nil, err
	}

	recent := make([]response_models.RecentPurchase, 0, len(rows))
	for _, row := range rows {
		title := ""
		if quiz, err := s.quizRepo.FindByID(ctx, row.QuizID); err == nil && quiz != nil {
			title = quiz.Title
		}
		recent = append(recent, response_models.RecentPurchase{
			QuizID:      row.QuizID,
			QuizTitle:   title,
			AmountMinor: row.AmountMinor,
			CreatedAt:   row.CreatedAt,
		})
	}
	return recent, nil
}
