package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizmaker/internal/models/db_models"
	"quizmaker/pkg/utils"
)

func TestDashboardAggregatesOwnerQuizzes(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	quizRepo := newFakeQuizRepo()
	quizRepo.add(&db_models.Quiz{Slug: "aaaaa", Title: "Mine 1", OwnerID: &owner, ViewsCount: 100, CompletionsCount: 40})
	quizRepo.add(&db_models.Quiz{Slug: "bbbbb", Title: "Mine 2", OwnerID: &owner})
	quizRepo.add(&db_models.Quiz{Slug: "ccccc", Title: "Not mine", OwnerID: &other, ViewsCount: 999})

	leadRepo := &fakeLeadRepo{leads: []db_models.Lead{{QuizID: 1, Email: "a@example.com"}}}
	purchases := newFakePurchaseRepo()
	purchases.grant(owner, 1)

	svc := NewDashboardService(quizRepo, purchases, leadRepo, NewEntitlementService(purchases))

	report, err := svc.BuildReport(context.Background(), Viewer{AccountID: &owner, Role: db_models.RoleUser})
	require.NoError(t, err)

	assert.Equal(t, int64(2), report.TotalQuizzes)
	assert.Equal(t, int64(100), report.TotalViews)
	assert.Equal(t, int64(40), report.TotalCompletions)
	assert.Equal(t, int64(1), report.TotalLeads)
	require.Len(t, report.Quizzes, 2)

	for _, stat := range report.Quizzes {
		switch stat.Title {
		case "Mine 1":
			assert.InDelta(t, 40.0, stat.CompletionRate, 0.01)
			assert.True(t, stat.Unlocked)
		case "Mine 2":
			assert.Zero(t, stat.CompletionRate)
			assert.False(t, stat.Unlocked)
		default:
			t.Fatalf("unexpected quiz in report: %s", stat.Title)
		}
	}
}

func TestDashboardAdminSeesEverything(t *testing.T) {
	owner := uuid.New()
	admin := uuid.New()

	quizRepo := newFakeQuizRepo()
	quizRepo.add(&db_models.Quiz{Slug: "aaaaa", OwnerID: &owner})
	quizRepo.add(&db_models.Quiz{Slug: "bbbbb"})

	purchases := newFakePurchaseRepo()
	svc := NewDashboardService(quizRepo, purchases, &fakeLeadRepo{}, NewEntitlementService(purchases))

	report, err := svc.BuildReport(context.Background(), Viewer{AccountID: &admin, Role: db_models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, int64(2), report.TotalQuizzes)
	for _, stat := range report.Quizzes {
		assert.True(t, stat.Unlocked)
	}
}

func TestDashboardAnonymousForbidden(t *testing.T) {
	purchases := newFakePurchaseRepo()
	svc := NewDashboardService(newFakeQuizRepo(), purchases, &fakeLeadRepo{}, NewEntitlementService(purchases))

	_, err := svc.BuildReport(context.Background(), Viewer{})
	assert.ErrorIs(t, err, utils.ErrForbidden)
}
