package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizmaker/internal/models/db_models"
	"quizmaker/pkg/utils"
)

func exportableQuiz() *db_models.Quiz {
	return &db_models.Quiz{
		ID:    1,
		Slug:  "ab12c",
		Title: "Animal test",
		Color: "#ff6600",
		Mode:  db_models.ModeDiagnosis,
		Questions: db_models.QuestionList{
			{Text: "Pick one", Options: []db_models.Option{{Label: "A", Score: map[string]int{"LION": 1}}}},
		},
		Results: db_models.ResultList{{Type: "LION", Title: "Lion"}},
	}
}

func TestRenderHTMLSelfContained(t *testing.T) {
	svc := NewExportService(&fakeLookup{}, NewEntitlementService(newFakePurchaseRepo()), FTPConfig{})

	page, err := svc.RenderHTML(exportableQuiz())
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "Animal test")
	assert.Contains(t, html, "#ff6600")
	assert.Contains(t, html, "Pick one")
	assert.Contains(t, html, `"type":"LION"`)
	// No callbacks to the API.
	assert.NotContains(t, html, "fetch(")
	assert.NotContains(t, html, "XMLHttpRequest")
}

func TestRenderHTMLMisconfiguredQuiz(t *testing.T) {
	svc := NewExportService(&fakeLookup{}, NewEntitlementService(newFakePurchaseRepo()), FTPConfig{})

	quiz := exportableQuiz()
	quiz.Results = nil
	_, err := svc.RenderHTML(quiz)
	assert.ErrorIs(t, err, utils.ErrQuizMisconfigured)
}

func TestPublishLockedWithoutPurchase(t *testing.T) {
	quiz := exportableQuiz()
	svc := NewExportService(
		&fakeLookup{quiz: quiz},
		NewEntitlementService(newFakePurchaseRepo()),
		FTPConfig{},
	)
	id := uuid.New()

	_, err := svc.Publish(context.Background(), Viewer{AccountID: &id, Role: db_models.RoleUser}, "ab12c")
	assert.ErrorIs(t, err, utils.ErrFeatureLocked)

	_, err = svc.Publish(context.Background(), Viewer{}, "ab12c")
	assert.ErrorIs(t, err, utils.ErrFeatureLocked)
}

func TestPublishAdminPassesGateButFailsUpstream(t *testing.T) {
	quiz := exportableQuiz()
	svc := NewExportService(
		&fakeLookup{quiz: quiz},
		NewEntitlementService(newFakePurchaseRepo()),
		FTPConfig{Addr: "127.0.0.1:1"}, // nothing listens here
	)
	id := uuid.New()

	// Admins clear the entitlement gate; the failure must come from the
	// upload, not from ErrFeatureLocked.
	_, err := svc.Publish(context.Background(), Viewer{AccountID: &id, Role: db_models.RoleAdmin}, "ab12c")
	require.Error(t, err)
	assert.NotErrorIs(t, err, utils.ErrFeatureLocked)
	assert.True(t, strings.Contains(err.Error(), "export upload"))
}
