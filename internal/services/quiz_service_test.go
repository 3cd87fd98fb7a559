package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizmaker/internal/models/db_models"
	"quizmaker/internal/models/request_models"
	"quizmaker/internal/repositories"
	"quizmaker/pkg/utils"
)

func newTestQuizService(quizRepo *fakeQuizRepo, leadRepo *fakeLeadRepo) *QuizService {
	return NewQuizService(
		quizRepo,
		leadRepo,
		&fakeEmbeddingRepo{},
		NewLookupService(quizRepo),
		newTestScoring(),
		NewEntitlementService(newFakePurchaseRepo()),
		&fakeDraftClient{},
	)
}

func TestQuizScoreRecordsCompletionAndLead(t *testing.T) {
	quizRepo := newFakeQuizRepo()
	leadRepo := &fakeLeadRepo{}
	quizRepo.add(&db_models.Quiz{
		Slug:         "ab12c",
		Mode:         db_models.ModeTest,
		CollectEmail: true,
		Results:      db_models.ResultList{{Title: "good"}, {Title: "bad"}},
	})
	svc := newTestQuizService(quizRepo, leadRepo)

	result, err := svc.Score(context.Background(), "ab12c", request_models.ScoreRequest{
		Answers: map[int]db_models.Option{0: correct()},
		Email:   "visitor@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "good", result.Title)

	assert.Equal(t, 1, quizRepo.counters[repositories.CounterCompletions])
	require.Len(t, leadRepo.leads, 1)
	assert.Equal(t, "visitor@example.com", leadRepo.leads[0].Email)
}

func TestQuizScoreIgnoresEmailWhenNotCollecting(t *testing.T) {
	quizRepo := newFakeQuizRepo()
	leadRepo := &fakeLeadRepo{}
	quizRepo.add(&db_models.Quiz{
		Slug:    "ab12c",
		Mode:    db_models.ModeTest,
		Results: db_models.ResultList{{Title: "good"}},
	})
	svc := newTestQuizService(quizRepo, leadRepo)

	_, err := svc.Score(context.Background(), "ab12c", request_models.ScoreRequest{
		Answers: map[int]db_models.Option{0: correct()},
		Email:   "visitor@example.com",
	})
	require.NoError(t, err)
	assert.Empty(t, leadRepo.leads)
}

func TestQuizScoreUnknownQuiz(t *testing.T) {
	svc := newTestQuizService(newFakeQuizRepo(), &fakeLeadRepo{})

	_, err := svc.Score(context.Background(), "nope!", request_models.ScoreRequest{
		Answers: map[int]db_models.Option{0: correct()},
	})
	assert.ErrorIs(t, err, utils.ErrQuizNotFound)
}

func TestQuizCreateAssignsOwnerAndSlug(t *testing.T) {
	quizRepo := newFakeQuizRepo()
	svc := newTestQuizService(quizRepo, &fakeLeadRepo{})
	owner := uuid.New()

	quiz, err := svc.Create(context.Background(), Viewer{AccountID: &owner}, request_models.SaveQuizRequest{
		Title:     "New quiz",
		Questions: db_models.QuestionList{{Text: "Q1"}},
		Results:   db_models.ResultList{{Title: "R1"}},
	})
	require.NoError(t, err)
	require.NotNil(t, quiz.OwnerID)
	assert.Equal(t, owner, *quiz.OwnerID)
	assert.Len(t, quiz.Slug, utils.SlugLength)
}

func TestQuizCreateAnonymousGetsNilOwner(t *testing.T) {
	quizRepo := newFakeQuizRepo()
	svc := newTestQuizService(quizRepo, &fakeLeadRepo{})

	quiz, err := svc.Create(context.Background(), Viewer{}, request_models.SaveQuizRequest{
		Title:     "Drive-by quiz",
		Questions: db_models.QuestionList{{Text: "Q1"}},
		Results:   db_models.ResultList{{Title: "R1"}},
	})
	require.NoError(t, err)
	assert.Nil(t, quiz.OwnerID)
	assert.Len(t, quiz.Slug, utils.SlugLength)

	// Ownerless quizzes stay manageable by admins only.
	stranger := uuid.New()
	_, err = svc.Update(context.Background(), Viewer{AccountID: &stranger, Role: db_models.RoleUser}, quiz.ID, request_models.SaveQuizRequest{Title: "Stolen"})
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestQuizListReturnsSummaries(t *testing.T) {
	quizRepo := newFakeQuizRepo()
	quizRepo.add(&db_models.Quiz{Slug: "ab12c", Title: "First"})
	quizRepo.add(&db_models.Quiz{Slug: "de34f", Title: "Second"})
	svc := newTestQuizService(quizRepo, &fakeLeadRepo{})

	summaries, err := svc.List(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	titles := []string{summaries[0].Title, summaries[1].Title}
	assert.ElementsMatch(t, []string{"First", "Second"}, titles)

	_, err = svc.List(context.Background(), 0, 20)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
	_, err = svc.List(context.Background(), 1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}

func TestQuizListMineAnonymousForbidden(t *testing.T) {
	svc := newTestQuizService(newFakeQuizRepo(), &fakeLeadRepo{})

	_, err := svc.ListMine(context.Background(), Viewer{})
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestQuizUpdateRequiresManager(t *testing.T) {
	quizRepo := newFakeQuizRepo()
	owner := uuid.New()
	stranger := uuid.New()
	quizRepo.add(&db_models.Quiz{Slug: "ab12c", Title: "Mine", OwnerID: &owner})
	svc := newTestQuizService(quizRepo, &fakeLeadRepo{})

	req := request_models.SaveQuizRequest{Title: "Stolen"}
	_, err := svc.Update(context.Background(), Viewer{AccountID: &stranger, Role: db_models.RoleUser}, 1, req)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	updated, err := svc.Update(context.Background(), Viewer{AccountID: &owner, Role: db_models.RoleUser}, 1, req)
	require.NoError(t, err)
	assert.Equal(t, "Stolen", updated.Title)
}

func TestQuizTrackEvent(t *testing.T) {
	quizRepo := newFakeQuizRepo()
	quizRepo.add(&db_models.Quiz{Slug: "ab12c"})
	svc := newTestQuizService(quizRepo, &fakeLeadRepo{})

	require.NoError(t, svc.TrackEvent(context.Background(), "ab12c", "view"))
	require.NoError(t, svc.TrackEvent(context.Background(), "ab12c", "like"))
	require.NoError(t, svc.TrackEvent(context.Background(), "ab12c", "link_click"))
	assert.Error(t, svc.TrackEvent(context.Background(), "ab12c", "rm -rf"))

	assert.Equal(t, 1, quizRepo.counters[repositories.CounterViews])
	assert.Equal(t, 1, quizRepo.counters[repositories.CounterLikes])
	assert.Equal(t, 1, quizRepo.counters[repositories.CounterLinkClicks])
}

func TestQuizRegenerateSlug(t *testing.T) {
	quizRepo := newFakeQuizRepo()
	owner := uuid.New()
	quizRepo.add(&db_models.Quiz{Slug: "ab12c", OwnerID: &owner})
	svc := newTestQuizService(quizRepo, &fakeLeadRepo{})

	slug, err := svc.RegenerateSlug(context.Background(), Viewer{AccountID: &owner}, 1)
	require.NoError(t, err)
	assert.Len(t, slug, utils.SlugLength)
	assert.NotEqual(t, "ab12c", slug)

	// The old link is dead, the new one resolves.
	_, err = svc.Get(context.Background(), "ab12c")
	assert.ErrorIs(t, err, utils.ErrQuizNotFound)
	found, err := svc.Get(context.Background(), slug)
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.ID)
}
