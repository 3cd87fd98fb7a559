package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizmaker/internal/models/db_models"
)

func newTestScoring() *ScoringService {
	return NewScoringService(rand.New(rand.NewSource(1)))
}

func diagnosisQuiz() *db_models.Quiz {
	return &db_models.Quiz{
		Mode: db_models.ModeDiagnosis,
		Results: db_models.ResultList{
			{Type: "LION", Title: "Lion"},
			{Type: "WOLF", Title: "Wolf"},
			{Type: "OWL", Title: "Owl"},
		},
	}
}

func TestScoreDiagnosisHighestTallyWins(t *testing.T) {
	svc := newTestScoring()
	result, err := svc.Score(diagnosisQuiz(), map[int]db_models.Option{
		0: {Score: map[string]int{"WOLF": 2}},
		1: {Score: map[string]int{"LION": 1}},
		2: {Score: map[string]int{"WOLF": 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Wolf", result.Title)
	assert.Nil(t, result.Score)
}

func TestScoreDiagnosisTieGoesToFirstListed(t *testing.T) {
	svc := newTestScoring()
	result, err := svc.Score(diagnosisQuiz(), map[int]db_models.Option{
		0: {Score: map[string]int{"OWL": 2}},
		1: {Score: map[string]int{"LION": 2}},
	})
	require.NoError(t, err)
	// LION appears before OWL in the catalogue.
	assert.Equal(t, "Lion", result.Title)
}

func TestScoreDiagnosisNoAnswersFallsBackToFirst(t *testing.T) {
	svc := newTestScoring()
	result, err := svc.Score(diagnosisQuiz(), map[int]db_models.Option{})
	require.NoError(t, err)
	assert.Equal(t, "Lion", result.Title)
}

func TestScoreDiagnosisMultiTypeOptions(t *testing.T) {
	svc := newTestScoring()
	result, err := svc.Score(diagnosisQuiz(), map[int]db_models.Option{
		0: {Score: map[string]int{"LION": 1, "OWL": 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Owl", result.Title)
}

func testQuiz(resultCount int) *db_models.Quiz {
	results := make(db_models.ResultList, resultCount)
	for i := range results {
		results[i] = db_models.Result{Title: string(rune('A' + i))}
	}
	return &db_models.Quiz{Mode: db_models.ModeTest, Results: results}
}

func correct() db_models.Option {
	return db_models.Option{Score: map[string]int{db_models.CorrectnessKey: 1}}
}

func wrong() db_models.Option {
	return db_models.Option{Score: map[string]int{}}
}

func TestScoreTestGradeBins(t *testing.T) {
	svc := newTestScoring()

	tests := []struct {
		name    string
		answers map[int]db_models.Option
		title   string
		score   int
		total   int
	}{
		{
			name:    "perfect lands on first result",
			answers: map[int]db_models.Option{0: correct(), 1: correct()},
			title:   "A", score: 2, total: 2,
		},
		{
			name:    "zero lands on last result",
			answers: map[int]db_models.Option{0: wrong(), 1: wrong()},
			title:   "D", score: 0, total: 2,
		},
		{
			name: "four of five maps to the top bin",
			answers: map[int]db_models.Option{
				0: correct(), 1: correct(), 2: correct(), 3: correct(), 4: wrong(),
			},
			title: "A", score: 4, total: 5,
		},
		{
			name:    "half lands mid-catalogue",
			answers: map[int]db_models.Option{0: correct(), 1: wrong()},
			title:   "C", score: 1, total: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Score(testQuiz(4), tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.title, result.Title)
			require.NotNil(t, result.Score)
			require.NotNil(t, result.Total)
			assert.Equal(t, tt.score, *result.Score)
			assert.Equal(t, tt.total, *result.Total)
		})
	}
}

func TestScoreTestNoAnswersCountsAsZeroRatio(t *testing.T) {
	svc := newTestScoring()
	result, err := svc.Score(testQuiz(4), map[int]db_models.Option{})
	require.NoError(t, err)
	assert.Equal(t, "D", result.Title)
	assert.Equal(t, 0, *result.Score)
	assert.Equal(t, 0, *result.Total)
}

func TestScoreFortuneEveryResultReachable(t *testing.T) {
	svc := newTestScoring()
	quiz := &db_models.Quiz{
		Mode: db_models.ModeFortune,
		Results: db_models.ResultList{
			{Title: "great"}, {Title: "good"}, {Title: "bad"},
		},
	}

	seen := map[string]int{}
	for i := 0; i < 1000; i++ {
		result, err := svc.Score(quiz, nil)
		require.NoError(t, err)
		seen[result.Title]++
	}

	require.Len(t, seen, 3)
	for title, count := range seen {
		assert.Greater(t, count, 200, "result %s drawn too rarely", title)
	}
}

func TestScoreEmptyResultsIsConfigurationError(t *testing.T) {
	svc := newTestScoring()
	for _, mode := range []db_models.QuizMode{db_models.ModeDiagnosis, db_models.ModeTest, db_models.ModeFortune} {
		_, err := svc.Score(&db_models.Quiz{Mode: mode}, map[int]db_models.Option{0: correct()})
		assert.Error(t, err, "mode %s", mode)
	}
}
