package services

import (
	"math"
	"math/rand"

	"quizmaker/internal/models/db_models"
	"quizmaker/internal/models/response_models"
	"quizmaker/pkg/utils"
)

type ScoringServiceInterface interface {
	// Score selects the outcome for a completed answer sheet according to
	// the quiz mode. Every mode requires a non-empty result catalogue.
	Score(quiz *db_models.Quiz, answers map[int]db_models.Option) (*response_models.ScoredResult, error)
}

type ScoringService struct {
	// rng is swappable so fortune-mode selection stays testable.
	rng *rand.Rand
}

func NewScoringService(rng *rand.Rand) *ScoringService {
	return &ScoringService{rng: rng}
}

func (s *ScoringService) Score(quiz *db_models.Quiz, answers map[int]db_models.Option) (*response_models.ScoredResult, error) {
	if len(quiz.Results) == 0 {
		return nil, utils.ErrQuizMisconfigured
	}

	switch quiz.Mode {
	case db_models.ModeTest:
		return scoreTest(quiz, answers), nil
	case db_models.ModeFortune:
		return s.scoreFortune(quiz), nil
	default:
		return scoreDiagnosis(quiz, answers), nil
	}
}

// scoreDiagnosis tallies per-type weights across the chosen options. The
// result whose type holds the strictly greatest tally wins; on a tie the
// result appearing first in the catalogue wins, and when no tallies exist
// at all the first result is the fallback.
func scoreDiagnosis(quiz *db_models.Quiz, answers map[int]db_models.Option) *response_models.ScoredResult {
	tally := make(map[string]int)
	for _, opt := range answers {
		for typ, weight := range opt.Score {
			tally[typ] += weight
		}
	}

	best := 0
	bestScore := math.MinInt
	for i, res := range quiz.Results {
		if score, ok := tally[res.Type]; ok && score > bestScore {
			best = i
			bestScore = score
		}
	}
	return &response_models.ScoredResult{Result: quiz.Results[best]}
}

// scoreTest counts options carrying the correctness marker, converts the
// count to a ratio over answered questions, and maps the ratio onto the
// result catalogue so a perfect score lands on the first entry and a zero
// score on the last.
func scoreTest(quiz *db_models.Quiz, answers map[int]db_models.Option) *response_models.ScoredResult {
	correct := 0
	for _, opt := range answers {
		if opt.Score[db_models.CorrectnessKey] == 1 {
			correct++
		}
	}

	ratio := 0.0
	if len(answers) > 0 {
		ratio = float64(correct) / float64(len(answers))
	}

	idx := int(math.Floor((1 - ratio) * float64(len(quiz.Results))))
	if ratio == 1 {
		idx = 0
	}
	if idx >= len(quiz.Results) {
		idx = len(quiz.Results) - 1
	}

	total := len(answers)
	return &response_models.ScoredResult{
		Result: quiz.Results[idx],
		Score:  &correct,
		Total:  &total,
	}
}

func (s *ScoringService) scoreFortune(quiz *db_models.Quiz) *response_models.ScoredResult {
	idx := s.rng.Intn(len(quiz.Results))
	return &response_models.ScoredResult{Result: quiz.Results[idx]}
}
