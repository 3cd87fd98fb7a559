package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"quizmaker/internal/models/db_models"
	"quizmaker/internal/models/request_models"
	"quizmaker/internal/models/response_models"
	"quizmaker/internal/repositories"
	"quizmaker/pkg/utils"
)

const slugRetryLimit = 5

type QuizServiceInterface interface {
	Create(ctx context.Context, viewer Viewer, req request_models.SaveQuizRequest) (*db_models.Quiz, error)
	Update(ctx context.Context, viewer Viewer, id int64, req request_models.SaveQuizRequest) (*db_models.Quiz, error)
	Delete(ctx context.Context, viewer Viewer, id int64) error
	Get(ctx context.Context, identifier string) (*db_models.Quiz, error)
	List(ctx context.Context, page, pageSize int) ([]response_models.QuizSummary, error)
	ListMine(ctx context.Context, viewer Viewer) ([]response_models.QuizSummary, error)

	// Score finalizes an answer sheet: runs the scoring engine, records a
	// completion, and captures the optional lead email.
	Score(ctx context.Context, identifier string, req request_models.ScoreRequest) (*response_models.ScoredResult, error)

	TrackEvent(ctx context.Context, identifier, event string) error
	RegenerateSlug(ctx context.Context, viewer Viewer, id int64) (string, error)
	ListSimilar(ctx context.Context, identifier string, limit int) ([]response_models.QuizSummary, error)
}

type QuizService struct {
	quizRepo      repositories.QuizRepository
	leadRepo      repositories.LeadRepository
	embeddingRepo repositories.QuizEmbeddingRepository
	lookup        LookupServiceInterface
	scoring       ScoringServiceInterface
	entitlements  EntitlementServiceInterface
	draftClient   utils.DraftClientInterface
}

func NewQuizService(
	quizRepo repositories.QuizRepository,
	leadRepo repositories.LeadRepository,
	embeddingRepo repositories.QuizEmbeddingRepository,
	lookup LookupServiceInterface,
	scoring ScoringServiceInterface,
	entitlements EntitlementServiceInterface,
	draftClient utils.DraftClientInterface,
) *QuizService {
	return &QuizService{
		quizRepo:      quizRepo,
		leadRepo:      leadRepo,
		embeddingRepo: embeddingRepo,
		lookup:        lookup,
		scoring:       scoring,
		entitlements:  entitlements,
		draftClient:   draftClient,
	}
}

// Create accepts anonymous authors: a quiz made without an account simply
// carries a nil owner and can only be managed by admins afterwards.
func (s *QuizService) Create(ctx context.Context, viewer Viewer, req request_models.SaveQuizRequest) (*db_models.Quiz, error) {
	quiz := quizFromRequest(req)
	quiz.OwnerID = viewer.AccountID

	var lastErr error
	for attempt := 0; attempt < slugRetryLimit; attempt++ {
		quiz.Slug = utils.GenerateSlug()
		if _, err := s.quizRepo.Create(ctx, quiz); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				lastErr = err
				continue
			}
			return nil, err
		}
		s.refreshEmbedding(ctx, quiz)
		return quiz, nil
	}
	return nil, lastErr
}

func (s *QuizService) Update(ctx context.Context, viewer Viewer, id int64, req request_models.SaveQuizRequest) (*db_models.Quiz, error) {
	quiz, err := s.quizRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if quiz == nil {
		return nil, utils.ErrQuizNotFound
	}
	if !s.entitlements.CanManage(viewer, quiz) {
		return nil, utils.ErrForbidden
	}

	applyRequest(quiz, req)
	if err := s.quizRepo.Update(ctx, quiz); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrQuizNotFound
		}
		return nil, err
	}
	s.refreshEmbedding(ctx, quiz)
	return quiz, nil
}

func (s *QuizService) Delete(ctx context.Context, viewer Viewer, id int64) error {
	quiz, err := s.quizRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if quiz == nil {
		return utils.ErrQuizNotFound
	}
	if !s.entitlements.CanManage(viewer, quiz) {
		return utils.ErrForbidden
	}
	if err := s.embeddingRepo.DeleteByQuiz(ctx, id); err != nil {
		log.Printf("failed to delete embedding for quiz %d: %v", id, err)
	}
	return s.quizRepo.Delete(ctx, id)
}

func (s *QuizService) Get(ctx context.Context, identifier string) (*db_models.Quiz, error) {
	return s.resolve(ctx, identifier)
}

func (s *QuizService) List(ctx context.Context, page, pageSize int) ([]response_models.QuizSummary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	quizzes, err := s.quizRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	return toSummaries(quizzes), nil
}

func (s *QuizService) ListMine(ctx context.Context, viewer Viewer) ([]response_models.QuizSummary, error) {
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
		return nil, err
	}
	return toSummaries(quizzes), nil
}

func (s *QuizService) Score(ctx context.Context, identifier string, req request_models.ScoreRequest) (*response_models.ScoredResult, error) {
	quiz, err := s.resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}

	result, err := s.scoring.Score(quiz, req.Answers)
	if err != nil {
		return nil, err
	}

	if err := s.quizRepo.IncrementCounter(ctx, quiz.ID, repositories.CounterCompletions); err != nil {
		log.Printf("failed to record completion for quiz %d: %v", quiz.ID, err)
	}

	if quiz.CollectEmail && strings.TrimSpace(req.Email) != "" {
		lead := &db_models.Lead{QuizID: quiz.ID, Email: strings.TrimSpace(req.Email)}
		if err := s.leadRepo.Insert(ctx, lead); err != nil {
			log.Printf("failed to capture lead for quiz %d: %v", quiz.ID, err)
		}
	}
	return result, nil
}

func (s *QuizService) TrackEvent(ctx context.Context, identifier, event string) error {
	column, ok := eventColumn(event)
	if !ok {
		return utils.ErrQuizMisconfigured
	}
	quiz, err := s.resolve(ctx, identifier)
	if err != nil {
		return err
	}
	return s.quizRepo.IncrementCounter(ctx, quiz.ID, column)
}

func (s *QuizService) RegenerateSlug(ctx context.Context, viewer Viewer, id int64) (string, error) {
	quiz, err := s.quizRepo.FindByID(ctx, id)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if quiz == nil {
		return "", utils.ErrQuizNotFound
	}
	if !s.entitlements.CanManage(viewer, quiz) {
		return "", utils.ErrForbidden
	}

	var lastErr error
	for attempt := 0; attempt < slugRetryLimit; attempt++ {
		slug := utils.GenerateSlug()
		if err := s.quizRepo.UpdateSlug(ctx, id, slug); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				lastErr = err
				continue
			}
			return "", err
		}
		return slug, nil
	}
	return "", lastErr
}

func (s *QuizService) ListSimilar(ctx context.Context, identifier string, limit int) ([]response_models.QuizSummary, error) {
	quiz, err := s.resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	vector, err := s.draftClient.EmbedText(ctx, embeddingText(quiz))
	if err != nil {
		return nil, err
	}
	neighbors, err := s.embeddingRepo.FindNearest(ctx, vector, quiz.ID, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]response_models.QuizSummary, 0, len(neighbors))
	for _, n := range neighbors {
		found, err := s.quizRepo.FindByID(ctx, n.QuizID)
		if err != nil || found == nil {
			continue
		}
		summaries = append(summaries, response_models.ToQuizSummary(found))
	}
	return summaries, nil
}

// resolve shares the slug-then-numeric-id lookup with the navigation path.
func (s *QuizService) resolve(ctx context.Context, identifier string) (*db_models.Quiz, error) {
	return s.lookup.Resolve(ctx, identifier)
}

func (s *QuizService) refreshEmbedding(ctx context.Context, quiz *db_models.Quiz) {
	vector, err := s.draftClient.EmbedText(ctx, embeddingText(quiz))
	if err != nil {
		log.Printf("failed to embed quiz %d: %v", quiz.ID, err)
		return
	}
	embedding := &db_models.QuizEmbedding{QuizID: quiz.ID, Embedding: vector}
	if err := s.embeddingRepo.Upsert(ctx, embedding); err != nil {
		log.Printf("failed to store embedding for quiz %d: %v", quiz.ID, err)
	}
}

func embeddingText(quiz *db_models.Quiz) string {
	parts := []string{quiz.Title, quiz.Description, quiz.Category}
	return strings.Join(parts, "\n")
}

func toSummaries(quizzes []db_models.Quiz) []response_models.QuizSummary {
	summaries := make([]response_models.QuizSummary, 0, len(quizzes))
	for i := range quizzes {
		summaries = append(summaries, response_models.ToQuizSummary(&quizzes[i]))
	}
	return summaries
}

func eventColumn(event string) (string, bool) {
	switch event {
	case "view":
		return repositories.CounterViews, true
	case "link_click":
		return repositories.CounterLinkClicks, true
	case "like":
		return repositories.CounterLikes, true
	default:
		return "", false
	}
}

func quizFromRequest(req request_models.SaveQuizRequest) *db_models.Quiz {
	quiz := &db_models.Quiz{}
	applyRequest(quiz, req)
	return quiz
}

func applyRequest(quiz *db_models.Quiz, req request_models.SaveQuizRequest) {
	quiz.Title = req.Title
	quiz.Description = req.Description
	quiz.Category = req.Category
	quiz.Color = req.Color
	if req.Layout != "" {
		quiz.Layout = req.Layout
	}
	quiz.ImageURL = req.ImageURL
	if req.Mode != "" {
		quiz.Mode = db_models.QuizMode(req.Mode)
	}
	quiz.CollectEmail = req.CollectEmail
	quiz.Questions = req.Questions
	quiz.Results = req.Results
}
