package services

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"quizmaker/internal/models/db_models"
	"quizmaker/pkg/utils"
)

// ViewState is the (view, quiz-or-nil) pair downstream rendering consumes.
type ViewState struct {
	View string
	Quiz *db_models.Quiz
}

type ResolutionServiceInterface interface {
	// Navigate re-runs classification for one visitor session and returns
	// the resulting view state. Transport errors keep the previous state
	// and are returned for a retry affordance.
	Navigate(ctx context.Context, sessionID string, rc RequestContext) (*ViewState, error)

	// ConfirmRecovery is fed from the auth side once a recovery session is
	// actually established; only then does the provisional processing view
	// advance to the reset-password screen.
	ConfirmRecovery(sessionID string)

	State(sessionID string) *ViewState
}

// viewController owns the mutable view/quiz pair for one visitor session.
// Nothing else mutates them; classifier, lookup and scoring stay pure.
type viewController struct {
	mu                sync.Mutex
	view              string
	quiz              *db_models.Quiz
	generation        uint64
	pendingIdentifier string
	provisionalSince  time.Time // zero unless waiting on recovery confirmation
}

type ResolutionService struct {
	lookup LookupServiceInterface

	mu       sync.Mutex
	sessions map[string]*viewController

	// A provisional recovery state older than this lapses back to the
	// portal on the next navigation. The upstream behavior left this
	// undefined; waiting forever keeps visitors stuck on a spinner.
	recoveryTTL time.Duration
}

const defaultRecoveryTTL = 15 * time.Minute

func NewResolutionService(lookup LookupServiceInterface) *ResolutionService {
	return &ResolutionService{
		lookup:      lookup,
		sessions:    make(map[string]*viewController),
		recoveryTTL: defaultRecoveryTTL,
	}
}

func (s *ResolutionService) controller(sessionID string) *viewController {
	s.mu.Lock()
	defer s.mu.Unlock()
	vc, ok := s.sessions[sessionID]
	if !ok {
		vc = &viewController{view: ViewPortal}
		s.sessions[sessionID] = vc
	}
	return vc
}

func (s *ResolutionService) Navigate(ctx context.Context, sessionID string, rc RequestContext) (*ViewState, error) {
	vc := s.controller(sessionID)
	intent := Classify(rc)

	vc.mu.Lock()
	vc.lapseRecoveryLocked(s.recoveryTTL)

	switch intent.Kind {
	case IntentRecoveryFlow:
		// Final view assignment is deferred until the auth provider
		// confirms the recovery session; until then the visitor sees a
		// provisional processing state.
		vc.generation++
		vc.pendingIdentifier = ""
		vc.quiz = nil
		vc.view = ViewProcessing
		vc.provisionalSince = time.Now()
		state := vc.stateLocked()
		vc.mu.Unlock()
		return state, nil

	case IntentQuizView:
		return vc.resolveQuizLocked(ctx, s.lookup, intent.QuizIdentifier)

	default:
		vc.generation++ // supersedes any in-flight lookup
		vc.pendingIdentifier = ""
		vc.quiz = nil
		vc.provisionalSince = time.Time{}
		vc.view = intent.View
		state := vc.stateLocked()
		vc.mu.Unlock()
		return state, nil
	}
}

// resolveQuizLocked is entered holding vc.mu and releases it around the
// lookup call, which is the only suspension point.
func (vc *viewController) resolveQuizLocked(ctx context.Context, lookup LookupServiceInterface, identifier string) (*ViewState, error) {
	if vc.quiz != nil && quizMatchesIdentifier(vc.quiz, identifier) {
		vc.view = ViewQuiz
		state := vc.stateLocked()
		vc.mu.Unlock()
		return state, nil
	}
	if vc.pendingIdentifier == identifier {
		// A lookup for this identifier is already in flight; never issue a
		// duplicate for the same one.
		state := vc.stateLocked()
		vc.mu.Unlock()
		return state, nil
	}

	vc.generation++
	gen := vc.generation
	vc.pendingIdentifier = identifier
	vc.provisionalSince = time.Time{}
	vc.mu.Unlock()

	quiz, err := lookup.Resolve(ctx, identifier)

	vc.mu.Lock()
	if vc.generation != gen {
		// A newer navigation superseded this lookup while it was out;
		// discard the stale completion rather than overwrite.
		state := vc.stateLocked()
		vc.mu.Unlock()
		return state, nil
	}
	vc.pendingIdentifier = ""

	switch {
	case errors.Is(err, utils.ErrQuizNotFound):
		// Degrade to the portal; the identifier is discarded, no retry.
		vc.view = ViewPortal
		vc.quiz = nil
	case err != nil:
		// Transport failure: keep the current view, let the caller retry.
		state := vc.stateLocked()
		vc.mu.Unlock()
		return state, err
	default:
		vc.quiz = quiz
		vc.view = ViewQuiz
	}
	state := vc.stateLocked()
	vc.mu.Unlock()
	return state, nil
}

func (s *ResolutionService) ConfirmRecovery(sessionID string) {
	vc := s.controller(sessionID)
	vc.mu.Lock()
	defer vc.mu.Unlock()
	if vc.view == ViewProcessing {
		vc.view = ViewResetPassword
		vc.provisionalSince = time.Time{}
	}
}

func (s *ResolutionService) State(sessionID string) *ViewState {
	vc := s.controller(sessionID)
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.lapseRecoveryLocked(s.recoveryTTL)
	return vc.stateLocked()
}

func (vc *viewController) lapseRecoveryLocked(ttl time.Duration) {
	if vc.view == ViewProcessing && !vc.provisionalSince.IsZero() && time.Since(vc.provisionalSince) > ttl {
		vc.view = ViewPortal
		vc.provisionalSince = time.Time{}
	}
}

func (vc *viewController) stateLocked() *ViewState {
	return &ViewState{View: vc.view, Quiz: vc.quiz}
}

func quizMatchesIdentifier(quiz *db_models.Quiz, identifier string) bool {
	if quiz.Slug != "" && quiz.Slug == identifier {
		return true
	}
	return strconv.FormatInt(quiz.ID, 10) == identifier
}
