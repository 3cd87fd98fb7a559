package services

import (
	"context"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"quizmaker/internal/models/db_models"
	"quizmaker/pkg/utils"
)

// fakeQuizRepo is an in-memory stand-in for the quiz table.
type fakeQuizRepo struct {
	mu          sync.Mutex
	bySlug      map[string]*db_models.Quiz
	byID        map[int64]*db_models.Quiz
	nextID      int64
	err         error
	counters    map[string]int
	slugLookups int
	idLookups   int
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{
		bySlug:   make(map[string]*db_models.Quiz),
		byID:     make(map[int64]*db_models.Quiz),
		counters: make(map[string]int),
		nextID:   1,
	}
}

func (f *fakeQuizRepo) add(quiz *db_models.Quiz) *db_models.Quiz {
	f.mu.Lock()
	defer f.mu.Unlock()
	if quiz.ID == 0 {
		quiz.ID = f.nextID
		f.nextID++
	}
	f.byID[quiz.ID] = quiz
	if quiz.Slug != "" {
		f.bySlug[quiz.Slug] = quiz
	}
	return quiz
}

func (f *fakeQuizRepo) Create(ctx context.Context, quiz *db_models.Quiz) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.add(quiz)
	return quiz.ID, nil
}

func (f *fakeQuizRepo) Update(ctx context.Context, quiz *db_models.Quiz) error {
	if f.err != nil {
		return f.err
	}
	f.add(quiz)
	return nil
}

func (f *fakeQuizRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if q, ok := f.byID[id]; ok {
		delete(f.bySlug, q.Slug)
		delete(f.byID, id)
	}
	return f.err
}

func (f *fakeQuizRepo) FindBySlug(ctx context.Context, slug string) (*db_models.Quiz, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slugLookups++
	if f.err != nil {
		return nil, f.err
	}
	return f.bySlug[slug], nil
}

func (f *fakeQuizRepo) FindByID(ctx context.Context, id int64) (*db_models.Quiz, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.idLookups++
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeQuizRepo) List(ctx context.Context, page, pageSize int) ([]db_models.Quiz, error) {
	return f.all(), f.err
}

func (f *fakeQuizRepo) ListByOwner(ctx context.Context, ownerID string) ([]db_models.Quiz, error) {
	var out []db_models.Quiz
	for _, q := range f.all() {
		if q.OwnerID != nil && q.OwnerID.String() == ownerID {
			out = append(out, q)
		}
	}
	return out, f.err
}

func (f *fakeQuizRepo) ListAll(ctx context.Context) ([]db_models.Quiz, error) {
	return f.all(), f.err
}

func (f *fakeQuizRepo) all() []db_models.Quiz {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.Quiz
	for _, q := range f.byID {
		out = append(out, *q)
	}
	return out
}

func (f *fakeQuizRepo) IncrementCounter(ctx context.Context, id int64, column string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters[column]++
	return f.err
}

func (f *fakeQuizRepo) UpdateSlug(ctx context.Context, id int64, slug string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if q, ok := f.byID[id]; ok {
		delete(f.bySlug, q.Slug)
		q.Slug = slug
		f.bySlug[slug] = q
	}
	return f.err
}

// fakePurchaseRepo answers entitlement checks from a fixed set.
type fakePurchaseRepo struct {
	owned map[string]bool // accountID|quizID
	err   error
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{owned: make(map[string]bool)}
}

func purchaseKey(accountID uuid.UUID, quizID int64) string {
	return accountID.String() + "|" + strconv.FormatInt(quizID, 10)
}

func (f *fakePurchaseRepo) grant(accountID uuid.UUID, quizID int64) {
	f.owned[purchaseKey(accountID, quizID)] = true
}

func (f *fakePurchaseRepo) Insert(ctx context.Context, purchase *db_models.Purchase) error {
	f.grant(purchase.AccountID, purchase.QuizID)
	return f.err
}

func (f *fakePurchaseRepo) Exists(ctx context.Context, accountID uuid.UUID, quizID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.owned[purchaseKey(accountID, quizID)], nil
}

func (f *fakePurchaseRepo) ListQuizIDsByAccount(ctx context.Context, accountID uuid.UUID) ([]int64, error) {
	return nil, f.err
}

func (f *fakePurchaseRepo) ListRecent(ctx context.Context, limit int) ([]db_models.Purchase, error) {
	return nil, f.err
}

func (f *fakePurchaseRepo) ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]db_models.Purchase, error) {
	return nil, f.err
}

// fakeLeadRepo records inserted leads.
type fakeLeadRepo struct {
	leads []db_models.Lead
	err   error
}

func (f *fakeLeadRepo) Insert(ctx context.Context, lead *db_models.Lead) error {
	if f.err != nil {
		return f.err
	}
	f.leads = append(f.leads, *lead)
	return nil
}

func (f *fakeLeadRepo) ListByQuiz(ctx context.Context, quizID int64) ([]db_models.Lead, error) {
	var out []db_models.Lead
	for _, l := range f.leads {
		if l.QuizID == quizID {
			out = append(out, l)
		}
	}
	return out, f.err
}

func (f *fakeLeadRepo) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	return int64(len(f.leads)), f.err
}

// fakeEmbeddingRepo holds vectors keyed by quiz.
type fakeEmbeddingRepo struct {
	upserts []int64
	nearest []db_models.QuizEmbedding
	err     error
}

func (f *fakeEmbeddingRepo) Upsert(ctx context.Context, embedding *db_models.QuizEmbedding) error {
	f.upserts = append(f.upserts, embedding.QuizID)
	return f.err
}

func (f *fakeEmbeddingRepo) FindNearest(ctx context.Context, vector pgvector.Vector, excludeQuizID int64, limit int) ([]db_models.QuizEmbedding, error) {
	return f.nearest, f.err
}

func (f *fakeEmbeddingRepo) DeleteByQuiz(ctx context.Context, quizID int64) error {
	return f.err
}

// fakeLookup is a LookupServiceInterface whose completion can be held open
// with a gate channel, for exercising in-flight navigation changes.
type fakeLookup struct {
	mu     sync.Mutex
	quiz   *db_models.Quiz
	err    error
	gate   chan struct{}
	calls  int
	lastID string
}

func (f *fakeLookup) Resolve(ctx context.Context, identifier string) (*db_models.Quiz, error) {
	f.mu.Lock()
	f.calls++
	f.lastID = identifier
	gate := f.gate
	quiz, err := f.quiz, f.err
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, utils.ErrQuizNotFound
	}
	return quiz, nil
}

// fakeDraftClient returns a canned generation payload.
type fakeDraftClient struct {
	output string
	err    error
}

func (f *fakeDraftClient) GenerateDraftJSON(ctx context.Context, prompt string) (string, error) {
	return f.output, f.err
}

func (f *fakeDraftClient) EmbedText(ctx context.Context, text string) (pgvector.Vector, error) {
	return pgvector.NewVector(make([]float32, 3)), f.err
}
