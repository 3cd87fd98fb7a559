package quiz_fx

import (
	"log"
	"math/rand"
	"os"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"quizmaker/internal/repositories"
	"quizmaker/internal/services"
	"quizmaker/pkg/utils"
)

var Module = fx.Provide(
	provideQuizRepo,
	provideLeadRepo,
	provideEmbeddingRepo,
	provideDraftClient,
	provideLookupService,
	provideScoringService,
	provideQuizService,
)

func provideQuizRepo(db *gorm.DB) repositories.QuizRepository {
	return repositories.NewQuizRepository(db)
}

func provideLeadRepo(db *gorm.DB) repositories.LeadRepository {
	return repositories.NewLeadRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.QuizEmbeddingRepository {
	return repositories.NewQuizEmbeddingRepository(db)
}

func provideDraftClient() utils.DraftClientInterface {
	client, err := utils.NewDraftClient(
		os.Getenv("AI_PROVIDER"),
		os.Getenv("AI_API_KEY"),
		os.Getenv("AI_MODEL"),
	)
	if err != nil {
		log.Fatalf("Failed to initialize draft client: %v", err)
	}
	return client
}

func provideLookupService(quizRepo repositories.QuizRepository) services.LookupServiceInterface {
	return services.NewLookupService(quizRepo)
}

func provideScoringService() services.ScoringServiceInterface {
	return services.NewScoringService(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func provideQuizService(
	quizRepo repositories.QuizRepository,
	leadRepo repositories.LeadRepository,
	embeddingRepo repositories.QuizEmbeddingRepository,
	lookup services.LookupServiceInterface,
	scoring services.ScoringServiceInterface,
	entitlements services.EntitlementServiceInterface,
	draftClient utils.DraftClientInterface,
) services.QuizServiceInterface {
	return services.NewQuizService(quizRepo, leadRepo, embeddingRepo, lookup, scoring, entitlements, draftClient)
}
