package lead_fx

import (
	"go.uber.org/fx"

	"quizmaker/internal/repositories"
	"quizmaker/internal/services"
)

var Module = fx.Provide(provideLeadService)

func provideLeadService(
	leadRepo repositories.LeadRepository,
	quizRepo repositories.QuizRepository,
	entitlements services.EntitlementServiceInterface,
) services.LeadServiceInterface {
	return services.NewLeadService(leadRepo, quizRepo, entitlements)
}
