package dashboard_fx

import (
	"go.uber.org/fx"

	"quizmaker/internal/repositories"
	"quizmaker/internal/services"
)

var Module = fx.Provide(provideDashboardService)

func provideDashboardService(
	quizRepo repositories.QuizRepository,
	purchaseRepo repositories.PurchaseRepository,
	leadRepo repositories.LeadRepository,
	entitlements services.EntitlementServiceInterface,
) services.DashboardServiceInterface {
	return services.NewDashboardService(quizRepo, purchaseRepo, leadRepo, entitlements)
}
