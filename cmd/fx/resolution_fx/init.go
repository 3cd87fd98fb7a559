package resolution_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"quizmaker/internal/repositories"
	"quizmaker/internal/services"
)

var Module = fx.Provide(
	providePurchaseRepo,
	provideEntitlementService,
	provideResolutionService,
)

func providePurchaseRepo(db *gorm.DB) repositories.PurchaseRepository {
	return repositories.NewPurchaseRepository(db)
}

func provideEntitlementService(purchaseRepo repositories.PurchaseRepository) services.EntitlementServiceInterface {
	return services.NewEntitlementService(purchaseRepo)
}

func provideResolutionService(lookup services.LookupServiceInterface) services.ResolutionServiceInterface {
	return services.NewResolutionService(lookup)
}
