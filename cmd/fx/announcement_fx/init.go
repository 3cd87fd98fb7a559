package announcement_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"quizmaker/internal/repositories"
	"quizmaker/internal/services"
)

var Module = fx.Provide(
	provideAnnouncementRepo, provideAnnouncementService)

func provideAnnouncementRepo(db *gorm.DB) repositories.AnnouncementRepository {
	return repositories.NewAnnouncementRepository(db)
}

func provideAnnouncementService(repo repositories.AnnouncementRepository) services.AnnouncementServiceInterface {
	return services.NewAnnouncementService(repo)
}
