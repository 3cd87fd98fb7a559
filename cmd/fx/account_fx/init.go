package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"quizmaker/internal/repositories"
	"quizmaker/internal/services"
	mem "quizmaker/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	resetStore mem.ResetTokenStore,
	mail services.MailServiceInterface,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, resetStore, mail)
}
