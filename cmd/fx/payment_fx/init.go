package payment_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"quizmaker/internal/repositories"
	"quizmaker/internal/services"
)

var Module = fx.Provide(providePaymentService)

func providePaymentService(
	db *gorm.DB,
	quizRepo repositories.QuizRepository,
	purchaseRepo repositories.PurchaseRepository,
	accountRepo repositories.AccountRepository,
	mail services.MailServiceInterface,
) services.PaymentServiceInterface {
	base := os.Getenv("APP_BASE_URL")
	return services.NewPaymentService(db, quizRepo, purchaseRepo, accountRepo, mail, services.PayOSConfig{
		ClientID:    os.Getenv("PAYOS_CLIENT_ID"),
		ApiKey:      os.Getenv("PAYOS_API_KEY"),
		ChecksumKey: os.Getenv("PAYOS_CHECKSUM_KEY"),
		ReturnURL:   base + "/?payment=success",
		CancelURL:   base + "/?payment=cancel",
		Currency:    "VND",
	})
}
