package mail_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"quizmaker/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.MailServiceInterface {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		FromName: os.Getenv("APP_NAME"),
		UseSSL:   port == 465,

		AppName:    os.Getenv("APP_NAME"),
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	})
}
