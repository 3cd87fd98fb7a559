package controllers_fx

import (
	"go.uber.org/fx"

	"quizmaker/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewQuizController,
	controllers.NewResolutionController,
	controllers.NewPaymentController,
	controllers.NewGeneratorController,
	controllers.NewExportController,
	controllers.NewLeadController,
	controllers.NewAnnouncementController,
	controllers.NewDashboardController,
)
