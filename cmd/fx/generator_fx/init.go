package generator_fx

import (
	"go.uber.org/fx"

	"quizmaker/internal/services"
	"quizmaker/pkg/utils"
)

var Module = fx.Provide(provideGeneratorService)

func provideGeneratorService(client utils.DraftClientInterface) services.GeneratorServiceInterface {
	return services.NewGeneratorService(client)
}
