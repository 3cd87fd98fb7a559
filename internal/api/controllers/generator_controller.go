package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizmaker/internal/models/request_models"
	"quizmaker/internal/services"
	"quizmaker/pkg/utils"
)

type GeneratorController struct {
	generatorService services.GeneratorServiceInterface
}

func NewGeneratorController(generatorService services.GeneratorServiceInterface) *GeneratorController {
	return &GeneratorController{generatorService: generatorService}
}

// GenerateDraft godoc
// @Summary Generate a quiz draft from a theme
// @Tags Generator
// @Accept json
// @Produce json
// @Param request body request_models.GenerateDraftRequest true "Generation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /generator/draft [post]
func (g *GeneratorController) GenerateDraft(c *gin.Context) {
	var req request_models.GenerateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	draft, err := g.generatorService.GenerateDraft(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, draft, "Draft generated")
}
