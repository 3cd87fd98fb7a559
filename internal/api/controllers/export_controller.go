package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizmaker/internal/services"
	"quizmaker/pkg/utils"
)

type ExportController struct {
	exportService services.ExportServiceInterface
	quizService   services.QuizServiceInterface
}

func NewExportController(
	exportService services.ExportServiceInterface,
	quizService services.QuizServiceInterface,
) *ExportController {
	return &ExportController{
		exportService: exportService,
		quizService:   quizService,
	}
}

// Preview godoc
// @Summary Render the static export of a quiz
// @Tags Exports
// @Produce html
// @Param identifier path string true "Slug or numeric id"
// @Success 200 {string} string "Self-contained quiz page"
// @Router /exports/{identifier}/preview [get]
func (e *ExportController) Preview(c *gin.Context) {
	quiz, err := e.quizService.Get(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	page, err := e.exportService.RenderHTML(quiz)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// Publish godoc
// @Summary Publish the static export of a quiz
// @Description Uploads the rendered page and returns its public URL plus an
// iframe snippet. Paid feature.
// @Tags Exports
// @Produce json
// @Param identifier path string true "Slug or numeric id"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Router /exports/{identifier}/publish [post]
func (e *ExportController) Publish(c *gin.Context) {
	result, err := e.exportService.Publish(c.Request.Context(), viewerFrom(c), c.Param("identifier"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Export published")
}
