package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quizmaker/internal/services"
	"quizmaker/pkg/utils"
)

type LeadController struct {
	leadService services.LeadServiceInterface
}

func NewLeadController(leadService services.LeadServiceInterface) *LeadController {
	return &LeadController{leadService: leadService}
}

// List godoc
// @Summary Collected emails for a quiz
// @Tags Leads
// @Produce json
// @Param quiz_id path int true "Quiz id"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Router /leads/{quiz_id} [get]
func (l *LeadController) List(c *gin.Context) {
	quizID, err := strconv.ParseInt(c.Param("quiz_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid quiz id")
		return
	}

	leads, err := l.leadService.ListForQuiz(c.Request.Context(), viewerFrom(c), quizID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, leads, "")
}

// ExportCSV godoc
// @Summary Download collected emails as CSV
// @Tags Leads
// @Produce text/csv
// @Param quiz_id path int true "Quiz id"
// @Success 200 {string} string "CSV body"
// @Router /leads/{quiz_id}/csv [get]
func (l *LeadController) ExportCSV(c *gin.Context) {
	quizID, err := strconv.ParseInt(c.Param("quiz_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid quiz id")
		return
	}

	body, err := l.leadService.ExportCSV(c.Request.Context(), viewerFrom(c), quizID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=leads-%d.csv", quizID))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}
