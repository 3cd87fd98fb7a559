package controllers

import (
	"github.com/gin-gonic/gin"

	"quizmaker/internal/services"
	"quizmaker/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Report godoc
// @Summary Owner dashboard report
// @Description Aggregates the signed-in owner's quizzes, counters, leads and
// recent sales. Admins see every quiz.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /dashboard [get]
func (d *DashboardController) Report(c *gin.Context) {
	report, err := d.dashboardService.BuildReport(c.Request.Context(), viewerFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "")
}
