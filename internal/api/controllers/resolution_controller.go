package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizmaker/internal/models/request_models"
	"quizmaker/internal/models/response_models"
	"quizmaker/internal/services"
	"quizmaker/pkg/utils"
)

type ResolutionController struct {
	resolution services.ResolutionServiceInterface
}

func NewResolutionController(resolution services.ResolutionServiceInterface) *ResolutionController {
	return &ResolutionController{resolution: resolution}
}

// Navigate godoc
// @Summary Resolve a navigation signal into a view state
// @Description Classifies the request's path, query and fragment and returns
// the view the session should render, resolving quiz links along the way.
// @Tags Resolution
// @Accept json
// @Produce json
// @Param request body request_models.NavigateRequest true "Navigation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /resolution/navigate [post]
func (r *ResolutionController) Navigate(c *gin.Context) {
	var req request_models.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := r.resolution.Navigate(c.Request.Context(), req.SessionID, services.RequestContext{
		Path:     req.Path,
		Query:    req.Query,
		Fragment: req.Fragment,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, toViewStateResponse(state), "")
}

// State godoc
// @Summary Current view state for a session
// @Tags Resolution
// @Produce json
// @Param session_id path string true "Session id"
// @Success 200 {object} utils.APIResponse
// @Router /resolution/state/{session_id} [get]
func (r *ResolutionController) State(c *gin.Context) {
	state := r.resolution.State(c.Param("session_id"))
	utils.RespondSuccess(c, toViewStateResponse(state), "")
}

func toViewStateResponse(state *services.ViewState) response_models.ViewStateResponse {
	return response_models.ViewStateResponse{
		View: state.View,
		Quiz: state.Quiz,
	}
}
