package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quizmaker/internal/models/request_models"
	"quizmaker/internal/services"
	"quizmaker/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{quizService: quizService}
}

// Create godoc
// @Summary Create a quiz
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param request body request_models.SaveQuizRequest true "Quiz payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /quizzes [post]
func (q *QuizController) Create(c *gin.Context) {
	var req request_models.SaveQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	quiz, err := q.quizService.Create(c.Request.Context(), viewerFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, quiz, "Quiz created")
}

// Update godoc
// @Summary Update a quiz
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param identifier path int true "Quiz id"
// @Param request body request_models.SaveQuizRequest true "Quiz payload"
// @Success 200 {object} utils.APIResponse
// @Router /quizzes/{identifier} [put]
func (q *QuizController) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("identifier"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid quiz id")
		return
	}

	var req request_models.SaveQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	quiz, err := q.quizService.Update(c.Request.Context(), viewerFrom(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, quiz, "Quiz updated")
}

// Delete godoc
// @Summary Delete a quiz
// @Tags Quizzes
// @Produce json
// @Param identifier path int true "Quiz id"
// @Success 200 {object} utils.APIResponse
// @Router /quizzes/{identifier} [delete]
func (q *QuizController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("identifier"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid quiz id")
		return
	}

	if err := q.quizService.Delete(c.Request.Context(), viewerFrom(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Quiz deleted")
}

// Get godoc
// @Summary Fetch a quiz by slug or numeric id
// @Tags Quizzes
// @Produce json
// @Param identifier path string true "Slug or numeric id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /quizzes/{identifier} [get]
func (q *QuizController) Get(c *gin.Context) {
	quiz, err := q.quizService.Get(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, quiz, "")
}

// List godoc
// @Summary List quizzes
// @Tags Quizzes
// @Produce json
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /quizzes [get]
func (q *QuizController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	quizzes, err := q.quizService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, quizzes, "")
}

// ListMine godoc
// @Summary List the signed-in owner's quizzes
// @Tags Quizzes
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /quizzes/mine [get]
func (q *QuizController) ListMine(c *gin.Context) {
	quizzes, err := q.quizService.ListMine(c.Request.Context(), viewerFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, quizzes, "")
}

// Score godoc
// @Summary Score a completed answer sheet
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param identifier path string true "Slug or numeric id"
// @Param request body request_models.ScoreRequest true "Answer sheet"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /quizzes/{identifier}/score [post]
func (q *QuizController) Score(c *gin.Context) {
	var req request_models.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := q.quizService.Score(c.Request.Context(), c.Param("identifier"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "")
}

// TrackEvent godoc
// @Summary Record a view, like or outbound click
// @Tags Quizzes
// @Produce json
// @Param identifier path string true "Slug or numeric id"
// @Param event path string true "view | like | link_click"
// @Success 200 {object} utils.APIResponse
// @Router /quizzes/{identifier}/events/{event} [post]
func (q *QuizController) TrackEvent(c *gin.Context) {
	err := q.quizService.TrackEvent(c.Request.Context(), c.Param("identifier"), c.Param("event"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "")
}

// RegenerateSlug godoc
// @Summary Issue a fresh share slug for a quiz
// @Tags Quizzes
// @Produce json
// @Param identifier path int true "Quiz id"
// @Success 200 {object} utils.APIResponse
// @Router /quizzes/{identifier}/slug [post]
func (q *QuizController) RegenerateSlug(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("identifier"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid quiz id")
		return
	}

	slug, err := q.quizService.RegenerateSlug(c.Request.Context(), viewerFrom(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"slug": slug}, "Slug regenerated")
}

// ListSimilar godoc
// @Summary Recommend quizzes similar to one quiz
// @Tags Quizzes
// @Produce json
// @Param identifier path string true "Slug or numeric id"
// @Param limit query int false "Max results" default(5)
// @Success 200 {object} utils.APIResponse
// @Router /quizzes/{identifier}/similar [get]
func (q *QuizController) ListSimilar(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if limit < 1 || limit > 20 {
		limit = 5
	}

	quizzes, err := q.quizService.ListSimilar(c.Request.Context(), c.Param("identifier"), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, quizzes, "")
}
