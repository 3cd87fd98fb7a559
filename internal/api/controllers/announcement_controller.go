package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizmaker/internal/models/request_models"
	"quizmaker/internal/services"
	"quizmaker/pkg/utils"
)

type AnnouncementController struct {
	announcementService services.AnnouncementServiceInterface
}

func NewAnnouncementController(announcementService services.AnnouncementServiceInterface) *AnnouncementController {
	return &AnnouncementController{announcementService: announcementService}
}

// ListActive godoc
// @Summary Active announcements for the public news page
// @Tags Announcements
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /announcements [get]
func (a *AnnouncementController) ListActive(c *gin.Context) {
	announcements, err := a.announcementService.ListActive(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, announcements, "")
}

// ListAll godoc
// @Summary Every announcement, drafts included
// @Tags Announcements
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /announcements/all [get]
func (a *AnnouncementController) ListAll(c *gin.Context) {
	announcements, err := a.announcementService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, announcements, "")
}

// Create godoc
// @Summary Create an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param request body request_models.SaveAnnouncementRequest true "Announcement payload"
// @Success 200 {object} utils.APIResponse
// @Router /announcements [post]
func (a *AnnouncementController) Create(c *gin.Context) {
	var req request_models.SaveAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	announcement, err := a.announcementService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, announcement, "Announcement created")
}

// Update godoc
// @Summary Update an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement id"
// @Param request body request_models.SaveAnnouncementRequest true "Announcement payload"
// @Success 200 {object} utils.APIResponse
// @Router /announcements/{id} [put]
func (a *AnnouncementController) Update(c *gin.Context) {
	var req request_models.SaveAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	announcement, err := a.announcementService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, announcement, "Announcement updated")
}

// Delete godoc
// @Summary Delete an announcement
// @Tags Announcements
// @Produce json
// @Param id path string true "Announcement id"
// @Success 200 {object} utils.APIResponse
// @Router /announcements/{id} [delete]
func (a *AnnouncementController) Delete(c *gin.Context) {
	if err := a.announcementService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Announcement deleted")
}
