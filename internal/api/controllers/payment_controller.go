package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/payOSHQ/payos-lib-golang"

	"quizmaker/internal/models/request_models"
	"quizmaker/internal/services"
	"quizmaker/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// CreateCheckout godoc
// @Summary Open a checkout to unlock a quiz
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateCheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /payments/checkout [post]
func (p *PaymentController) CreateCheckout(c *gin.Context) {
	var req request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	viewer := viewerFrom(c)
	if viewer.AccountID == nil {
		utils.HandleServiceError(c, utils.ErrForbidden)
		return
	}

	resp, err := p.paymentService.CreateCheckout(c.Request.Context(), *viewer.AccountID, req.QuizID, req.AmountMinor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Checkout created")
}

// Webhook godoc
// @Summary Payment provider webhook
// @Description Provider callback; always acked with 200 once parsed so the
// provider stops retrying, even when the order is unknown.
// @Tags Payments
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /payments/webhook [post]
func (p *PaymentController) Webhook(c *gin.Context) {
	var body payos.WebhookType
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	if err := p.paymentService.HandleWebhook(c.Request.Context(), body); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Failed to process webhook")
		return
	}
	utils.RespondSuccess(c, nil, "Webhook processed")
}

// ListEntitlements godoc
// @Summary List quiz ids unlocked by the signed-in account
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /payments/entitlements [get]
func (p *PaymentController) ListEntitlements(c *gin.Context) {
	viewer := viewerFrom(c)
	if viewer.AccountID == nil {
		utils.HandleServiceError(c, utils.ErrForbidden)
		return
	}

	ids, err := p.paymentService.ListEntitlements(c.Request.Context(), *viewer.AccountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"quiz_ids": ids}, "")
}
