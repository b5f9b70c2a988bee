package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"facilityai/models"
	"facilityai/services/payment"
)

// PaymentHandler serves the payment-link stub.
type PaymentHandler struct {
	PaymentSvc payment.PaymentService
	Logger     *zap.Logger
}

func NewPaymentHandler(svc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{PaymentSvc: svc, Logger: logger}
}

// CreatePaymentLink handles POST /api/payment-links.
func (h *PaymentHandler) CreatePaymentLink(c *gin.Context) {
	var req models.PaymentLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	result, err := h.PaymentSvc.CreateLink(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("CreatePaymentLink: creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to create payment link",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
