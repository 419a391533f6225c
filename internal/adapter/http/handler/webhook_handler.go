package handler

import (
	"io"
	"net/http"

	"pix-notify/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives gateway payment notifications.
type WebhookHandler struct {
	pipeline ports.IngestionPipeline
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(pipeline ports.IngestionPipeline) *WebhookHandler {
	return &WebhookHandler{pipeline: pipeline}
}

// Handle handles POST /webhook. The response shape is the gateway's
// redelivery contract: 2xx acknowledges the notification (including
// skipped payments), 4xx/5xx asks for another attempt where retrying can
// help.
func (h *WebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": "unreadable_body"})
		return
	}

	result := h.pipeline.HandleWebhook(c.Request.Context(), body, c.Query("id"))

	switch result.Code {
	case ports.OutcomeNotified:
		c.JSON(http.StatusOK, gin.H{"ok": true, "payment_id": result.PaymentID})
	case ports.OutcomeNoPaymentID:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": string(result.Code)})
	case ports.OutcomeConfirmFailed:
		c.JSON(http.StatusBadGateway, gin.H{
			"ok":     false,
			"reason": string(result.Code),
			"detail": result.Err.Error(),
		})
	case ports.OutcomeNotApproved:
		c.JSON(http.StatusOK, gin.H{
			"ok":     false,
			"reason": string(result.Code),
			"status": result.Status,
		})
	case ports.OutcomeNotPix:
		c.JSON(http.StatusOK, gin.H{
			"ok":             false,
			"reason":         string(result.Code),
			"payment_method": result.PaymentMethod,
		})
	case ports.OutcomeAlreadyProcessed:
		c.JSON(http.StatusOK, gin.H{
			"ok":         true,
			"note":       string(result.Code),
			"payment_id": result.PaymentID,
		})
	case ports.OutcomeNotifyFailed:
		c.JSON(http.StatusBadGateway, gin.H{
			"ok":     false,
			"reason": string(result.Code),
			"info":   result.Err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "reason": string(ports.OutcomeInternalError)})
	}
}
