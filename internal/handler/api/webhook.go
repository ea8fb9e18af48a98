package api

import (
	"encoding/json"
	"net/http"
	"strings"

	reqdto "gym-booking/internal/handler/dto/request"
	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/handler/httperr"
	"gym-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 64 << 10

type WebhookHandler struct {
	reconciler commands.Reconciler
}

func NewWebhookHandler(reconciler commands.Reconciler) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler}
}

// @Summary Payment provider webhook
// @Description The event status is not trusted; the checkout is re-fetched before the order changes
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} resdto.WebhookAck
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/webhooks/payments [post]
func (h *WebhookHandler) Payments(c *gin.Context) {
	// Decoded without the global unknown-field check; providers add fields freely.
	var payload reqdto.PaymentWebhook
	if err := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)).Decode(&payload); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid webhook payload", nil)
		return
	}

	err := h.reconciler.HandleWebhook(c.Request.Context(), commands.WebhookEvent{
		EventID:   strings.TrimSpace(payload.ID),
		EventType: payload.EventType,
		Reference: strings.TrimSpace(payload.Payload.CheckoutReference),
		Status:    payload.Payload.Status,
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WebhookAck{Received: true})
}
