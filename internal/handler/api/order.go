package api

import (
	"net/http"
	"strings"

	reqdto "gym-booking/internal/handler/dto/request"
	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/handler/httperr"
	"gym-booking/internal/handler/middleware"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errGuestContactRequired = errs.New("guest contact required")

type OrderHandler struct {
	checkout   commands.CheckoutCommands
	reconciler commands.Reconciler
}

func NewOrderHandler(checkout commands.CheckoutCommands, reconciler commands.Reconciler) *OrderHandler {
	return &OrderHandler{checkout: checkout, reconciler: reconciler}
}

// @Summary Pay for sessions by card
// @Description Signed-in customers or guests (with contact details) open a hosted checkout
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Sessions to buy"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	actor := actorID(c)
	if actor == nil && req.Guest == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errGuestContactRequired, "Guest name and email are required", nil)
		return
	}

	result, err := h.checkout.CreateCardOrder(c.Request.Context(), actor, commands.CardOrderRequest{
		Items:      toSlotRequests(req.Items),
		GuestEmail: req.GuestEmail(),
		GuestName:  req.GuestName(),
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

// @Summary Order status
// @Description Reconciles a PENDING order against the provider before answering
// @Tags orders
// @Produce json
// @Param reference path string true "Checkout reference"
// @Success 200 {object} queries.OrderView
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/orders/{reference} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	view, err := h.reconciler.ReconcileByReference(c.Request.Context(), reference(c), actorID(c))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Wait for settlement
// @Description Polls the provider until the order leaves PENDING or the attempts run out
// @Tags orders
// @Produce json
// @Param reference path string true "Checkout reference"
// @Success 200 {object} queries.OrderView
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{reference}/await [get]
func (h *OrderHandler) Await(c *gin.Context) {
	view, err := h.reconciler.AwaitSettlement(c.Request.Context(), reference(c), actorID(c))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func reference(c *gin.Context) string {
	return strings.TrimSpace(c.Param("reference"))
}

func actorID(c *gin.Context) *uuid.UUID {
	if id, ok := middleware.GetUserID(c); ok {
		return &id
	}
	return nil
}
