package api

import (
	"net/http"

	reqdto "gym-booking/internal/handler/dto/request"
	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/handler/httperr"
	"gym-booking/internal/handler/middleware"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CreditHandler struct {
	redemption commands.RedemptionCommands
	checkout   commands.CheckoutCommands
	q          queries.CreditQueries
}

func NewCreditHandler(redemption commands.RedemptionCommands, checkout commands.CheckoutCommands, q queries.CreditQueries) *CreditHandler {
	return &CreditHandler{redemption: redemption, checkout: checkout, q: q}
}

// @Summary Credit summary
// @Description Balance, active purchases in consumption order, credits expiring soon and recent usage
// @Tags credits
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.CreditSummaryView
// @Failure 401 {object} httperr.Response
// @Router /api/credits [get]
func (h *CreditHandler) Summary(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	view, err := h.q.Summary(c.Request.Context(), customerID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Book sessions with credits
// @Description Books every still-free requested session at one credit each, all or nothing
// @Tags credits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UseCreditRequest true "Sessions to book"
// @Success 200 {object} resdto.UseCreditResponse
// @Failure 400 {object} httperr.Response "validation or insufficient credits (detail has available/required)"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/use-credit [post]
func (h *CreditHandler) UseCredit(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	var req reqdto.UseCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.redemption.RedeemCredits(c.Request.Context(), customerID, toSlotRequests(req.Sessions))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedemptionResult(result))
}

// @Summary Buy a credit package
// @Description Opens a hosted checkout for an active credit package
// @Tags credits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreditCheckoutRequest true "Package to buy"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/credits/checkout [post]
func (h *CreditHandler) Checkout(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	var req reqdto.CreditCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.checkout.CreateCreditOrder(c.Request.Context(), customerID, req.PackageID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

func toSlotRequests(in []reqdto.SessionSlot) []commands.SlotRequest {
	out := make([]commands.SlotRequest, 0, len(in))
	for _, s := range in {
		out = append(out, commands.SlotRequest{TemplateID: s.TemplateID, Date: s.Date})
	}
	return out
}
