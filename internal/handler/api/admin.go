package api

import (
	"net/http"

	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/handler/httperr"
	"gym-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	bookings commands.BookingAdminCommands
}

func NewAdminHandler(bookings commands.BookingAdminCommands) *AdminHandler {
	return &AdminHandler{bookings: bookings}
}

// @Summary Cancel a booking
// @Description Deletes a booking; a credit-funded booking returns its credit to the original batch
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/bookings/{id} [delete]
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	result, err := h.bookings.CancelBooking(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}
