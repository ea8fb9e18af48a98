package api

import (
	"log/slog"
	"net/http"

	"gym-booking/internal/domain/credit"
	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/handler/httperr"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const msgConflict = "One or more sessions were just booked by someone else. Please refresh and try again."

// abortWithUsecaseError maps booking, checkout and reconciliation failures onto HTTP.
func abortWithUsecaseError(c *gin.Context, err error) {
	var shortfall *credit.InsufficientCreditsError

	switch {
	case errs.As(err, &shortfall):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Insufficient credits", resdto.InsufficientCreditsDetail{
			Available: shortfall.Available,
			Required:  shortfall.Required,
		})
	case errs.Is(err, commands.ErrAllSlotsTaken), errs.Is(err, commands.ErrAlreadyBooked):
		httperr.AbortWithError(c, http.StatusConflict, err, msgConflict, nil)
	case errs.Is(err, commands.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Session not found", nil)
	case errs.Is(err, commands.ErrCreditPackageNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Credit package not found", nil)
	case errs.Is(err, commands.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
	case errs.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, commands.ErrProviderUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment provider unavailable", nil)
	case errs.Is(err, queries.ErrInvalidDateRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, validationMessage(err), nil)
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err.Error(), "stack", errs.ExtractStackLines(err, 8))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// validationMessage exposes only the outermost domain message, never wrapped driver text.
func validationMessage(err error) string {
	if msg := errs.UnwrapAll(err).Error(); msg != "" {
		return msg
	}
	return "Invalid request"
}

// errMissingIdentity means an authenticated route ran without the auth middleware.
var errMissingIdentity = errs.New("authenticated user missing from context")
