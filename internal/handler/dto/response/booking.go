package response

import (
	"gym-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookedSessionResponse struct {
	ID         uuid.UUID `json:"id"`
	TemplateID uuid.UUID `json:"template_id"`
	Date       string    `json:"date"`
}

type UseCreditResponse struct {
	Success          bool                    `json:"success"`
	Bookings         []BookedSessionResponse `json:"bookings"`
	CreditsUsed      int                     `json:"credits_used"`
	CreditsRemaining int                     `json:"credits_remaining"`
}

func FromRedemptionResult(r *commands.RedemptionResult) UseCreditResponse {
	out := UseCreditResponse{
		Success:          true,
		Bookings:         make([]BookedSessionResponse, 0, len(r.Bookings)),
		CreditsUsed:      r.CreditsUsed,
		CreditsRemaining: r.CreditsRemaining,
	}
	for _, b := range r.Bookings {
		out.Bookings = append(out.Bookings, BookedSessionResponse{
			ID:         b.ID,
			TemplateID: b.TemplateID,
			Date:       b.Date,
		})
	}
	return out
}

type CancelBookingResponse struct {
	BookingID       uuid.UUID  `json:"booking_id"`
	CreditsRestored int        `json:"credits_restored"`
	RestoredBatchID *uuid.UUID `json:"restored_batch_id,omitempty"`
}

func FromCancelResult(r *commands.CancelResult) CancelBookingResponse {
	return CancelBookingResponse{
		BookingID:       r.BookingID,
		CreditsRestored: r.CreditsRestored,
		RestoredBatchID: r.RestoredBatchID,
	}
}

// InsufficientCreditsDetail lets the client offer to pay for the shortfall.
type InsufficientCreditsDetail struct {
	Available int `json:"available"`
	Required  int `json:"required"`
}
