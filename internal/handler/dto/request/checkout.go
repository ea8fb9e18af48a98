package request

import (
	"strings"

	"github.com/google/uuid"
)

type GuestContact struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required,min=1,max=200"`
}

// CheckoutRequest carries no prices; the server prices every session itself.
type CheckoutRequest struct {
	Items []SessionSlot `json:"items" binding:"required,min=1,max=50,dive"`
	Guest *GuestContact `json:"guest,omitempty"`
}

func (r CheckoutRequest) GuestEmail() string {
	if r.Guest == nil {
		return ""
	}
	return strings.TrimSpace(r.Guest.Email)
}

func (r CheckoutRequest) GuestName() string {
	if r.Guest == nil {
		return ""
	}
	return strings.TrimSpace(r.Guest.Name)
}

type CreditCheckoutRequest struct {
	PackageID uuid.UUID `json:"package_id" binding:"required"`
}
