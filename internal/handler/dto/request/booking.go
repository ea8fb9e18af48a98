package request

import (
	"github.com/google/uuid"
)

// SessionSlot identifies one occurrence of a weekly session template.
type SessionSlot struct {
	TemplateID uuid.UUID `json:"template_id" binding:"required"`
	Date       string    `json:"date" binding:"required,datetime=2006-01-02"`
}

type UseCreditRequest struct {
	Sessions []SessionSlot `json:"sessions" binding:"required,min=1,max=50,dive"`
}
