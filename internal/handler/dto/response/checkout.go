package response

import "gym-booking/internal/usecase/commands"

type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
	Reference   string `json:"reference"`
}

func FromCheckoutResult(r *commands.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{CheckoutURL: r.CheckoutURL, Reference: r.Reference}
}

type WebhookAck struct {
	Received bool `json:"received"`
}
