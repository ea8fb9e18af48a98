package request

// PaymentWebhook is the provider's event envelope. Only the reference is acted on;
// the status is re-fetched from the provider before anything changes.
type PaymentWebhook struct {
	ID        string `json:"id"`
	EventType string `json:"event_type"`
	Timestamp string `json:"timestamp"`
	Payload   struct {
		CheckoutReference string `json:"checkout_reference"`
		TransactionID     string `json:"transaction_id"`
		Status            string `json:"status"`
	} `json:"payload"`
}
