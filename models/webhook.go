package models

import "encoding/json"

// Webhook event types this service reacts to. Any other type is acknowledged
// without action.
const (
	EventTypeCheckoutSessionCompleted = "checkout.session.completed"
	EventTypePaymentFailed            = "payment_intent.payment_failed"
	EventTypeChargeRefunded           = "charge.refunded"
)

// WebhookEvent is a provider notification that has passed signature
// verification. The object payload is kept raw and only decoded by the
// handler branch that knows its shape.
type WebhookEvent struct {
	ID   string           `json:"id"`
	Type string           `json:"type"`
	Data WebhookEventData `json:"data"`
}

// WebhookEventData wraps the raw object block of a webhook event.
type WebhookEventData struct {
	Object json.RawMessage `json:"object"`
}

// CheckoutSessionEventData is the object block of a checkout.session.completed
// event.
type CheckoutSessionEventData struct {
	ID            string `json:"id"`
	PaymentIntent string `json:"payment_intent"`
	PaymentStatus string `json:"payment_status"`
}

// PaymentIntentEventData is the object block of a payment_intent event.
type PaymentIntentEventData struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
}

// ChargeEventData is the object block of a charge event.
type ChargeEventData struct {
	ID             string `json:"id"`
	PaymentIntent  string `json:"payment_intent"`
	AmountRefunded int64  `json:"amount_refunded"`
}

// WebhookAck is the terminal acknowledgment returned to the provider once a
// verified event has been handled (or deliberately ignored).
type WebhookAck struct {
	Received bool `json:"received"`
}
