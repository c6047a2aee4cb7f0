package models

// CheckoutRecordDB is the association between a completed checkout session
// and its underlying payment intent, recorded when the provider notifies us
// that the session completed. The session id is the natural key, which is
// what makes duplicate webhook deliveries collapse onto a single record.
type CheckoutRecordDB struct {
	SessionID     string `bson:"_id"`
	PaymentIntent string `bson:"payment_intent"`
	EventID       string `bson:"event_id"`
	CompletedAt   string `bson:"completed_at"`
}
