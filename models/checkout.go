package models

// CheckoutSessionRequest is the incoming request to start a checkout journey
// for a rental booking. Amounts are integer minor currency units; floats are
// never accepted on the wire.
type CheckoutSessionRequest struct {
	ItemID           string `json:"itemId" validate:"required"`
	Nights           int    `json:"nights" validate:"required,gt=0"`
	HostConnectID    string `json:"hostConnectId" validate:"required"`
	TotalAmountCents int64  `json:"totalAmountCents" validate:"gte=0"`
	DepositCents     int64  `json:"depositCents" validate:"gte=0"`
}

// CheckoutSessionResponse is returned to the calling app so it can redirect
// the renter to the hosted payment page.
type CheckoutSessionResponse struct {
	URL           string `json:"url"`
	SessionID     string `json:"sessionId"`
	PaymentIntent string `json:"paymentIntent"`
}
