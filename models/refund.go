package models

// RefundRequest is the incoming request to refund a security deposit against
// a previously captured payment. AmountCents must be omitted entirely for a
// full refund; an explicit zero is rejected so that "refund nothing" can
// never be read as "refund everything".
type RefundRequest struct {
	PaymentIntent string `json:"paymentIntentRef" validate:"required"`
	AmountCents   *int64 `json:"amountCents,omitempty" validate:"omitempty,gt=0"`
}

// RefundResponse describes the refund created by the provider.
type RefundResponse struct {
	RefundID      string `json:"refund_id"`
	PaymentIntent string `json:"payment_intent"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

// CreateRefundResponse is the body returned by the refund-deposit endpoint.
type CreateRefundResponse struct {
	Success bool           `json:"success"`
	Refund  RefundResponse `json:"refund"`
}
