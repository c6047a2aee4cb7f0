package mappers

import (
	"time"

	"github.com/stripe/stripe-go/v81"

	"github.com/trailnest/payments-api/models"
)

// MapRefundToRest maps a provider refund onto the REST model returned to the
// caller
func MapRefundToRest(refund *stripe.Refund) models.RefundResponse {
	var paymentIntentID string
	if refund.PaymentIntent != nil {
		paymentIntentID = refund.PaymentIntent.ID
	}

	return models.RefundResponse{
		RefundID:      refund.ID,
		PaymentIntent: paymentIntentID,
		Amount:        refund.Amount,
		Status:        string(refund.Status),
		CreatedAt:     time.Unix(refund.Created, 0).UTC().Format(time.RFC3339),
	}
}
