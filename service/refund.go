package service

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/stripe/stripe-go/v81"

	"github.com/trailnest/payments-api/config"
	"github.com/trailnest/payments-api/mappers"
	"github.com/trailnest/payments-api/models"
)

// RefundService issues security deposit refunds against captured payments.
// Callers reach it only through the refund authentication interceptor.
type RefundService struct {
	SDK    ProviderSDK
	Config config.Config
}

// RefundDeposit creates a refund in the provider for the referenced payment.
// A nil AmountCents requests a full refund; the amount field is then absent
// from the outbound call rather than sent as zero. Provider rejections
// (already refunded, invalid reference, amount above the captured total) are
// passed through as server errors and are not retryable here.
func (service *RefundService) RefundDeposit(req *http.Request, refundRequest models.RefundRequest) (*models.RefundResponse, ResponseType, error) {

	validate := validator.New()
	if err := validate.Struct(refundRequest); err != nil {
		return nil, InvalidData, fmt.Errorf("invalid refund request: [%v]", err)
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(refundRequest.PaymentIntent),
	}
	if refundRequest.AmountCents != nil {
		params.Amount = stripe.Int64(*refundRequest.AmountCents)
	}

	refund, err := service.SDK.CreateRefund(params)
	if err != nil {
		return nil, Error, fmt.Errorf("error creating refund with payment provider: [%v]", err)
	}

	refundResponse := mappers.MapRefundToRest(refund)

	log.InfoR(req, "created deposit refund", log.Data{"refund_id": refundResponse.RefundID, "payment_intent": refundResponse.PaymentIntent})

	return &refundResponse, Success, nil
}
