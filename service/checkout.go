package service

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/stripe/stripe-go/v81"

	"github.com/trailnest/payments-api/config"
	"github.com/trailnest/payments-api/models"
)

// CheckoutService creates checkout sessions that split a booking payment
// between the platform fee and the host's connected account
type CheckoutService struct {
	SDK    ProviderSDK
	Config config.Config
}

// CreateCheckoutSession validates the booking request, prices the two line
// items (rental and refundable deposit) and asks the provider for a hosted
// payment page to redirect the renter to
func (service *CheckoutService) CreateCheckoutSession(req *http.Request, checkoutRequest models.CheckoutSessionRequest) (*models.CheckoutSessionResponse, ResponseType, error) {

	validate := validator.New()
	if err := validate.Struct(checkoutRequest); err != nil {
		return nil, InvalidData, fmt.Errorf("invalid checkout session request: [%v]", err)
	}

	fee, err := ApplicationFee(checkoutRequest.TotalAmountCents, service.Config.PlatformFeePercent)
	if err != nil {
		return nil, Error, err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(service.Config.PaymentsWebURL + "/bookings/" + checkoutRequest.ItemID + "/complete?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(service.Config.PaymentsWebURL + "/bookings/" + checkoutRequest.ItemID + "/cancelled"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(checkoutRequest.TotalAmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Rental of %s (%d nights)", checkoutRequest.ItemID, checkoutRequest.Nights)),
					},
				},
			},
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(checkoutRequest.DepositCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Refundable security deposit"),
					},
				},
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			TransferData: &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripe.String(checkoutRequest.HostConnectID),
			},
		},
	}

	// The provider distinguishes an absent fee from an explicit zero, and
	// rejects the latter, so the instruction is only set when there is a fee
	// to take
	if fee > 0 {
		params.PaymentIntentData.ApplicationFeeAmount = stripe.Int64(fee)
	}

	params.AddExpand("payment_intent")

	session, err := service.SDK.CreateCheckoutSession(params)
	if err != nil {
		return nil, Error, fmt.Errorf("error creating checkout session with payment provider: [%v]", err)
	}

	var paymentIntentID string
	if session.PaymentIntent != nil {
		paymentIntentID = session.PaymentIntent.ID
	}

	log.TraceR(req, "created checkout session", log.Data{"session_id": session.ID, "item_id": checkoutRequest.ItemID, "application_fee": fee})

	return &models.CheckoutSessionResponse{
		URL:           session.URL,
		SessionID:     session.ID,
		PaymentIntent: paymentIntentID,
	}, Success, nil
}
