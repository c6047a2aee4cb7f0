package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/trailnest/payments-api/models"
	"github.com/trailnest/payments-api/utils"
)

// SignatureHeader carries the provider's signature over the raw request body
const SignatureHeader = "Stripe-Signature"

const maxWebhookBytes = int64(65536)

// handlePaymentMessage allows us to mock the call to producePaymentMessage for unit tests
var handlePaymentMessage = producePaymentMessage

// HandleProviderWebhook verifies an inbound provider notification against
// the raw request bytes and dispatches it by event type. Once the signature
// has verified, the provider always gets an acknowledgment: handler failures
// are logged, not surfaced, because correctness-critical effects are never
// triggered solely from this channel and an unacknowledged event would just
// be retried.
func HandleProviderWebhook(w http.ResponseWriter, req *http.Request) {
	// Verification is a cryptographic comparison over the literal payload,
	// so the body must be read raw, never re-encoded
	payload, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxWebhookBytes))
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error reading webhook request body: [%v]", err))
		writeWebhookError(w, req, err)
		return
	}

	event, err := webhookService.VerifyWebhookSignature(payload, req.Header.Get(SignatureHeader))
	if err != nil {
		log.ErrorR(req, fmt.Errorf("webhook signature verification failed: [%v]", err))
		writeWebhookError(w, req, err)
		return
	}

	dispatchWebhookEvent(req, event)

	utils.WriteJSONWithStatus(w, req, models.WebhookAck{Received: true}, http.StatusOK)
}

// writeWebhookError reports a verification failure as plain text, which is
// the shape the provider's retry tooling expects, distinct from the JSON
// errors of the rest of the API
func writeWebhookError(w http.ResponseWriter, req *http.Request, err error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	if _, err := fmt.Fprintf(w, "Webhook Error: %v", err); err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
	}
}

// dispatchWebhookEvent routes a verified event to the reaction for its type.
// Unrecognised types are accepted without action so new provider events can
// never fail dispatch.
func dispatchWebhookEvent(req *http.Request, event *models.WebhookEvent) {
	switch event.Type {

	case models.EventTypeCheckoutSessionCompleted:
		var session models.CheckoutSessionEventData
		if err := json.Unmarshal(event.Data.Object, &session); err != nil {
			log.ErrorR(req, fmt.Errorf("error parsing checkout session from event [%s]: [%v]", event.ID, err))
			return
		}

		created, err := webhookService.RecordCompletedSession(event.ID, session)
		if err != nil {
			log.ErrorR(req, fmt.Errorf("error recording completed checkout session [%s]: [%v]", session.ID, err))
			return
		}
		if !created {
			// Redelivery of an event that was already durably recorded
			log.InfoR(req, "checkout session already recorded", log.Data{"session_id": session.ID, "event_id": event.ID})
			return
		}

		log.InfoR(req, "recorded completed checkout session", log.Data{"session_id": session.ID, "payment_intent": session.PaymentIntent})

		if err := handlePaymentMessage(session.ID, session.PaymentIntent); err != nil {
			log.ErrorR(req, fmt.Errorf("error producing payment kafka message: [%v]", err))
		}

	case models.EventTypePaymentFailed:
		var intent models.PaymentIntentEventData
		if err := json.Unmarshal(event.Data.Object, &intent); err != nil {
			log.ErrorR(req, fmt.Errorf("error parsing payment intent from event [%s]: [%v]", event.ID, err))
			return
		}
		log.InfoR(req, "payment failed", log.Data{"payment_intent": intent.ID, "amount": intent.Amount})

	case models.EventTypeChargeRefunded:
		var charge models.ChargeEventData
		if err := json.Unmarshal(event.Data.Object, &charge); err != nil {
			log.ErrorR(req, fmt.Errorf("error parsing charge from event [%s]: [%v]", event.ID, err))
			return
		}
		log.InfoR(req, "charge refunded", log.Data{"charge_id": charge.ID, "payment_intent": charge.PaymentIntent, "amount_refunded": charge.AmountRefunded})

	default:
		log.TraceR(req, "ignoring unhandled webhook event type", log.Data{"event_id": event.ID, "event_type": event.Type})
	}
}
