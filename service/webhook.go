package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/trailnest/payments-api/config"
	"github.com/trailnest/payments-api/dao"
	"github.com/trailnest/payments-api/models"
)

// WebhookService verifies inbound provider notifications and records the
// effects of the events this service reacts to
type WebhookService struct {
	DAO    dao.DAO
	Config config.Config
}

// VerifyWebhookSignature verifies the signature header against the raw
// payload bytes using the configured signing secret
func (service *WebhookService) VerifyWebhookSignature(payload []byte, sigHeader string) (*models.WebhookEvent, error) {
	return VerifyWebhookSignature(payload, sigHeader, service.Config.WebhookSecret)
}

// VerifyWebhookSignature checks that a notification genuinely originates
// from the payment provider. The signature header has the form
// "t=<timestamp>,v1=<hex digest>" where the digest is HMAC-SHA256 over
// "<timestamp>.<payload>". Verification runs over the exact raw bytes
// received; re-encoding the payload would invalidate it. Failures never
// include secret material in the returned error.
func VerifyWebhookSignature(payload []byte, sigHeader, secret string) (*models.WebhookEvent, error) {
	if secret == "" {
		return nil, errors.New("webhook signing secret is not configured")
	}
	if sigHeader == "" {
		return nil, errors.New("no signature header provided")
	}

	timestamp, signature := parseSignatureHeader(sigHeader)
	if timestamp == "" || signature == "" {
		return nil, errors.New("unable to parse signature header")
	}

	providedMAC, err := hex.DecodeString(signature)
	if err != nil {
		return nil, errors.New("unable to parse signature header")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)

	if !hmac.Equal(providedMAC, mac.Sum(nil)) {
		return nil, errors.New("signature does not match the expected signature for the payload")
	}

	event := &models.WebhookEvent{}
	if err := json.Unmarshal(payload, event); err != nil {
		return nil, fmt.Errorf("unable to parse event payload: [%v]", err)
	}

	return event, nil
}

// parseSignatureHeader extracts the t and v1 values from the signature
// header. Unknown schemes in the header are ignored.
func parseSignatureHeader(header string) (timestamp, signature string) {
	for _, pair := range strings.Split(header, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 {
			continue
		}
		switch parts[0] {
		case "t":
			timestamp = parts[1]
		case "v1":
			signature = parts[1]
		}
	}
	return timestamp, signature
}

// RecordCompletedSession stores the association between a completed checkout
// session and its payment intent. Keyed on the session id, so redelivery of
// the same event leaves a single record; the bool reports whether this call
// created it.
func (service *WebhookService) RecordCompletedSession(eventID string, session models.CheckoutSessionEventData) (bool, error) {
	if session.ID == "" {
		return false, errors.New("checkout session id missing from event payload")
	}

	record := &models.CheckoutRecordDB{
		SessionID:     session.ID,
		PaymentIntent: session.PaymentIntent,
		EventID:       eventID,
		CompletedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	created, err := service.DAO.UpsertCheckoutRecord(record)
	if err != nil {
		return false, fmt.Errorf("error saving checkout record: [%v]", err)
	}

	return created, nil
}
