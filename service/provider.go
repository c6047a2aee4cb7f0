package service

import (
	"net/http"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// ProviderSDK is an interface for all the Stripe client methods that will be
// used in this service, enabling substitution with a test double.
type ProviderSDK interface {
	CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	CreateConnectedAccount(params *stripe.AccountParams) (*stripe.Account, error)
	CreateOnboardingLink(params *stripe.AccountLinkParams) (*stripe.AccountLink, error)
	CreateRefund(params *stripe.RefundParams) (*stripe.Refund, error)
}

// StripeSDK is the live ProviderSDK implementation backed by the Stripe API
// client.
type StripeSDK struct {
	api *client.API
}

// NewStripeSDK creates a Stripe-backed ProviderSDK. A nil httpClient uses the
// SDK's default transport; tests inject one to intercept outbound calls.
func NewStripeSDK(apiKey string, httpClient *http.Client) *StripeSDK {
	var backends *stripe.Backends
	if httpClient != nil {
		backends = stripe.NewBackends(httpClient)
	}
	return &StripeSDK{api: client.New(apiKey, backends)}
}

// CreateCheckoutSession creates a hosted checkout session
func (s *StripeSDK) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return s.api.CheckoutSessions.New(params)
}

// CreateConnectedAccount creates a connected account for a host
func (s *StripeSDK) CreateConnectedAccount(params *stripe.AccountParams) (*stripe.Account, error) {
	return s.api.Accounts.New(params)
}

// CreateOnboardingLink creates a single-use onboarding link for a connected
// account
func (s *StripeSDK) CreateOnboardingLink(params *stripe.AccountLinkParams) (*stripe.AccountLink, error) {
	return s.api.AccountLinks.New(params)
}

// CreateRefund issues a refund against a captured payment
func (s *StripeSDK) CreateRefund(params *stripe.RefundParams) (*stripe.Refund, error) {
	return s.api.Refunds.New(params)
}
