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

// Hosts are onboarded in a single jurisdiction for now. Supporting other
// countries means per-host country selection and provider capability checks.
const accountCountry = "US"

// AccountService onboards hosts onto the payment provider as connected
// accounts able to receive split payouts
type AccountService struct {
	SDK    ProviderSDK
	Config config.Config
}

// CreateAccountLink creates a connected account for a host and returns a
// single-use onboarding link. Capabilities are requested, not granted;
// granting is asynchronous and owned by the provider.
func (service *AccountService) CreateAccountLink(req *http.Request, linkRequest models.AccountLinkRequest) (*models.AccountLinkResponse, ResponseType, error) {

	validate := validator.New()
	if err := validate.Struct(linkRequest); err != nil {
		return nil, InvalidData, fmt.Errorf("invalid account link request: [%v]", err)
	}

	accountParams := &stripe.AccountParams{
		Type:    stripe.String(string(stripe.AccountTypeExpress)),
		Email:   stripe.String(linkRequest.Email),
		Country: stripe.String(accountCountry),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{
				Requested: stripe.Bool(true),
			},
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
	}

	account, err := service.SDK.CreateConnectedAccount(accountParams)
	if err != nil {
		return nil, Error, fmt.Errorf("error creating connected account with payment provider: [%v]", err)
	}

	linkParams := &stripe.AccountLinkParams{
		Account:    stripe.String(account.ID),
		RefreshURL: stripe.String(service.Config.PaymentsWebURL + "/hosts/onboarding/refresh"),
		ReturnURL:  stripe.String(service.Config.PaymentsWebURL + "/hosts/onboarding/complete"),
		Type:       stripe.String(string(stripe.AccountLinkTypeAccountOnboarding)),
	}

	link, err := service.SDK.CreateOnboardingLink(linkParams)
	if err != nil {
		return nil, Error, fmt.Errorf("error creating onboarding link with payment provider: [%v]", err)
	}

	log.TraceR(req, "created connected account and onboarding link", log.Data{"account_id": account.ID})

	return &models.AccountLinkResponse{
		URL:       link.URL,
		AccountID: account.ID,
	}, Success, nil
}
