package service

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stripe/stripe-go/v81"

	"github.com/trailnest/payments-api/config"
	"github.com/trailnest/payments-api/models"
)

func TestUnitCreateAccountLink(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()
	cfg.PaymentsWebURL = "https://rentals.trailnest.com"

	req := httptest.NewRequest("POST", "/create-account-link", nil)

	Convey("Email missing", t, func() {
		mockSDK := NewMockProviderSDK(mockCtrl)
		accountService := AccountService{SDK: mockSDK, Config: *cfg}

		_, responseType, err := accountService.CreateAccountLink(req, models.AccountLinkRequest{})
		So(responseType, ShouldEqual, InvalidData)
		So(err, ShouldNotBeNil)
	})

	Convey("Email malformed", t, func() {
		mockSDK := NewMockProviderSDK(mockCtrl)
		accountService := AccountService{SDK: mockSDK, Config: *cfg}

		_, responseType, err := accountService.CreateAccountLink(req, models.AccountLinkRequest{Email: "not-an-email"})
		So(responseType, ShouldEqual, InvalidData)
		So(err, ShouldNotBeNil)
	})

	Convey("Error creating connected account", t, func() {
		mockSDK := NewMockProviderSDK(mockCtrl)
		mockSDK.EXPECT().CreateConnectedAccount(gomock.Any()).Return(nil, errors.New("error"))
		accountService := AccountService{SDK: mockSDK, Config: *cfg}

		_, responseType, err := accountService.CreateAccountLink(req, models.AccountLinkRequest{Email: "host@example.com"})
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error creating connected account with payment provider: [error]")
	})

	Convey("Error creating onboarding link", t, func() {
		mockSDK := NewMockProviderSDK(mockCtrl)
		mockSDK.EXPECT().CreateConnectedAccount(gomock.Any()).Return(&stripe.Account{ID: "acct_123"}, nil)
		mockSDK.EXPECT().CreateOnboardingLink(gomock.Any()).Return(nil, errors.New("error"))
		accountService := AccountService{SDK: mockSDK, Config: *cfg}

		_, responseType, err := accountService.CreateAccountLink(req, models.AccountLinkRequest{Email: "host@example.com"})
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error creating onboarding link with payment provider: [error]")
	})

	Convey("Successful account link", t, func() {
		var capturedAccountParams *stripe.AccountParams
		var capturedLinkParams *stripe.AccountLinkParams

		mockSDK := NewMockProviderSDK(mockCtrl)
		mockSDK.EXPECT().CreateConnectedAccount(gomock.Any()).DoAndReturn(
			func(params *stripe.AccountParams) (*stripe.Account, error) {
				capturedAccountParams = params
				return &stripe.Account{ID: "acct_123"}, nil
			})
		mockSDK.EXPECT().CreateOnboardingLink(gomock.Any()).DoAndReturn(
			func(params *stripe.AccountLinkParams) (*stripe.AccountLink, error) {
				capturedLinkParams = params
				return &stripe.AccountLink{URL: "https://connect.stripe.com/setup/s/abc"}, nil
			})
		accountService := AccountService{SDK: mockSDK, Config: *cfg}

		linkResponse, responseType, err := accountService.CreateAccountLink(req, models.AccountLinkRequest{Email: "host@example.com"})
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(linkResponse.URL, ShouldEqual, "https://connect.stripe.com/setup/s/abc")
		So(linkResponse.AccountID, ShouldEqual, "acct_123")

		// Capabilities are requested for the fixed jurisdiction; granting is
		// the provider's business
		So(*capturedAccountParams.Country, ShouldEqual, "US")
		So(*capturedAccountParams.Capabilities.CardPayments.Requested, ShouldBeTrue)
		So(*capturedAccountParams.Capabilities.Transfers.Requested, ShouldBeTrue)

		So(*capturedLinkParams.Account, ShouldEqual, "acct_123")
		So(*capturedLinkParams.RefreshURL, ShouldEqual, "https://rentals.trailnest.com/hosts/onboarding/refresh")
		So(*capturedLinkParams.ReturnURL, ShouldEqual, "https://rentals.trailnest.com/hosts/onboarding/complete")
	})
}
