package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"

	"github.com/trailnest/payments-api/config"
	"github.com/trailnest/payments-api/dao"
	"github.com/trailnest/payments-api/interceptors"
	"github.com/trailnest/payments-api/service"
)

var checkoutService *service.CheckoutService
var accountService *service.AccountService
var refundService *service.RefundService
var webhookService *service.WebhookService

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	m := dao.NewDAOService(&cfg)
	sdk := service.NewStripeSDK(cfg.StripeAPIKey, nil)

	checkoutService = &service.CheckoutService{
		SDK:    sdk,
		Config: cfg,
	}

	accountService = &service.AccountService{
		SDK:    sdk,
		Config: cfg,
	}

	refundService = &service.RefundService{
		SDK:    sdk,
		Config: cfg,
	}

	webhookService = &service.WebhookService{
		DAO:    m,
		Config: cfg,
	}

	ra := &interceptors.RefundAuthenticationInterceptor{
		Config: cfg,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Create subrouters. The refund endpoint needs the refund secret
	// interceptor and the webhook endpoint must stay un-intercepted, so the
	// router is split up to allow per-subrouter middleware.

	checkoutRouter := mainRouter.PathPrefix("/create-checkout-session").Subrouter()
	checkoutRouter.HandleFunc("", HandleCreateCheckoutSession).Methods("POST").Name("create-checkout-session")

	accountLinkRouter := mainRouter.PathPrefix("/create-account-link").Subrouter()
	accountLinkRouter.HandleFunc("", HandleCreateAccountLink).Methods("POST").Name("create-account-link")

	// refund-deposit is a privileged, money-moving endpoint; the secret gate
	// runs before the handler ever reads the body
	refundRouter := mainRouter.PathPrefix("/refund-deposit").Subrouter()
	refundRouter.HandleFunc("", HandleRefundDeposit).Methods("POST").Name("refund-deposit")

	// webhook endpoint authenticates by payload signature, not middleware
	webhookRouter := mainRouter.PathPrefix("/webhook").Subrouter()
	webhookRouter.HandleFunc("", HandleProviderWebhook).Methods("POST").Name("handle-provider-webhook")

	// Set middleware for subrouters
	checkoutRouter.Use(log.Handler)
	accountLinkRouter.Use(log.Handler)
	refundRouter.Use(log.Handler, ra.RefundAuthenticationIntercept)
	webhookRouter.Use(log.Handler)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
