// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr          string   `env:"BIND_ADDR"            flag:"bind-addr"            flagDesc:"Bind address"`
	StripeAPIKey      string   `env:"STRIPE_API_KEY"       flag:"stripe-api-key"       flagDesc:"Secret API key used to make calls to Stripe"`
	WebhookSecret     string   `env:"WEBHOOK_SECRET"       flag:"webhook-secret"       flagDesc:"Signing secret used to verify inbound Stripe webhooks"`
	RefundSecret      string   `env:"REFUND_SECRET"        flag:"refund-secret"        flagDesc:"Shared secret required to trigger deposit refunds"`
	PlatformFeePercent string  `env:"PLATFORM_FEE_PERCENT" flag:"platform-fee-percent" flagDesc:"Percentage of the rental total taken as the platform fee"`
	PaymentsWebURL    string   `env:"PAYMENTS_WEB_URL"     flag:"payments-web-url"     flagDesc:"Base URL the checkout and onboarding journeys redirect back to"`
	MongoDBURL        string   `env:"MONGODB_URL"          flag:"mongodb-url"          flagDesc:"MongoDB server URL"`
	Database          string   `env:"MONGODB_DATABASE"     flag:"mongodb-database"     flagDesc:"MongoDB database for data"`
	Collection        string   `env:"MONGODB_COLLECTION"   flag:"mongodb-collection"   flagDesc:"MongoDB collection for data"`
	BrokerAddr        []string `env:"KAFKA_BROKER_ADDR"    flag:"broker-addr"          flagDesc:"Kafka broker address"`
	SchemaRegistryURL string   `env:"SCHEMA_REGISTRY_URL"  flag:"schema-registry-url"  flagDesc:"Schema registry URL"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:   ":8080",
		Database:   "payments",
		Collection: "checkouts",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
