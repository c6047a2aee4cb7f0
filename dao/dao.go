package dao

import (
	"github.com/trailnest/payments-api/config"
	"github.com/trailnest/payments-api/models"
)

// DAO is an interface for the store collaborator that keeps checkout
// completion records. The webhook dispatcher must be able to process the
// same event more than once, so UpsertCheckoutRecord is required to be
// idempotent on the session id.
type DAO interface {
	// UpsertCheckoutRecord writes the record if no record exists for its
	// session id, and reports whether this call created it. An existing
	// record is left untouched.
	UpsertCheckoutRecord(record *models.CheckoutRecordDB) (bool, error)

	// GetCheckoutRecord returns the record for a session id, or nil if none
	// exists.
	GetCheckoutRecord(sessionID string) (*models.CheckoutRecordDB, error)
}

// NewDAOService returns the Mongo-backed DAO described by the service
// configuration. The underlying client connects lazily on first use.
func NewDAOService(cfg *config.Config) DAO {
	return &MongoService{
		URL:            cfg.MongoDBURL,
		DatabaseName:   cfg.Database,
		CollectionName: cfg.Collection,
	}
}
