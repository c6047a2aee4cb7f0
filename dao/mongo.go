package dao

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trailnest/payments-api/models"
)

var client *mongo.Client
var clientMtx sync.Mutex

// getMongoClient returns the shared MongoDB client, dialling on first use
func getMongoClient(mongoDBURL string) (*mongo.Client, error) {
	clientMtx.Lock()
	defer clientMtx.Unlock()

	if client != nil {
		return client, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoDBURL))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: %s", err)
	}

	client = c
	return client, nil
}

// MongoService is a MongoDB-backed implementation of the DAO
type MongoService struct {
	URL            string
	DatabaseName   string
	CollectionName string
}

func (m *MongoService) collection() (*mongo.Collection, error) {
	c, err := getMongoClient(m.URL)
	if err != nil {
		return nil, err
	}
	return c.Database(m.DatabaseName).Collection(m.CollectionName), nil
}

// UpsertCheckoutRecord writes a checkout record keyed on its session id. The
// $setOnInsert update means a record that already exists is never modified,
// which is what makes redelivered webhook events collapse onto the first
// write. Returns true when this call inserted the record.
func (m *MongoService) UpsertCheckoutRecord(record *models.CheckoutRecordDB) (bool, error) {
	collection, err := m.collection()
	if err != nil {
		return false, err
	}

	filter := bson.M{"_id": record.SessionID}
	update := bson.M{"$setOnInsert": record}

	result, err := collection.UpdateOne(context.Background(), filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("error upserting checkout record: %s", err)
	}

	return result.UpsertedCount > 0, nil
}

// GetCheckoutRecord gets a checkout record from the DB
// If the record is not found, return nil
func (m *MongoService) GetCheckoutRecord(sessionID string) (*models.CheckoutRecordDB, error) {
	collection, err := m.collection()
	if err != nil {
		return nil, err
	}

	var record models.CheckoutRecordDB
	err = collection.FindOne(context.Background(), bson.M{"_id": sessionID}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting checkout record: %s", err)
	}

	return &record, nil
}
