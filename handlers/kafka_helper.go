package handlers

import (
	"fmt"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"

	"github.com/trailnest/payments-api/config"
)

// ProducerTopic is the topic to which the payment processed kafka message is sent
const ProducerTopic = "payment-processed"

// ProducerSchemaName is the schema which will be used to send the payment processed kafka message with
const ProducerSchemaName = "payment-processed"

// paymentProcessed represents the avro schema held in the schema registry
type paymentProcessed struct {
	CheckoutSessionID string `avro:"checkout_session_id,omitempty"`
	PaymentIntentID   string `avro:"payment_intent_id"`
	RefundID          string `avro:"refund_id,omitempty"`
}

func producePaymentMessage(sessionID string, paymentIntentID string) error {
	return produceKafkaMessage(sessionID, paymentIntentID, "")
}

func produceRefundMessage(paymentIntentID string, refundID string) error {
	return produceKafkaMessage("", paymentIntentID, refundID)
}

// produceKafkaMessage handles creating a producer, marshalling the payment
// identifiers into the correct avro schema and sending the message to the
// topic defined in ProducerTopic
func produceKafkaMessage(sessionID string, paymentIntentID string, refundID string) error {
	cfg, err := config.Get()
	if err != nil {
		err = fmt.Errorf("error getting config for kafka message production: [%v]", err)
		return err
	}

	// Get a producer
	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		err = fmt.Errorf("error creating kafka producer: [%v]", err)
		return err
	}
	paymentProcessedSchema, err := schema.Get(cfg.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		err = fmt.Errorf("error getting schema from schema registry: [%v]", err)
		return err
	}
	producerSchema := &avro.Schema{
		Definition: paymentProcessedSchema,
	}

	// Prepare a message with the avro schema
	message, err := prepareKafkaMessage(sessionID, paymentIntentID, refundID, *producerSchema)
	if err != nil {
		err = fmt.Errorf("error preparing kafka message with schema: [%v]", err)
		return err
	}

	// Send the message
	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		err = fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
		return err
	}
	return nil
}

// prepareKafkaMessage is pulled out of produceKafkaMessage() to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(sessionID string, paymentIntentID string, refundID string, paymentProcessedSchema avro.Schema) (*producer.Message, error) {
	paymentProcessedMessage := paymentProcessed{
		CheckoutSessionID: sessionID,
		PaymentIntentID:   paymentIntentID,
		RefundID:          refundID,
	}

	messageBytes, err := paymentProcessedSchema.Marshal(paymentProcessedMessage)
	if err != nil {
		err = fmt.Errorf("error marshalling payment processed message: [%v]", err)
		return nil, err
	}

	producerMessage := &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}
	return producerMessage, nil
}
