package messagebroker

import (
	"context"
	"fmt"
)

const (
	// Pulsar variant
	Pulsar = "pulsar"
	// Kafka variant
	Kafka = "kafka"
)

// NewProducerClient returns a producer for the given broker variant
func NewProducerClient(ctx context.Context, variant string, bConfig *BrokerConfig, options *ProducerClientOptions) (Producer, error) {
	switch variant {
	case Pulsar:
		return newPulsarProducerClient(ctx, bConfig, options)
	case Kafka:
		return newKafkaProducerClient(ctx, bConfig, options)
	}

	return nil, fmt.Errorf("unknown broker variant, %v", variant)
}

// NewConsumerClient returns a consumer for the given broker variant
func NewConsumerClient(ctx context.Context, variant string, bConfig *BrokerConfig, options *ConsumerClientOptions) (Consumer, error) {
	switch variant {
	case Pulsar:
		return newPulsarConsumerClient(ctx, bConfig, options)
	case Kafka:
		return newKafkaConsumerClient(ctx, bConfig, options)
	}

	return nil, fmt.Errorf("unknown broker variant, %v", variant)
}

// NewAdminClient returns an admin client for the given broker variant
func NewAdminClient(ctx context.Context, variant string, bConfig *BrokerConfig, options *AdminClientOptions) (Admin, error) {
	switch variant {
	case Pulsar:
		return newPulsarAdminClient(ctx, bConfig, options)
	case Kafka:
		return newKafkaAdminClient(ctx, bConfig, options)
	}

	return nil, fmt.Errorf("unknown broker variant, %v", variant)
}
