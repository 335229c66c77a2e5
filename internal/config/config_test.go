//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/razorpay/pipeline-testkit/pkg/messagebroker"
	"github.com/stretchr/testify/assert"
)

func TestBroker_BrokerConfig(t *testing.T) {
	b := Broker{
		Variant: messagebroker.Pulsar,
		Pulsar:  messagebroker.BrokerConfig{Brokers: []string{"localhost:6650"}},
		Kafka:   messagebroker.BrokerConfig{Brokers: []string{"localhost:9092"}},
	}
	assert.Equal(t, []string{"localhost:6650"}, b.BrokerConfig().Brokers)

	b.Variant = messagebroker.Kafka
	assert.Equal(t, []string{"localhost:9092"}, b.BrokerConfig().Brokers)
}
