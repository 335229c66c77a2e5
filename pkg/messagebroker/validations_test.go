//go:build unit
// +build unit

package messagebroker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_validateKafkaConsumerClientConfig(t *testing.T) {
	op1 := ConsumerClientOptions{
		Topic:        "t1",
		Subscription: "g1",
	}

	assert.Nil(t, validateKafkaConsumerClientConfig(&op1))

	ops := []ConsumerClientOptions{
		{
			Topic:        "t1",
			Subscription: "",
		}, {
			Topic:        "",
			Subscription: "g3",
		},
	}

	for _, op := range ops {
		assert.NotNil(t, validateKafkaConsumerClientConfig(&op))
	}
	assert.NotNil(t, validateKafkaConsumerClientConfig(nil))
}

func Test_validateKafkaConsumerBrokerConfig(t *testing.T) {
	bc1 := BrokerConfig{
		Brokers:              []string{"kakfa-broker-1:9092"},
		OperationTimeoutSec:  5,
		ConnectionTimeoutSec: 10,
	}

	assert.Nil(t, validateKafkaConsumerBrokerConfig(&bc1))

	bcs := []BrokerConfig{
		{
			Brokers:              nil,
			OperationTimeoutSec:  3,
			ConnectionTimeoutSec: 5,
		}, {
			Brokers:              []string{"kakfa-broker-1:9092"},
			OperationTimeoutSec:  99999999,
			ConnectionTimeoutSec: 10,
		},
		{
			Brokers:              []string{"kakfa-broker-1:9092"},
			OperationTimeoutSec:  2,
			ConnectionTimeoutSec: 99999999,
		},
	}

	for _, bc := range bcs {
		assert.NotNil(t, validateKafkaConsumerBrokerConfig(&bc))
	}
}

func Test_validateKafkaProducerClientConfig(t *testing.T) {
	op1 := ProducerClientOptions{
		Topic:      "t1",
		TimeoutSec: 10,
	}

	assert.Nil(t, validateKafkaProducerClientConfig(&op1))

	ops := []ProducerClientOptions{
		{
			Topic:      "",
			TimeoutSec: 10,
		},
		{
			Topic:      "t3",
			TimeoutSec: 300,
		},
	}

	for _, op := range ops {
		assert.NotNil(t, validateKafkaProducerClientConfig(&op))
	}
}

func Test_validateKafkaProducerBrokerConfig(t *testing.T) {
	assert.Nil(t, validateKafkaProducerBrokerConfig(&BrokerConfig{Brokers: []string{"kakfa-broker-1:9092"}}))
	assert.NotNil(t, validateKafkaProducerBrokerConfig(&BrokerConfig{Brokers: nil}))
	assert.NotNil(t, validateKafkaProducerBrokerConfig(nil))
}

func Test_validateKafkaAdminBrokerConfig(t *testing.T) {
	assert.Nil(t, validateKafkaAdminBrokerConfig(&BrokerConfig{Brokers: []string{"kakfa-broker-1:9092"}}))
	assert.NotNil(t, validateKafkaAdminBrokerConfig(&BrokerConfig{Brokers: nil}))
}

func Test_validatePulsarClientConfigs(t *testing.T) {
	assert.Nil(t, validatePulsarProducerClientConfig(&ProducerClientOptions{Topic: "t1"}))
	assert.Nil(t, validatePulsarConsumerClientConfig(&ConsumerClientOptions{Topic: "t1", Subscription: "s1"}))

	assert.NotNil(t, validatePulsarProducerClientConfig(&ProducerClientOptions{}))
	assert.NotNil(t, validatePulsarProducerClientConfig(&ProducerClientOptions{Topic: "t1", TimeoutSec: 61}))
	assert.NotNil(t, validatePulsarConsumerClientConfig(&ConsumerClientOptions{Topic: "t1"}))
	assert.NotNil(t, validatePulsarConsumerClientConfig(&ConsumerClientOptions{Subscription: "s1"}))
}

func Test_validatePulsarBrokerConfig(t *testing.T) {
	bc1 := BrokerConfig{
		Brokers:  []string{"pulsar:6650"},
		AdminURL: "http://pulsar:8080",
	}

	assert.Nil(t, validatePulsarProducerBrokerConfig(&bc1))
	assert.Nil(t, validatePulsarConsumerBrokerConfig(&bc1))
	assert.Nil(t, validatePulsarAdminBrokerConfig(&bc1))

	bcs := []BrokerConfig{
		{
			Brokers: nil,
		}, {
			Brokers: []string{"pulsar-1:6650", "pulsar-2:6650"},
		}, {
			Brokers:             []string{"pulsar-1:6650"},
			OperationTimeoutSec: 120,
		},
	}

	for _, bc := range bcs {
		assert.NotNil(t, validatePulsarProducerBrokerConfig(&bc))
		assert.NotNil(t, validatePulsarConsumerBrokerConfig(&bc))
	}

	assert.NotNil(t, validatePulsarAdminBrokerConfig(&BrokerConfig{Brokers: []string{"pulsar:6650"}}))
}
