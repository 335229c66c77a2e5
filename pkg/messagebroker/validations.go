package messagebroker

import (
	"fmt"
)

const maxTimeoutSec = 60

// validateKafkaConsumerClientConfig validates kafka consumer client config
func validateKafkaConsumerClientConfig(options *ConsumerClientOptions) error {
	if options == nil || options.Topic == "" {
		return fmt.Errorf("kafka: empty topic name")
	}

	if options.Subscription == "" {
		return fmt.Errorf("kafka: empty group_id name")
	}

	return nil
}

// validateKafkaConsumerBrokerConfig validates kafka consumer broker config
func validateKafkaConsumerBrokerConfig(config *BrokerConfig) error {
	if config == nil || len(config.Brokers) == 0 {
		return fmt.Errorf("kafka: empty brokers list")
	}

	if config.ConnectionTimeoutSec > maxTimeoutSec {
		return fmt.Errorf("kafka: connection timeout above the allowed value of 60secs")
	}

	if config.OperationTimeoutSec > maxTimeoutSec {
		return fmt.Errorf("kafka: operation timeout above the allowed value of 60secs")
	}

	return nil
}

// validateKafkaProducerClientConfig validates kafka producer client config
func validateKafkaProducerClientConfig(options *ProducerClientOptions) error {
	if options == nil || options.Topic == "" {
		return fmt.Errorf("kafka: empty topic name")
	}

	if options.TimeoutSec > maxTimeoutSec {
		return fmt.Errorf("kafka: operation timeout above the allowed value of 60secs")
	}

	return nil
}

// validateKafkaProducerBrokerConfig validates kafka producer broker config
func validateKafkaProducerBrokerConfig(config *BrokerConfig) error {
	if config == nil || len(config.Brokers) == 0 {
		return fmt.Errorf("kafka: empty brokers list")
	}

	return nil
}

// validateKafkaAdminBrokerConfig validates kafka admin broker config
func validateKafkaAdminBrokerConfig(config *BrokerConfig) error {
	if config == nil || len(config.Brokers) == 0 {
		return fmt.Errorf("kafka: empty brokers list")
	}

	return nil
}

// validatePulsarConsumerClientConfig validates pulsar consumer client config
func validatePulsarConsumerClientConfig(options *ConsumerClientOptions) error {
	if options == nil || options.Topic == "" {
		return fmt.Errorf("pulsar: empty topic name")
	}

	if options.Subscription == "" {
		return fmt.Errorf("pulsar: empty subscription name")
	}

	return nil
}

// validatePulsarConsumerBrokerConfig validates pulsar consumer broker config
func validatePulsarConsumerBrokerConfig(config *BrokerConfig) error {
	return validatePulsarBrokerConfig(config)
}

// validatePulsarProducerClientConfig validates pulsar producer client config
func validatePulsarProducerClientConfig(options *ProducerClientOptions) error {
	if options == nil || options.Topic == "" {
		return fmt.Errorf("pulsar: empty topic name")
	}

	if options.TimeoutSec > maxTimeoutSec {
		return fmt.Errorf("pulsar: send timeout above the allowed value of 60secs")
	}

	return nil
}

// validatePulsarProducerBrokerConfig validates pulsar producer broker config
func validatePulsarProducerBrokerConfig(config *BrokerConfig) error {
	return validatePulsarBrokerConfig(config)
}

// validatePulsarAdminBrokerConfig validates pulsar admin broker config
func validatePulsarAdminBrokerConfig(config *BrokerConfig) error {
	if config == nil || config.AdminURL == "" {
		return fmt.Errorf("pulsar: empty admin url")
	}

	return nil
}

func validatePulsarBrokerConfig(config *BrokerConfig) error {
	if config == nil || len(config.Brokers) == 0 {
		return fmt.Errorf("pulsar: empty brokers list")
	}

	if len(config.Brokers) > 1 {
		return fmt.Errorf("pulsar: should have only one broker during init")
	}

	if config.ConnectionTimeoutSec > maxTimeoutSec {
		return fmt.Errorf("pulsar: connection timeout above the allowed value of 60secs")
	}

	if config.OperationTimeoutSec > maxTimeoutSec {
		return fmt.Errorf("pulsar: operation timeout above the allowed value of 60secs")
	}

	return nil
}
