package messagebroker

// BrokerConfig holds broker's configuration
type BrokerConfig struct {
	// A list of host/port pairs to use for establishing the initial connection to the broker cluster
	Brokers []string
	// Base url of the admin REST api, only used for pulsar
	AdminURL             string
	OperationTimeoutSec  int
	ConnectionTimeoutSec int
	Producer             *ProducerConfig
	Consumer             *ConsumerConfig
}

// ProducerConfig holds producer's configuration
type ProducerConfig struct {
	// FlushTimeoutMs bounds the wait for in-flight kafka deliveries on close
	FlushTimeoutMs int
}

// ConsumerConfig holds consumer's configuration
type ConsumerConfig struct {
	// PollTimeoutMs is the max time a single kafka poll blocks before the context is checked again
	PollTimeoutMs int
}

// ConsumerClientOptions holds client specific configuration for consumer
type ConsumerClientOptions struct {
	Topic string
	// Subscription name, used as the group id for kafka
	Subscription string
	// Name identifying this consumer instance
	ConsumerName string
}

// ProducerClientOptions holds client specific configuration for producer
type ProducerClientOptions struct {
	Topic      string
	Name       string
	TimeoutSec int
}

// AdminClientOptions holds client specific configuration for admin
type AdminClientOptions struct{}
