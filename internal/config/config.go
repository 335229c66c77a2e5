package config

import (
	"github.com/razorpay/pipeline-testkit/pkg/httpclient"
	"github.com/razorpay/pipeline-testkit/pkg/messagebroker"
	"github.com/razorpay/pipeline-testkit/pkg/monitoring/sentry"
	"github.com/razorpay/pipeline-testkit/pkg/tracing"
)

// Config is application config
type Config struct {
	App        App
	Sentry     *sentry.Config
	Tracing    tracing.Config
	Metrics    Metrics
	Broker     Broker
	HTTPClient *httpclient.Config
	Producer   Producer
	Consumer   Consumer
}

// App contains application-specific config values
type App struct {
	Env           string
	ServiceName   string
	LogLevel      string
	GitCommitHash string
}

// Metrics holds the address of the prometheus endpoint, disabled when empty
type Metrics struct {
	Address            string
	ShutdownTimeoutSec int
}

// Broker selects the broker variant and holds the per variant connection configs
type Broker struct {
	Variant string // kafka or pulsar
	Pulsar  messagebroker.BrokerConfig
	Kafka   messagebroker.BrokerConfig
}

// Producer holds broker mode producer settings
type Producer struct {
	Name            string
	SendTimeoutSec  int
	CreateTopic     bool
	TopicPartitions int
}

// Consumer holds consumer settings
type Consumer struct {
	// CloseTimeoutSec bounds the time spent closing the subscription on exit
	CloseTimeoutSec int
}

// BrokerConfig returns the connection config of the selected variant
func (b Broker) BrokerConfig() *messagebroker.BrokerConfig {
	if b.Variant == messagebroker.Kafka {
		return &b.Kafka
	}
	return &b.Pulsar
}
