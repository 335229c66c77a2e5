// Package cli parses the command line of the producer and consumer executables.
package cli

import (
	"github.com/razorpay/pipeline-testkit/internal/merror"
)

// Consumer flag defaults
const (
	DefaultConsumerTopic    = "persistent://public/default/pipeline-test"
	DefaultConsumerName     = "pulsar_consumer"
	DefaultSubscriptionName = "pulsar_subscription"
)

// ProducerArgs is the run configuration of the producer
type ProducerArgs struct {
	// Number of messages to publish
	Count uint
	// Size of each message in kilobytes
	SizeKB uint
	// Topic to publish to, exclusive with HTTPEndpoint
	Topic string
	// HTTPEndpoint to POST to, exclusive with Topic
	HTTPEndpoint string
	// AuthToken is sent as a bearer token in http mode
	AuthToken string
}

// IsHTTP reports whether messages go to the http endpoint
func (a ProducerArgs) IsHTTP() bool {
	return a.HTTPEndpoint != ""
}

// Validate checks exactly one destination is set
func (a ProducerArgs) Validate() error {
	switch {
	case a.Topic == "" && a.HTTPEndpoint == "":
		return merror.New(merror.InvalidArgument, "one of --topic or --http-endpoint is required")
	case a.Topic != "" && a.HTTPEndpoint != "":
		return merror.New(merror.InvalidArgument, "--topic and --http-endpoint are mutually exclusive")
	case a.AuthToken != "" && !a.IsHTTP():
		return merror.New(merror.InvalidArgument, "--auth-token is only valid with --http-endpoint")
	}
	return nil
}

// ConsumerArgs is the run configuration of the consumer
type ConsumerArgs struct {
	// Topic to consume messages from
	Topic string
	// ConsumerName identifies this consumer
	ConsumerName string
	// SubscriptionName is the shared subscription to join
	SubscriptionName string
}

// Validate checks all names are set
func (a ConsumerArgs) Validate() error {
	switch {
	case a.Topic == "":
		return merror.New(merror.InvalidArgument, "--topic must not be empty")
	case a.ConsumerName == "":
		return merror.New(merror.InvalidArgument, "--consumer-name must not be empty")
	case a.SubscriptionName == "":
		return merror.New(merror.InvalidArgument, "--subscription-name must not be empty")
	}
	return nil
}
