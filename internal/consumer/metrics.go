package consumer

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	env                 string
	messagesReceived    *prometheus.CounterVec
	messagesAcked       *prometheus.CounterVec
	deserializeFailures *prometheus.CounterVec
)

func init() {
	env = os.Getenv("APP_ENV")

	messagesReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "testkit_consumer_messages_received_total",
		Help: "Total number of messages received from the subscription.",
	}, []string{"env", "topic"})

	messagesAcked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "testkit_consumer_messages_acked_total",
		Help: "Total number of messages acknowledged.",
	}, []string{"env", "topic"})

	deserializeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "testkit_consumer_deserialize_failures_total",
		Help: "Total number of messages that were not valid test messages.",
	}, []string{"env", "topic"})
}
