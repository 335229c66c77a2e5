package producer

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	env               string
	messagesSent      *prometheus.CounterVec
	bytesSent         *prometheus.CounterVec
	sendErrors        *prometheus.CounterVec
	deliveryTimeTaken *prometheus.HistogramVec
)

func init() {
	env = os.Getenv("APP_ENV")

	messagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "testkit_producer_messages_sent_total",
		Help: "Total number of messages accepted by the destination.",
	}, []string{"env", "destination"})

	bytesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "testkit_producer_bytes_sent_total",
		Help: "Total bytes of serialized messages accepted by the destination.",
	}, []string{"env", "destination"})

	sendErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "testkit_producer_send_errors_total",
		Help: "Total number of failed sends.",
	}, []string{"env", "destination"})

	deliveryTimeTaken = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "testkit_producer_delivery_time_taken_sec",
		Help:    "Time taken for the destination to accept a message",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 20),
	}, []string{"env", "destination"})
}
