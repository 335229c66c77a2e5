package messagebroker

import "context"

// Producer for produce operations
//
//go:generate go run -mod=mod github.com/golang/mock/mockgen -build_flags=-mod=mod -destination=mocks/mock_producer.go -package=mocks . Producer
type Producer interface {
	// SendMessage sends a message on the topic and waits for the broker receipt
	SendMessage(context.Context, SendMessageToTopicRequest) (*SendMessageToTopicResponse, error)

	// Close flushes pending sends and releases the connection
	Close(context.Context) error
}

// Consumer interface for consuming messages
//
//go:generate go run -mod=mod github.com/golang/mock/mockgen -build_flags=-mod=mod -destination=mocks/mock_consumer.go -package=mocks . Consumer
type Consumer interface {
	// ReceiveMessage blocks until a message is available, the context is done
	// or the consumer is closed. A closed consumer returns ErrStreamClosed.
	ReceiveMessage(context.Context) (*ReceivedMessage, error)

	// Commit acknowledges a message returned by ReceiveMessage
	Commit(context.Context, *ReceivedMessage) error

	// Close releases the subscription and the connection
	Close(context.Context) error
}

// Admin for admin operations on topics
//
//go:generate go run -mod=mod github.com/golang/mock/mockgen -build_flags=-mod=mod -destination=mocks/mock_admin.go -package=mocks . Admin
type Admin interface {
	// creates a new topic
	CreateTopic(context.Context, CreateTopicRequest) (CreateTopicResponse, error)
}
