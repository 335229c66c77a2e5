package messagebroker

import (
	"errors"
	"time"
)

// ErrStreamClosed is returned by ReceiveMessage once the consumer has been closed
var ErrStreamClosed = errors.New("messagebroker: stream closed")

// CreateTopicRequest ...
type CreateTopicRequest struct {
	Name          string
	NumPartitions int
}

// CreateTopicResponse ...
type CreateTopicResponse struct {
	Response interface{}
}

// SendMessageToTopicRequest ...
type SendMessageToTopicRequest struct {
	Topic       string
	Message     []byte
	OrderingKey string
	TimeoutSec  int
	Attributes  map[string]string
}

// SendMessageToTopicResponse ...
type SendMessageToTopicResponse struct {
	MessageID string
}

// ReceivedMessage ...
type ReceivedMessage struct {
	Data        []byte
	MessageID   string
	Topic       string
	PublishTime time.Time
	Attributes  map[string]string

	// broker specific handle needed for the ack
	raw interface{}
}

// LogFields ...
func (rm ReceivedMessage) LogFields() []interface{} {
	return []interface{}{
		"messageID", rm.MessageID,
		"topic", rm.Topic,
		"publishTime", rm.PublishTime.Unix(),
		"size", len(rm.Data),
	}
}
