// Package payload builds the synthetic messages exchanged by the producer and the consumer.
package payload

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/razorpay/pipeline-testkit/internal/merror"
)

const baseTemplate = "This is a test message %d "

// TestMessage is the body of every message, serialized as {"data": "..."}
type TestMessage struct {
	Data string `json:"data"`
}

// Generate repeats the base template for index as many whole times as fit in sizeKB kilobytes.
// Sizes smaller than a single template yield an empty string.
func Generate(index, sizeKB uint) string {
	base := fmt.Sprintf(baseTemplate, index)
	target := sizeKB * 1024
	return strings.Repeat(base, int(target/uint(len(base))))
}

// New returns the message sent at iteration index
func New(index, sizeKB uint) TestMessage {
	return TestMessage{Data: Generate(index, sizeKB)}
}

// Encode serializes m as json
func Encode(m TestMessage) ([]byte, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, merror.Wrap(merror.Serialization, err, "could not serialize message")
	}
	return b, nil
}

// Decode parses a json body into a TestMessage. The body must be an object
// holding a string "data" field.
func Decode(body []byte) (TestMessage, error) {
	var raw struct {
		Data *string `json:"data"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return TestMessage{}, merror.Wrap(merror.Serialization, err, "could not deserialize message")
	}
	if raw.Data == nil {
		return TestMessage{}, merror.New(merror.Serialization, "could not deserialize message: missing field `data`")
	}
	return TestMessage{Data: *raw.Data}, nil
}
