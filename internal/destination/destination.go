// Package destination abstracts where the producer delivers its messages.
package destination

import (
	"context"
)

// Destination is a target the producer delivers serialized messages to.
// Deliver returns only once the destination accepted the message.
type Destination interface {
	Deliver(ctx context.Context, body []byte) error
	Close(ctx context.Context) error
	String() string
}
