//go:build integration
// +build integration

package messagebroker

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// getPulsarBrokerConfig reads the broker under test from the environment
func getPulsarBrokerConfig(t *testing.T) *BrokerConfig {
	brokers := os.Getenv("TESTKIT_TEST_PULSAR_BROKERS")
	if brokers == "" {
		t.Skip("TESTKIT_TEST_PULSAR_BROKERS not set")
	}
	return &BrokerConfig{
		Brokers:              []string{brokers},
		AdminURL:             os.Getenv("TESTKIT_TEST_PULSAR_ADMIN_URL"),
		OperationTimeoutSec:  10,
		ConnectionTimeoutSec: 10,
	}
}

/*
Scenario being tested
1. Create a new topic through the admin client, when an admin url is set
2. Produce 5 messages to it
3. Subscribe with a shared subscription from the earliest position
4. Make sure the 5 messages are received back in order and ack them
*/
func Test_Pulsar_ProduceAndConsume(t *testing.T) {
	bConfig := getPulsarBrokerConfig(t)
	ctx := context.Background()
	topic := fmt.Sprintf("persistent://public/default/testkit-%v", uuid.New().String())

	if bConfig.AdminURL != "" {
		admin, err := NewAdminClient(ctx, Pulsar, bConfig, &AdminClientOptions{})
		assert.Nil(t, err)
		_, err = admin.CreateTopic(ctx, CreateTopicRequest{Name: topic})
		assert.Nil(t, err)
	}

	producer, err := NewProducerClient(ctx, Pulsar, bConfig, &ProducerClientOptions{
		Topic:      topic,
		Name:       "testkit-integration-producer",
		TimeoutSec: 10,
	})
	assert.Nil(t, err)
	defer producer.Close(ctx)

	msgsToSend := 5
	var msgIds []string
	for i := 0; i < msgsToSend; i++ {
		resp, err := producer.SendMessage(ctx, SendMessageToTopicRequest{
			Topic:   topic,
			Message: []byte(fmt.Sprintf(`{"data":"msg-%v"}`, i)),
		})
		assert.Nil(t, err)
		msgIds = append(msgIds, resp.MessageID)
	}

	consumer, err := NewConsumerClient(ctx, Pulsar, bConfig, &ConsumerClientOptions{
		Topic:        topic,
		Subscription: "testkit-integration-subscription",
		ConsumerName: "testkit-integration-consumer",
	})
	assert.Nil(t, err)
	defer consumer.Close(ctx)

	for i := 0; i < msgsToSend; i++ {
		rctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		msg, err := consumer.ReceiveMessage(rctx)
		cancel()
		assert.Nil(t, err)
		assert.Equal(t, msgIds[i], msg.MessageID)
		assert.Equal(t, fmt.Sprintf(`{"data":"msg-%v"}`, i), string(msg.Data))
		assert.Nil(t, consumer.Commit(ctx, msg))
	}
}
