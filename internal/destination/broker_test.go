//go:build unit
// +build unit

package destination

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/razorpay/pipeline-testkit/internal/merror"
	"github.com/razorpay/pipeline-testkit/pkg/messagebroker"
	"github.com/razorpay/pipeline-testkit/pkg/messagebroker/mocks"
	"github.com/stretchr/testify/assert"
)

func TestBrokerDestination_Deliver(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := mocks.NewMockProducer(ctrl)
	dest := NewBrokerDestination(messagebroker.Pulsar, "persistent://public/default/t1", producer)

	producer.EXPECT().SendMessage(gomock.Any(), messagebroker.SendMessageToTopicRequest{
		Topic:   "persistent://public/default/t1",
		Message: []byte(`{"data":"x"}`),
	}).Times(1).Return(&messagebroker.SendMessageToTopicResponse{MessageID: "id-1"}, nil)

	assert.Nil(t, dest.Deliver(context.Background(), []byte(`{"data":"x"}`)))
	assert.Equal(t, "pulsar topic persistent://public/default/t1", dest.String())
}

func TestBrokerDestination_DeliverFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := mocks.NewMockProducer(ctrl)
	dest := NewBrokerDestination(messagebroker.Pulsar, "t1", producer)

	producer.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Times(1).Return(nil, fmt.Errorf("timeout"))

	err := dest.Deliver(context.Background(), []byte(`{"data":"x"}`))
	assert.True(t, merror.Is(err, merror.Transport))
}

func TestBrokerDestination_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := mocks.NewMockProducer(ctrl)
	dest := NewBrokerDestination(messagebroker.Pulsar, "t1", producer)

	producer.EXPECT().Close(gomock.Any()).Times(1).Return(nil)
	assert.Nil(t, dest.Close(context.Background()))
}

func TestDialBroker_InvalidConfig(t *testing.T) {
	dest, err := DialBroker(context.Background(), messagebroker.Pulsar, &messagebroker.BrokerConfig{},
		&messagebroker.ProducerClientOptions{Topic: "t1"})
	assert.Nil(t, dest)
	assert.True(t, merror.Is(err, merror.Connection))
}
