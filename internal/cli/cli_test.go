//go:build unit
// +build unit

package cli

import (
	"context"
	"io/ioutil"
	"testing"

	"github.com/razorpay/pipeline-testkit/internal/merror"
	"github.com/stretchr/testify/assert"
)

func runProducer(t *testing.T, argv ...string) (ProducerArgs, bool, error) {
	var got ProducerArgs
	called := false
	cmd := NewProducerCommand(func(ctx context.Context, args ProducerArgs) error {
		got = args
		called = true
		return nil
	})
	cmd.SetArgs(argv)
	cmd.SetOut(ioutil.Discard)
	cmd.SetErr(ioutil.Discard)
	err := cmd.ExecuteContext(context.Background())
	return got, called, err
}

func TestProducerCommand_Defaults(t *testing.T) {
	args, called, err := runProducer(t, "--topic", "persistent://public/default/t1")
	assert.Nil(t, err)
	assert.True(t, called)
	assert.Equal(t, ProducerArgs{Count: 1, SizeKB: 1, Topic: "persistent://public/default/t1"}, args)
	assert.False(t, args.IsHTTP())
}

func TestProducerCommand_HTTP(t *testing.T) {
	args, called, err := runProducer(t, "--count", "3", "--size", "2",
		"--http-endpoint", "http://localhost:8080/ingest", "--auth-token", "secret")
	assert.Nil(t, err)
	assert.True(t, called)
	assert.Equal(t, uint(3), args.Count)
	assert.Equal(t, uint(2), args.SizeKB)
	assert.True(t, args.IsHTTP())
	assert.Equal(t, "secret", args.AuthToken)
}

func TestProducerCommand_Invalid(t *testing.T) {
	cases := [][]string{
		{},
		{"--topic", "t1", "--http-endpoint", "http://localhost"},
		{"--topic", "t1", "--auth-token", "secret"},
	}
	for _, argv := range cases {
		_, called, err := runProducer(t, argv...)
		assert.False(t, called, argv)
		assert.True(t, merror.Is(err, merror.InvalidArgument), argv)
	}
}

func TestProducerCommand_NegativeCount(t *testing.T) {
	_, called, err := runProducer(t, "--topic", "t1", "--count", "-1")
	assert.False(t, called)
	assert.True(t, merror.Is(err, merror.InvalidArgument))
}

func TestProducerCommand_PositionalArgs(t *testing.T) {
	_, called, err := runProducer(t, "--topic", "t1", "extra")
	assert.False(t, called)
	assert.True(t, merror.Is(err, merror.InvalidArgument))
}

func TestConsumerCommand_Defaults(t *testing.T) {
	var got ConsumerArgs
	cmd := NewConsumerCommand(func(ctx context.Context, args ConsumerArgs) error {
		got = args
		return nil
	})
	cmd.SetArgs([]string{})
	assert.Nil(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, ConsumerArgs{
		Topic:            DefaultConsumerTopic,
		ConsumerName:     DefaultConsumerName,
		SubscriptionName: DefaultSubscriptionName,
	}, got)
}

func TestConsumerCommand_Flags(t *testing.T) {
	var got ConsumerArgs
	cmd := NewConsumerCommand(func(ctx context.Context, args ConsumerArgs) error {
		got = args
		return nil
	})
	cmd.SetArgs([]string{"--topic", "t1", "--consumer-name", "c1", "--subscription-name", "s1"})
	assert.Nil(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, ConsumerArgs{Topic: "t1", ConsumerName: "c1", SubscriptionName: "s1"}, got)
}

func TestConsumerArgs_Validate(t *testing.T) {
	assert.Nil(t, ConsumerArgs{Topic: "t", ConsumerName: "c", SubscriptionName: "s"}.Validate())
	assert.NotNil(t, ConsumerArgs{ConsumerName: "c", SubscriptionName: "s"}.Validate())
	assert.NotNil(t, ConsumerArgs{Topic: "t", SubscriptionName: "s"}.Validate())
	assert.NotNil(t, ConsumerArgs{Topic: "t", ConsumerName: "c"}.Validate())
}
