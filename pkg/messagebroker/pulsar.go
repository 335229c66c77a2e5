package messagebroker

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/opentracing/opentracing-go"
	"github.com/streamnative/pulsarctl/pkg/pulsar/common"
	"github.com/streamnative/pulsarctl/pkg/pulsar/utils"

	pulsarctl "github.com/streamnative/pulsarctl/pkg/pulsar"
)

// PulsarBroker for pulsar
type PulsarBroker struct {
	Ctx      context.Context
	Client   pulsar.Client
	Consumer pulsar.Consumer
	Producer pulsar.Producer
	Admin    pulsarctl.Client

	// holds the broker config
	Config *BrokerConfig

	// holds the client configs
	POptions *ProducerClientOptions
	COptions *ConsumerClientOptions
	AOptions *AdminClientOptions

	closed int32
}

func newPulsarClient(bConfig *BrokerConfig) (pulsar.Client, error) {
	return pulsar.NewClient(pulsar.ClientOptions{
		URL:               pulsarServiceURL(bConfig.Brokers[0]),
		OperationTimeout:  time.Duration(bConfig.OperationTimeoutSec) * time.Second,
		ConnectionTimeout: time.Duration(bConfig.ConnectionTimeoutSec) * time.Second,
	})
}

// newPulsarConsumerClient returns a pulsar consumer on a shared subscription starting at the earliest message
func newPulsarConsumerClient(ctx context.Context, bConfig *BrokerConfig, options *ConsumerClientOptions) (Consumer, error) {
	err := validatePulsarConsumerBrokerConfig(bConfig)
	if err != nil {
		return nil, err
	}

	err = validatePulsarConsumerClientConfig(options)
	if err != nil {
		return nil, err
	}

	client, err := newPulsarClient(bConfig)
	if err != nil {
		return nil, err
	}

	c, err := client.Subscribe(pulsar.ConsumerOptions{
		Topic:                       options.Topic,
		Name:                        options.ConsumerName,
		SubscriptionName:            options.Subscription,
		Type:                        pulsar.Shared,
		SubscriptionInitialPosition: pulsar.SubscriptionPositionEarliest,
		Schema:                      pulsar.NewStringSchema(nil),
	})
	if err != nil {
		client.Close()
		return nil, err
	}

	return &PulsarBroker{
		Ctx:      ctx,
		Client:   client,
		Config:   bConfig,
		Consumer: c,
		COptions: options,
	}, nil
}

// newPulsarProducerClient returns a pulsar producer declaring a string schema
func newPulsarProducerClient(ctx context.Context, bConfig *BrokerConfig, options *ProducerClientOptions) (Producer, error) {
	err := validatePulsarProducerBrokerConfig(bConfig)
	if err != nil {
		return nil, err
	}

	err = validatePulsarProducerClientConfig(options)
	if err != nil {
		return nil, err
	}

	client, err := newPulsarClient(bConfig)
	if err != nil {
		return nil, err
	}

	p, err := client.CreateProducer(pulsar.ProducerOptions{
		Topic:  options.Topic,
		Name:   options.Name,
		Schema: pulsar.NewStringSchema(nil),
	})
	if err != nil {
		client.Close()
		return nil, err
	}

	return &PulsarBroker{
		Ctx:      ctx,
		Client:   client,
		Config:   bConfig,
		Producer: p,
		POptions: options,
	}, nil
}

// newPulsarAdminClient returns a pulsar admin
func newPulsarAdminClient(ctx context.Context, bConfig *BrokerConfig, options *AdminClientOptions) (Admin, error) {
	err := validatePulsarAdminBrokerConfig(bConfig)
	if err != nil {
		return nil, err
	}

	admin, err := pulsarctl.New(&common.Config{
		WebServiceURL:              bConfig.AdminURL,
		TLSAllowInsecureConnection: true,
	})
	if err != nil {
		return nil, err
	}

	return &PulsarBroker{
		Ctx:      ctx,
		Config:   bConfig,
		AOptions: options,
		Admin:    admin,
	}, nil
}

// CreateTopic creates a new topic, fails if it already exists
func (p *PulsarBroker) CreateTopic(ctx context.Context, request CreateTopicRequest) (CreateTopicResponse, error) {
	messageBrokerOperationCount.WithLabelValues(env, Pulsar, "CreateTopic").Inc()

	pulsarTopic, terr := utils.GetTopicName(request.Name)
	if terr != nil {
		return CreateTopicResponse{}, terr
	}

	err := p.Admin.Topics().Create(*pulsarTopic, request.NumPartitions)
	if err != nil {
		messageBrokerOperationError.WithLabelValues(env, Pulsar, "CreateTopic").Inc()
		return CreateTopicResponse{}, err
	}

	return CreateTopicResponse{}, nil
}

// SendMessage sends a message on the topic and blocks until the broker acknowledges it
func (p *PulsarBroker) SendMessage(ctx context.Context, request SendMessageToTopicRequest) (*SendMessageToTopicResponse, error) {
	messageBrokerOperationCount.WithLabelValues(env, Pulsar, "SendMessage").Inc()

	span, ctx := opentracing.StartSpanFromContext(ctx, "PulsarBroker.SendMessage")
	defer span.Finish()

	startTime := time.Now()
	defer func() {
		messageBrokerOperationTimeTaken.WithLabelValues(env, Pulsar, "SendMessage").Observe(time.Now().Sub(startTime).Seconds())
	}()

	timeout := request.TimeoutSec
	if timeout == 0 {
		timeout = p.POptions.TimeoutSec
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	// the string schema encodes Value, the payload is json text
	msgID, err := p.Producer.Send(ctx, &pulsar.ProducerMessage{
		Value:      string(request.Message),
		Key:        request.OrderingKey,
		Properties: injectSpanContext(ctx, request.Attributes),
	})
	if err != nil {
		messageBrokerOperationError.WithLabelValues(env, Pulsar, "SendMessage").Inc()
		return nil, err
	}

	return &SendMessageToTopicResponse{
		MessageID: fmt.Sprintf("%x", msgID.Serialize()),
	}, nil
}

// ReceiveMessage blocks until the next message of the subscription is available
func (p *PulsarBroker) ReceiveMessage(ctx context.Context) (*ReceivedMessage, error) {
	messageBrokerOperationCount.WithLabelValues(env, Pulsar, "ReceiveMessage").Inc()

	msg, err := p.Consumer.Receive(ctx)
	if err != nil {
		if atomic.LoadInt32(&p.closed) == 1 {
			return nil, ErrStreamClosed
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		messageBrokerOperationError.WithLabelValues(env, Pulsar, "ReceiveMessage").Inc()
		return nil, err
	}

	return &ReceivedMessage{
		Data:        msg.Payload(),
		MessageID:   fmt.Sprintf("%x", msg.ID().Serialize()),
		Topic:       msg.Topic(),
		PublishTime: msg.PublishTime(),
		Attributes:  msg.Properties(),
		raw:         msg,
	}, nil
}

// Commit acks a message received on this consumer
func (p *PulsarBroker) Commit(ctx context.Context, msg *ReceivedMessage) error {
	messageBrokerOperationCount.WithLabelValues(env, Pulsar, "Commit").Inc()

	pm, ok := msg.raw.(pulsar.Message)
	if !ok {
		messageBrokerOperationError.WithLabelValues(env, Pulsar, "Commit").Inc()
		return fmt.Errorf("pulsar: message %v was not received by this consumer", msg.MessageID)
	}
	p.Consumer.Ack(pm)

	return nil
}

// Close closes whichever of the producer and consumer is open along with the client
func (p *PulsarBroker) Close(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&p.closed, 0, 1) {
		return nil
	}

	if p.Producer != nil {
		p.Producer.Close()
	}
	if p.Consumer != nil {
		p.Consumer.Close()
	}
	if p.Client != nil {
		p.Client.Close()
	}
	return nil
}
