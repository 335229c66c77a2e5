package messagebroker

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	kafkapkg "github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/xid"
)

const (
	messageIDHeader = "messageID"

	defaultFlushTimeoutMs = 5000
	defaultPollTimeoutMs  = 1000
)

// KafkaBroker for kafka
type KafkaBroker struct {
	Producer *kafkapkg.Producer
	Consumer *kafkapkg.Consumer
	Admin    *kafkapkg.AdminClient
	Ctx      context.Context

	// holds the broker config
	Config *BrokerConfig

	// holds the client configs
	POptions *ProducerClientOptions
	COptions *ConsumerClientOptions
	AOptions *AdminClientOptions

	closed int32
}

// newKafkaConsumerClient returns a kafka consumer. The subscription maps onto the consumer group,
// so consumers sharing a subscription name compete for partitions.
func newKafkaConsumerClient(ctx context.Context, bConfig *BrokerConfig, options *ConsumerClientOptions) (Consumer, error) {
	err := validateKafkaConsumerBrokerConfig(bConfig)
	if err != nil {
		return nil, err
	}

	err = validateKafkaConsumerClientConfig(options)
	if err != nil {
		return nil, err
	}

	configMap := &kafkapkg.ConfigMap{
		"bootstrap.servers":  strings.Join(bConfig.Brokers, ","),
		"group.id":           options.Subscription,
		"client.id":          options.ConsumerName,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": false,
	}

	c, err := kafkapkg.NewConsumer(configMap)
	if err != nil {
		return nil, err
	}

	if err = c.SubscribeTopics([]string{normalizeTopicName(options.Topic)}, nil); err != nil {
		c.Close()
		return nil, err
	}

	return &KafkaBroker{
		Ctx:      ctx,
		Consumer: c,
		Config:   bConfig,
		COptions: options,
	}, nil
}

// newKafkaProducerClient returns a kafka producer
func newKafkaProducerClient(ctx context.Context, bConfig *BrokerConfig, options *ProducerClientOptions) (Producer, error) {
	err := validateKafkaProducerBrokerConfig(bConfig)
	if err != nil {
		return nil, err
	}

	err = validateKafkaProducerClientConfig(options)
	if err != nil {
		return nil, err
	}

	configMap := &kafkapkg.ConfigMap{
		"bootstrap.servers": strings.Join(bConfig.Brokers, ","),
		"client.id":         options.Name,
	}

	p, err := kafkapkg.NewProducer(configMap)
	if err != nil {
		return nil, err
	}

	return &KafkaBroker{
		Ctx:      ctx,
		Producer: p,
		Config:   bConfig,
		POptions: options,
	}, nil
}

// newKafkaAdminClient returns a kafka admin
func newKafkaAdminClient(ctx context.Context, bConfig *BrokerConfig, options *AdminClientOptions) (Admin, error) {
	err := validateKafkaAdminBrokerConfig(bConfig)
	if err != nil {
		return nil, err
	}

	admin, err := kafkapkg.NewAdminClient(&kafkapkg.ConfigMap{
		"bootstrap.servers": strings.Join(bConfig.Brokers, ","),
	})
	if err != nil {
		return nil, err
	}

	return &KafkaBroker{
		Ctx:      ctx,
		Admin:    admin,
		Config:   bConfig,
		AOptions: options,
	}, nil
}

// CreateTopic creates a new topic, fails if it already exists
func (k *KafkaBroker) CreateTopic(ctx context.Context, request CreateTopicRequest) (CreateTopicResponse, error) {
	messageBrokerOperationCount.WithLabelValues(env, Kafka, "CreateTopic").Inc()

	numPartitions := request.NumPartitions
	if numPartitions <= 0 {
		numPartitions = 1
	}

	results, err := k.Admin.CreateTopics(ctx, []kafkapkg.TopicSpecification{{
		Topic:             normalizeTopicName(request.Name),
		NumPartitions:     numPartitions,
		ReplicationFactor: 1,
	}})
	if err != nil {
		messageBrokerOperationError.WithLabelValues(env, Kafka, "CreateTopic").Inc()
		return CreateTopicResponse{}, err
	}

	for _, result := range results {
		if result.Error.Code() != kafkapkg.ErrNoError {
			messageBrokerOperationError.WithLabelValues(env, Kafka, "CreateTopic").Inc()
			return CreateTopicResponse{}, result.Error
		}
	}

	return CreateTopicResponse{Response: results}, nil
}

// SendMessage sends a message on the topic and blocks until the delivery report arrives
func (k *KafkaBroker) SendMessage(ctx context.Context, request SendMessageToTopicRequest) (*SendMessageToTopicResponse, error) {
	messageBrokerOperationCount.WithLabelValues(env, Kafka, "SendMessage").Inc()

	span, ctx := opentracing.StartSpanFromContext(ctx, "KafkaBroker.SendMessage")
	defer span.Finish()

	startTime := time.Now()
	defer func() {
		messageBrokerOperationTimeTaken.WithLabelValues(env, Kafka, "SendMessage").Observe(time.Now().Sub(startTime).Seconds())
	}()

	var kHeaders []kafkapkg.Header
	for key, v := range injectSpanContext(ctx, request.Attributes) {
		kHeaders = append(kHeaders, kafkapkg.Header{
			Key:   key,
			Value: []byte(v),
		})
	}

	// generate a message id and attach
	msgID := xid.New().String()
	kHeaders = append(kHeaders, kafkapkg.Header{
		Key:   messageIDHeader,
		Value: []byte(msgID),
	})

	// buffered so a late delivery report never blocks librdkafka
	deliveryChan := make(chan kafkapkg.Event, 1)

	tp := normalizeTopicName(request.Topic)
	if tp == "" {
		tp = normalizeTopicName(k.POptions.Topic)
	}
	err := k.Producer.Produce(&kafkapkg.Message{
		TopicPartition: kafkapkg.TopicPartition{Topic: &tp, Partition: kafkapkg.PartitionAny},
		Value:          request.Message,
		Key:            []byte(request.OrderingKey),
		Headers:        kHeaders,
	}, deliveryChan)
	if err != nil {
		messageBrokerOperationError.WithLabelValues(env, Kafka, "SendMessage").Inc()
		return nil, err
	}

	timeout := request.TimeoutSec
	if timeout == 0 {
		timeout = k.POptions.TimeoutSec
	}
	var timeoutC <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(time.Duration(timeout) * time.Second)
		defer timer.Stop()
		timeoutC = timer.C
	}

	var m *kafkapkg.Message
	select {
	case event := <-deliveryChan:
		m, _ = event.(*kafkapkg.Message)
	case <-timeoutC:
		messageBrokerOperationError.WithLabelValues(env, Kafka, "SendMessage").Inc()
		return nil, fmt.Errorf("failed to produce message to topic [%v] due to timeout [%v]", tp, timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if m == nil {
		messageBrokerOperationError.WithLabelValues(env, Kafka, "SendMessage").Inc()
		return nil, fmt.Errorf("unexpected delivery event for topic [%v]", tp)
	}
	if m.TopicPartition.Error != nil {
		messageBrokerOperationError.WithLabelValues(env, Kafka, "SendMessage").Inc()
		return nil, m.TopicPartition.Error
	}

	return &SendMessageToTopicResponse{MessageID: msgID}, nil
}

// ReceiveMessage polls until a message arrives or ctx is done
func (k *KafkaBroker) ReceiveMessage(ctx context.Context) (*ReceivedMessage, error) {
	messageBrokerOperationCount.WithLabelValues(env, Kafka, "ReceiveMessage").Inc()

	pollTimeout := defaultPollTimeoutMs
	if k.Config.Consumer != nil && k.Config.Consumer.PollTimeoutMs > 0 {
		pollTimeout = k.Config.Consumer.PollTimeoutMs
	}

	for {
		if atomic.LoadInt32(&k.closed) == 1 {
			return nil, ErrStreamClosed
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		msg, err := k.Consumer.ReadMessage(time.Duration(pollTimeout) * time.Millisecond)
		if err != nil {
			if kerr, ok := err.(kafkapkg.Error); ok && kerr.Code() == kafkapkg.ErrTimedOut {
				continue
			}
			messageBrokerOperationError.WithLabelValues(env, Kafka, "ReceiveMessage").Inc()
			return nil, err
		}

		rm := &ReceivedMessage{
			Data:        msg.Value,
			Topic:       *msg.TopicPartition.Topic,
			PublishTime: msg.Timestamp,
			Attributes:  make(map[string]string, len(msg.Headers)),
			raw:         msg,
		}
		for _, h := range msg.Headers {
			if h.Key == messageIDHeader {
				rm.MessageID = string(h.Value)
				continue
			}
			rm.Attributes[h.Key] = string(h.Value)
		}
		if rm.MessageID == "" {
			rm.MessageID = fmt.Sprintf("%v-%v", msg.TopicPartition.Partition, msg.TopicPartition.Offset)
		}

		return rm, nil
	}
}

// Commit commits the offset of a message received on this consumer
func (k *KafkaBroker) Commit(ctx context.Context, msg *ReceivedMessage) error {
	messageBrokerOperationCount.WithLabelValues(env, Kafka, "Commit").Inc()

	km, ok := msg.raw.(*kafkapkg.Message)
	if !ok {
		messageBrokerOperationError.WithLabelValues(env, Kafka, "Commit").Inc()
		return fmt.Errorf("kafka: message %v was not received by this consumer", msg.MessageID)
	}

	if _, err := k.Consumer.CommitMessage(km); err != nil {
		messageBrokerOperationError.WithLabelValues(env, Kafka, "Commit").Inc()
		return err
	}
	return nil
}

// Close flushes the producer and closes whichever clients are open
func (k *KafkaBroker) Close(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&k.closed, 0, 1) {
		return nil
	}

	if k.Producer != nil {
		flushTimeout := defaultFlushTimeoutMs
		if k.Config.Producer != nil && k.Config.Producer.FlushTimeoutMs > 0 {
			flushTimeout = k.Config.Producer.FlushTimeoutMs
		}
		k.Producer.Flush(flushTimeout)
		k.Producer.Close()
	}
	if k.Admin != nil {
		k.Admin.Close()
	}
	if k.Consumer != nil {
		return k.Consumer.Close()
	}
	return nil
}
