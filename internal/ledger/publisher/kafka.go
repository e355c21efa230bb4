package publisher

import (
	"context"
	"errors"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	dErrors "tradedesk/pkg/domain-errors"
)

// KafkaProducer produces ledger records to one topic.
type KafkaProducer struct {
	client *kgo.Client
	topic  string
}

// NewKafkaProducer connects to brokers. Extra client options are appended to
// the defaults.
func NewKafkaProducer(brokers []string, topic string, opts ...kgo.Opt) (*KafkaProducer, error) {
	if len(brokers) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "at least one broker is required")
	}
	if topic == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "ledger topic is required")
	}
	client, err := kgo.NewClient(append([]kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ClientID("tradedesk-ledger"),
	}, opts...)...)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "create kafka client")
	}
	return &KafkaProducer{client: client, topic: topic}, nil
}

// Produce writes records synchronously and returns the first failure.
func (k *KafkaProducer) Produce(ctx context.Context, records ...*kgo.Record) error {
	return k.client.ProduceSync(ctx, records...).FirstErr()
}

// EnsureTopic creates the ledger topic if it does not exist yet.
func (k *KafkaProducer) EnsureTopic(ctx context.Context, partitions int32, replicationFactor int16) error {
	resp, err := kadm.NewClient(k.client).CreateTopic(ctx, partitions, replicationFactor, nil, k.topic)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "create ledger topic")
	}
	if resp.Err != nil && !errors.Is(resp.Err, kerr.TopicAlreadyExists) {
		return dErrors.Wrap(resp.Err, dErrors.CodeInternal, "create ledger topic")
	}
	return nil
}

// Ping checks that at least one broker is reachable.
func (k *KafkaProducer) Ping(ctx context.Context) error {
	return k.client.Ping(ctx)
}

func (k *KafkaProducer) Close() {
	k.client.Close()
}
