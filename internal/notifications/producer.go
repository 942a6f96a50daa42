package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"festtix/pkg/logger"

	"github.com/IBM/sarama"
)

//go:generate go run github.com/golang/mock/mockgen -source=producer.go -destination=mocks/mock.go

var ErrInvalidTicketEmail = errors.New("ticket email request is incomplete")

// TicketEmailPublisher hands ticket emails to the mail worker.
type TicketEmailPublisher interface {
	PublishTicketEmail(ctx context.Context, req *TicketEmailRequest) error
	Close() error
	HealthCheck(ctx context.Context) error
}

// ProducerConfig contains configuration for the Kafka ticket email producer
type ProducerConfig struct {
	Brokers          []string
	Topic            string
	RetryMax         int
	Timeout          time.Duration
	RequiredAcks     sarama.RequiredAcks
	Compression      sarama.CompressionCodec
	IdempotentWrites bool
	MaxMessageBytes  int
}

// DefaultProducerConfig returns a default producer configuration
func DefaultProducerConfig(brokers []string, topic string) *ProducerConfig {
	return &ProducerConfig{
		Brokers:          brokers,
		Topic:            topic,
		RetryMax:         3,
		Timeout:          10 * time.Second,
		RequiredAcks:     sarama.WaitForAll,
		Compression:      sarama.CompressionSnappy,
		IdempotentWrites: true,
		MaxMessageBytes:  1000000,
	}
}

// SaramaConfig builds the producer settings.
func (c *ProducerConfig) SaramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()

	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = c.RequiredAcks
	cfg.Producer.Compression = c.Compression
	cfg.Producer.Retry.Max = c.RetryMax
	cfg.Producer.Timeout = c.Timeout
	cfg.Producer.Idempotent = c.IdempotentWrites
	cfg.Producer.MaxMessageBytes = c.MaxMessageBytes

	// idempotent producers require a single in-flight request
	if c.IdempotentWrites {
		cfg.Net.MaxOpenRequests = 1
	}

	// hash on order id so one order's mails stay ordered
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	return cfg
}

// KafkaPublisher publishes ticket emails on a sarama SyncProducer.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(config *ProducerConfig) (*KafkaPublisher, error) {
	producer, err := sarama.NewSyncProducer(config.Brokers, config.SaramaConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.GetDefault().Info("Kafka ticket email producer created", "brokers", config.Brokers, "topic", config.Topic)
	return NewKafkaPublisherWithProducer(producer, config.Topic), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) PublishTicketEmail(ctx context.Context, req *TicketEmailRequest) error {
	if req == nil || req.Email == "" || !req.Reason.IsValid() {
		return ErrInvalidTicketEmail
	}

	payload, err := req.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal ticket email: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(req.PartitionKey()),
		Value:     sarama.ByteEncoder(payload),
		Headers:   createHeaders(req),
		Timestamp: req.CreatedAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send ticket email to Kafka: %w", err)
	}

	logger.GetDefault().InfoWithContext(ctx, "Ticket email queued", map[string]interface{}{
		"order_id":  req.OrderID.String(),
		"reason":    string(req.Reason),
		"tickets":   len(req.Tickets),
		"partition": partition,
		"offset":    offset,
	})
	return nil
}

func createHeaders(req *TicketEmailRequest) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("message_id"), Value: []byte(req.ID.String())},
		{Key: []byte("order_id"), Value: []byte(req.OrderID.String())},
		{Key: []byte("reason"), Value: []byte(req.Reason)},
		{Key: []byte("producer"), Value: []byte("festtix-orders")},
		{Key: []byte("created_at"), Value: []byte(req.CreatedAt.Format(time.RFC3339))},
	}
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// HealthCheck only reports whether a producer is attached.
func (p *KafkaPublisher) HealthCheck(ctx context.Context) error {
	if p.producer == nil {
		return errors.New("kafka producer not initialized")
	}
	return nil
}

// NoopPublisher is used when Kafka is disabled. It only logs.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (NoopPublisher) PublishTicketEmail(ctx context.Context, req *TicketEmailRequest) error {
	if req == nil || req.Email == "" || !req.Reason.IsValid() {
		return ErrInvalidTicketEmail
	}
	logger.GetDefault().InfoWithContext(ctx, "Ticket email skipped, Kafka disabled", map[string]interface{}{
		"order_id": req.OrderID.String(),
		"reason":   string(req.Reason),
		"codes":    req.TicketCodes(),
	})
	return nil
}

func (NoopPublisher) Close() error { return nil }

func (NoopPublisher) HealthCheck(context.Context) error { return nil }
