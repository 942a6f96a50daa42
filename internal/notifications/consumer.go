package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"festtix/pkg/logger"

	"github.com/IBM/sarama"
)

type ConsumerConfig struct {
	Brokers              []string
	GroupID              string
	Topic                string
	SessionTimeout       time.Duration
	Heartbeat            time.Duration
	MaxProcessingTime    time.Duration
	OffsetOldest         bool
	MaxRetries           int
	RetryBackoffDuration time.Duration
}

func DefaultConsumerConfig(brokers []string, groupID, topic string) *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:              brokers,
		GroupID:              groupID,
		Topic:                topic,
		SessionTimeout:       30 * time.Second,
		Heartbeat:            3 * time.Second,
		MaxProcessingTime:    5 * time.Minute,
		OffsetOldest:         true,
		MaxRetries:           3,
		RetryBackoffDuration: time.Second,
	}
}

// TicketEmailConsumer reads ticket email requests and mails them.
type TicketEmailConsumer struct {
	group   sarama.ConsumerGroup
	config  *ConsumerConfig
	handler *TicketEmailHandler
	wg      sync.WaitGroup
}

func NewTicketEmailConsumer(cfg *ConsumerConfig, renderer *TicketEmailRenderer, mailer Mailer) (*TicketEmailConsumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = cfg.SessionTimeout
	saramaConfig.Consumer.Group.Heartbeat.Interval = cfg.Heartbeat
	saramaConfig.Consumer.MaxProcessingTime = cfg.MaxProcessingTime
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second
	if cfg.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &TicketEmailConsumer{
		group:   group,
		config:  cfg,
		handler: NewTicketEmailHandler(renderer, mailer, cfg.MaxRetries, cfg.RetryBackoffDuration),
	}, nil
}

// Start runs numWorkers consume loops until ctx is cancelled.
func (c *TicketEmailConsumer) Start(ctx context.Context, numWorkers int) {
	log := logger.GetDefault()
	log.Info("Starting ticket email workers", "workers", numWorkers, "topic", c.config.Topic)

	go func() {
		for err := range c.group.Errors() {
			log.WithError(err).Warn("Consumer group error")
		}
	}()

	for i := 0; i < numWorkers; i++ {
		c.wg.Add(1)
		go func(workerID int) {
			defer c.wg.Done()
			c.runWorker(ctx, workerID)
		}(i)
	}
}

func (c *TicketEmailConsumer) runWorker(ctx context.Context, workerID int) {
	for {
		if err := c.group.Consume(ctx, []string{c.config.Topic}, c.handler); err != nil {
			logger.GetDefault().WithError(err).Warn("Ticket email worker consume failed", "worker", workerID)
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return
			}
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func (c *TicketEmailConsumer) Stop() error {
	err := c.group.Close()
	c.wg.Wait()
	if err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

// TicketEmailHandler is the sarama.ConsumerGroupHandler for ticket emails.
type TicketEmailHandler struct {
	renderer   *TicketEmailRenderer
	mailer     Mailer
	maxRetries int
	backoff    time.Duration
}

func NewTicketEmailHandler(renderer *TicketEmailRenderer, mailer Mailer, maxRetries int, backoff time.Duration) *TicketEmailHandler {
	return &TicketEmailHandler{renderer: renderer, mailer: mailer, maxRetries: maxRetries, backoff: backoff}
}

func (h *TicketEmailHandler) Setup(sarama.ConsumerGroupSession) error { return nil }

func (h *TicketEmailHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *TicketEmailHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.Process(session.Context(), message.Value); err != nil {
				logger.GetDefault().WithError(err).Error("Ticket email failed",
					"topic", message.Topic, "partition", message.Partition, "offset", message.Offset)
			}
			// malformed or undeliverable mails are not retried forever
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// Process decodes, renders and sends one message with retry.
func (h *TicketEmailHandler) Process(ctx context.Context, value []byte) error {
	var req TicketEmailRequest
	if err := json.Unmarshal(value, &req); err != nil {
		return fmt.Errorf("failed to unmarshal ticket email: %w", err)
	}
	if req.Email == "" || !req.Reason.IsValid() {
		return ErrInvalidTicketEmail
	}

	msg, err := h.renderer.Render(&req)
	if err != nil {
		return err
	}

	for attempt := 0; ; attempt++ {
		err = h.mailer.Send(ctx, msg)
		if err == nil {
			logger.GetDefault().InfoWithContext(ctx, "Ticket email sent", map[string]interface{}{
				"order_id": req.OrderID.String(),
				"reason":   string(req.Reason),
				"attempts": attempt + 1,
			})
			return nil
		}
		if attempt >= h.maxRetries {
			return fmt.Errorf("giving up after %d attempts: %w", attempt+1, err)
		}

		delay := h.backoff * time.Duration(1<<attempt)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
