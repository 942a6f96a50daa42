package orders

import (
	"context"
	"time"

	"festtix/pkg/logger"
)

// JobProcessor runs the periodic unpaid-order cleanup.
type JobProcessor struct {
	service Service
	config  *JobConfig
	done    chan struct{}
}

type JobConfig struct {
	CleanupInterval time.Duration
	// UnpaidOrderTTL is how long a PENDING order may wait for payment.
	UnpaidOrderTTL time.Duration
}

func DefaultJobConfig() *JobConfig {
	return &JobConfig{
		CleanupInterval: 5 * time.Minute,
		UnpaidOrderTTL:  30 * time.Minute,
	}
}

func NewJobProcessor(service Service, config *JobConfig) *JobProcessor {
	if config == nil {
		config = DefaultJobConfig()
	}

	return &JobProcessor{
		service: service,
		config:  config,
		done:    make(chan struct{}),
	}
}

// Start launches the cleanup loop in the background.
func (jp *JobProcessor) Start(ctx context.Context) {
	logger.GetDefault().Info("Starting unpaid order cleanup", "interval", jp.config.CleanupInterval.String(), "ttl", jp.config.UnpaidOrderTTL.String())
	go jp.startCleanupProcessor(ctx)
}

func (jp *JobProcessor) Stop() {
	close(jp.done)
	logger.GetDefault().Info("Unpaid order cleanup stopped")
}

func (jp *JobProcessor) startCleanupProcessor(ctx context.Context) {
	ticker := time.NewTicker(jp.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			jp.RunOnce(ctx)
		case <-jp.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// RunOnce performs a single sweep.
func (jp *JobProcessor) RunOnce(ctx context.Context) {
	if _, err := jp.service.CleanupUnpaid(ctx, jp.config.UnpaidOrderTTL); err != nil {
		logger.GetDefault().WithError(err).Error("Unpaid order cleanup failed")
	}
}

func (jp *JobProcessor) GetJobStatus() map[string]interface{} {
	return map[string]interface{}{
		"cleanup_interval": jp.config.CleanupInterval.String(),
		"unpaid_order_ttl": jp.config.UnpaidOrderTTL.String(),
		"status":           "running",
	}
}
