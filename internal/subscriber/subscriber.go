package subscriber

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/config"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/publisher"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type Handler func(ctx context.Context, topic string, value []byte) error

type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type KafkaConsumer struct {
	readers      []messageReader
	DLQPublisher Publisher
	RetryConfig  config.RetryConfig
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	dlq Publisher,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	readers := make([]messageReader, 0, len(topics))
	for _, topic := range topics {
		readers = append(readers, kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		}))
	}

	return &KafkaConsumer{
		readers:      readers,
		DLQPublisher: dlq,
		RetryConfig:  retryConfig,
	}
}

// Listen reads every topic on its own goroutine and blocks until ctx is done
// and all readers are closed.
func (c *KafkaConsumer) Listen(ctx context.Context, handler Handler) {
	var wg sync.WaitGroup
	for _, reader := range c.readers {
		wg.Add(1)
		go func(r messageReader) {
			defer wg.Done()
			defer r.Close()
			for {
				msg, err := r.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil || errors.Is(err, context.Canceled) {
						return
					}
					logrus.Errorf("kafka read error: %s", err.Error())
					if !sleep(ctx, c.RetryConfig.BaseDelay) {
						return
					}
					continue
				}
				c.processMessage(ctx, msg, handler)
			}
		}(reader)
	}
	wg.Wait()
}

func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler Handler) {
	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		err := handler(ctx, msg.Topic, msg.Value)
		if err == nil {
			return
		}

		backoff := publisher.Backoff(c.RetryConfig, attempt)
		logrus.Warnf("handler error, attempt %d/%d: %s. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, err.Error(), backoff)
		if !sleep(ctx, backoff) {
			return
		}
	}

	logrus.Errorf("message failed after %d retries: topic=%s, key=%s", c.RetryConfig.MaxAttempts, msg.Topic, string(msg.Key))
	if c.DLQPublisher == nil {
		return
	}
	dlqMessage := models.DLQMessage{
		OriginalTopic: msg.Topic,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Timestamp:     time.Now().UTC(),
		Attempts:      c.RetryConfig.MaxAttempts,
	}
	if err := c.DLQPublisher.Publish(ctx, models.OrdersDLQTopic, dlqMessage); err != nil {
		logrus.Errorf("failed to send message to DLQ: %s", err.Error())
		return
	}
	logrus.Infof("message sent to DLQ: original topic=%s, key=%s", msg.Topic, string(msg.Key))
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
