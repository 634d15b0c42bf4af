package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/config"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Keyed events are written with their key so that every event of one payment
// lands on the same partition.
type Keyed interface {
	EventKey() string
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writers     map[string]messageWriter
	RetryConfig config.RetryConfig
}

func NewKafkaPublisher(brokers string, topics []string, retryConfig config.RetryConfig) *KafkaPublisher {
	addrs := strings.Split(brokers, ",")
	writers := make(map[string]messageWriter, len(topics))
	for _, t := range topics {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		writers[t] = &kafka.Writer{
			Addr:                   kafka.TCP(addrs...),
			Topic:                  t,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
	}
	return newPublisher(writers, retryConfig)
}

func newPublisher(writers map[string]messageWriter, retryConfig config.RetryConfig) *KafkaPublisher {
	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 5
	}
	if retryConfig.BaseDelay == 0 {
		retryConfig.BaseDelay = 100 * time.Millisecond
	}
	if retryConfig.MaxDelay == 0 {
		retryConfig.MaxDelay = 10 * time.Second
	}
	return &KafkaPublisher{writers: writers, RetryConfig: retryConfig}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic string, message interface{}) error {
	writer, ok := p.writers[topic]
	if !ok {
		return fmt.Errorf("error no writer configured for topic %s", topic)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	msg := kafka.Message{Value: data}
	if k, ok := message.(Keyed); ok {
		msg.Key = []byte(k.EventKey())
	}
	return p.publishWithRetry(ctx, writer, msg, topic)
}

func (p *KafkaPublisher) publishWithRetry(ctx context.Context, writer messageWriter, msg kafka.Message, topic string) error {
	var lastErr error

	for attempt := 0; attempt < p.RetryConfig.MaxAttempts; attempt++ {
		err := writer.WriteMessages(ctx, msg)
		if err == nil {
			if attempt > 0 {
				logrus.Infof("published to %s after %d attempts", topic, attempt+1)
			}
			return nil
		}
		lastErr = err

		if attempt == p.RetryConfig.MaxAttempts-1 {
			break
		}

		delay := Backoff(p.RetryConfig, attempt)
		logrus.Warnf("retry %d/%d for topic %s in %v: %s", attempt+1, p.RetryConfig.MaxAttempts, topic, delay, err.Error())

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	return fmt.Errorf("failed to publish message to topic %s after %d attempts: %w",
		topic, p.RetryConfig.MaxAttempts, lastErr)
}

func (p *KafkaPublisher) Close() error {
	var errs []error
	for topic, w := range p.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing writer for %s: %w", topic, err))
		}
	}
	return errors.Join(errs...)
}

// Backoff is the exponential delay before retry number attempt+1, capped at
// MaxDelay and spread by up to ±15% when jitter is on.
func Backoff(cfg config.RetryConfig, attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * cfg.BaseDelay
	if delay > cfg.MaxDelay {
		delay = cfg.MaxDelay
	}

	if cfg.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}
	return delay
}
