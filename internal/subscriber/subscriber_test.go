package subscriber

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/NTGTECH2025/NTG-TECH-VENDAS/config"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/models"
	"github.com/NTGTECH2025/NTG-TECH-VENDAS/internal/service/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeReader struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	closed bool
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.msgs) > 0 {
		msg := r.msgs[0]
		r.msgs = r.msgs[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

var fastRetry = config.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

func TestProcessMessage_SuccessFirstTry(t *testing.T) {
	dlq := mocks.NewMockPublisher(t)
	c := &KafkaConsumer{DLQPublisher: dlq, RetryConfig: fastRetry}
	calls := 0

	c.processMessage(context.Background(), kafka.Message{Topic: "t"}, func(ctx context.Context, topic string, value []byte) error {
		calls++
		return nil
	})

	assert.Equal(t, 1, calls)
	dlq.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessMessage_ExhaustedGoesToDLQ(t *testing.T) {
	dlq := mocks.NewMockPublisher(t)
	c := &KafkaConsumer{DLQPublisher: dlq, RetryConfig: fastRetry}
	msg := kafka.Message{Topic: models.ManualReviewTopic, Key: []byte("42"), Value: []byte(`{"payment_id":"42"}`)}
	calls := 0

	dlq.EXPECT().
		Publish(mock.Anything, models.OrdersDLQTopic, mock.MatchedBy(func(m models.DLQMessage) bool {
			return m.OriginalTopic == models.ManualReviewTopic && m.Key == "42" && m.Attempts == 3
		})).
		Return(nil).
		Once()

	c.processMessage(context.Background(), msg, func(ctx context.Context, topic string, value []byte) error {
		calls++
		return errors.New("operator chat unreachable")
	})

	assert.Equal(t, 3, calls)
}

func TestListen_StopsWithContext(t *testing.T) {
	reader := &fakeReader{msgs: []kafka.Message{{Topic: "a", Value: []byte("1")}, {Topic: "a", Value: []byte("2")}}}
	c := &KafkaConsumer{readers: []messageReader{reader}, RetryConfig: fastRetry}
	ctx, cancel := context.WithCancel(context.Background())

	var mu sync.Mutex
	var seen []string
	done := make(chan struct{})
	go func() {
		c.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, string(value))
			if len(seen) == 2 {
				cancel()
			}
			return nil
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Listen did not return after cancel")
	}
	assert.Equal(t, []string{"1", "2"}, seen)
	assert.True(t, reader.closed)
}

func TestManualReviewHandler_NotifiesOperator(t *testing.T) {
	notifier := mocks.NewMockNotifier(t)
	h := NewManualReviewHandler(notifier, 999)
	ctx := context.Background()
	value, err := json.Marshal(models.ManualReviewEvent{PaymentID: "42", BuyerID: "555", ProductKey: "GIMP", Status: "approved", Reason: "product not in catalog"})
	require.NoError(t, err)

	notifier.EXPECT().
		SendMessage(ctx, int64(999), mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "42") && strings.Contains(text, "GIMP") && strings.Contains(text, "555")
		})).
		Return(nil).
		Once()

	assert.NoError(t, h.Handle(ctx, models.ManualReviewTopic, value))
}

func TestManualReviewHandler_NoOperatorChat(t *testing.T) {
	notifier := mocks.NewMockNotifier(t)
	h := NewManualReviewHandler(notifier, 0)

	assert.NoError(t, h.Handle(context.Background(), models.ManualReviewTopic, []byte(`{"payment_id":"42"}`)))
	notifier.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestManualReviewHandler_BadPayload(t *testing.T) {
	h := NewManualReviewHandler(mocks.NewMockNotifier(t), 999)

	err := h.Handle(context.Background(), models.ManualReviewTopic, []byte(`not json`))

	assert.ErrorContains(t, err, "error parsing manual review event")
}

func TestManualReviewHandler_ForeignTopicIsSkipped(t *testing.T) {
	notifier := mocks.NewMockNotifier(t)
	h := NewManualReviewHandler(notifier, 999)

	assert.NoError(t, h.Handle(context.Background(), "orders.fulfilled", []byte(`{}`)))
}
