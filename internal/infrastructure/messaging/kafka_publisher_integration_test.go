package messaging_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strconv"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crednova/credit-approval-service/internal/domain/event"
	"github.com/crednova/credit-approval-service/internal/infrastructure/messaging"
	pkgkafka "github.com/crednova/credit-approval-service/pkg/kafka"
	"github.com/crednova/credit-approval-service/pkg/testutil"
)

func TestKafkaEventPublisher_RoundTrip(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("set RUN_INTEGRATION_TESTS=1 to run container-backed tests")
	}

	ctx := context.Background()
	kc := testutil.NewKafkaContainer(ctx, t)
	t.Cleanup(func() { kc.Cleanup(t) })

	const topic = "credit-events-test"

	producer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: kc.Brokers})
	t.Cleanup(func() { _ = producer.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := messaging.NewKafkaEventPublisher(producer, topic, logger)

	evt := event.NewLoanCreated(
		testutil.TestLoanID, testutil.TestCustomerID,
		decimal.NewFromInt(300_000), decimal.NewFromFloat(10.5),
		24, decimal.NewFromFloat(13_912.25),
	)

	publishCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	require.NoError(t, publisher.Publish(publishCtx, evt))

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  kc.Brokers,
		Topic:    topic,
		GroupID:  "publisher-round-trip",
		MinBytes: 1,
		MaxBytes: 1 << 20,
	})
	t.Cleanup(func() { _ = reader.Close() })

	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	msg, err := reader.ReadMessage(readCtx)
	require.NoError(t, err)

	assert.Equal(t, strconv.FormatInt(testutil.TestLoanID, 10), string(msg.Key))

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "credit.loan.created", headers["event_type"])
	assert.NotEmpty(t, headers["event_id"])

	var payload struct {
		CustomerID int64 `json:"customer_id"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &payload))
	assert.Equal(t, testutil.TestCustomerID, payload.CustomerID)
}
