package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	eventkafka "courierledger/internal/adapters/out/kafka"
	"courierledger/internal/core/ports"
	"courierledger/internal/pkg/logging"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMessageWriter struct {
	mock.Mock
}

func (m *MockMessageWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockMessageWriter) Close() error {
	return m.Called().Error(0)
}

var at = time.Date(2025, 3, 14, 9, 45, 0, 0, time.UTC)

func TestPublisher_Publish(t *testing.T) {
	t.Run("should route by event name and wrap payload", func(t *testing.T) {
		writer := new(MockMessageWriter)
		var written []kafka.Message
		writer.On("WriteMessages", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { written = args.Get(1).([]kafka.Message) }).
			Return(nil).Once()

		p := eventkafka.NewPublisher(writer, "courierledger.events", map[string]string{
			ports.EventEarningsCreated: "courierledger.earnings",
		})

		err := p.Publish(t.Context(),
			ports.Event{
				Name:       ports.EventEarningsCreated,
				Key:        "courier-1",
				OccurredAt: at,
				Payload:    ports.EarningsCreatedPayload{EarningsID: "e-1", NetAmount: 2295, PaymentStatus: "paid"},
			},
			ports.Event{
				Name:       ports.EventOfferStatusChanged,
				Key:        "offer-1",
				OccurredAt: at,
				Payload:    ports.OfferStatusChangedPayload{OfferID: "offer-1", From: "delivered", To: "completed"},
			},
		)

		require.NoError(t, err)
		writer.AssertExpectations(t)
		require.Len(t, written, 2)

		assert.Equal(t, "courierledger.earnings", written[0].Topic)
		assert.Equal(t, []byte("courier-1"), written[0].Key)
		assert.Equal(t, "courierledger.events", written[1].Topic)

		var env eventkafka.Envelope
		require.NoError(t, json.Unmarshal(written[0].Value, &env))
		assert.Equal(t, ports.EventEarningsCreated, env.Name)
		assert.Equal(t, at, env.OccurredAt)
		assert.JSONEq(t,
			`{"earningsId":"e-1","courierId":"","offerId":"","netAmountCents":2295,"finalAmountCents":0,"paymentStatus":"paid"}`,
			string(env.Payload))
	})

	t.Run("should surface writer errors", func(t *testing.T) {
		writer := new(MockMessageWriter)
		writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
		p := eventkafka.NewPublisher(writer, "courierledger.events", nil)

		err := p.Publish(t.Context(), ports.Event{Name: ports.EventLocationRecorded, Key: "c", OccurredAt: at})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "broker down")
	})

	t.Run("should reject unnamed events without writing", func(t *testing.T) {
		writer := new(MockMessageWriter)
		p := eventkafka.NewPublisher(writer, "courierledger.events", nil)

		err := p.Publish(t.Context(), ports.Event{Key: "c"})

		require.Error(t, err)
		writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
	})

	t.Run("no events is a no-op", func(t *testing.T) {
		writer := new(MockMessageWriter)
		p := eventkafka.NewPublisher(writer, "courierledger.events", nil)

		require.NoError(t, p.Publish(t.Context()))
		writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
	})
}

func TestLogPublisher(t *testing.T) {
	p := eventkafka.NewLogPublisher(logging.Discard())

	require.NoError(t, p.Publish(t.Context(), ports.Event{Name: ports.EventLocationRecorded}))
}
