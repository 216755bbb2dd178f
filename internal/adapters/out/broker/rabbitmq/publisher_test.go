package rabbitmq_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistics/internal/adapters/out/broker/rabbitmq"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type channelMock struct {
	mock.Mock
}

func (m *channelMock) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *channelMock) Close() error {
	return m.Called().Error(0)
}

func TestPublisher_UsesEventNameAsRoutingKey(t *testing.T) {
	ch := &channelMock{}
	id := kernel.NewUUID()
	ch.On("PublishWithContext", mock.Anything, "logistics.events", shipment.EventStatusChanged, false, false,
		mock.MatchedBy(func(msg amqp.Publishing) bool {
			return msg.ContentType == "application/json" &&
				msg.DeliveryMode == amqp.Persistent &&
				msg.Type == shipment.EventStatusChanged
		})).Return(nil).Once()

	p := rabbitmq.NewPublisherWithChannel(ch, "logistics.events")
	err := p.Publish(context.Background(), shipment.StatusChangedEvent{
		ShipmentID: id, From: "pending", To: "assigned", At: time.Now(),
	})
	require.NoError(t, err)
	ch.AssertExpectations(t)
}

func TestPublisher_ContinuesAfterFailure(t *testing.T) {
	ch := &channelMock{}
	ch.On("PublishWithContext", mock.Anything, mock.Anything, shipment.EventCreated, false, false, mock.Anything).
		Return(errors.New("channel closed")).Once()
	ch.On("PublishWithContext", mock.Anything, mock.Anything, shipment.EventDriverAssigned, false, false, mock.Anything).
		Return(nil).Once()

	p := rabbitmq.NewPublisherWithChannel(ch, "x")
	err := p.Publish(context.Background(),
		shipment.CreatedEvent{ShipmentID: kernel.NewUUID(), At: time.Now()},
		shipment.DriverAssignedEvent{ShipmentID: kernel.NewUUID(), At: time.Now()},
	)
	require.ErrorContains(t, err, "channel closed")
	ch.AssertExpectations(t)
}

func TestPublisher_CloseClosesChannel(t *testing.T) {
	ch := &channelMock{}
	ch.On("Close").Return(nil).Once()

	assert.NoError(t, rabbitmq.NewPublisherWithChannel(ch, "x").Close())
	ch.AssertExpectations(t)
}
