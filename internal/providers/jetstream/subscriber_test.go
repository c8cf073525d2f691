package jetstream_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-propfi-ledger/internal/adapter"
	"github.com/feral-file/ff-propfi-ledger/internal/domain"
	"github.com/feral-file/ff-propfi-ledger/internal/messaging"
	mockspkg "github.com/feral-file/ff-propfi-ledger/internal/mocks"
	jsprovider "github.com/feral-file/ff-propfi-ledger/internal/providers/jetstream"
)

// testSubscriberMocks contains all the mocks needed for testing the subscriber
type testSubscriberMocks struct {
	ctrl           *gomock.Controller
	natsJS         *mockspkg.MockNatsJetStream
	natsConn       *mockspkg.MockNatsConn
	jetStream      *mockspkg.MockJetStream
	consumer       *mockspkg.MockNatsConsumer
	consumeContext *mockspkg.MockConsumeContext
	subscriber     messaging.Subscriber
}

func setupTestSubscriber(t *testing.T) *testSubscriberMocks {
	ctrl := gomock.NewController(t)
	tm := &testSubscriberMocks{
		ctrl:           ctrl,
		natsJS:         mockspkg.NewMockNatsJetStream(ctrl),
		natsConn:       mockspkg.NewMockNatsConn(ctrl),
		jetStream:      mockspkg.NewMockJetStream(ctrl),
		consumer:       mockspkg.NewMockNatsConsumer(ctrl),
		consumeContext: mockspkg.NewMockConsumeContext(ctrl),
	}

	cfg := jsprovider.SubscriberConfig{
		Config:       testConfig(),
		ConsumerName: "notifier",
		AckWait:      30 * time.Second,
		MaxDeliver:   5,
	}
	tm.natsJS.EXPECT().Connect(cfg.URL, gomock.Any()).Return(tm.natsConn, tm.jetStream, nil)

	sub, err := jsprovider.NewSubscriber(cfg, tm.natsJS, adapter.NewJSON())
	require.NoError(t, err)
	tm.subscriber = sub

	tm.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), cfg.StreamName, gomock.Any()).
		DoAndReturn(func(ctx context.Context, stream string, consumerCfg jetstream.ConsumerConfig) (adapter.Consumer, error) {
			assert.Equal(t, "notifier", consumerCfg.Durable)
			assert.Equal(t, jetstream.AckExplicitPolicy, consumerCfg.AckPolicy)
			assert.Equal(t, 1, consumerCfg.MaxAckPending)
			assert.Equal(t, jsprovider.SubjectWildcard, consumerCfg.FilterSubject)
			return tm.consumer, nil
		})
	tm.consumer.EXPECT().Info(gomock.Any()).Return(&jetstream.ConsumerInfo{Name: "notifier"}, nil)

	return tm
}

// newTestMessage returns a mock message carrying data
func newTestMessage(ctrl *gomock.Controller, data []byte) *mockspkg.MockJetStreamMessage {
	msg := mockspkg.NewMockJetStreamMessage(ctrl)
	msg.EXPECT().Data().Return(data).AnyTimes()
	msg.EXPECT().Subject().Return("events.property.listed").AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).AnyTimes()
	return msg
}

func TestSubscriber_SettlesMessages(t *testing.T) {
	mocks := setupTestSubscriber(t)
	defer mocks.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := testEvent()
	valid, err := json.Marshal(event)
	require.NoError(t, err)

	acked := newTestMessage(mocks.ctrl, valid)
	retried := newTestMessage(mocks.ctrl, valid)
	dropped := newTestMessage(mocks.ctrl, valid)
	garbage := newTestMessage(mocks.ctrl, []byte("not json"))

	gomock.InOrder(
		acked.EXPECT().Ack().Return(nil),
		retried.EXPECT().Nak().Return(nil),
		dropped.EXPECT().Term().Return(nil),
		garbage.EXPECT().Term().DoAndReturn(func() error {
			cancel()
			return nil
		}),
	)

	mocks.consumer.
		EXPECT().
		Consume(gomock.Any()).
		DoAndReturn(func(handler adapter.MessageHandler, opts ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			go func() {
				for _, msg := range []adapter.Message{acked, retried, dropped, garbage} {
					handler(msg)
				}
			}()
			return mocks.consumeContext, nil
		})
	mocks.consumeContext.EXPECT().Stop()

	calls := 0
	err = mocks.subscriber.SubscribeEvents(ctx, func(ctx context.Context, got *domain.LedgerEvent) error {
		calls++
		assert.Equal(t, event.EventID, got.EventID)
		switch calls {
		case 1:
			return nil
		case 2:
			return fmt.Errorf("endpoint down")
		default:
			return fmt.Errorf("bad payload: %w", messaging.ErrPermanent)
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, calls)
}

func TestSubscriber_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mockspkg.NewMockNatsJetStream(ctrl)
	conn := mockspkg.NewMockNatsConn(ctrl)
	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(conn, mockspkg.NewMockJetStream(ctrl), nil)

	sub, err := jsprovider.NewSubscriber(jsprovider.SubscriberConfig{Config: testConfig()}, natsJS, adapter.NewJSON())
	require.NoError(t, err)

	conn.EXPECT().Drain().Return(fmt.Errorf("already closed"))
	conn.EXPECT().Close()
	sub.Close()
}
