package relay_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-propfi-ledger/internal/domain"
	"github.com/feral-file/ff-propfi-ledger/internal/logger"
	mockspkg "github.com/feral-file/ff-propfi-ledger/internal/mocks"
	"github.com/feral-file/ff-propfi-ledger/internal/relay"
	"github.com/feral-file/ff-propfi-ledger/internal/store"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testRelayMocks contains all the mocks needed for testing the relay
type testRelayMocks struct {
	ctrl      *gomock.Controller
	publisher *mockspkg.MockPublisher
	store     *mockspkg.MockStore
	clock     *mockspkg.MockClock
	relay     relay.Relay
}

// setupTestRelay creates all the mocks and relay for testing
func setupTestRelay(t *testing.T) *testRelayMocks {
	ctrl := gomock.NewController(t)

	tm := &testRelayMocks{
		ctrl:      ctrl,
		publisher: mockspkg.NewMockPublisher(ctrl),
		store:     mockspkg.NewMockStore(ctrl),
		clock:     mockspkg.NewMockClock(ctrl),
	}

	tm.relay = relay.NewRelay(
		tm.publisher,
		tm.store,
		relay.Config{
			Name:         "test",
			PollInterval: time.Second,
			BatchSize:    3,
		},
		tm.clock,
	)

	return tm
}

// tearDownTestRelay cleans up the test mocks
func tearDownTestRelay(mocks *testRelayMocks) {
	mocks.ctrl.Finish()
}

func buildEvents(sequences ...uint64) []*domain.LedgerEvent {
	events := make([]*domain.LedgerEvent, 0, len(sequences))
	for _, seq := range sequences {
		events = append(events, &domain.LedgerEvent{
			Sequence: seq,
			EventID:  fmt.Sprintf("event-%d", seq),
			Type:     domain.EventTypePropertyListed,
		})
	}
	return events
}

func TestRelay_RelayOnce_PublishesInOrder(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	ctx := context.Background()
	events := buildEvents(5, 6, 7)

	mocks.store.EXPECT().GetRelayCursor(gomock.Any(), "test").Return(uint64(4), nil)
	mocks.store.
		EXPECT().
		GetLedgerEvents(gomock.Any(), store.LedgerEventQueryFilter{After: 4, Limit: 3}).
		Return(events, nil)
	gomock.InOrder(
		mocks.publisher.EXPECT().PublishEvent(gomock.Any(), events[0]).Return(nil),
		mocks.publisher.EXPECT().PublishEvent(gomock.Any(), events[1]).Return(nil),
		mocks.publisher.EXPECT().PublishEvent(gomock.Any(), events[2]).Return(nil),
		mocks.store.EXPECT().SetRelayCursor(gomock.Any(), "test", uint64(7)).Return(nil),
	)

	published, err := mocks.relay.RelayOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, published)
}

func TestRelay_RelayOnce_StopsAtFirstFailure(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	ctx := context.Background()
	events := buildEvents(1, 2, 3)
	publishErr := errors.New("nats unavailable")

	mocks.store.EXPECT().GetRelayCursor(gomock.Any(), "test").Return(uint64(0), nil)
	mocks.store.EXPECT().GetLedgerEvents(gomock.Any(), gomock.Any()).Return(events, nil)
	gomock.InOrder(
		mocks.publisher.EXPECT().PublishEvent(gomock.Any(), events[0]).Return(nil),
		mocks.publisher.EXPECT().PublishEvent(gomock.Any(), events[1]).Return(publishErr),
		// Progress up to the failure is kept
		mocks.store.EXPECT().SetRelayCursor(gomock.Any(), "test", uint64(1)).Return(nil),
	)

	published, err := mocks.relay.RelayOnce(ctx)
	assert.ErrorIs(t, err, publishErr)
	assert.Equal(t, 1, published)
}

func TestRelay_RelayOnce_NothingPending(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	mocks.store.EXPECT().GetRelayCursor(gomock.Any(), "test").Return(uint64(9), nil)
	mocks.store.EXPECT().GetLedgerEvents(gomock.Any(), gomock.Any()).Return([]*domain.LedgerEvent{}, nil)

	published, err := mocks.relay.RelayOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, published)
}

func TestRelay_RelayOnce_FirstPublishFails(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	events := buildEvents(3)
	mocks.store.EXPECT().GetRelayCursor(gomock.Any(), "test").Return(uint64(2), nil)
	mocks.store.EXPECT().GetLedgerEvents(gomock.Any(), gomock.Any()).Return(events, nil)
	mocks.publisher.EXPECT().PublishEvent(gomock.Any(), events[0]).Return(errors.New("timeout"))

	published, err := mocks.relay.RelayOnce(context.Background())
	assert.Error(t, err)
	assert.Zero(t, published)
}

func TestRelay_RelayOnce_CursorError(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	mocks.store.EXPECT().GetRelayCursor(gomock.Any(), "test").Return(uint64(0), errors.New("db down"))

	_, err := mocks.relay.RelayOnce(context.Background())
	assert.Error(t, err)
}

func TestRelay_Run(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	full := buildEvents(1, 2, 3)
	partial := buildEvents(4)

	gomock.InOrder(
		// Full batch: poll again immediately
		mocks.store.EXPECT().GetRelayCursor(gomock.Any(), "test").Return(uint64(0), nil),
		mocks.store.EXPECT().GetLedgerEvents(gomock.Any(), gomock.Any()).Return(full, nil),
		mocks.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil).Times(3),
		mocks.store.EXPECT().SetRelayCursor(gomock.Any(), "test", uint64(3)).Return(nil),
		// Partial batch: wait for the poll interval
		mocks.store.EXPECT().GetRelayCursor(gomock.Any(), "test").Return(uint64(3), nil),
		mocks.store.EXPECT().GetLedgerEvents(gomock.Any(), gomock.Any()).Return(partial, nil),
		mocks.publisher.EXPECT().PublishEvent(gomock.Any(), partial[0]).Return(nil),
		mocks.store.EXPECT().SetRelayCursor(gomock.Any(), "test", uint64(4)).Return(nil),
		mocks.clock.EXPECT().After(time.Second).DoAndReturn(func(d time.Duration) <-chan time.Time {
			cancel()
			return make(chan time.Time)
		}),
	)

	err := mocks.relay.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRelay_Close(t *testing.T) {
	mocks := setupTestRelay(t)
	defer tearDownTestRelay(mocks)

	mocks.publisher.EXPECT().Close()
	mocks.relay.Close()
}
