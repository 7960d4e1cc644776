package publisher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "climbreg/pkg/platform/audit"
	"climbreg/pkg/platform/audit/store/memory"
)

const climber = "10001010002"

func TestPublisher_SyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	event := audit.Event{
		Subject: climber,
		Action:  string(audit.EventCardAssigned),
	}

	err := pub.Emit(context.Background(), event)
	require.NoError(t, err)

	events, err := pub.List(context.Background(), climber)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(audit.EventCardAssigned), events[0].Action)
	assert.Equal(t, audit.CategoryCompliance, events[0].Category)
	assert.NotEqual(t, uuid.Nil, events[0].ID)
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(100))

	for i := 0; i < 10; i++ {
		event := audit.Event{
			Subject: climber,
			Action:  string(audit.EventCardReleased),
		}
		err := pub.Emit(context.Background(), event)
		require.NoError(t, err)
	}

	require.NoError(t, pub.Close())

	events, err := store.ListBySubject(context.Background(), climber)
	require.NoError(t, err)
	assert.Len(t, events, 10, "all events should be drained on close")

	// after close, emission falls back to inline writes
	require.NoError(t, pub.Emit(context.Background(), audit.Event{Subject: climber, Action: "late"}))
	events, err = store.ListBySubject(context.Background(), climber)
	require.NoError(t, err)
	assert.Len(t, events, 11)
}

func TestPublisher_BufferFull_DropsEvent(t *testing.T) {
	store := memory.NewInMemoryStore()
	m := NewMetrics(prometheus.NewRegistry())
	pub := NewPublisher(store, WithAsyncBuffer(1), WithMetrics(m))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		dropped int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := pub.Emit(context.Background(), audit.Event{
				Subject: climber,
				Action:  string(audit.EventCardAssigned),
			})
			if errors.Is(err, ErrBufferFull) {
				mu.Lock()
				dropped++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.NoError(t, pub.Close())

	events, err := store.ListBySubject(context.Background(), climber)
	require.NoError(t, err)
	assert.Equal(t, 50, len(events)+dropped)
	assert.Equal(t, float64(dropped), promtest.ToFloat64(m.Dropped))
}

func TestPublisher_SetsTimestamp(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithClock(func() time.Time { return fixed }))
	defer pub.Close()

	err := pub.Emit(context.Background(), audit.Event{Subject: climber, Action: string(audit.EventCardAssigned)})
	require.NoError(t, err)

	events, err := pub.List(context.Background(), climber)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, fixed, events[0].Timestamp)
}

func TestPublisher_PreservesExistingFields(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	eventID := uuid.New()
	customTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	err := pub.Emit(context.Background(), audit.Event{
		ID:        eventID,
		Subject:   climber,
		Action:    string(audit.EventCardAssigned),
		Category:  audit.CategoryOperations,
		Timestamp: customTime,
	})
	require.NoError(t, err)

	events, err := pub.List(context.Background(), climber)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, eventID, events[0].ID)
	assert.Equal(t, customTime, events[0].Timestamp)
	assert.Equal(t, audit.CategoryOperations, events[0].Category)
}

type brokenStore struct {
	*memory.InMemoryStore
}

func (brokenStore) Append(context.Context, audit.Event) error {
	return errors.New("connection reset")
}

func TestPublisher_SyncFailureIsReturned(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	pub := NewPublisher(brokenStore{memory.NewInMemoryStore()}, WithMetrics(m))
	defer pub.Close()

	err := pub.Emit(context.Background(), audit.Event{Subject: climber, Action: string(audit.EventCardAssigned)})
	require.Error(t, err)
	assert.Equal(t, 1.0, promtest.ToFloat64(m.PersistFailures))
}

func TestPublisher_DifferentSubjects(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	require.NoError(t, pub.Emit(context.Background(), audit.Event{Subject: climber, Action: string(audit.EventCardAssigned)}))
	require.NoError(t, pub.Emit(context.Background(), audit.Event{Subject: "20202020004", Action: string(audit.EventExamRegistered)}))

	events1, err := pub.List(context.Background(), climber)
	require.NoError(t, err)
	require.Len(t, events1, 1)
	assert.Equal(t, string(audit.EventCardAssigned), events1[0].Action)

	events2, err := pub.List(context.Background(), "20202020004")
	require.NoError(t, err)
	require.Len(t, events2, 1)
	assert.Equal(t, string(audit.EventExamRegistered), events2[0].Action)
}
