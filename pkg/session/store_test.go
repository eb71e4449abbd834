package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateAndGet(t *testing.T) {
	store := NewStore(time.Hour)

	created := store.Create(map[string]string{"channel": "web"})
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.Messages)
	assert.Equal(t, created.CreatedAt, created.LastActivity)
	assert.Equal(t, "web", created.Metadata["channel"])

	got, err := store.Get(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = store.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendKeepsOrderAndActivity(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create(nil)

	var lastActivity time.Time
	for i := 0; i < 5; i++ {
		msg, err := store.Append(sess.ID, RoleUser, fmt.Sprintf("message %d", i))
		assert.NoError(t, err)
		assert.False(t, msg.Timestamp.Before(lastActivity), "LastActivity must be non-decreasing")
		lastActivity = msg.Timestamp
	}

	history, err := store.History(sess.ID, 0)
	assert.NoError(t, err)
	assert.Len(t, history, 5)
	for i, msg := range history {
		assert.Equal(t, fmt.Sprintf("message %d", i), msg.Content)
	}

	info, err := store.Info(sess.ID)
	assert.NoError(t, err)
	assert.Equal(t, 5, info.MessageCount)
	assert.Equal(t, lastActivity, info.LastActivity)
}

func TestHistoryLimit(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create(nil)

	for i := 0; i < 10; i++ {
		_, err := store.Append(sess.ID, RoleUser, fmt.Sprintf("m%d", i))
		assert.NoError(t, err)
	}

	history, err := store.History(sess.ID, 3)
	assert.NoError(t, err)
	assert.Len(t, history, 3)
	assert.Equal(t, "m7", history[0].Content)
	assert.Equal(t, "m9", history[2].Content)
}

func TestLazyExpiryOnGet(t *testing.T) {
	store := NewStore(time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	sess := store.Create(nil)
	_ = store.Create(nil)

	// Advance past the timeout; both sessions are now expired.
	now = now.Add(2 * time.Hour)

	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Only the looked-up entry was evicted.
	assert.Equal(t, 1, store.ActiveCount())
}

func TestGetOrCreateNeverResurrects(t *testing.T) {
	store := NewStore(time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	sess := store.Create(nil)
	_, err := store.Append(sess.ID, RoleUser, "hello")
	assert.NoError(t, err)

	// Live session round-trips.
	same := store.GetOrCreate(sess.ID)
	assert.Equal(t, sess.ID, same.ID)

	now = now.Add(2 * time.Hour)

	fresh := store.GetOrCreate(sess.ID)
	assert.NotEqual(t, sess.ID, fresh.ID)
	assert.Empty(t, fresh.Messages)

	// Unknown id also yields a fresh session.
	fresh2 := store.GetOrCreate("unknown-id")
	assert.NotEqual(t, "unknown-id", fresh2.ID)
}

func TestClearKeepsCreatedAt(t *testing.T) {
	store := NewStore(time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	sess := store.Create(nil)
	_, _ = store.Append(sess.ID, RoleUser, "hello")
	_, _ = store.Append(sess.ID, RoleAssistant, "hi")

	now = now.Add(10 * time.Minute)
	assert.True(t, store.Clear(sess.ID))

	info, err := store.Info(sess.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, info.MessageCount)
	assert.Equal(t, sess.CreatedAt, info.CreatedAt)
	assert.Equal(t, now, info.LastActivity, "clear counts as activity")

	assert.False(t, store.Clear("missing"))
}

func TestDelete(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create(nil)

	assert.True(t, store.Delete(sess.ID))
	assert.False(t, store.Delete(sess.ID))
	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSweepExpired(t *testing.T) {
	store := NewStore(time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	old1 := store.Create(nil)
	old2 := store.Create(nil)

	now = now.Add(90 * time.Minute)
	live := store.Create(nil)

	removed := store.SweepExpired()
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, store.ActiveCount())

	_, err := store.Get(live.ID)
	assert.NoError(t, err)
	_, err = store.Get(old1.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(old2.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSweepBoundaryIsStrict(t *testing.T) {
	store := NewStore(time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	sess := store.Create(nil)

	// Exactly at the timeout boundary the session is still live.
	now = now.Add(time.Hour)
	assert.Equal(t, 0, store.SweepExpired())
	_, err := store.Get(sess.ID)
	assert.NoError(t, err)

	now = now.Add(time.Nanosecond)
	assert.Equal(t, 1, store.SweepExpired())
}

func TestSnapshotIsolation(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create(nil)
	_, _ = store.Append(sess.ID, RoleUser, "hello")

	snap, err := store.Get(sess.ID)
	assert.NoError(t, err)
	snap.Messages[0].Content = "mutated"
	snap.Metadata["k"] = "v"

	fresh, err := store.Get(sess.ID)
	assert.NoError(t, err)
	assert.Equal(t, "hello", fresh.Messages[0].Content)
	assert.NotContains(t, fresh.Metadata, "k")
}

func TestConcurrentAppends(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create(nil)

	const workers = 16
	const perWorker = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, err := store.Append(sess.ID, RoleUser, fmt.Sprintf("w%d-%d", w, i))
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	history, err := store.History(sess.ID, 0)
	assert.NoError(t, err)
	assert.Len(t, history, workers*perWorker, "no appends may be lost")
}

func TestConcurrentCreateDeleteSweep(t *testing.T) {
	store := NewStore(time.Hour)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				sess := store.Create(nil)
				_, _ = store.Get(sess.ID)
				store.SweepExpired()
				store.Delete(sess.ID)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, store.ActiveCount())
}
