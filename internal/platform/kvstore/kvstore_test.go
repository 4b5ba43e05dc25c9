package kvstore

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Purger = (*Memory)(nil)
	_ Purger = (*Postgres)(nil)
	_ Store  = (*Memory)(nil)
	_ Store  = (*Redis)(nil)
	_ Store  = (*Postgres)(nil)
)

func newClockedMemory() (*Memory, *time.Time) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }
	return m, &now
}

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	m, _ := newClockedMemory()

	require.NoError(t, m.Set(ctx, "k", []byte("v1"), time.Hour))
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	require.NoError(t, m.Set(ctx, "k", []byte("v2"), time.Hour))
	got, _ = m.Get(ctx, "k")
	assert.Equal(t, []byte("v2"), got)
}

func TestMemory_MissingIsNil(t *testing.T) {
	m, _ := newClockedMemory()
	got, err := m.Get(context.Background(), "absent")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemory_CopiesValues(t *testing.T) {
	ctx := context.Background()
	m, _ := newClockedMemory()
	buf := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", buf, 0))
	buf[0] = 'x'

	got, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(got))
	got[1] = 'y'
	again, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	m, now := newClockedMemory()
	require.NoError(t, m.Set(ctx, "short", []byte("x"), time.Minute))
	require.NoError(t, m.Set(ctx, "forever", []byte("y"), 0))

	*now = now.Add(time.Minute)
	got, err := m.Get(ctx, "short")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 1, m.Len(), "expired entry is dropped on read")

	*now = now.Add(1000 * time.Hour)
	got, _ = m.Get(ctx, "forever")
	assert.Equal(t, []byte("y"), got)
}

func TestMemory_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	m, now := newClockedMemory()
	require.NoError(t, m.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), time.Hour))
	require.NoError(t, m.Set(ctx, "c", []byte("3"), 0))

	*now = now.Add(2 * time.Minute)
	n, err := m.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 2, m.Len())
}

func TestMemory_Remove(t *testing.T) {
	ctx := context.Background()
	m, _ := newClockedMemory()
	require.NoError(t, m.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, m.Remove(ctx, "k"))
	require.NoError(t, m.Remove(ctx, "k"))

	got, _ := m.Get(ctx, "k")
	assert.Nil(t, got)
}

func TestExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, expiry(now, 0).IsZero())
	assert.True(t, expiry(now, -time.Second).IsZero())
	assert.Equal(t, now.Add(24*time.Hour), expiry(now, 24*time.Hour))
}

func TestNewRedis_BadURL(t *testing.T) {
	_, err := NewRedis(context.Background(), "not-a-url", "intake:")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse redis url")
}

func TestRunPurger_EvictsAndStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m, now := newClockedMemory()
	require.NoError(t, m.Set(ctx, "stale", []byte("1"), time.Minute))
	require.NoError(t, m.Set(ctx, "kept", []byte("2"), 0))
	*now = now.Add(time.Hour)

	done := make(chan struct{})
	go func() {
		RunPurger(ctx, m, 5*time.Millisecond, zerolog.Nop())
		close(done)
	}()

	require.Eventually(t, func() bool { return m.Len() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("purger did not stop after cancel")
	}
}

type failingPurger struct {
	calls atomic.Int32
}

func (f *failingPurger) PurgeExpired(context.Context) (int64, error) {
	f.calls.Add(1)
	return 0, errors.New("connection reset")
}

func TestRunPurger_LogsErrorsAndKeepsGoing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var buf syncBuffer
	p := &failingPurger{}
	go RunPurger(ctx, p, 5*time.Millisecond, zerolog.New(&buf))

	require.Eventually(t, func() bool { return p.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	assert.Contains(t, buf.String(), "connection reset")
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRedis_KeyPrefix(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	t.Cleanup(func() { _ = client.Close() })

	assert.Equal(t, "intake:session:1", NewRedisFromClient(client, "").key("intake:session:1"))
	assert.Equal(t, "tenant:intake:session:1", NewRedisFromClient(client, "tenant:").key("intake:session:1"))
}
