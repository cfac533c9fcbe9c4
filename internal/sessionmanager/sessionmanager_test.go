package sessionmanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossbridge/proxycore/internal/config"
	"github.com/crossbridge/proxycore/internal/registry"
	"github.com/crossbridge/proxycore/internal/session"
	"github.com/crossbridge/proxycore/internal/telemetry"
)

type discardSink struct{}

func (discardSink) Send([]byte) error { return nil }
func (discardSink) Close() error      { return nil }

func newTestSession(t *testing.T, id string) *session.Session {
	t.Helper()
	return session.New(session.Config{
		ID:          id,
		Cfg:         config.Default(),
		Log:         telemetry.NewNoopLogger(),
		Metrics:     telemetry.NewNoopMetrics(),
		Registry:    registry.New(telemetry.NewNoopLogger()),
		JavaSink:    discardSink{},
		BedrockSink: discardSink{},
	})
}

func TestAdmitRefusesOnceAtCapacity(t *testing.T) {
	m := New(1, telemetry.NewNoopLogger(), telemetry.NewNoopMetrics())
	require.NoError(t, m.Admit(newTestSession(t, "a")))

	err := m.Admit(newTestSession(t, "b"))
	assert.ErrorIs(t, err, ErrServerFull)
	assert.Equal(t, 1, m.Count())
}

func TestRemoveFreesCapacity(t *testing.T) {
	m := New(1, telemetry.NewNoopLogger(), telemetry.NewNoopMetrics())
	require.NoError(t, m.Admit(newTestSession(t, "a")))
	m.Remove("a")

	require.NoError(t, m.Admit(newTestSession(t, "b")))
	assert.Equal(t, 1, m.Count())
}

func TestTickDeliversToEveryLiveSession(t *testing.T) {
	m := New(0, telemetry.NewNoopLogger(), telemetry.NewNoopMetrics())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, b := newTestSession(t, "a"), newTestSession(t, "b")
	go a.Run(ctx)
	go b.Run(ctx)
	require.NoError(t, m.Admit(a))
	require.NoError(t, m.Admit(b))

	m.Tick()
	m.Tick()

	require.Eventually(t, func() bool {
		return a.Tick() == 2 && b.Tick() == 2
	}, time.Second, time.Millisecond)
}

func TestShutdownWaitsForSessionsThenReturns(t *testing.T) {
	m := New(0, telemetry.NewNoopLogger(), telemetry.NewNoopMetrics())
	ctx := context.Background()
	a := newTestSession(t, "a")
	go a.Run(ctx)
	require.NoError(t, m.Admit(a))

	m.Shutdown(ctx, time.Second)

	select {
	case <-a.Done():
	default:
		t.Fatal("session was not disconnected by shutdown")
	}
}

func TestShutdownAbandonsAfterTimeout(t *testing.T) {
	m := New(0, telemetry.NewNoopLogger(), telemetry.NewNoopMetrics())
	a := newTestSession(t, "a")
	// a.Run is never started, so its mailbox is never drained and it never
	// reaches Dead; Shutdown must still return once drainTimeout elapses.
	require.NoError(t, m.Admit(a))

	start := time.Now()
	m.Shutdown(context.Background(), 50*time.Millisecond)
	assert.Less(t, time.Since(start), time.Second)
}
