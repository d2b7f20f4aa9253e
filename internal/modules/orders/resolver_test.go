package orders

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeClientGetter struct {
	mu      sync.Mutex
	calls   int32
	clients map[int]*Client
	err     error
}

func (f *fakeClientGetter) GetClient(_ context.Context, id int) (*Client, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clients[id], nil
}

func (f *fakeClientGetter) callCount() int { return int(atomic.LoadInt32(&f.calls)) }

func TestDisplayNamePrecedence(t *testing.T) {
	assert.Equal(t, "Ana", DisplayName(Order{Cliente: cl(1, "Ana"), ClienteNombre: "otro", ClienteID: 9}))
	assert.Equal(t, "Luis", DisplayName(Order{ClienteNombre: "Luis", ClienteID: 9}))
	assert.Equal(t, NameLoading, DisplayName(Order{ClienteID: 9}))
	assert.Equal(t, NameUnavailable, DisplayName(Order{}))

	// An embedded client with an empty name does not count.
	assert.Equal(t, NameLoading, DisplayName(Order{Cliente: &Client{ID: 9}, ClienteID: 9}))
}

func TestScheduleSkipsResolvedOrders(t *testing.T) {
	gw := &fakeClientGetter{}
	r := NewResolver(gw, discardLogger())

	started := r.Schedule(context.Background(), Order{ID: 1, Cliente: cl(1, "Ana")}, func(RowPatch) {
		t.Error("apply must not run for resolved orders")
	})
	assert.False(t, started)

	started = r.Schedule(context.Background(), Order{ID: 2}, func(RowPatch) {
		t.Error("apply must not run without a client id")
	})
	assert.False(t, started)

	assert.Zero(t, gw.callCount())
}

func TestScheduleResolvesOnce(t *testing.T) {
	gw := &fakeClientGetter{clients: map[int]*Client{7: {ID: 7, Nombre: "Ana Torres"}}}
	r := NewResolver(gw, discardLogger())
	o := Order{ID: 1, ClienteID: 7}

	patches := make(chan RowPatch, 1)
	started := r.Schedule(context.Background(), o, func(p RowPatch) { patches <- p })
	require.True(t, started)

	select {
	case p := <-patches:
		assert.Equal(t, RowPatch{OrderID: 1, ClienteID: 7, Nombre: "Ana Torres"}, p)
	case <-time.After(time.Second):
		t.Fatal("resolution never delivered")
	}

	// Re-rendering the same row never fetches twice.
	assert.False(t, r.Schedule(context.Background(), o, func(RowPatch) {}))
	assert.Equal(t, 1, gw.callCount())
}

func TestScheduleFailureIsTerminal(t *testing.T) {
	gw := &fakeClientGetter{err: errors.New("boom")}
	r := NewResolver(gw, discardLogger())
	o := Order{ID: 1, ClienteID: 7}

	applied := make(chan struct{})
	require.True(t, r.Schedule(context.Background(), o, func(RowPatch) { close(applied) }))

	select {
	case <-applied:
		t.Fatal("apply must not run on failure")
	case <-time.After(50 * time.Millisecond):
	}

	// No retry on the next render pass.
	assert.False(t, r.Schedule(context.Background(), o, func(RowPatch) {}))
	assert.Equal(t, 1, gw.callCount())
}

func TestScheduleSurvivesCanceledRenderContext(t *testing.T) {
	gw := &fakeClientGetter{clients: map[int]*Client{7: {ID: 7, Nombre: "Ana"}}}
	r := NewResolver(gw, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // the render request is already gone

	patches := make(chan RowPatch, 1)
	require.True(t, r.Schedule(ctx, Order{ID: 1, ClienteID: 7}, func(p RowPatch) { patches <- p }))

	select {
	case <-patches:
	case <-time.After(time.Second):
		t.Fatal("lookup must outlive the render context")
	}
}

func TestResetAllowsReattempt(t *testing.T) {
	gw := &fakeClientGetter{err: errors.New("boom")}
	r := NewResolver(gw, discardLogger())
	o := Order{ID: 1, ClienteID: 7}

	require.True(t, r.Schedule(context.Background(), o, func(RowPatch) {}))
	assert.False(t, r.Schedule(context.Background(), o, func(RowPatch) {}))

	r.Reset()
	assert.True(t, r.Schedule(context.Background(), o, func(RowPatch) {}))
}
