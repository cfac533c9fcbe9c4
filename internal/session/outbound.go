package session

import (
	"sync/atomic"
	"time"
)

// outboundBuffer is one peer's outbound byte buffer: a bounded channel
// drained by its own goroutine into the peer Sink, with a saturation
// counter that triggers disconnect after a bounded number of consecutive
// full-buffer enqueues (SPEC_FULL.md §4.6 "Emissions are non-blocking ...
// if the buffer is full, the session records pressure and - after a
// bounded count - requests disconnect with backpressure reason").
type outboundBuffer struct {
	sink     Sink
	ch       chan []byte
	pressure int32
	limit    int
	onLimit  func()
	stop     chan struct{}
}

func newOutboundBuffer(sink Sink, limit int, onLimit func()) *outboundBuffer {
	if limit <= 0 {
		limit = 64
	}
	b := &outboundBuffer{
		sink:    sink,
		ch:      make(chan []byte, 256),
		limit:   limit,
		onLimit: onLimit,
		stop:    make(chan struct{}),
	}
	go b.run()
	return b
}

func (b *outboundBuffer) run() {
	for {
		select {
		case data := <-b.ch:
			if b.sink != nil {
				_ = b.sink.Send(data)
			}
		case <-b.stop:
			return
		}
	}
}

// enqueue posts data without blocking the translator that produced it. A
// saturated buffer increments the pressure counter instead of blocking;
// once the counter reaches limit, onLimit fires on that enqueue and on every
// further saturated one, until a successful enqueue resets the counter.
func (b *outboundBuffer) enqueue(data []byte) {
	select {
	case b.ch <- data:
		atomic.StoreInt32(&b.pressure, 0)
	default:
		n := atomic.AddInt32(&b.pressure, 1)
		if int(n) >= b.limit && b.onLimit != nil {
			b.onLimit()
		}
	}
}

// drain waits up to timeout for the buffer to empty, then returns
// regardless (SPEC_FULL.md §5 "flushes outbound buffers with a bounded
// timeout (default 2s)").
func (b *outboundBuffer) drain(timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for len(b.ch) > 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
}

func (b *outboundBuffer) close() {
	close(b.stop)
	if b.sink != nil {
		_ = b.sink.Close()
	}
}
