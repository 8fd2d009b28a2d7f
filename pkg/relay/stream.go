package relay

import (
	"context"
	"sync"

	"github.com/abpatra/agentbridge/pkg/events"
)

// Stream is the consumer side of one request's outward event sequence. The
// producing worker blocks against a bounded channel, so a slow consumer
// exerts backpressure instead of growing an unbounded holding area.
type Stream struct {
	ch     chan events.Event
	closed chan struct{}
	once   sync.Once
}

// Open starts the orchestrator for query on its own goroutine and returns
// the stream the transport drains. The returned channel preserves production
// order exactly and is closed once the orchestrator is done; closure is the
// end-of-stream marker.
func (o *Orchestrator) Open(ctx context.Context, query string) *Stream {
	s := &Stream{
		ch:     make(chan events.Event, o.buffer),
		closed: make(chan struct{}),
	}
	go func() {
		defer close(s.ch)
		o.Run(ctx, query, s.push)
	}()
	return s
}

// Events yields outward events in production order until the stream ends.
func (s *Stream) Events() <-chan events.Event {
	return s.ch
}

// Close signals that the consumer is gone. The worker stops emitting and
// runs its cleanup path; any event it is blocked on is dropped rather than
// delivered to nobody. Safe to call more than once.
func (s *Stream) Close() {
	s.once.Do(func() { close(s.closed) })
}

func (s *Stream) push(ev events.Event) bool {
	select {
	case s.ch <- ev:
		return true
	case <-s.closed:
		return false
	}
}
