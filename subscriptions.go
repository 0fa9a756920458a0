package moqsub

import (
	"log/slog"
	"sync"

	"github.com/moqlive/moqsub/internal/wire"
	"golang.org/x/exp/maps"
)

// responseMap routes subscribe responses to the goroutine waiting for
// them. Each pending request owns a one-shot channel keyed by request ID.
type responseMap struct {
	logger *slog.Logger

	mu      sync.Mutex
	pending map[uint64]chan wire.ControlMessage
}

func newResponseMap(logger *slog.Logger) *responseMap {
	return &responseMap{
		logger:  componentLogger(logger, "MOQ_RESPONSE_MAP"),
		pending: map[uint64]chan wire.ControlMessage{},
	}
}

func (r *responseMap) add(requestID uint64) chan wire.ControlMessage {
	ch := make(chan wire.ControlMessage, 1)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending[requestID] = ch
	return ch
}

func (r *responseMap) delete(requestID uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, requestID)
}

// complete hands msg to the waiter for requestID and reports whether one
// was found. A request sees at most one response; extras are dropped after
// the waiter is gone.
func (r *responseMap) complete(requestID uint64, msg wire.ControlMessage) bool {
	r.mu.Lock()
	ch, ok := r.pending[requestID]
	if ok {
		delete(r.pending, requestID)
	}
	r.mu.Unlock()
	if !ok {
		return false
	}
	ch <- msg
	return true
}

// clear abandons all pending requests. Waiters observe the session's
// closed channel instead of a response.
func (r *responseMap) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.pending) > 0 {
		r.logger.Info("abandoning pending requests", "request_ids", maps.Keys(r.pending))
	}
	maps.Clear(r.pending)
}
