package moqsub

import "sync/atomic"

// sequence hands out request IDs. Clients use even IDs, so subscriptions
// draw from a sequence with initial 0 and interval 2.
type sequence struct {
	last     atomic.Uint64
	interval uint64
}

func newSequence(initial, interval uint64) *sequence {
	s := &sequence{
		last:     atomic.Uint64{},
		interval: interval,
	}
	s.last.Store(initial)
	return s
}

func (s *sequence) next() uint64 {
	return s.last.Add(s.interval) - s.interval
}

// peek returns the value the next call to next will return. It is only a
// hint when other goroutines allocate concurrently.
func (s *sequence) peek() uint64 {
	return s.last.Load()
}
