package moqsub

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/moqlive/moqsub/internal/wire"
)

// The subscriber never expects peer-initiated bidirectional streams, the
// only bidirectional stream of a session is the client-opened control
// stream.
func (s *Session) acceptBidiStreams() {
	_, err := s.conn.AcceptStream(context.Background())
	if err != nil {
		if s.shuttingDown.Load() {
			s.logger.Debug("accept loop for bidirectional streams exiting", "error", err)
			return
		}
		s.destroy(&ProtocolError{
			code:    ErrorCodeInternal,
			message: err.Error(),
		})
		return
	}
	s.destroy(&errUnexpectedBidiStream)
}

func (s *Session) acceptUniStreams() {
	for {
		stream, err := s.conn.AcceptUniStream(context.Background())
		if err != nil {
			if s.shuttingDown.Load() {
				s.logger.Debug("accept loop for unidirectional streams exiting", "error", err)
				return
			}
			s.destroy(&ProtocolError{
				code:    ErrorCodeInternal,
				message: err.Error(),
			})
			return
		}
		go s.handleUniStream(stream)
	}
}

// handleUniStream reads one incoming data stream to its end. Unusable
// streams are dropped without tearing down the session.
func (s *Session) handleUniStream(rs ReceiveStream) {
	parser, err := wire.NewObjectStreamParser(rs, rs.StreamID())
	if err != nil {
		if s.shuttingDown.Load() {
			s.logger.Debug("dropping incoming data stream", "stream_id", rs.StreamID(), "error", err)
		} else {
			s.logger.Warn("dropping incoming data stream with unusable header", "stream_id", rs.StreamID(), "error", err)
		}
		rs.Stop(0)
		return
	}
	if parser.Type() == wire.StreamTypeFetch {
		requestID, _ := parser.RequestID()
		s.logger.Info("ignoring fetch stream", "stream_id", rs.StreamID(), "request_id", requestID)
		rs.Stop(0)
		return
	}
	s.readSubgroupStream(rs, parser)
}

func (s *Session) readSubgroupStream(rs ReceiveStream, parser *wire.ObjectStreamParser) {
	alias, err := parser.TrackAlias()
	if err != nil {
		s.logger.Warn("dropping incoming data stream", "stream_id", rs.StreamID(), "error", err)
		rs.Stop(0)
		return
	}
	bridge := s.newStreamBridge(alias, func() { rs.Stop(0) })
	for m, err := range parser.Messages() {
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			if s.shuttingDown.Load() {
				s.logger.Debug("data stream read interrupted", "stream_id", rs.StreamID(), "error", err)
			} else {
				s.logger.Warn("failed to parse object, dropping data stream", "stream_id", rs.StreamID(), "error", err)
			}
			rs.Stop(0)
			return
		}
		if !bridge.deliver(objectFromMessage(m)) {
			return
		}
	}
}

// readDatagrams delivers datagram objects to registered callbacks.
// Datagrams for unknown track aliases are dropped without buffering.
func (s *Session) readDatagrams() {
	for {
		data, err := s.conn.ReceiveDatagram(context.Background())
		if err != nil {
			if s.shuttingDown.Load() {
				s.logger.Debug("datagram receive loop exiting", "error", err)
			} else if errors.Is(err, errors.ErrUnsupported) {
				s.logger.Info("datagram receiving not supported by transport")
			} else {
				s.logger.Error("failed to receive datagram", "error", err)
			}
			return
		}
		m, err := wire.ParseDatagram(data)
		if err != nil {
			s.logger.Warn("dropping malformed datagram", "error", err)
			continue
		}
		callbacks := s.registry.callbacksFor(m.TrackAlias)
		if len(callbacks) == 0 {
			s.logger.Debug("dropping datagram for unknown track alias", "track_alias", m.TrackAlias)
			continue
		}
		s.dispatchCallbacks(callbacks, objectFromMessage(m))
	}
}

func (s *Session) dispatchCallbacks(callbacks []ObjectCallback, o *Object) {
	for _, fn := range callbacks {
		s.invokeObjectCallback(fn, o)
	}
}

func (s *Session) invokeObjectCallback(fn ObjectCallback, o *Object) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("object callback panicked", "error", r, "track_alias", o.TrackAlias)
		}
	}()
	fn(*o)
}

func objectFromMessage(m *wire.ObjectMessage) *Object {
	return &Object{
		TrackAlias:        m.TrackAlias,
		GroupID:           m.GroupID,
		SubgroupID:        m.SubgroupID,
		ObjectID:          m.ObjectID,
		PublisherPriority: m.PublisherPriority,
		Extensions:        m.ExtensionHeaders,
		Status:            ObjectStatus(m.ObjectStatus),
		Payload:           m.ObjectPayload,
	}
}

// streamBridge connects one incoming subgroup stream to the callbacks
// registered for its track. Objects arriving before the track is
// registered are buffered and retried for a bounded time, objects on
// registered tracks are handed over directly.
type streamBridge struct {
	session *Session
	alias   uint64
	stop    func()

	mu           sync.Mutex
	pending      []*Object
	retryRunning bool
	failed       bool
}

func (s *Session) newStreamBridge(alias uint64, stop func()) *streamBridge {
	return &streamBridge{
		session: s,
		alias:   alias,
		stop:    stop,
	}
}

// deliver hands the object to the track's callbacks, flushing buffered
// objects first. It returns false once the bridge has given up on the
// track. Dispatching happens under b.mu so delivery order matches arrival
// order even while a retry is flushing.
func (b *streamBridge) deliver(o *Object) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failed {
		return false
	}
	callbacks := b.session.registry.callbacksFor(b.alias)
	if len(callbacks) > 0 {
		b.flushLocked(callbacks)
		b.session.dispatchCallbacks(callbacks, o)
		return true
	}
	if len(b.pending) > 0 && len(b.pending) >= b.session.opts.pendingBufferSize {
		b.pending = b.pending[1:]
		b.session.logger.Warn("pending object buffer full, dropping oldest object", "track_alias", b.alias)
	}
	b.pending = append(b.pending, o)
	if !b.retryRunning {
		b.retryRunning = true
		go b.retry()
	}
	return true
}

func (b *streamBridge) retry() {
	for i := 0; i < b.session.opts.retryAttempts; i++ {
		select {
		case <-time.After(b.session.opts.retryInterval):
		case <-b.session.closed:
			b.discard()
			return
		}
		if b.tryFlush() {
			return
		}
	}
	b.fail()
}

func (b *streamBridge) tryFlush() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	callbacks := b.session.registry.callbacksFor(b.alias)
	if len(callbacks) == 0 {
		return false
	}
	b.flushLocked(callbacks)
	b.retryRunning = false
	return true
}

func (b *streamBridge) flushLocked(callbacks []ObjectCallback) {
	for _, o := range b.pending {
		b.session.dispatchCallbacks(callbacks, o)
	}
	b.pending = nil
}

func (b *streamBridge) discard() {
	b.mu.Lock()
	b.pending = nil
	b.retryRunning = false
	b.mu.Unlock()
}

// fail drops the buffered objects and stops the stream after the retry
// budget is spent without the track showing up in the registry.
func (b *streamBridge) fail() {
	b.mu.Lock()
	dropped := len(b.pending)
	b.pending = nil
	b.retryRunning = false
	b.failed = true
	b.mu.Unlock()

	if b.session.shuttingDown.Load() {
		b.session.logger.Debug("dropping buffered objects during shutdown", "track_alias", b.alias, "count", dropped)
		return
	}
	b.session.logger.Error("no subscriber for track, dropping buffered objects", "track_alias", b.alias, "count", dropped)
	if b.stop != nil {
		b.stop()
	}
}
