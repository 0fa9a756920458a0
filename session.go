package moqsub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/moqlive/moqsub/internal/wire"
)

// Session is a subscriber-side MoQ transport session. It owns the control
// stream, demultiplexes incoming data streams and datagrams, and delivers
// objects to the callbacks registered by Subscribe.
type Session struct {
	logger *slog.Logger

	conn Connection
	cs   *controlStream

	version wire.Version

	requestIDs   *sequence
	requestLimit atomic.Uint64
	blockedSent  atomic.Bool
	subscribeMu  sync.Mutex

	responses     *responseMap
	registry      *trackRegistry
	announcements *announcementSet

	opts sessionOptions

	shuttingDown atomic.Bool
	closeOnce    sync.Once
	closed       chan struct{}
}

// NewSession opens the control stream on conn, runs the setup handshake
// and starts the session's receive loops. The connection is closed when
// the handshake fails.
func NewSession(ctx context.Context, conn Connection, options ...Option) (*Session, error) {
	opts := defaultSessionOptions()
	for _, o := range options {
		o(&opts)
	}
	s := &Session{
		logger:        componentLogger(defaultLogger, "MOQ_SESSION"),
		conn:          conn,
		requestIDs:    newSequence(0, 2),
		responses:     newResponseMap(defaultLogger),
		registry:      newTrackRegistry(defaultLogger),
		announcements: newAnnouncementSet(defaultLogger),
		opts:          opts,
		closed:        make(chan struct{}),
	}
	stream, err := conn.OpenStreamSync(ctx)
	if err != nil {
		return nil, err
	}
	s.cs = newControlStream(stream, componentLogger(defaultLogger, "MOQ_CONTROL_STREAM"))

	if err := s.handshake(ctx); err != nil {
		s.destroy(err)
		return nil, err
	}

	go s.readControlMessages()
	go s.acceptBidiStreams()
	go s.acceptUniStreams()
	go s.readDatagrams()
	return s, nil
}

func (s *Session) handshake(ctx context.Context) error {
	params := wire.KVPList{}
	if s.opts.path != "" {
		params = append(params, wire.KeyValuePair{
			Type:       wire.PathParameterKey,
			ValueBytes: []byte(s.opts.path),
		})
	}
	if s.opts.maxRequestID > 0 {
		params = append(params, wire.KeyValuePair{
			Type:        wire.MaxRequestIDParameterKey,
			ValueVarInt: s.opts.maxRequestID,
		})
	}
	if err := s.cs.send(&wire.ClientSetupMessage{
		SupportedVersions: wire.SupportedVersions,
		SetupParameters:   params,
	}); err != nil {
		return err
	}

	type receiveResult struct {
		msg wire.ControlMessage
		err error
	}
	ch := make(chan receiveResult, 1)
	go func() {
		msg, err := s.cs.receive()
		ch <- receiveResult{msg, err}
	}()

	var msg wire.ControlMessage
	select {
	case res := <-ch:
		if res.err != nil {
			return res.err
		}
		msg = res.msg
	case <-ctx.Done():
		return ctx.Err()
	}

	ssm, ok := msg.(*wire.ServerSetupMessage)
	if !ok {
		return &ProtocolError{
			code:    ErrorCodeProtocolViolation,
			message: fmt.Sprintf("expected server setup message, got %v", msg.Type()),
		}
	}
	if !slices.Contains(wire.SupportedVersions, ssm.SelectedVersion) {
		return &errUnsupportedVersion
	}
	s.version = ssm.SelectedVersion
	if ssm.TrailingBytes > 0 {
		s.logger.Warn("ignoring trailing bytes in server setup message", "count", ssm.TrailingBytes)
	}
	if p, ok := ssm.SetupParameters.Get(wire.MaxRequestIDParameterKey); ok {
		s.requestLimit.Store(p.ValueVarInt)
	}
	s.logger.Info("session established", "version", uint64(s.version))
	return nil
}

// Subscribe subscribes to a track and registers callback for its objects.
// It blocks until the publisher answers, the response timeout expires or
// ctx is done. On success it returns the track alias assigned by the
// publisher.
func (s *Session) Subscribe(ctx context.Context, namespace []string, trackName string, callback ObjectCallback, options ...SubscribeOption) (uint64, error) {
	if callback == nil {
		return 0, errNilCallback
	}
	select {
	case <-s.closed:
		return 0, ErrSessionClosed
	default:
	}
	opts := defaultSubscribeOptions()
	for _, o := range options {
		o(&opts)
	}
	if opts.start.Group > wire.MaxVarInt || opts.start.Object > wire.MaxVarInt || opts.endGroup > wire.MaxVarInt {
		return 0, errValueExceedsVarIntRange
	}

	requestID, err := s.nextRequestID()
	if err != nil {
		return 0, err
	}
	ch := s.responses.add(requestID)
	defer s.responses.delete(requestID)

	msg := &wire.SubscribeMessage{
		RequestID:          requestID,
		TrackNamespace:     wire.Tuple(namespace),
		TrackName:          []byte(trackName),
		SubscriberPriority: opts.priority,
		GroupOrder:         wire.GroupOrder(opts.groupOrder),
		Forward:            forwardByte(opts.forward),
		FilterType:         wire.FilterType(opts.filterType),
		StartLocation: wire.Location{
			Group:  opts.start.Group,
			Object: opts.start.Object,
		},
		EndGroup:   opts.endGroup,
		Parameters: wire.KVPList{},
	}
	if len(opts.authToken) > 0 {
		msg.Parameters = append(msg.Parameters, wire.KeyValuePair{
			Type:       wire.AuthorizationTokenParameterKey,
			ValueBytes: opts.authToken,
		})
	}
	if err := s.cs.send(msg); err != nil {
		return 0, err
	}

	timer := time.NewTimer(s.opts.responseTimeout)
	defer timer.Stop()

	select {
	case resp := <-ch:
		switch m := resp.(type) {
		case *wire.SubscribeOkMessage:
			entry, ok := s.registry.adopt(namespace, trackName, m.TrackAlias, requestID, opts.onDone)
			if !ok {
				pe := &ProtocolError{
					code:    ErrorCodeDuplicateTrackAlias,
					message: fmt.Sprintf("track alias %v already in use", m.TrackAlias),
				}
				s.destroy(pe)
				return 0, pe
			}
			s.registry.addCallback(entry.alias, callback)
			s.logger.Info("subscription established",
				"request_id", requestID,
				"track_alias", entry.alias,
				"expires", m.Expires,
				"content_exists", m.ContentExists,
			)
			return entry.alias, nil
		case *wire.SubscribeErrorMessage:
			return 0, SubscribeError{
				ErrorCode:    m.ErrorCode,
				ReasonPhrase: m.ReasonPhrase,
			}
		default:
			return 0, fmt.Errorf("unexpected response message type: %v", resp.Type())
		}
	case <-timer.C:
		return 0, TimeoutError{
			Namespace: namespace,
			TrackName: trackName,
			Timeout:   s.opts.responseTimeout,
		}
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-s.closed:
		return 0, ErrSessionClosed
	}
}

// nextRequestID hands out the next even request ID, or ErrRequestsBlocked
// when the peer's maximum request ID leaves no room. The first hit on the
// limit sends a RequestsBlocked message, further hits stay quiet until the
// peer raises the limit.
func (s *Session) nextRequestID() (uint64, error) {
	s.subscribeMu.Lock()
	limit := s.requestLimit.Load()
	if limit > 0 && s.requestIDs.peek() >= limit {
		s.subscribeMu.Unlock()
		if s.blockedSent.CompareAndSwap(false, true) {
			if err := s.cs.send(&wire.RequestsBlockedMessage{MaximumRequestID: limit}); err != nil {
				s.logger.Warn("failed to send requests blocked message", "error", err)
			}
		}
		return 0, ErrRequestsBlocked
	}
	id := s.requestIDs.next()
	s.subscribeMu.Unlock()
	return id, nil
}

// Unsubscribe tells the publisher to stop sending the track and removes
// its callbacks after a short grace period for objects still in flight.
// The track stays known to the session, late data streams are dropped
// without error.
func (s *Session) Unsubscribe(trackAlias uint64) error {
	select {
	case <-s.closed:
		return ErrSessionClosed
	default:
	}
	entry, ok := s.registry.entryByAlias(trackAlias)
	if !ok {
		return fmt.Errorf("unsubscribe from track alias %v: %w", trackAlias, ErrUnknownTrack)
	}
	if err := s.cs.send(&wire.UnsubscribeMessage{RequestID: entry.requestID}); err != nil {
		return err
	}
	select {
	case <-time.After(s.opts.unsubscribeGrace):
	case <-s.closed:
	}
	s.registry.removeAllCallbacks(trackAlias)
	return nil
}

// SubscriptionUpdate narrows or repositions an active subscription.
type SubscriptionUpdate struct {
	Start              Location
	EndGroup           uint64
	SubscriberPriority uint8
	Forward            bool
}

// UpdateSubscription sends a SubscribeUpdate for the track, reusing the
// request ID of the original subscription.
func (s *Session) UpdateSubscription(trackAlias uint64, update SubscriptionUpdate) error {
	select {
	case <-s.closed:
		return ErrSessionClosed
	default:
	}
	if update.Start.Group > wire.MaxVarInt || update.Start.Object > wire.MaxVarInt || update.EndGroup > wire.MaxVarInt {
		return errValueExceedsVarIntRange
	}
	entry, ok := s.registry.entryByAlias(trackAlias)
	if !ok {
		return fmt.Errorf("update subscription for track alias %v: %w", trackAlias, ErrUnknownTrack)
	}
	return s.cs.send(&wire.SubscribeUpdateMessage{
		RequestID: entry.requestID,
		StartLocation: wire.Location{
			Group:  update.Start.Group,
			Object: update.Start.Object,
		},
		EndGroup:           update.EndGroup,
		SubscriberPriority: update.SubscriberPriority,
		Forward:            forwardByte(update.Forward),
		Parameters:         wire.KVPList{},
	})
}

// RegisterAnnounceCallback registers fn for announcements whose namespace
// starts with prefix. An empty prefix matches every namespace. The
// returned function removes the registration.
func (s *Session) RegisterAnnounceCallback(prefix []string, fn AnnouncementCallback) func() {
	if fn == nil {
		return func() {}
	}
	return s.announcements.add(prefix, fn)
}

// Close shuts the session down and closes the connection.
func (s *Session) Close() error {
	s.destroy(nil)
	return nil
}

func (s *Session) destroy(err error) {
	s.closeOnce.Do(func() {
		s.shuttingDown.Store(true)
		close(s.closed)

		code := ErrorCodeNoError
		message := ""
		var pe *ProtocolError
		if errors.As(err, &pe) {
			code = pe.code
			message = pe.message
		} else if err != nil {
			code = ErrorCodeInternal
			message = err.Error()
		}
		if err != nil {
			s.logger.Error("destroying session", "error", err)
		} else {
			s.logger.Info("closing session")
		}
		if cerr := s.conn.CloseWithError(code, message); cerr != nil {
			s.logger.Debug("failed to close connection", "error", cerr)
		}
		s.responses.clear()
		s.registry.clear()
	})
}

func (s *Session) readControlMessages() {
	for {
		msg, err := s.cs.receive()
		if err != nil {
			if s.shuttingDown.Load() {
				s.logger.Debug("control message loop exiting", "error", err)
				return
			}
			s.destroy(&ProtocolError{
				code:    ErrorCodeProtocolViolation,
				message: err.Error(),
			})
			return
		}
		s.handleControlMessage(msg)
	}
}

func (s *Session) handleControlMessage(msg wire.ControlMessage) {
	switch m := msg.(type) {
	case *wire.ClientSetupMessage, *wire.ServerSetupMessage:
		s.destroy(&errUnexpectedSetupMessage)
	case *wire.SubscribeOkMessage:
		s.completeResponse(m.RequestID, m)
	case *wire.SubscribeErrorMessage:
		s.completeResponse(m.RequestID, m)
	case *wire.PublishNamespaceOkMessage:
		s.completeResponse(m.RequestID, m)
	case *wire.PublishNamespaceErrorMessage:
		s.completeResponse(m.RequestID, m)
	case *wire.PublishNamespaceMessage:
		s.announcements.fanOut(Announcement{
			Namespace: m.TrackNamespace,
			Active:    true,
		})
	case *wire.UnpublishNamespaceMessage:
		s.announcements.fanOut(Announcement{
			Namespace: m.TrackNamespace,
			Active:    false,
		})
	case *wire.PublishDoneMessage:
		s.handlePublishDone(m)
	case *wire.MaxRequestIDMessage:
		s.handleMaxRequestID(m)
	case *wire.RequestsBlockedMessage:
		s.logger.Info("peer reports blocked requests", "maximum_request_id", m.MaximumRequestID)
	case *wire.GoAwayMessage:
		s.handleGoAway(m)
	case *wire.SubscribeMessage:
		s.rejectIncomingRequest(m.RequestID)
	case *wire.SubscribeUpdateMessage:
		s.rejectIncomingRequest(m.RequestID)
	default:
		s.destroy(&ProtocolError{
			code:    ErrorCodeProtocolViolation,
			message: fmt.Sprintf("unexpected message type: %v", msg.Type()),
		})
	}
}

// completeResponse routes a response message to the pending request it
// answers. Responses nobody waits for are dropped, a publisher answering
// after the response timeout must not kill the session.
func (s *Session) completeResponse(requestID uint64, msg wire.ControlMessage) {
	if !s.responses.complete(requestID, msg) {
		s.logger.Warn("dropping response with unknown request ID",
			"type", msg.Type().String(),
			"request_id", requestID,
		)
	}
}

func (s *Session) handlePublishDone(m *wire.PublishDoneMessage) {
	entry, ok := s.registry.entryByRequestID(m.RequestID)
	if !ok {
		s.logger.Warn("publish done for unknown request ID", "request_id", m.RequestID)
		return
	}
	s.logger.Info("publisher finished track",
		"track_alias", entry.alias,
		"status_code", m.StatusCode,
		"reason", m.ReasonPhrase,
	)
	s.registry.removeAllCallbacks(entry.alias)
	if entry.onDone != nil {
		s.invokeDoneCallback(entry.onDone, m.StatusCode, m.ReasonPhrase)
	}
}

func (s *Session) invokeDoneCallback(fn func(uint64, string), statusCode uint64, reason string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("done callback panicked", "error", r)
		}
	}()
	fn(statusCode, reason)
}

func (s *Session) handleMaxRequestID(m *wire.MaxRequestIDMessage) {
	current := s.requestLimit.Load()
	if m.RequestID <= current {
		s.destroy(&errMaxRequestIDDecreased)
		return
	}
	s.requestLimit.Store(m.RequestID)
	s.blockedSent.Store(false)
	s.logger.Debug("max request ID raised", "maximum_request_id", m.RequestID)
}

func (s *Session) handleGoAway(m *wire.GoAwayMessage) {
	s.logger.Info("received goaway", "new_session_uri", m.NewSessionURI)
	if s.opts.onGoAway == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("goaway handler panicked", "error", r)
			}
		}()
		s.opts.onGoAway(m.NewSessionURI)
	}()
}

// The session never serves subscriptions, an incoming subscribe or
// subscribe update is answered with an error instead of tearing the
// session down.
func (s *Session) rejectIncomingRequest(requestID uint64) {
	s.logger.Warn("rejecting subscribe request from peer", "request_id", requestID)
	if err := s.cs.send(&wire.SubscribeErrorMessage{
		RequestID:    requestID,
		ErrorCode:    ErrorCodeSubscribeNotSupported,
		ReasonPhrase: "endpoint does not publish",
	}); err != nil {
		s.logger.Warn("failed to send subscribe error", "error", err)
	}
}

func forwardByte(forward bool) uint8 {
	if forward {
		return 1
	}
	return 0
}
