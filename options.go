package moqsub

import (
	"crypto/tls"
	"time"

	"github.com/quic-go/quic-go"
)

// Defaults for the session timers and buffers. All of them can be
// overridden with options.
const (
	defaultResponseTimeout   = 2000 * time.Millisecond
	defaultUnsubscribeGrace  = 500 * time.Millisecond
	defaultRetryInterval     = 100 * time.Millisecond
	defaultRetryAttempts     = 5
	defaultPendingBufferSize = 50
)

type sessionOptions struct {
	responseTimeout   time.Duration
	unsubscribeGrace  time.Duration
	retryInterval     time.Duration
	retryAttempts     int
	pendingBufferSize int
	maxRequestID      uint64
	path              string
	onGoAway          func(newSessionURI string)

	tlsConfig  *tls.Config
	quicConfig *quic.Config
}

func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		responseTimeout:   defaultResponseTimeout,
		unsubscribeGrace:  defaultUnsubscribeGrace,
		retryInterval:     defaultRetryInterval,
		retryAttempts:     defaultRetryAttempts,
		pendingBufferSize: defaultPendingBufferSize,
	}
}

type Option func(*sessionOptions)

// WithResponseTimeout bounds how long Subscribe waits for the publisher's
// answer.
func WithResponseTimeout(d time.Duration) Option {
	return func(o *sessionOptions) {
		o.responseTimeout = d
	}
}

// WithUnsubscribeGrace sets how long Unsubscribe waits for in-flight data
// streams to drain before dropping the track's callbacks. Unsubscribe is
// not acknowledged by the peer.
func WithUnsubscribeGrace(d time.Duration) Option {
	return func(o *sessionOptions) {
		o.unsubscribeGrace = d
	}
}

// WithRetryInterval sets the delay between registry lookups for data
// streams that arrive before their track alias is known.
func WithRetryInterval(d time.Duration) Option {
	return func(o *sessionOptions) {
		o.retryInterval = d
	}
}

// WithRetryAttempts sets how many registry lookups a data stream makes
// before giving up on an unregistered track alias.
func WithRetryAttempts(n int) Option {
	return func(o *sessionOptions) {
		o.retryAttempts = n
	}
}

// WithPendingBufferSize caps the number of objects buffered per data
// stream while its track alias is not yet registered. The oldest object is
// dropped on overflow.
func WithPendingBufferSize(n int) Option {
	return func(o *sessionOptions) {
		o.pendingBufferSize = n
	}
}

// WithMaxRequestID advertises the highest request ID this endpoint accepts
// from the peer. Zero, the default, advertises none.
func WithMaxRequestID(id uint64) Option {
	return func(o *sessionOptions) {
		o.maxRequestID = id
	}
}

// WithPath sets the path setup parameter. Dial derives it from the URL;
// the option is for sessions built directly on a Connection.
func WithPath(path string) Option {
	return func(o *sessionOptions) {
		o.path = path
	}
}

// WithGoAwayHandler installs a callback for the peer's GoAway message.
func WithGoAwayHandler(f func(newSessionURI string)) Option {
	return func(o *sessionOptions) {
		o.onGoAway = f
	}
}

// WithTLSConfig sets the TLS configuration used by Dial.
func WithTLSConfig(c *tls.Config) Option {
	return func(o *sessionOptions) {
		o.tlsConfig = c
	}
}

// WithQUICConfig sets the QUIC configuration used by Dial.
func WithQUICConfig(c *quic.Config) Option {
	return func(o *sessionOptions) {
		o.quicConfig = c
	}
}

type subscribeOptions struct {
	priority   uint8
	groupOrder GroupOrder
	forward    bool
	filterType FilterType
	start      Location
	endGroup   uint64
	authToken  []byte
	onDone     func(statusCode uint64, reason string)
}

func defaultSubscribeOptions() subscribeOptions {
	return subscribeOptions{
		forward:    true,
		filterType: FilterTypeLatestObject,
	}
}

type SubscribeOption func(*subscribeOptions)

// WithSubscriberPriority sets the subscription's priority. Lower values
// are more important.
func WithSubscriberPriority(p uint8) SubscribeOption {
	return func(o *subscribeOptions) {
		o.priority = p
	}
}

// WithGroupOrder requests a group delivery order.
func WithGroupOrder(g GroupOrder) SubscribeOption {
	return func(o *subscribeOptions) {
		o.groupOrder = g
	}
}

// WithForward controls whether the publisher forwards objects immediately.
func WithForward(forward bool) SubscribeOption {
	return func(o *subscribeOptions) {
		o.forward = forward
	}
}

// WithFilter selects which objects the subscription covers. Absolute
// filters use the start location and end group set with WithStartLocation
// and WithEndGroup.
func WithFilter(f FilterType) SubscribeOption {
	return func(o *subscribeOptions) {
		o.filterType = f
	}
}

// WithStartLocation sets the first object for absolute filters.
func WithStartLocation(group, object uint64) SubscribeOption {
	return func(o *subscribeOptions) {
		o.start = Location{Group: group, Object: object}
	}
}

// WithEndGroup sets the last group for the absolute range filter.
func WithEndGroup(group uint64) SubscribeOption {
	return func(o *subscribeOptions) {
		o.endGroup = group
	}
}

// WithAuthorizationToken attaches an authorization token parameter to the
// subscribe request.
func WithAuthorizationToken(token []byte) SubscribeOption {
	return func(o *subscribeOptions) {
		o.authToken = token
	}
}

// WithDoneCallback installs a callback fired when the publisher ends the
// subscription with PublishDone.
func WithDoneCallback(f func(statusCode uint64, reason string)) SubscribeOption {
	return func(o *subscribeOptions) {
		o.onDone = f
	}
}
