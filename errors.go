package moqsub

import (
	"errors"
	"fmt"
	"time"
)

// Session close error codes
const (
	ErrorCodeNoError                  uint64 = 0x00
	ErrorCodeInternal                 uint64 = 0x01
	ErrorCodeUnauthorized             uint64 = 0x02
	ErrorCodeProtocolViolation        uint64 = 0x03
	ErrorCodeInvalidRequestID         uint64 = 0x04
	ErrorCodeDuplicateTrackAlias      uint64 = 0x05
	ErrorCodeKeyValueFormattingError  uint64 = 0x06
	ErrorCodeTooManyRequests          uint64 = 0x07
	ErrorCodeGoAwayTimeout            uint64 = 0x10
	ErrorCodeControlMessageTimeout    uint64 = 0x11
	ErrorCodeDataStreamTimeout        uint64 = 0x12
	ErrorCodeVersionNegotiationFailed uint64 = 0x15
)

// Subscribe error codes
const (
	ErrorCodeSubscribeInternal          uint64 = 0x00
	ErrorCodeSubscribeUnauthorized      uint64 = 0x01
	ErrorCodeSubscribeTimeout           uint64 = 0x02
	ErrorCodeSubscribeNotSupported      uint64 = 0x03
	ErrorCodeSubscribeTrackDoesNotExist uint64 = 0x04
	ErrorCodeSubscribeInvalidRange      uint64 = 0x05
)

// Publish done status codes
const (
	ErrorCodePublishDoneInternal          uint64 = 0x00
	ErrorCodePublishDoneUnauthorized      uint64 = 0x01
	ErrorCodePublishDoneTrackEnded        uint64 = 0x02
	ErrorCodePublishDoneSubscriptionEnded uint64 = 0x03
	ErrorCodePublishDoneGoingAway         uint64 = 0x04
	ErrorCodePublishDoneExpired           uint64 = 0x05
	ErrorCodePublishDoneTooFarBehind      uint64 = 0x06
)

// ProtocolError is a fatal MoQ protocol error. The session is closed with
// the carried code when one occurs.
type ProtocolError struct {
	code    uint64
	message string
}

func (e *ProtocolError) String() string {
	return e.Error()
}

func (e ProtocolError) Error() string {
	return fmt.Sprintf("%v: %v", e.code, e.message)
}

func (e ProtocolError) Code() uint64 {
	return e.code
}

// SubscribeError is returned by Subscribe when the publisher rejects the
// subscription.
type SubscribeError struct {
	ErrorCode    uint64
	ReasonPhrase string
}

func (e SubscribeError) Error() string {
	return fmt.Sprintf("subscribe failed with code %v: %v", e.ErrorCode, e.ReasonPhrase)
}

// TimeoutError is returned by Subscribe when the publisher does not answer
// within the configured response timeout.
type TimeoutError struct {
	Namespace []string
	TrackName string
	Timeout   time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("no response to subscribe for %v/%v within %v", e.Namespace, e.TrackName, e.Timeout)
}

var (
	// ErrUnknownTrack is returned for operations on a track alias with no
	// registry entry.
	ErrUnknownTrack = errors.New("unknown track alias")

	// ErrRequestsBlocked is returned by Subscribe when the peer's maximum
	// request ID leaves no room for another request.
	ErrRequestsBlocked = errors.New("request would exceed the peer's maximum request ID")

	// ErrSessionClosed is returned for operations on a closed session.
	ErrSessionClosed = errors.New("session closed")

	errControlMessageTooLarge  = errors.New("control message too large")
	errValueExceedsVarIntRange = errors.New("value exceeds varint range")
	errNilCallback             = errors.New("callback must not be nil")
)

var (
	errUnsupportedVersion = ProtocolError{
		code:    ErrorCodeVersionNegotiationFailed,
		message: "server selected an unsupported version",
	}
	errMaxRequestIDDecreased = ProtocolError{
		code:    ErrorCodeProtocolViolation,
		message: "max request ID decreased",
	}
	errUnexpectedSetupMessage = ProtocolError{
		code:    ErrorCodeProtocolViolation,
		message: "setup message after handshake",
	}
	errUnexpectedBidiStream = ProtocolError{
		code:    ErrorCodeProtocolViolation,
		message: "unexpected peer-initiated bidirectional stream",
	}
)
