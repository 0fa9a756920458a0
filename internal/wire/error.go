package wire

import "errors"

var (
	errLengthMismatch           = errors.New("length mismatch")
	errInvalidMessageType       = errors.New("invalid message type")
	errInvalidStreamType        = errors.New("invalid stream type")
	errInvalidDatagramType      = errors.New("invalid datagram type")
	errInvalidFilterType        = errors.New("invalid filter type")
	errInvalidGroupOrder        = errors.New("invalid group order")
	errInvalidForwardFlag       = errors.New("invalid forward flag")
	errInvalidContentExistsByte = errors.New("invalid use of ContentExists byte")
)
