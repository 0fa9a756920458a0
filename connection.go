package moqsub

import (
	"context"
	"io"
)

// Connection is the transport a session runs on. NewQUICConnection and
// NewWebTransportConnection wrap the quic-go and webtransport-go types,
// the xnetquic package wraps x/net/quic connections.
type Connection interface {
	AcceptStream(ctx context.Context) (Stream, error)
	AcceptUniStream(ctx context.Context) (ReceiveStream, error)
	OpenStreamSync(ctx context.Context) (Stream, error)
	OpenUniStreamSync(ctx context.Context) (SendStream, error)
	SendDatagram(payload []byte) error
	ReceiveDatagram(ctx context.Context) ([]byte, error)
	CloseWithError(code uint64, reason string) error
	Context() context.Context
}

type ReceiveStream interface {
	io.Reader

	Stop(code uint32)
	StreamID() uint64
}

type SendStream interface {
	io.Writer
	io.Closer

	Reset(code uint32)
	StreamID() uint64
}

type Stream interface {
	ReceiveStream
	SendStream
}
