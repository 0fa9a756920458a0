package moqsub

import (
	"context"

	"github.com/quic-go/quic-go"
)

type quicConnection struct {
	conn quic.Connection
}

// NewQUICConnection wraps a QUIC connection for use with NewSession. The
// connection must be configured with datagram support when datagram
// delivery is wanted.
func NewQUICConnection(conn quic.Connection) Connection {
	return &quicConnection{
		conn: conn,
	}
}

func (c *quicConnection) AcceptStream(ctx context.Context) (Stream, error) {
	s, err := c.conn.AcceptStream(ctx)
	if err != nil {
		return nil, err
	}
	return &quicStream{stream: s}, nil
}

func (c *quicConnection) AcceptUniStream(ctx context.Context) (ReceiveStream, error) {
	s, err := c.conn.AcceptUniStream(ctx)
	if err != nil {
		return nil, err
	}
	return &quicReceiveStream{stream: s}, nil
}

func (c *quicConnection) OpenStreamSync(ctx context.Context) (Stream, error) {
	s, err := c.conn.OpenStreamSync(ctx)
	if err != nil {
		return nil, err
	}
	return &quicStream{stream: s}, nil
}

func (c *quicConnection) OpenUniStreamSync(ctx context.Context) (SendStream, error) {
	s, err := c.conn.OpenUniStreamSync(ctx)
	if err != nil {
		return nil, err
	}
	return &quicSendStream{stream: s}, nil
}

func (c *quicConnection) SendDatagram(payload []byte) error {
	return c.conn.SendDatagram(payload)
}

func (c *quicConnection) ReceiveDatagram(ctx context.Context) ([]byte, error) {
	return c.conn.ReceiveDatagram(ctx)
}

func (c *quicConnection) CloseWithError(code uint64, reason string) error {
	return c.conn.CloseWithError(quic.ApplicationErrorCode(code), reason)
}

func (c *quicConnection) Context() context.Context {
	return c.conn.Context()
}

var _ Stream = (*quicStream)(nil)

type quicStream struct {
	stream quic.Stream
}

func (s *quicStream) Read(p []byte) (n int, err error) {
	return s.stream.Read(p)
}

func (s *quicStream) Write(p []byte) (n int, err error) {
	return s.stream.Write(p)
}

func (s *quicStream) Close() error {
	return s.stream.Close()
}

func (s *quicStream) Stop(code uint32) {
	s.stream.CancelRead(quic.StreamErrorCode(code))
}

func (s *quicStream) Reset(code uint32) {
	s.stream.CancelWrite(quic.StreamErrorCode(code))
}

func (s *quicStream) StreamID() uint64 {
	return uint64(s.stream.StreamID())
}

var _ ReceiveStream = (*quicReceiveStream)(nil)

type quicReceiveStream struct {
	stream quic.ReceiveStream
}

func (s *quicReceiveStream) Read(p []byte) (n int, err error) {
	return s.stream.Read(p)
}

func (s *quicReceiveStream) Stop(code uint32) {
	s.stream.CancelRead(quic.StreamErrorCode(code))
}

func (s *quicReceiveStream) StreamID() uint64 {
	return uint64(s.stream.StreamID())
}

var _ SendStream = (*quicSendStream)(nil)

type quicSendStream struct {
	stream quic.SendStream
}

func (s *quicSendStream) Write(p []byte) (n int, err error) {
	return s.stream.Write(p)
}

func (s *quicSendStream) Close() error {
	return s.stream.Close()
}

func (s *quicSendStream) Reset(code uint32) {
	s.stream.CancelWrite(quic.StreamErrorCode(code))
}

func (s *quicSendStream) StreamID() uint64 {
	return uint64(s.stream.StreamID())
}
