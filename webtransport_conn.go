package moqsub

import (
	"context"

	"github.com/quic-go/webtransport-go"
)

type webTransportConnection struct {
	session *webtransport.Session
}

// NewWebTransportConnection wraps a WebTransport session for use with
// NewSession.
func NewWebTransportConnection(session *webtransport.Session) Connection {
	return &webTransportConnection{
		session: session,
	}
}

func (c *webTransportConnection) AcceptStream(ctx context.Context) (Stream, error) {
	s, err := c.session.AcceptStream(ctx)
	if err != nil {
		return nil, err
	}
	return &webTransportStream{stream: s}, nil
}

func (c *webTransportConnection) AcceptUniStream(ctx context.Context) (ReceiveStream, error) {
	s, err := c.session.AcceptUniStream(ctx)
	if err != nil {
		return nil, err
	}
	return &webTransportReceiveStream{stream: s}, nil
}

func (c *webTransportConnection) OpenStreamSync(ctx context.Context) (Stream, error) {
	s, err := c.session.OpenStreamSync(ctx)
	if err != nil {
		return nil, err
	}
	return &webTransportStream{stream: s}, nil
}

func (c *webTransportConnection) OpenUniStreamSync(ctx context.Context) (SendStream, error) {
	s, err := c.session.OpenUniStreamSync(ctx)
	if err != nil {
		return nil, err
	}
	return &webTransportSendStream{stream: s}, nil
}

func (c *webTransportConnection) SendDatagram(payload []byte) error {
	return c.session.SendDatagram(payload)
}

func (c *webTransportConnection) ReceiveDatagram(ctx context.Context) ([]byte, error) {
	return c.session.ReceiveDatagram(ctx)
}

func (c *webTransportConnection) CloseWithError(code uint64, reason string) error {
	return c.session.CloseWithError(webtransport.SessionErrorCode(code), reason)
}

func (c *webTransportConnection) Context() context.Context {
	return c.session.Context()
}

var _ Stream = (*webTransportStream)(nil)

type webTransportStream struct {
	stream webtransport.Stream
}

func (s *webTransportStream) Read(p []byte) (n int, err error) {
	return s.stream.Read(p)
}

func (s *webTransportStream) Write(p []byte) (n int, err error) {
	return s.stream.Write(p)
}

func (s *webTransportStream) Close() error {
	return s.stream.Close()
}

func (s *webTransportStream) Stop(code uint32) {
	s.stream.CancelRead(webtransport.StreamErrorCode(code))
}

func (s *webTransportStream) Reset(code uint32) {
	s.stream.CancelWrite(webtransport.StreamErrorCode(code))
}

func (s *webTransportStream) StreamID() uint64 {
	return uint64(s.stream.StreamID())
}

var _ ReceiveStream = (*webTransportReceiveStream)(nil)

type webTransportReceiveStream struct {
	stream webtransport.ReceiveStream
}

func (s *webTransportReceiveStream) Read(p []byte) (n int, err error) {
	return s.stream.Read(p)
}

func (s *webTransportReceiveStream) Stop(code uint32) {
	s.stream.CancelRead(webtransport.StreamErrorCode(code))
}

func (s *webTransportReceiveStream) StreamID() uint64 {
	return uint64(s.stream.StreamID())
}

var _ SendStream = (*webTransportSendStream)(nil)

type webTransportSendStream struct {
	stream webtransport.SendStream
}

func (s *webTransportSendStream) Write(p []byte) (n int, err error) {
	return s.stream.Write(p)
}

func (s *webTransportSendStream) Close() error {
	return s.stream.Close()
}

func (s *webTransportSendStream) Reset(code uint32) {
	s.stream.CancelWrite(webtransport.StreamErrorCode(code))
}

func (s *webTransportSendStream) StreamID() uint64 {
	return uint64(s.stream.StreamID())
}
