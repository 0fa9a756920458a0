package xnetquic

import (
	"github.com/moqlive/moqsub"
	"golang.org/x/net/quic"
)

var _ moqsub.ReceiveStream = (*Stream)(nil)
var _ moqsub.SendStream = (*Stream)(nil)
var _ moqsub.Stream = (*Stream)(nil)

// Stream adapts an x/net/quic stream. The same type serves both
// directions, a unidirectional stream never sees calls for the missing
// half.
type Stream struct {
	id     uint64
	stream *quic.Stream
}

// Read implements moqsub.ReceiveStream.
func (s *Stream) Read(p []byte) (n int, err error) {
	return s.stream.Read(p)
}

// Stop implements moqsub.ReceiveStream. The x/net/quic read side carries
// no error code, the code is dropped.
func (s *Stream) Stop(code uint32) {
	s.stream.CloseRead()
}

// Write implements moqsub.SendStream.
func (s *Stream) Write(p []byte) (int, error) {
	n, err := s.stream.Write(p)
	if err != nil {
		return n, err
	}
	s.stream.Flush()
	return n, nil
}

// Close implements moqsub.SendStream.
func (s *Stream) Close() error {
	s.stream.CloseWrite()
	return nil
}

// Reset implements moqsub.SendStream.
func (s *Stream) Reset(code uint32) {
	s.stream.Reset(uint64(code))
}

// StreamID implements moqsub.ReceiveStream and moqsub.SendStream.
func (s *Stream) StreamID() uint64 {
	return s.id
}
