package moqsub

import (
	"encoding/binary"
	"log/slog"
	"math"
	"sync"

	"github.com/moqlive/moqsub/internal/wire"
	"github.com/quic-go/quic-go/quicvarint"
)

// compileControlMessage frames msg for the control stream: type varint,
// two length bytes, body. The length is patched in after the body is
// appended. Messages that do not fit the 16-bit length are rejected before
// any bytes reach the stream.
func compileControlMessage(msg wire.ControlMessage) ([]byte, error) {
	buf := make([]byte, 0, 4096)
	buf = quicvarint.Append(buf, uint64(msg.Type()))
	tl := len(buf)
	buf = append(buf, 0x00, 0x00) // length placeholder
	buf = msg.Append(buf)
	length := len(buf[tl+2:])
	if length > math.MaxUint16 {
		return nil, errControlMessageTooLarge
	}
	binary.BigEndian.PutUint16(buf[tl:tl+2], uint16(length))
	return buf, nil
}

// controlStream frames outgoing control messages and parses incoming
// ones. Writes are serialized with a mutex so concurrent senders can never
// interleave the bytes of two frames.
type controlStream struct {
	logger *slog.Logger
	stream Stream
	parser *wire.ControlMessageParser

	writeMu sync.Mutex
}

func newControlStream(stream Stream, logger *slog.Logger) *controlStream {
	return &controlStream{
		logger: logger,
		stream: stream,
		parser: wire.NewControlMessageParser(stream),
	}
}

func (cs *controlStream) send(msg wire.ControlMessage) error {
	buf, err := compileControlMessage(msg)
	if err != nil {
		return err
	}
	cs.logControlMessage(msg, true)

	cs.writeMu.Lock()
	defer cs.writeMu.Unlock()
	_, err = cs.stream.Write(buf)
	return err
}

func (cs *controlStream) receive() (wire.ControlMessage, error) {
	msg, err := cs.parser.Parse()
	if err != nil {
		return nil, err
	}
	cs.logControlMessage(msg, false)
	return msg, nil
}

func (cs *controlStream) logControlMessage(msg wire.ControlMessage, sending bool) {
	dir := "->"
	if !sending {
		dir = "<-"
	}
	cs.logger.Debug(dir, msg.Type().String(), msg)
}
