package wire

import "io"

type messageReader interface {
	io.Reader
	io.ByteReader
	Discard(int) (int, error)
}

type Message interface {
	Append([]byte) []byte
	parse(v Version, data []byte) error
}

type ControlMessage interface {
	Message
	Type() controlMessageType
}
