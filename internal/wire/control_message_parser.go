package wire

import (
	"bufio"
	"fmt"
	"io"

	"github.com/quic-go/quic-go/quicvarint"
)

type ControlMessageParser struct {
	reader messageReader
}

func NewControlMessageParser(r io.Reader) *ControlMessageParser {
	return &ControlMessageParser{
		reader: bufio.NewReader(r),
	}
}

func (p *ControlMessageParser) Parse() (ControlMessage, error) {
	mt, err := quicvarint.Read(p.reader)
	if err != nil {
		return nil, err
	}
	hi, err := p.reader.ReadByte()
	if err != nil {
		return nil, err
	}
	lo, err := p.reader.ReadByte()
	if err != nil {
		return nil, err
	}
	length := uint16(hi)<<8 | uint16(lo)

	msg := make([]byte, length)
	n, err := io.ReadFull(p.reader, msg)
	if err != nil {
		return nil, err
	}
	if n != int(length) {
		return nil, errLengthMismatch
	}

	var m ControlMessage
	switch controlMessageType(mt) {
	case messageTypeClientSetup:
		m = &ClientSetupMessage{}
	case messageTypeServerSetup:
		m = &ServerSetupMessage{}

	case messageTypeGoAway:
		m = &GoAwayMessage{}

	case messageTypeMaxRequestID:
		m = &MaxRequestIDMessage{}
	case messageTypeRequestsBlocked:
		m = &RequestsBlockedMessage{}

	case messageTypeSubscribe:
		m = &SubscribeMessage{}
	case messageTypeSubscribeOk:
		m = &SubscribeOkMessage{}
	case messageTypeSubscribeError:
		m = &SubscribeErrorMessage{}
	case messageTypeUnsubscribe:
		m = &UnsubscribeMessage{}
	case messageTypeSubscribeUpdate:
		m = &SubscribeUpdateMessage{}
	case messageTypePublishDone:
		m = &PublishDoneMessage{}

	case messageTypePublishNamespace:
		m = &PublishNamespaceMessage{}
	case messageTypePublishNamespaceOk:
		m = &PublishNamespaceOkMessage{}
	case messageTypePublishNamespaceError:
		m = &PublishNamespaceErrorMessage{}
	case messageTypeUnpublishNamespace:
		m = &UnpublishNamespaceMessage{}

	default:
		return nil, fmt.Errorf("%w: %v", errInvalidMessageType, mt)
	}
	err = m.parse(CurrentVersion, msg)
	return m, err
}
