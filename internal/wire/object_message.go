package wire

import (
	"errors"
	"io"
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

// ObjectMessage is a single object, parsed from a subgroup stream or a
// datagram. Extension headers are carried as an opaque blob.
type ObjectMessage struct {
	TrackAlias        uint64
	GroupID           uint64
	SubgroupID        uint64
	ObjectID          uint64
	PublisherPriority uint8
	ExtensionHeaders  []byte
	ObjectStatus      ObjectStatus
	ObjectPayload     []byte
}

func (m *ObjectMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "object"),
		slog.Uint64("track_alias", m.TrackAlias),
		slog.Uint64("group_id", m.GroupID),
		slog.Uint64("subgroup_id", m.SubgroupID),
		slog.Uint64("object_id", m.ObjectID),
		slog.Uint64("object_status", uint64(m.ObjectStatus)),
		slog.Uint64("payload_length", uint64(len(m.ObjectPayload))),
	)
}

// AppendSubgroup writes the object as it appears on a subgroup stream. A
// zero-length payload is followed by the object status varint.
func (m *ObjectMessage) AppendSubgroup(buf []byte, extensions bool) []byte {
	buf = quicvarint.Append(buf, m.ObjectID)
	if extensions {
		buf = appendVarIntBytes(buf, m.ExtensionHeaders)
	}
	if len(m.ObjectPayload) == 0 {
		buf = quicvarint.Append(buf, 0)
		return quicvarint.Append(buf, uint64(m.ObjectStatus))
	}
	buf = quicvarint.Append(buf, uint64(len(m.ObjectPayload)))
	return append(buf, m.ObjectPayload...)
}

func (m *ObjectMessage) readSubgroup(r messageReader, extensions bool) (err error) {
	m.ObjectID, err = quicvarint.Read(r)
	if err != nil {
		return err
	}
	// The object is partially read now, an EOF from here on means the
	// stream was truncated.
	defer func() {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
	}()
	if extensions {
		l, err := quicvarint.Read(r)
		if err != nil {
			return err
		}
		if l > 0 {
			m.ExtensionHeaders = make([]byte, l)
			if _, err := io.ReadFull(r, m.ExtensionHeaders); err != nil {
				return err
			}
		}
	}
	length, err := quicvarint.Read(r)
	if err != nil {
		return err
	}
	if length == 0 {
		status, err := quicvarint.Read(r)
		if err != nil {
			return err
		}
		m.ObjectStatus = ObjectStatus(status)
		return nil
	}
	m.ObjectPayload = make([]byte, length)
	_, err = io.ReadFull(r, m.ObjectPayload)
	return err
}

// AppendDatagram writes the object as a datagram, including the type tag.
// The payload extends to the end of the datagram, there is no length
// prefix.
func (m *ObjectMessage) AppendDatagram(buf []byte) []byte {
	if len(m.ExtensionHeaders) > 0 {
		buf = quicvarint.Append(buf, DatagramTypeObjectExt)
	} else {
		buf = quicvarint.Append(buf, DatagramTypeObject)
	}
	buf = quicvarint.Append(buf, m.TrackAlias)
	buf = quicvarint.Append(buf, m.GroupID)
	buf = quicvarint.Append(buf, m.ObjectID)
	buf = append(buf, m.PublisherPriority)
	if len(m.ExtensionHeaders) > 0 {
		buf = appendVarIntBytes(buf, m.ExtensionHeaders)
	}
	return append(buf, m.ObjectPayload...)
}

// ParseDatagram parses a datagram, starting with the type tag.
func ParseDatagram(data []byte) (*ObjectMessage, error) {
	typ, n, err := quicvarint.Parse(data)
	if err != nil {
		return nil, err
	}
	if typ != DatagramTypeObject && typ != DatagramTypeObjectExt {
		return nil, errInvalidDatagramType
	}
	data = data[n:]

	m := &ObjectMessage{}
	m.TrackAlias, n, err = quicvarint.Parse(data)
	if err != nil {
		return nil, err
	}
	data = data[n:]

	m.GroupID, n, err = quicvarint.Parse(data)
	if err != nil {
		return nil, err
	}
	data = data[n:]

	m.ObjectID, n, err = quicvarint.Parse(data)
	if err != nil {
		return nil, err
	}
	data = data[n:]

	if len(data) < 1 {
		return nil, errLengthMismatch
	}
	m.PublisherPriority = data[0]
	data = data[1:]

	if typ == DatagramTypeObjectExt {
		m.ExtensionHeaders, n, err = parseVarIntBytes(data)
		if err != nil {
			return nil, err
		}
		data = data[n:]
	}
	m.ObjectPayload = data
	return m, nil
}
