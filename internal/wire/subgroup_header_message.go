package wire

import (
	"github.com/quic-go/quic-go/quicvarint"
)

// SubgroupHeaderMessage is the header at the start of every subgroup data
// stream, following the stream type tag.
type SubgroupHeaderMessage struct {
	StreamType        StreamType
	TrackAlias        uint64
	GroupID           uint64
	SubgroupID        uint64
	PublisherPriority uint8
}

// Append writes the stream type tag followed by the header fields. The
// subgroup ID field is only present for the explicit-ID tag variants.
func (m *SubgroupHeaderMessage) Append(buf []byte) []byte {
	buf = quicvarint.Append(buf, uint64(m.StreamType))
	buf = quicvarint.Append(buf, m.TrackAlias)
	buf = quicvarint.Append(buf, m.GroupID)
	if m.StreamType.hasExplicitSubgroupID() {
		buf = quicvarint.Append(buf, m.SubgroupID)
	}
	return append(buf, m.PublisherPriority)
}

func (m *SubgroupHeaderMessage) parse(reader messageReader, typ StreamType) (err error) {
	m.StreamType = typ
	m.TrackAlias, err = quicvarint.Read(reader)
	if err != nil {
		return
	}
	m.GroupID, err = quicvarint.Read(reader)
	if err != nil {
		return
	}
	if typ.hasExplicitSubgroupID() {
		m.SubgroupID, err = quicvarint.Read(reader)
		if err != nil {
			return
		}
	}
	m.PublisherPriority, err = reader.ReadByte()
	return
}
