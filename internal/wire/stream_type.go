package wire

import "fmt"

type StreamType uint64

// Unidirectional stream type tags. The six subgroup variants encode how
// the subgroup ID is derived and whether objects carry extension headers
// (tag LSB set).
const (
	StreamTypeFetch StreamType = 0x05

	StreamTypeSubgroupZero        StreamType = 0x08
	StreamTypeSubgroupZeroExt     StreamType = 0x09
	StreamTypeSubgroupFirst       StreamType = 0x0a
	StreamTypeSubgroupFirstExt    StreamType = 0x0b
	StreamTypeSubgroupExplicit    StreamType = 0x0c
	StreamTypeSubgroupExplicitExt StreamType = 0x0d
)

// Datagram type tags. The LSB signals extension headers, like the
// subgroup stream tags.
const (
	DatagramTypeObject    uint64 = 0x00
	DatagramTypeObjectExt uint64 = 0x01
)

func (t StreamType) isSubgroup() bool {
	return t >= StreamTypeSubgroupZero && t <= StreamTypeSubgroupExplicitExt
}

func (t StreamType) hasExtensions() bool {
	return t.isSubgroup() && t&0x01 == 1
}

func (t StreamType) hasExplicitSubgroupID() bool {
	return t == StreamTypeSubgroupExplicit || t == StreamTypeSubgroupExplicitExt
}

func (t StreamType) subgroupIsFirstObjectID() bool {
	return t == StreamTypeSubgroupFirst || t == StreamTypeSubgroupFirstExt
}

func (t StreamType) String() string {
	switch t {
	case StreamTypeFetch:
		return "FetchStream"
	case StreamTypeSubgroupZero, StreamTypeSubgroupZeroExt,
		StreamTypeSubgroupFirst, StreamTypeSubgroupFirstExt,
		StreamTypeSubgroupExplicit, StreamTypeSubgroupExplicitExt:
		return fmt.Sprintf("SubgroupStream(0x%02x)", uint64(t))
	}
	return fmt.Sprintf("UnknownStream(0x%02x)", uint64(t))
}
