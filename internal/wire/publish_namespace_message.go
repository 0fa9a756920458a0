package wire

import (
	"log/slog"
)

// PublishNamespaceMessage is the announce broadcast. It is unsolicited and
// carries no request ID.
type PublishNamespaceMessage struct {
	TrackNamespace Tuple
	Parameters     KVPList
}

func (m *PublishNamespaceMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "publish_namespace"),
		slog.Any("track_namespace", m.TrackNamespace),
		slog.Uint64("number_of_parameters", uint64(len(m.Parameters))),
	)
}

func (m PublishNamespaceMessage) Type() controlMessageType {
	return messageTypePublishNamespace
}

func (m *PublishNamespaceMessage) Append(buf []byte) []byte {
	buf = m.TrackNamespace.append(buf)
	return m.Parameters.appendNum(buf)
}

func (m *PublishNamespaceMessage) parse(_ Version, data []byte) (err error) {
	var n int
	m.TrackNamespace, n, err = parseTuple(data)
	if err != nil {
		return err
	}
	data = data[n:]

	m.Parameters = KVPList{}
	_, err = m.Parameters.parseNum(data)
	return err
}
