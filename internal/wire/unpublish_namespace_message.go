package wire

import (
	"log/slog"
)

var _ slog.LogValuer = (*UnpublishNamespaceMessage)(nil)

type UnpublishNamespaceMessage struct {
	TrackNamespace Tuple
}

func (m *UnpublishNamespaceMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "unpublish_namespace"),
		slog.Any("track_namespace", m.TrackNamespace),
	)
}

func (m UnpublishNamespaceMessage) Type() controlMessageType {
	return messageTypeUnpublishNamespace
}

func (m *UnpublishNamespaceMessage) Append(buf []byte) []byte {
	return m.TrackNamespace.append(buf)
}

func (m *UnpublishNamespaceMessage) parse(_ Version, data []byte) (err error) {
	m.TrackNamespace, _, err = parseTuple(data)
	return err
}
