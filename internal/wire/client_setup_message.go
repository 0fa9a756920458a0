package wire

import (
	"log/slog"
)

type ClientSetupMessage struct {
	SupportedVersions versions
	SetupParameters   KVPList
}

func (m *ClientSetupMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "client_setup"),
		slog.Uint64("number_of_supported_versions", uint64(len(m.SupportedVersions))),
		slog.Any("supported_versions", m.SupportedVersions),
		slog.Uint64("number_of_parameters", uint64(len(m.SetupParameters))),
		slog.Any("setup_parameters", m.SetupParameters),
	)
}

func (m ClientSetupMessage) Type() controlMessageType {
	return messageTypeClientSetup
}

func (m *ClientSetupMessage) Append(buf []byte) []byte {
	buf = m.SupportedVersions.append(buf)
	return m.SetupParameters.appendNum(buf)
}

func (m *ClientSetupMessage) parse(_ Version, data []byte) (err error) {
	m.SupportedVersions = versions{}
	n, err := m.SupportedVersions.parse(data)
	if err != nil {
		return err
	}
	data = data[n:]

	m.SetupParameters = KVPList{}
	_, err = m.SetupParameters.parseNum(data)
	return err
}
