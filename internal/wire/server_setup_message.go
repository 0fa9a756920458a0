package wire

import (
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

type ServerSetupMessage struct {
	SelectedVersion Version
	SetupParameters KVPList

	// TrailingBytes counts bytes declared by the frame length but not
	// consumed by version and parameters. A non-zero count is reported to
	// the session for logging and is not a decode error.
	TrailingBytes int
}

func (m *ServerSetupMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "server_setup"),
		slog.Any("selected_version", m.SelectedVersion),
		slog.Uint64("number_of_parameters", uint64(len(m.SetupParameters))),
		slog.Any("setup_parameters", m.SetupParameters),
	)
}

func (m ServerSetupMessage) Type() controlMessageType {
	return messageTypeServerSetup
}

func (m *ServerSetupMessage) Append(buf []byte) []byte {
	buf = quicvarint.Append(buf, uint64(m.SelectedVersion))
	return m.SetupParameters.appendNum(buf)
}

func (m *ServerSetupMessage) parse(_ Version, data []byte) (err error) {
	version, n, err := quicvarint.Parse(data)
	if err != nil {
		return err
	}
	m.SelectedVersion = Version(version)
	data = data[n:]

	m.SetupParameters = KVPList{}
	parsed, err := m.SetupParameters.parseNum(data)
	if err != nil {
		return err
	}
	m.TrailingBytes = len(data) - parsed
	return nil
}
