package wire

type GoAwayMessage struct {
	NewSessionURI string
}

func (m GoAwayMessage) Type() controlMessageType {
	return messageTypeGoAway
}

func (m *GoAwayMessage) Append(buf []byte) []byte {
	return appendVarIntBytes(buf, []byte(m.NewSessionURI))
}

func (m *GoAwayMessage) parse(_ Version, data []byte) (err error) {
	newSessionURI, _, err := parseVarIntBytes(data)
	m.NewSessionURI = string(newSessionURI)
	return err
}
