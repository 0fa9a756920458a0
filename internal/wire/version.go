package wire

import (
	"fmt"

	"github.com/quic-go/quic-go/quicvarint"
)

type Version uint64

const (
	Draft_ietf_moq_transport_15 Version = 0xff00000f

	CurrentVersion = Draft_ietf_moq_transport_15
)

// SupportedVersions lists the versions offered in ClientSetup, in order of
// preference.
var SupportedVersions = versions{CurrentVersion}

func (v Version) String() string {
	return fmt.Sprintf("0x%x", uint64(v))
}

func (v Version) Len() uint64 {
	return uint64(quicvarint.Len(uint64(v)))
}

type versions []Version

func (v versions) Len() uint64 {
	l := uint64(0)
	for _, x := range v {
		l = l + x.Len()
	}
	return l
}

func (v versions) append(buf []byte) []byte {
	buf = quicvarint.Append(buf, uint64(len(v)))
	for _, vv := range v {
		buf = quicvarint.Append(buf, uint64(vv))
	}
	return buf
}

func (vs *versions) parse(data []byte) (parsed int, err error) {
	numVersions, n, err := quicvarint.Parse(data)
	parsed += n
	if err != nil {
		return parsed, err
	}
	data = data[n:]

	for i := uint64(0); i < numVersions; i++ {
		v, n, err := quicvarint.Parse(data)
		parsed += n
		if err != nil {
			return parsed, err
		}
		data = data[n:]
		*vs = append(*vs, Version(v))
	}
	return parsed, nil
}
