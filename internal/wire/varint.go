package wire

import "github.com/quic-go/quic-go/quicvarint"

// MaxVarInt is the largest value that fits into a QUIC variable-length
// integer. Values above it cannot be encoded and must be rejected before
// message construction.
const MaxVarInt = quicvarint.Max
