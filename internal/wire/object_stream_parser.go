package wire

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/quic-go/quic-go/quicvarint"
)

type ObjectStreamParser struct {
	streamID uint64

	reader messageReader
	typ    StreamType

	requestID  uint64
	trackAlias uint64

	PublisherPriority uint8
	GroupID           uint64
	SubgroupID        uint64

	firstObjectParsed bool
}

func (p *ObjectStreamParser) Type() StreamType {
	return p.typ
}

func (p *ObjectStreamParser) TrackAlias() (uint64, error) {
	if !p.typ.isSubgroup() {
		return 0, errors.New("only subgroup streams have a track alias")
	}
	return p.trackAlias, nil
}

func (p *ObjectStreamParser) RequestID() (uint64, error) {
	if p.typ != StreamTypeFetch {
		return 0, errors.New("only fetch streams have a request ID")
	}
	return p.requestID, nil
}

// NewObjectStreamParser reads the stream type tag and the stream header.
// Subsequent objects are read with Parse or Messages.
func NewObjectStreamParser(r io.Reader, streamID uint64) (*ObjectStreamParser, error) {
	br := bufio.NewReader(r)
	st, err := quicvarint.Read(br)
	if err != nil {
		return nil, err
	}
	typ := StreamType(st)
	switch {
	case typ == StreamTypeFetch:
		var fhm FetchHeaderMessage
		if err := fhm.parse(br); err != nil {
			return nil, err
		}
		return &ObjectStreamParser{
			streamID:  streamID,
			reader:    br,
			typ:       typ,
			requestID: fhm.RequestID,
		}, nil

	case typ.isSubgroup():
		var shm SubgroupHeaderMessage
		if err := shm.parse(br, typ); err != nil {
			return nil, err
		}
		return &ObjectStreamParser{
			streamID:          streamID,
			reader:            br,
			typ:               typ,
			trackAlias:        shm.TrackAlias,
			PublisherPriority: shm.PublisherPriority,
			GroupID:           shm.GroupID,
			SubgroupID:        shm.SubgroupID,
		}, nil

	default:
		return nil, fmt.Errorf("%w: 0x%02x", errInvalidStreamType, st)
	}
}

func (p *ObjectStreamParser) Messages() iter.Seq2[*ObjectMessage, error] {
	return func(yield func(*ObjectMessage, error) bool) {
		for {
			if !yield(p.Parse()) {
				return
			}
		}
	}
}

// Parse reads the next object from a subgroup stream. io.EOF between
// objects marks the clean end of the stream.
func (p *ObjectStreamParser) Parse() (*ObjectMessage, error) {
	if !p.typ.isSubgroup() {
		return nil, errInvalidStreamType
	}
	m := &ObjectMessage{
		TrackAlias:        p.trackAlias,
		GroupID:           p.GroupID,
		PublisherPriority: p.PublisherPriority,
	}
	if err := m.readSubgroup(p.reader, p.typ.hasExtensions()); err != nil {
		return nil, err
	}
	if p.typ.subgroupIsFirstObjectID() && !p.firstObjectParsed {
		p.SubgroupID = m.ObjectID
	}
	p.firstObjectParsed = true
	m.SubgroupID = p.SubgroupID
	return m, nil
}
