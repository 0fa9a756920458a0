package xnetquic

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/moqlive/moqsub"
	"golang.org/x/net/quic"
)

type connection struct {
	ctx       context.Context
	cancelCtx context.CancelFunc
	conn      *quic.Conn

	nextStreamID atomic.Uint64

	bidiStreams chan *quic.Stream
	uniStreams  chan *quic.Stream
}

// New wraps an x/net/quic connection for use with moqsub.NewSession.
// x/net/quic hands out streams of both directions through one accept
// call, the wrapper splits them again. Stream IDs are synthetic, they are
// only meaningful within this wrapper.
func New(conn *quic.Conn) moqsub.Connection {
	ctx, cancel := context.WithCancel(context.Background())
	c := &connection{
		ctx:         ctx,
		cancelCtx:   cancel,
		conn:        conn,
		bidiStreams: make(chan *quic.Stream, 100),
		uniStreams:  make(chan *quic.Stream, 100),
	}
	go c.accept()
	return c
}

func (c *connection) accept() {
	for {
		s, err := c.conn.AcceptStream(c.ctx)
		if err != nil {
			c.cancelCtx()
			return
		}
		if s.IsReadOnly() {
			select {
			case c.uniStreams <- s:
			case <-c.ctx.Done():
				return
			}
		} else {
			select {
			case c.bidiStreams <- s:
			case <-c.ctx.Done():
				return
			}
		}
	}
}

func (c *connection) wrap(s *quic.Stream) *Stream {
	return &Stream{
		id:     c.nextStreamID.Add(1) - 1,
		stream: s,
	}
}

// AcceptStream implements moqsub.Connection.
func (c *connection) AcceptStream(ctx context.Context) (moqsub.Stream, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.ctx.Done():
		return nil, c.ctx.Err()
	case s := <-c.bidiStreams:
		return c.wrap(s), nil
	}
}

// AcceptUniStream implements moqsub.Connection.
func (c *connection) AcceptUniStream(ctx context.Context) (moqsub.ReceiveStream, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.ctx.Done():
		return nil, c.ctx.Err()
	case s := <-c.uniStreams:
		return c.wrap(s), nil
	}
}

// OpenStreamSync implements moqsub.Connection.
func (c *connection) OpenStreamSync(ctx context.Context) (moqsub.Stream, error) {
	s, err := c.conn.NewStream(ctx)
	if err != nil {
		return nil, err
	}
	return c.wrap(s), nil
}

// OpenUniStreamSync implements moqsub.Connection.
func (c *connection) OpenUniStreamSync(ctx context.Context) (moqsub.SendStream, error) {
	s, err := c.conn.NewSendOnlyStream(ctx)
	if err != nil {
		return nil, err
	}
	return c.wrap(s), nil
}

// SendDatagram implements moqsub.Connection. x/net/quic does not support
// datagrams.
func (*connection) SendDatagram([]byte) error {
	return errors.ErrUnsupported
}

// ReceiveDatagram implements moqsub.Connection. x/net/quic does not
// support datagrams.
func (*connection) ReceiveDatagram(context.Context) ([]byte, error) {
	return nil, errors.ErrUnsupported
}

// CloseWithError implements moqsub.Connection.
func (c *connection) CloseWithError(code uint64, reason string) error {
	c.cancelCtx()
	c.conn.Abort(&quic.ApplicationError{
		Code:   code,
		Reason: reason,
	})
	return c.conn.Wait(context.TODO())
}

func (c *connection) Context() context.Context {
	return c.ctx
}
