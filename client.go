package moqsub

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"

	"github.com/quic-go/quic-go"
	"github.com/quic-go/webtransport-go"
)

// Dial connects to a MoQ publisher and runs the setup handshake.
// Addresses with the https scheme use WebTransport, addresses with the
// moqt scheme use raw QUIC with the URL path carried as a setup parameter.
func Dial(ctx context.Context, addr string, options ...Option) (*Session, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "https":
		return DialWebTransport(ctx, addr, options...)
	case "moqt":
		return DialQUIC(ctx, addr, options...)
	default:
		return nil, fmt.Errorf("unsupported URL scheme: %v", u.Scheme)
	}
}

// DialQUIC connects over raw QUIC using the moq-00 ALPN.
func DialQUIC(ctx context.Context, addr string, options ...Option) (*Session, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return nil, err
	}
	o := defaultSessionOptions()
	for _, opt := range options {
		opt(&o)
	}
	tlsConf := o.tlsConfig
	if tlsConf == nil {
		tlsConf = &tls.Config{}
	}
	if len(tlsConf.NextProtos) == 0 {
		tlsConf = tlsConf.Clone()
		tlsConf.NextProtos = []string{"moq-00"}
	}
	quicConf := o.quicConfig
	if quicConf == nil {
		quicConf = &quic.Config{
			EnableDatagrams: true,
		}
	}
	conn, err := quic.DialAddrEarly(ctx, u.Host, tlsConf, quicConf)
	if err != nil {
		return nil, err
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	return NewSession(ctx, NewQUICConnection(conn), append(options, WithPath(path))...)
}

// DialWebTransport connects with an extended CONNECT request to addr. The
// path is part of the request, it is not repeated in the setup parameters.
func DialWebTransport(ctx context.Context, addr string, options ...Option) (*Session, error) {
	o := defaultSessionOptions()
	for _, opt := range options {
		opt(&o)
	}
	quicConf := o.quicConfig
	if quicConf == nil {
		quicConf = &quic.Config{
			EnableDatagrams: true,
		}
	}
	d := webtransport.Dialer{
		TLSClientConfig: o.tlsConfig,
		QUICConfig:      quicConf,
	}
	_, session, err := d.Dial(ctx, addr, nil)
	if err != nil {
		return nil, err
	}
	return NewSession(ctx, NewWebTransportConnection(session), options...)
}
