package integrationtests

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/binary"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"testing"
	"time"

	"github.com/moqlive/moqsub/internal/wire"
	"github.com/quic-go/quic-go"
	"github.com/quic-go/quic-go/quicvarint"
	"github.com/stretchr/testify/assert"
)

func listen(t *testing.T) (*quic.Listener, string, func()) {
	tlsConfig, err := generateTLSConfig()
	assert.NoError(t, err)
	listener, err := quic.ListenAddr("localhost:0", tlsConfig, &quic.Config{
		EnableDatagrams: true,
	})
	assert.NoError(t, err)
	addr := fmt.Sprintf("localhost:%v", listener.Addr().(*net.UDPAddr).Port)
	return listener, addr, func() {
		assert.NoError(t, listener.Close())
	}
}

func clientTLSConfig() *tls.Config {
	return &tls.Config{
		InsecureSkipVerify: true,
		NextProtos:         []string{"moq-00"},
	}
}

func dialQUIC(t *testing.T, addr string) quic.Connection {
	conn, err := quic.DialAddr(context.Background(), addr, clientTLSConfig(), &quic.Config{
		EnableDatagrams: true,
	})
	assert.NoError(t, err)
	return conn
}

// testPublisher is the remote end of the sessions under test. It accepts
// the QUIC connection and the control stream, answers the setup handshake
// and hands every further control message to the test via expectMessage.
// Data is produced with sendSubgroupStream and sendDatagram.
type testPublisher struct {
	t        *testing.T
	conn     quic.Connection
	control  quic.Stream
	messages chan wire.ControlMessage
	ready    chan struct{}
	done     chan struct{}

	// clientSetup is the setup message received during the handshake. It
	// is safe to read after waitReady returns.
	clientSetup *wire.ClientSetupMessage
}

func newTestPublisher(t *testing.T, ctx context.Context, listener *quic.Listener) *testPublisher {
	p := &testPublisher{
		t:        t,
		messages: make(chan wire.ControlMessage, 16),
		ready:    make(chan struct{}),
		done:     make(chan struct{}),
	}
	go p.run(ctx, listener)
	return p
}

func (p *testPublisher) run(ctx context.Context, listener *quic.Listener) {
	defer close(p.done)

	conn, err := listener.Accept(ctx)
	if !assert.NoError(p.t, err) {
		return
	}
	p.conn = conn
	defer conn.CloseWithError(0, "")

	control, err := conn.AcceptStream(ctx)
	if !assert.NoError(p.t, err) {
		return
	}
	p.control = control

	parser := wire.NewControlMessageParser(control)
	msg, err := parser.Parse()
	if !assert.NoError(p.t, err) {
		return
	}
	csm, ok := msg.(*wire.ClientSetupMessage)
	if !assert.True(p.t, ok, "expected client setup, got %v", msg.Type()) {
		return
	}
	assert.Contains(p.t, csm.SupportedVersions, wire.CurrentVersion)
	p.clientSetup = csm
	p.send(&wire.ServerSetupMessage{
		SelectedVersion: wire.CurrentVersion,
		SetupParameters: wire.KVPList{},
	})
	close(p.ready)

	for {
		msg, err := parser.Parse()
		if err != nil {
			return
		}
		p.messages <- msg
	}
}

// waitReady blocks until the setup handshake is done.
func (p *testPublisher) waitReady() {
	p.t.Helper()
	select {
	case <-p.ready:
	case <-time.After(5 * time.Second):
		p.t.Fatal("timed out waiting for the publisher handshake")
	}
}

// wait blocks until the publisher's goroutine has exited, so leak checks
// do not race its teardown.
func (p *testPublisher) wait() {
	p.t.Helper()
	select {
	case <-p.done:
	case <-time.After(5 * time.Second):
		p.t.Fatal("timed out waiting for the publisher to shut down")
	}
}

func (p *testPublisher) send(msg wire.ControlMessage) {
	p.t.Helper()
	_, err := p.control.Write(controlFrame(msg))
	assert.NoError(p.t, err)
}

func (p *testPublisher) expectMessage() wire.ControlMessage {
	p.t.Helper()
	select {
	case msg := <-p.messages:
		return msg
	case <-time.After(5 * time.Second):
		p.t.Fatal("timed out waiting for a control message")
		return nil
	}
}

func (p *testPublisher) expectSubscribe() *wire.SubscribeMessage {
	p.t.Helper()
	msg := p.expectMessage()
	sub, ok := msg.(*wire.SubscribeMessage)
	if !ok {
		p.t.Fatalf("expected subscribe, got %v", msg.Type())
	}
	return sub
}

func (p *testPublisher) sendSubscribeOK(requestID, trackAlias uint64) {
	p.t.Helper()
	p.send(&wire.SubscribeOkMessage{
		RequestID:  requestID,
		TrackAlias: trackAlias,
		GroupOrder: wire.GroupOrderAscending,
		Parameters: wire.KVPList{},
	})
}

func (p *testPublisher) sendSubgroupStream(trackAlias, groupID uint64, priority uint8, payloads ...string) {
	p.t.Helper()
	stream, err := p.conn.OpenUniStream()
	if !assert.NoError(p.t, err) {
		return
	}
	header := &wire.SubgroupHeaderMessage{
		StreamType:        wire.StreamTypeSubgroupZero,
		TrackAlias:        trackAlias,
		GroupID:           groupID,
		PublisherPriority: priority,
	}
	buf := header.Append(nil)
	for i, payload := range payloads {
		om := &wire.ObjectMessage{
			ObjectID:      uint64(i),
			ObjectPayload: []byte(payload),
		}
		buf = om.AppendSubgroup(buf, false)
	}
	_, err = stream.Write(buf)
	assert.NoError(p.t, err)
	assert.NoError(p.t, stream.Close())
}

func (p *testPublisher) sendDatagram(om *wire.ObjectMessage) {
	p.t.Helper()
	assert.NoError(p.t, p.conn.SendDatagram(om.AppendDatagram(nil)))
}

// controlFrame frames a control message: type varint, two big endian
// length bytes, body.
func controlFrame(msg wire.ControlMessage) []byte {
	buf := quicvarint.Append(nil, uint64(msg.Type()))
	lengthOffset := len(buf)
	buf = append(buf, 0x00, 0x00)
	buf = msg.Append(buf)
	binary.BigEndian.PutUint16(buf[lengthOffset:lengthOffset+2], uint16(len(buf)-lengthOffset-2))
	return buf
}

// Setup a bare-bones TLS config for the server
func generateTLSConfig() (*tls.Config, error) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		return nil, err
	}
	template := x509.Certificate{SerialNumber: big.NewInt(1)}
	certDER, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		return nil, err
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certDER})

	tlsCert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates: []tls.Certificate{tlsCert},
		NextProtos:   []string{"moq-00", "h3"},
	}, nil
}
