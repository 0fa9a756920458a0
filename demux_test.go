package moqsub

import (
	"bytes"
	"testing"
	"time"

	"github.com/moqlive/moqsub/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newDemuxSession builds a session with just the parts the data plane
// touches, without a connection or control stream.
func newDemuxSession(opts sessionOptions) *Session {
	return &Session{
		logger:   defaultLogger,
		registry: newTrackRegistry(defaultLogger),
		opts:     opts,
		closed:   make(chan struct{}),
	}
}

func subgroupStreamBytes(alias, group uint64, priority uint8, payloads ...string) []byte {
	h := &wire.SubgroupHeaderMessage{
		StreamType:        wire.StreamTypeSubgroupZero,
		TrackAlias:        alias,
		GroupID:           group,
		PublisherPriority: priority,
	}
	buf := h.Append(nil)
	for i, p := range payloads {
		om := &wire.ObjectMessage{
			ObjectID:      uint64(i),
			ObjectPayload: []byte(p),
		}
		buf = om.AppendSubgroup(buf, false)
	}
	return buf
}

func objectIDs(objects []Object) []uint64 {
	ids := make([]uint64, 0, len(objects))
	for _, o := range objects {
		ids = append(ids, o.ObjectID)
	}
	return ids
}

func TestStreamBridge(t *testing.T) {
	t.Run("delivers_to_registered_track", func(t *testing.T) {
		opts := defaultSessionOptions()
		s := newDemuxSession(opts)
		e := s.registry.register([]string{"live"}, "video", 0)
		var got []Object
		s.registry.addCallback(e.alias, func(o Object) { got = append(got, o) })

		b := s.newStreamBridge(e.alias, nil)
		assert.True(t, b.deliver(&Object{ObjectID: 0}))
		assert.True(t, b.deliver(&Object{ObjectID: 1}))
		assert.Equal(t, []uint64{0, 1}, objectIDs(got))
	})

	t.Run("flushes_pending_in_arrival_order", func(t *testing.T) {
		opts := defaultSessionOptions()
		opts.retryInterval = time.Hour
		s := newDemuxSession(opts)
		defer close(s.closed)

		b := s.newStreamBridge(7, nil)
		assert.True(t, b.deliver(&Object{ObjectID: 0}))
		assert.True(t, b.deliver(&Object{ObjectID: 1}))

		e, ok := s.registry.adopt([]string{"live"}, "video", 7, 0, nil)
		require.True(t, ok)
		var got []Object
		s.registry.addCallback(e.alias, func(o Object) { got = append(got, o) })

		assert.True(t, b.deliver(&Object{ObjectID: 2}))
		assert.Equal(t, []uint64{0, 1, 2}, objectIDs(got))
	})

	t.Run("retry_flushes_once_track_appears", func(t *testing.T) {
		opts := defaultSessionOptions()
		opts.retryInterval = 5 * time.Millisecond
		opts.retryAttempts = 100
		s := newDemuxSession(opts)

		b := s.newStreamBridge(7, nil)
		assert.True(t, b.deliver(&Object{ObjectID: 0}))

		got := make(chan Object, 1)
		e, ok := s.registry.adopt([]string{"live"}, "video", 7, 0, nil)
		require.True(t, ok)
		s.registry.addCallback(e.alias, func(o Object) { got <- o })

		select {
		case o := <-got:
			assert.EqualValues(t, 0, o.ObjectID)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for buffered object")
		}
	})

	t.Run("drops_oldest_on_buffer_overflow", func(t *testing.T) {
		opts := defaultSessionOptions()
		opts.retryInterval = time.Hour
		opts.pendingBufferSize = 3
		s := newDemuxSession(opts)
		defer close(s.closed)

		b := s.newStreamBridge(7, nil)
		for i := 0; i < 5; i++ {
			assert.True(t, b.deliver(&Object{ObjectID: uint64(i)}))
		}

		e, ok := s.registry.adopt([]string{"live"}, "video", 7, 0, nil)
		require.True(t, ok)
		var got []Object
		s.registry.addCallback(e.alias, func(o Object) { got = append(got, o) })

		assert.True(t, b.deliver(&Object{ObjectID: 5}))
		assert.Equal(t, []uint64{2, 3, 4, 5}, objectIDs(got))
	})

	t.Run("keeps_newest_fifty_at_default_capacity", func(t *testing.T) {
		opts := defaultSessionOptions()
		opts.retryInterval = time.Hour
		s := newDemuxSession(opts)
		defer close(s.closed)

		b := s.newStreamBridge(7, nil)
		for i := 0; i < 60; i++ {
			assert.True(t, b.deliver(&Object{ObjectID: uint64(i)}))
		}

		e, ok := s.registry.adopt([]string{"live"}, "video", 7, 0, nil)
		require.True(t, ok)
		var got []Object
		s.registry.addCallback(e.alias, func(o Object) { got = append(got, o) })

		assert.True(t, b.deliver(&Object{ObjectID: 60}))
		require.Len(t, got, 51)
		assert.Equal(t, uint64(10), got[0].ObjectID)
		assert.Equal(t, uint64(60), got[50].ObjectID)
	})

	t.Run("fails_after_retry_budget", func(t *testing.T) {
		opts := defaultSessionOptions()
		opts.retryInterval = 2 * time.Millisecond
		opts.retryAttempts = 2
		s := newDemuxSession(opts)

		stopped := make(chan struct{})
		b := s.newStreamBridge(7, func() { close(stopped) })
		assert.True(t, b.deliver(&Object{ObjectID: 0}))

		select {
		case <-stopped:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for the bridge to give up")
		}
		assert.False(t, b.deliver(&Object{ObjectID: 1}))
	})

	t.Run("discards_quietly_on_session_close", func(t *testing.T) {
		opts := defaultSessionOptions()
		opts.retryInterval = 20 * time.Millisecond
		s := newDemuxSession(opts)

		stopped := make(chan struct{})
		b := s.newStreamBridge(7, func() { close(stopped) })
		assert.True(t, b.deliver(&Object{ObjectID: 0}))
		close(s.closed)

		select {
		case <-stopped:
			t.Fatal("bridge must not stop the stream during shutdown")
		case <-time.After(100 * time.Millisecond):
		}
	})
}

func TestDispatchCallbacksPanicIsolation(t *testing.T) {
	s := newDemuxSession(defaultSessionOptions())
	e := s.registry.register([]string{"live"}, "video", 0)
	var reached bool
	s.registry.addCallback(e.alias, func(Object) { panic("boom") })
	s.registry.addCallback(e.alias, func(Object) { reached = true })

	s.dispatchCallbacks(s.registry.callbacksFor(e.alias), &Object{})
	assert.True(t, reached)
}

func TestObjectFromMessage(t *testing.T) {
	o := objectFromMessage(&wire.ObjectMessage{
		TrackAlias:        5,
		GroupID:           2,
		SubgroupID:        1,
		ObjectID:          9,
		PublisherPriority: 3,
		ExtensionHeaders:  []byte{0xaa},
		ObjectStatus:      wire.ObjectStatusEndOfGroup,
		ObjectPayload:     []byte("abc"),
	})
	assert.Equal(t, &Object{
		TrackAlias:        5,
		GroupID:           2,
		SubgroupID:        1,
		ObjectID:          9,
		PublisherPriority: 3,
		Extensions:        []byte{0xaa},
		Status:            ObjectStatusEndOfGroup,
		Payload:           []byte("abc"),
	}, o)
}

func TestHandleUniStream(t *testing.T) {
	t.Run("delivers_subgroup_objects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := newDemuxSession(defaultSessionOptions())
		e, ok := s.registry.adopt([]string{"live"}, "video", 11, 0, nil)
		require.True(t, ok)
		var got []Object
		s.registry.addCallback(e.alias, func(o Object) { got = append(got, o) })

		r := bytes.NewReader(subgroupStreamBytes(11, 4, 2, "a", "b", "c"))
		rs := NewMockReceiveStream(ctrl)
		rs.EXPECT().Read(gomock.Any()).DoAndReturn(r.Read).AnyTimes()
		rs.EXPECT().StreamID().Return(uint64(3)).AnyTimes()

		s.handleUniStream(rs)

		require.Len(t, got, 3)
		assert.Equal(t, []uint64{0, 1, 2}, objectIDs(got))
		for i, o := range got {
			assert.EqualValues(t, 11, o.TrackAlias)
			assert.EqualValues(t, 4, o.GroupID)
			assert.EqualValues(t, 0, o.SubgroupID)
			assert.EqualValues(t, 2, o.PublisherPriority)
			assert.Equal(t, []byte{"abc"[i]}, o.Payload)
		}
	})

	t.Run("ignores_fetch_streams", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := newDemuxSession(defaultSessionOptions())

		header := (&wire.FetchHeaderMessage{RequestID: 77}).Append(nil)
		r := bytes.NewReader(header)
		rs := NewMockReceiveStream(ctrl)
		rs.EXPECT().Read(gomock.Any()).DoAndReturn(r.Read).AnyTimes()
		rs.EXPECT().StreamID().Return(uint64(7)).AnyTimes()
		rs.EXPECT().Stop(uint32(0))

		s.handleUniStream(rs)
	})

	t.Run("stops_streams_with_unusable_header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := newDemuxSession(defaultSessionOptions())

		r := bytes.NewReader([]byte{0x41}) // truncated type varint
		rs := NewMockReceiveStream(ctrl)
		rs.EXPECT().Read(gomock.Any()).DoAndReturn(r.Read).AnyTimes()
		rs.EXPECT().StreamID().Return(uint64(9)).AnyTimes()
		rs.EXPECT().Stop(uint32(0))

		s.handleUniStream(rs)
	})

	t.Run("stops_truncated_streams", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := newDemuxSession(defaultSessionOptions())
		e, ok := s.registry.adopt([]string{"live"}, "video", 11, 0, nil)
		require.True(t, ok)
		var got []Object
		s.registry.addCallback(e.alias, func(o Object) { got = append(got, o) })

		buf := subgroupStreamBytes(11, 4, 2, "a")
		om := &wire.ObjectMessage{ObjectID: 1, ObjectPayload: []byte("bc")}
		buf = om.AppendSubgroup(buf, false)
		buf = buf[:len(buf)-1] // cut the last payload byte

		r := bytes.NewReader(buf)
		rs := NewMockReceiveStream(ctrl)
		rs.EXPECT().Read(gomock.Any()).DoAndReturn(r.Read).AnyTimes()
		rs.EXPECT().StreamID().Return(uint64(3)).AnyTimes()
		rs.EXPECT().Stop(uint32(0))

		s.handleUniStream(rs)

		// The complete first object was delivered, the truncated one was
		// not.
		assert.Equal(t, []uint64{0}, objectIDs(got))
	})
}
