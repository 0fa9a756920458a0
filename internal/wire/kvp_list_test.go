package wire

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKVPListAppendNum(t *testing.T) {
	cases := []struct {
		pp     KVPList
		buf    []byte
		expect []byte
	}{
		{
			pp:     KVPList{},
			buf:    nil,
			expect: []byte{0x00},
		},
		{
			pp: KVPList{
				{Type: PathParameterKey, ValueBytes: []byte("A")},
			},
			buf:    nil,
			expect: []byte{0x01, 0x01, 0x01, 'A'},
		},
		{
			pp: KVPList{
				{Type: PathParameterKey, ValueBytes: []byte("A")},
				{Type: MaxRequestIDParameterKey, ValueVarInt: 10},
			},
			buf:    []byte{0xff},
			expect: []byte{0xff, 0x02, 0x01, 0x01, 'A', 0x02, 0x0a},
		},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%v", i), func(t *testing.T) {
			res := tc.pp.appendNum(tc.buf)
			assert.Equal(t, tc.expect, res)
		})
	}
}

func TestKVPListParseNum(t *testing.T) {
	cases := []struct {
		data   []byte
		expect KVPList
		n      int
		err    error
	}{
		{
			data:   []byte{0x00},
			expect: KVPList{},
			n:      1,
			err:    nil,
		},
		{
			data: []byte{0x02, 0x01, 0x01, 'A', 0x02, 0x0a},
			expect: KVPList{
				{Type: PathParameterKey, ValueBytes: []byte("A")},
				{Type: MaxRequestIDParameterKey, ValueVarInt: 10},
			},
			n:   6,
			err: nil,
		},
		{
			data:   []byte{0x01, 0x01, 0x05, 'A'},
			expect: KVPList{},
			n:      4,
			err:    errLengthMismatch,
		},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%v", i), func(t *testing.T) {
			res := KVPList{}
			n, err := res.parseNum(tc.data)
			assert.Equal(t, tc.n, n)
			if tc.err != nil {
				assert.Error(t, err)
				assert.Equal(t, tc.err, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expect, res)
			}
		})
	}
}

func TestKVPListGet(t *testing.T) {
	pp := KVPList{
		{Type: PathParameterKey, ValueBytes: []byte("/a")},
		{Type: MaxRequestIDParameterKey, ValueVarInt: 7},
	}
	p, ok := pp.Get(MaxRequestIDParameterKey)
	assert.True(t, ok)
	assert.Equal(t, uint64(7), p.ValueVarInt)

	_, ok = pp.Get(MaxAuthTokenCacheSizeParameterKey)
	assert.False(t, ok)
}
