package audioctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFourCC(t *testing.T) {
	assert.Equal(t, uint32(0x64496E20), fourCC("dIn "))
	assert.Equal(t, uint32(0x644F7574), fourCC("dOut"))
	assert.Equal(t, uint32(0x676C6F62), fourCC("glob"))
}

func TestUint32Codec(t *testing.T) {
	data := encodeUint32(0xDEADBEEF)
	require.Len(t, data, 4)

	v, ok := decodeUint32(data)
	require.True(t, ok)
	assert.Equal(t, uint32(0xDEADBEEF), v)

	_, ok = decodeUint32([]byte{1, 2})
	assert.False(t, ok)
}

func TestUint32SliceCodec(t *testing.T) {
	data := append(encodeUint32(3), encodeUint32(9)...)
	assert.Equal(t, []uint32{3, 9}, decodeUint32Slice(data))

	// a trailing partial word is ignored
	assert.Equal(t, []uint32{3}, decodeUint32Slice(append(encodeUint32(3), 0xFF)))

	assert.Empty(t, decodeUint32Slice(nil))
}

func TestFloat32Codec(t *testing.T) {
	data := encodeFloat32(0.37)
	require.Len(t, data, 4)

	v, ok := decodeFloat32(data)
	require.True(t, ok)
	assert.InDelta(t, 0.37, v, 0.000001)

	_, ok = decodeFloat32(nil)
	assert.False(t, ok)
}

func TestStatusOK(t *testing.T) {
	assert.True(t, StatusOK.OK())
	assert.False(t, Status(-50).OK())
	assert.False(t, statusUnknownProperty.OK())
}
