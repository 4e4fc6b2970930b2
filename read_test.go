package endio

import (
	"bytes"
	"io"
	"math"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadUint16BothOrders(t *testing.T) {
	data := []byte{0xba, 0xad}

	be, err := ReadBE[uint16](bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint16(0xbaad), be)

	le, err := ReadLE[uint16](bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint16(0xadba), le)
}

func TestReadSingleByteTypes(t *testing.T) {
	// Single-byte types decode identically under both orders.
	u8, err := ReadBE[uint8](bytes.NewReader([]byte{0xff}))
	require.NoError(t, err)
	assert.Equal(t, uint8(0xff), u8)

	u8, err = ReadLE[uint8](bytes.NewReader([]byte{0xff}))
	require.NoError(t, err)
	assert.Equal(t, uint8(0xff), u8)

	i8, err := ReadBE[int8](bytes.NewReader([]byte{0x80}))
	require.NoError(t, err)
	assert.Equal(t, int8(math.MinInt8), i8)

	i8, err = ReadLE[int8](bytes.NewReader([]byte{0x80}))
	require.NoError(t, err)
	assert.Equal(t, int8(math.MinInt8), i8)
}

func TestReadBool(t *testing.T) {
	tests := []struct {
		name string
		data byte
		want bool
	}{
		{"zero is false", 0x00, false},
		{"one is true", 0x01, true},
		{"any nonzero is true", 0x2a, true},
		{"high bit is true", 0x80, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be, err := ReadBE[bool](bytes.NewReader([]byte{tt.data}))
			require.NoError(t, err)
			assert.Equal(t, tt.want, be)

			le, err := ReadLE[bool](bytes.NewReader([]byte{tt.data}))
			require.NoError(t, err)
			assert.Equal(t, tt.want, le)
		})
	}
}

func TestReadFloat32(t *testing.T) {
	data := []byte{0x44, 0x20, 0xa7, 0x44}

	be, err := ReadBE[float32](bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, float32(642.613525390625), be)

	le, err := ReadLE[float32](bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, math.Float32frombits(0x44a72044), le)
}

func TestReadFloat64(t *testing.T) {
	data := []byte{0x40, 0x94, 0x7a, 0x14, 0xae, 0xe5, 0x94, 0x40}

	be, err := ReadBE[float64](bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1310.5201984283194, be)

	le, err := ReadLE[float64](bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1337.4199999955163, le)
}

// TestReadMixedEndianSession reads a little-endian payload whose last field
// is big-endian, forcing the order for that one call only.
func TestReadMixedEndianSession(t *testing.T) {
	r := bytes.NewReader([]byte{0x2a, 0x01, 0x2c, 0xf3, 0xfe, 0xcf})

	a, err := ReadLE[uint8](r)
	require.NoError(t, err)
	b, err := ReadLE[bool](r)
	require.NoError(t, err)
	c, err := ReadBE[uint32](r)
	require.NoError(t, err)

	assert.Equal(t, uint8(42), a)
	assert.Equal(t, true, b)
	assert.Equal(t, uint32(754187983), c)
}

// TestReadForcedOrderIndependence checks that forcing an order for one call
// leaves the next default-order call untouched.
func TestReadForcedOrderIndependence(t *testing.T) {
	r := bytes.NewReader([]byte{0xba, 0xad, 0xba, 0xad})

	forced, err := ReadBE[uint16](r)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xbaad), forced)

	// The bound order is little endian; the forced big-endian read above
	// must not have changed it.
	bound, err := Read[uint16, LittleEndian](r)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xadba), bound)
}

func TestReadIPv4(t *testing.T) {
	addr := netip.MustParseAddr("192.168.0.1")

	be, err := ReadBE[netip.Addr](bytes.NewReader([]byte{0xc0, 0xa8, 0x00, 0x01}))
	require.NoError(t, err)
	assert.Equal(t, addr, be)

	le, err := ReadLE[netip.Addr](bytes.NewReader([]byte{0x01, 0x00, 0xa8, 0xc0}))
	require.NoError(t, err)
	assert.Equal(t, addr, le)
}

func TestReadShortStream(t *testing.T) {
	_, err := ReadBE[uint32](bytes.NewReader([]byte{0x01, 0x02}))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = ReadLE[uint64](bytes.NewReader(nil))
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadIntoExistingSlice(t *testing.T) {
	// The destination's length is the bound; no length prefix is read.
	data := []byte{0x11, 0x22, 0x33, 0x44}
	dst := make([]uint16, 2)

	require.NoError(t, ReadInto[BigEndian](bytes.NewReader(data), &dst))
	assert.Equal(t, []uint16{0x1122, 0x3344}, dst)
}

func TestReadSliceNonByteElements(t *testing.T) {
	data := []byte{0x22, 0x11, 0x44, 0x33, 0x66, 0x55}

	s, err := ReadSlice[uint16, LittleEndian](bytes.NewReader(data), 3)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0x1122, 0x3344, 0x5566}, s)
}

func TestReadSliceNegativeCount(t *testing.T) {
	_, err := ReadSlice[uint16, LittleEndian](bytes.NewReader(nil), -1)
	assert.Error(t, err)
}

func TestReadUnsupportedTypes(t *testing.T) {
	_, err := ReadBE[int](bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = ReadBE[string](bytes.NewReader([]byte{1}))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = ReadBE[map[string]int](bytes.NewReader([]byte{1}))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
