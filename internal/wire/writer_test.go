package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterPrimitivesRoundTrip(t *testing.T) {
	w := NewWriter(64)
	w.U8(0xAB)
	w.I8(-1)
	w.U16(0xBEEF)
	w.I16(-2)
	w.U32(0xDEADBEEF)
	w.I32(-3)
	w.U64(0x0102030405060708)
	w.I64(-4)
	w.Bool(true)
	w.Bool(false)

	r := NewReader(w.Bytes())
	u8, err := r.U8()
	require.NoError(t, err)
	require.EqualValues(t, 0xAB, u8)

	i8, err := r.I8()
	require.NoError(t, err)
	require.EqualValues(t, -1, i8)

	u16, err := r.U16()
	require.NoError(t, err)
	require.EqualValues(t, 0xBEEF, u16)

	i16, err := r.I16()
	require.NoError(t, err)
	require.EqualValues(t, -2, i16)

	u32, err := r.U32()
	require.NoError(t, err)
	require.EqualValues(t, 0xDEADBEEF, u32)

	i32, err := r.I32()
	require.NoError(t, err)
	require.EqualValues(t, -3, i32)

	u64, err := r.U64()
	require.NoError(t, err)
	require.EqualValues(t, 0x0102030405060708, u64)

	i64, err := r.I64()
	require.NoError(t, err)
	require.EqualValues(t, -4, i64)

	b1, err := r.Bool()
	require.NoError(t, err)
	require.True(t, b1)

	b2, err := r.Bool()
	require.NoError(t, err)
	require.False(t, b2)

	require.Equal(t, 0, r.Remaining())
}

func TestWriterZeroMatchesRepeatedU8Zero(t *testing.T) {
	a := NewWriter(16)
	a.Zero(5)

	b := NewWriter(16)
	for i := 0; i < 5; i++ {
		b.U8(0)
	}

	require.Equal(t, a.Bytes(), b.Bytes())
}

func TestWriterSizedStringNoTerminator(t *testing.T) {
	w := NewWriter(32)
	w.String("Hero")
	require.Equal(t, []byte{0x04, 0x00, 'H', 'e', 'r', 'o'}, w.Bytes())
}

func TestWriterOverrunPanics(t *testing.T) {
	w := NewWriter(1)
	require.Panics(t, func() {
		w.U16(1)
	})
}

func TestWriterLenNeverExceedsDeclaredCapacity(t *testing.T) {
	w := NewWriter(10)
	w.U32(1)
	w.U32(2)
	require.LessOrEqual(t, w.Len(), w.Cap())
	require.Equal(t, w.Len(), len(w.Bytes()))
}

func TestIEEEDoubleHighBitsPacking(t *testing.T) {
	// Worked example from the shop-open ammo scenario: IEEE-754 of 3.0 is
	// 4008 0000 0000 0000; the packed u16 unit price is the high 16 bits.
	bits := math.Float64bits(3.0)
	packed := uint16(bits >> 48)
	require.Equal(t, uint16(0x4008), packed)
}
