package chunk_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpart"
	"github.com/calebcase/bitpart/chunk"
)

func TestPartDecode(t *testing.T) {
	p := chunk.MustPart4(6,
		chunk.Byte(),
		chunk.Bytes(2),
		chunk.Fixed[[2]byte](),
		chunk.Skip(1),
	)

	require.Equal(t, 6, p.Size())
	require.Equal(t, []int{1, 2, 2, 1}, p.Sizes())

	a, b, c, _, err := p.Decode(data)
	require.NoError(t, err)
	t.Logf("Decode: %s", spew.Sdump(a, b, c))

	require.Equal(t, byte(0x00), a)
	require.Equal(t, []byte{0x11, 0x22}, b)
	require.Equal(t, [2]byte{0x33, 0x44}, c)

	_, _, _, _, err = p.Decode(data[:5])
	require.True(t, bitpart.LengthError.Has(err), "%+v", err)
}

func TestPartTake(t *testing.T) {
	p := chunk.MustPart3(5, chunk.Byte(), chunk.Copy(2), chunk.Bytes(2))

	seq, err := p.Take(data)
	require.NoError(t, err)

	a, b, c := seq.Head.Values()
	require.Equal(t, byte(0x00), a)
	require.Equal(t, []byte{0x11, 0x22}, b)
	require.Equal(t, []byte{0x33, 0x44}, c)
	require.Equal(t, []byte{0x55}, seq.Tail)
	require.Equal(t, p.Size(), seq.Consumed(len(data)))

	_, err = p.Take(data[:2])
	require.True(t, bitpart.LengthError.Has(err), "%+v", err)
}

func TestPartAppend(t *testing.T) {
	p := chunk.MustPart4(6,
		chunk.Byte(),
		chunk.Bytes(2),
		chunk.Fixed[[2]byte](),
		chunk.Skip(1),
	)

	out := p.Append([]byte{0xaa}, 0x00, []byte{0x11, 0x22}, [2]byte{0x33, 0x44}, struct{}{})
	require.Equal(t, []byte{0xaa, 0x00, 0x11, 0x22, 0x33, 0x44, 0x00}, out)

	a, b, c, _, err := p.Decode(out[1:])
	require.NoError(t, err)
	require.Equal(t, out[1:6], append(append([]byte{a}, b...), c[:]...))
}

func TestPartWidthMismatch(t *testing.T) {
	_, err := chunk.NewPart3(6, chunk.Byte(), chunk.Bytes(2), chunk.Bytes(2))
	require.True(t, bitpart.WidthError.Has(err), "%+v", err)

	_, err = chunk.NewPart2(2, chunk.Byte(), chunk.Bytes(2))
	require.True(t, bitpart.WidthError.Has(err), "%+v", err)

	require.Panics(t, func() {
		chunk.MustPart1(2, chunk.Byte())
	})
}

func TestPartChain(t *testing.T) {
	// Thirty one byte fields: more than one descriptor holds.
	buf := make([]byte, 30)
	for i := range buf {
		buf[i] = byte(i)
	}

	b := chunk.Byte()
	first := chunk.MustPart26(26,
		b, b, b, b, b, b, b, b, b, b,
		b, b, b, b, b, b, b, b, b, b,
		b, b, b, b, b, b,
	)
	second := chunk.MustPart4(4, b, b, b, b)

	s1, err := first.Take(buf)
	require.NoError(t, err)
	require.Equal(t, byte(0), s1.Head.A)
	require.Equal(t, byte(25), s1.Head.Z)

	s2, err := second.Take(s1.Tail)
	require.NoError(t, err)
	require.Empty(t, s2.Tail)

	w, x, y, z := s2.Head.Values()
	require.Equal(t, []byte{26, 27, 28, 29}, []byte{w, x, y, z})
}

func TestPartNilDecode(t *testing.T) {
	_, err := chunk.NewPart1(1, chunk.Field[byte]{Size: 1})
	require.True(t, bitpart.Error.Has(err), "%+v", err)

	_, err = chunk.NewPart2(3, chunk.Byte(), chunk.Map[uint16](2, nil, nil))
	require.True(t, bitpart.Error.Has(err), "%+v", err)

	require.Panics(t, func() {
		chunk.MustPart2(2, chunk.Byte(), chunk.Field[byte]{Size: 1})
	})

	// Encode may be nil: such fields append as zero bytes.
	p, err := chunk.NewPart1(2, chunk.Map(2, func(b []byte) int { return len(b) }, nil))
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0}, p.Append(nil, 7))
}
