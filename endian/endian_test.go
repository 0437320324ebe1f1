package endian_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpart"
	"github.com/calebcase/bitpart/chunk"
	"github.com/calebcase/bitpart/endian"
)

var data = []byte{
	0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
	0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
}

func TestOrder(t *testing.T) {
	b := []byte{0x11, 0x22}

	require.Equal(t, uint16(0x2211), endian.Decode[uint16](endian.Little, b))
	require.Equal(t, uint16(0x1122), endian.Decode[uint16](endian.Big, b))

	for _, o := range []endian.Order{endian.Little, endian.Big} {
		require.Equal(t, uint8(0x11), endian.Decode[uint8](o, b[:1]))

		parsed, err := endian.ParseOrder(o.String())
		require.NoError(t, err)
		require.Equal(t, o, parsed)
	}

	_, err := endian.ParseOrder("middle")
	require.True(t, endian.Error.Has(err), "%+v", err)
}

func TestUint(t *testing.T) {
	type TC struct {
		n  int
		le uint64
		be uint64
	}

	tcs := []TC{
		{n: 1, le: 0x00, be: 0x00},
		{n: 2, le: 0x1100, be: 0x0011},
		{n: 3, le: 0x221100, be: 0x001122},
		{n: 4, le: 0x33221100, be: 0x00112233},
		{n: 6, le: 0x554433221100, be: 0x001122334455},
		{n: 8, le: 0x7766554433221100, be: 0x0011223344556677},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprint(tc.n), func(t *testing.T) {
			require.Equal(t, tc.le, endian.Little.Uint(data[:tc.n]))
			require.Equal(t, tc.be, endian.Big.Uint(data[:tc.n]))

			b := make([]byte, tc.n)
			endian.Little.PutUint(b, tc.le)
			require.Equal(t, data[:tc.n], b)

			endian.Big.PutUint(b, tc.be)
			require.Equal(t, data[:tc.n], b)
		})
	}

	require.Panics(t, func() {
		endian.Little.Uint(data[:9])
	})
}

func TestDecodeWidth(t *testing.T) {
	require.Panics(t, func() {
		endian.Decode[uint32](endian.Big, data[:3])
	})
	require.Panics(t, func() {
		endian.Decode[uint32](endian.Big, data[:5])
	})
}

func TestTake(t *testing.T) {
	first, err := endian.Take[uint32](endian.Little, data[:6])
	require.NoError(t, err)
	require.Equal(t, uint32(0x33221100), first.Head)

	second, err := endian.Take[uint16](endian.Big, first.Tail)
	require.NoError(t, err)
	require.Equal(t, uint16(0x4455), second.Head)
	require.Empty(t, second.Tail)

	_, err = endian.Take[uint16](endian.Big, second.Tail)
	require.True(t, bitpart.LengthError.Has(err), "%+v", err)
}

func TestFillLittle(t *testing.T) {
	u8 := make([]uint8, 16)
	require.NoError(t, endian.Fill(endian.Little, u8, data))
	require.Equal(t, data, []byte(u8))

	u16 := make([]uint16, 8)
	require.NoError(t, endian.Fill(endian.Little, u16, data))
	require.Equal(t, []uint16{
		0x1100, 0x3322, 0x5544, 0x7766, 0x9988, 0xBBAA, 0xDDCC, 0xFFEE,
	}, u16)

	u32 := make([]uint32, 4)
	require.NoError(t, endian.Fill(endian.Little, u32, data))
	require.Equal(t, []uint32{0x33221100, 0x77665544, 0xBBAA9988, 0xFFEEDDCC}, u32)

	u64 := make([]uint64, 2)
	require.NoError(t, endian.Fill(endian.Little, u64, data))
	require.Equal(t, []uint64{0x7766554433221100, 0xFFEEDDCCBBAA9988}, u64)
}

func TestFillBig(t *testing.T) {
	u16 := make([]uint16, 8)
	require.NoError(t, endian.Fill(endian.Big, u16, data))
	require.Equal(t, []uint16{
		0x0011, 0x2233, 0x4455, 0x6677, 0x8899, 0xAABB, 0xCCDD, 0xEEFF,
	}, u16)

	u32 := make([]uint32, 4)
	require.NoError(t, endian.Fill(endian.Big, u32, data))
	require.Equal(t, []uint32{0x00112233, 0x44556677, 0x8899AABB, 0xCCDDEEFF}, u32)

	u64 := make([]uint64, 2)
	require.NoError(t, endian.Fill(endian.Big, u64, data))
	require.Equal(t, []uint64{0x0011223344556677, 0x8899AABBCCDDEEFF}, u64)
}

func TestFillShortChunk(t *testing.T) {
	dst := []uint32{1, 2}

	err := endian.Fill(endian.Little, dst, data[:6])
	require.True(t, bitpart.WidthError.Has(err), "%+v", err)
	require.Equal(t, []uint32{1, 2}, dst)

	err = endian.Fill(endian.Little, dst, data[:9])
	require.True(t, bitpart.WidthError.Has(err), "%+v", err)
}

func TestRaw(t *testing.T) {
	require.Equal(t, [2]byte{0x11, 0x22}, endian.Raw[[2]byte](endian.Little, data[1:3]))
	require.Equal(t, [2]byte{0x11, 0x22}, endian.Raw[[2]byte](endian.Big, data[1:3]))
}

func TestAppend(t *testing.T) {
	out := endian.Append(endian.Big, nil, uint16(0x0011))
	out = endian.Append(endian.Little, out, uint32(0x55443322))
	out = append(out, 0x66, 0x77)

	require.Equal(t, data[:8], out)
}

func TestMixedFields(t *testing.T) {
	hdr := chunk.MustPart3(8, endian.Be[uint16](), endian.Le[uint32](), chunk.Fixed[[2]byte]())

	a, b, c, err := hdr.Decode(data[:8])
	require.NoError(t, err)
	require.Equal(t, uint16(0x0011), a)
	require.Equal(t, uint32(0x55443322), b)
	require.Equal(t, [2]byte{0x66, 0x77}, c)

	require.Equal(t, data[:8], hdr.Append(nil, a, b, c))

	le := chunk.MustPart3(8, endian.Le[uint16](), endian.Le[uint32](), chunk.Fixed[[2]byte]())

	x, _, _, err := le.Decode(data[:8])
	require.NoError(t, err)
	require.Equal(t, uint16(0x1100), x)
}

func TestMixedArrays(t *testing.T) {
	p := chunk.MustPart2(8, endian.Elems[uint16](endian.Big, 2), endian.Elems[uint32](endian.Little, 1))

	a, b, err := p.Decode(data[:8])
	require.NoError(t, err)
	require.Equal(t, []uint16{0x0011, 0x2233}, a)
	require.Equal(t, []uint32{0x77665544}, b)

	require.Equal(t, data[:8], p.Append(nil, a, b))
}

func TestTakeFields(t *testing.T) {
	p := chunk.MustPart3(5, endian.Le[uint8](), endian.Le[uint16](), endian.Le[uint16]())

	seq, err := p.Take(data[:6])
	require.NoError(t, err)

	a, b, c := seq.Head.Values()
	require.Equal(t, uint8(0x00), a)
	require.Equal(t, uint16(0x2211), b)
	require.Equal(t, uint16(0x4433), c)
	require.Equal(t, []byte{0x55}, seq.Tail)

	_, err = chunk.NewPart3(6, endian.Le[uint8](), endian.Le[uint16](), endian.Le[uint16]())
	require.True(t, bitpart.WidthError.Has(err), "%+v", err)
}

type Kind uint16

const (
	KindData Kind = 0x0011
)

func TestMap(t *testing.T) {
	p := chunk.MustPart2(4, endian.BeMap(func(v uint16) Kind { return Kind(v) }), chunk.Skip(2))

	k, _, err := p.Decode(data[:4])
	require.NoError(t, err)
	require.Equal(t, KindData, k)

	q := chunk.MustPart1(2, endian.LeMap(func(v uint16) string { return fmt.Sprintf("%#04x", v) }))

	s, err := q.Decode(data[:2])
	require.NoError(t, err)
	require.Equal(t, "0x1100", s)
}
