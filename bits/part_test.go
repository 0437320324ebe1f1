package bits_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpart"
	"github.com/calebcase/bitpart/bits"
	"github.com/calebcase/bitpart/coerce"
)

const u32 uint32 = 0b1111_1111_0101_1010_1100_0011_1000_0001

type Fear int

const (
	Freeze Fear = iota
	Run
)

type Num uint8

const (
	One Num = iota
	Two
	Three
	Four
)

// Speed is decoded through UnmarshalRaw.
type Speed struct {
	Mbps int
}

func (s *Speed) UnmarshalRaw(raw uint64) {
	s.Mbps = []int{10, 100, 1000, 10000}[raw&0b11]
}

func (s Speed) MarshalRaw() uint64 {
	switch s.Mbps {
	case 100:
		return 1
	case 1000:
		return 2
	case 10000:
		return 3
	}

	return 0
}

func TestPartLsbOrder(t *testing.T) {
	p := bits.MustPart3[uint16](bits.LSB0,
		bits.Uint[uint8](7),
		bits.Bool(1),
		bits.Uint[uint8](8),
	)

	a, b, c := p.Split(0b1111_0000_1100_1010)
	t.Logf("Split: %s", spew.Sdump(a, b, c))

	require.Equal(t, uint8(0b100_1010), a)
	require.True(t, b)
	require.Equal(t, uint8(0xf0), c)
	require.Equal(t, []int{7, 1, 8}, p.Widths())
	require.Equal(t, bits.LSB0, p.Numbering())
}

func TestPartWideTargets(t *testing.T) {
	p := bits.MustPart4[uint32](bits.LSB0,
		bits.Uint[uint16](15),
		bits.Bool(1),
		bits.Uint[uint8](2),
		bits.Reserved(14),
	)

	a, b, c, _ := p.Split(u32)
	require.Equal(t, uint16(0b100_0011_1000_0001), a)
	require.True(t, b)
	require.Equal(t, uint8(0b10), c)

	// Targets wider than the field are fine too.
	q := bits.MustPart3[uint16](bits.LSB0,
		bits.Uint[uint64](7),
		bits.Bool(1),
		bits.Uint[uint8](8),
	)

	x, _, _ := q.Split(0b1111_0000_1100_1010)
	require.Equal(t, uint64(0b100_1010), x)
}

func TestPartMsbOrder(t *testing.T) {
	p := bits.MustPart4[uint32](bits.MSB0,
		bits.Uint[uint16](15),
		bits.Bool(1),
		bits.Uint[uint8](2),
		bits.Reserved(14),
	)

	a, b, c, _ := p.Split(u32)
	require.Equal(t, uint16(0b1111_1111_0101_101), a)
	require.False(t, b)
	require.Equal(t, uint8(0b11), c)

	q := bits.MustPart3[uint16](bits.MSB0,
		bits.Uint[uint16](4),
		bits.Uint[uint32](10),
		bits.Uint[uint64](2),
	)

	x, y, z := q.Split(0b1011_0000_0000_1011)
	require.Equal(t, uint16(11), x)
	require.Equal(t, uint32(2), y)
	require.Equal(t, uint64(3), z)
}

func TestPartReserved(t *testing.T) {
	p := bits.MustPart3[uint16](bits.LSB0,
		bits.Uint[uint8](4),
		bits.Reserved(11),
		bits.Bool(1),
	)

	a, void, b := p.Split(0b1111_0000_0000_1011)
	require.Equal(t, uint8(0b1011), a)
	require.Equal(t, coerce.Void{}, void)
	require.True(t, b)

	// Reserved bits join as zero.
	require.Equal(t, uint16(0b1000_0000_0000_1011), p.Join(a, void, b))
}

func TestPartUserTypes(t *testing.T) {
	fear := func(b bool) Fear {
		if b {
			return Run
		}

		return Freeze
	}

	p := bits.MustPart4[uint8](bits.LSB0,
		bits.Map(1, coerce.FromBool(fear), nil),
		bits.Uint[Num](2),
		bits.Bool(1),
		bits.Uint[uint8](4),
	)

	f, n, b, u := p.Split(0b0101_0101)
	require.Equal(t, Run, f)
	require.Equal(t, Three, n)
	require.False(t, b)
	require.Equal(t, uint8(0b0101), u)

	q := bits.MustPart2[uint8](bits.MSB0,
		bits.Custom[Speed](2),
		bits.Reserved(6),
	)

	s, _ := q.Split(0b1000_0000)
	require.Equal(t, Speed{1000}, s)
	require.Equal(t, uint8(0b1000_0000), q.Join(s, coerce.Void{}))
}

func TestPartSigned(t *testing.T) {
	p := bits.MustPart3[uint16](bits.LSB0,
		bits.Int[int8](4),
		bits.Int[int8](4),
		bits.Zigzag[int16](8),
	)

	lo, hi, z := p.Split(0b0000_0011_1111_0111)
	require.Equal(t, int8(7), lo)
	require.Equal(t, int8(-1), hi)
	require.Equal(t, int16(-1), z)

	require.Equal(t, uint16(0b0000_0011_1111_0111), p.Join(lo, hi, z))
}

func TestPartFullWidth(t *testing.T) {
	for _, n := range []bits.Numbering{bits.LSB0, bits.MSB0} {
		t.Run(n.String(), func(t *testing.T) {
			p := bits.MustPart1[uint64](n, bits.Uint[uint64](64))
			require.Equal(t, uint64(0xdead_beef_0bad_f00d), p.Split(0xdead_beef_0bad_f00d))
			require.Equal(t, uint64(0xdead_beef_0bad_f00d), p.Join(0xdead_beef_0bad_f00d))
		})
	}
}

func TestPartWidthMismatch(t *testing.T) {
	_, err := bits.NewPart3[uint16](bits.LSB0, bits.Uint[uint8](7), bits.Bool(1), bits.Uint[uint8](7))
	require.True(t, bitpart.WidthError.Has(err), "%+v", err)

	_, err = bits.NewPart3[uint16](bits.MSB0, bits.Uint[uint8](7), bits.Bool(1), bits.Uint[uint16](9))
	require.True(t, bitpart.WidthError.Has(err), "%+v", err)

	_, err = bits.NewPart1[uint8](bits.Numbering(9), bits.Uint[uint8](8))
	require.True(t, bits.Error.Has(err), "%+v", err)

	require.Panics(t, func() {
		bits.MustPart2[uint8](bits.LSB0, bits.Bool(1), bits.Uint[uint8](8))
	})
}

func TestPartMaxArity(t *testing.T) {
	b := bits.Bool(1)
	r := bits.Reserved(64 - 25)

	p := bits.MustPart26[uint64](bits.MSB0,
		b, b, b, b, b, b, b, b, b, b,
		b, b, b, b, b, b, b, b, b, b,
		b, b, b, b, b, r,
	)

	v1, v2, _, _, _, _, _, _, _, _,
		_, _, _, _, _, _, _, _, _, _,
		_, _, _, _, v25, _ := p.Split(1<<63 | 1<<39)

	require.True(t, v1)
	require.False(t, v2)
	require.True(t, v25)
}

func TestPartNilCoerce(t *testing.T) {
	_, err := bits.NewPart2[uint8](bits.LSB0, bits.Map[uint8](3, nil, nil), bits.Uint[uint8](5))
	require.True(t, bits.Error.Has(err), "%+v", err)

	_, err = bits.NewPart1[uint8](bits.MSB0, bits.Field[bool]{Width: 8})
	require.True(t, bits.Error.Has(err), "%+v", err)

	require.Panics(t, func() {
		bits.MustPart2[uint8](bits.LSB0, bits.Bool(1), bits.Field[uint8]{Width: 7})
	})

	// Raw may be nil: such fields join as zero.
	p, err := bits.NewPart1[uint8](bits.LSB0, bits.Map[uint8](8, coerce.Uint[uint8], nil))
	require.NoError(t, err)
	require.Equal(t, uint8(0), p.Join(0xff))
}
