package bits_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpart"
	"github.com/calebcase/bitpart/bits"
)

func TestLayoutSplit(t *testing.T) {
	type TC struct {
		n      bits.Numbering
		spans  []bits.Span
		v      uint32
		fields []uint64
	}

	tcs := []TC{
		{
			n:      bits.LSB0,
			spans:  []bits.Span{bits.W(15), bits.W(1), bits.W(2), bits.W(14)},
			v:      u32,
			fields: []uint64{0b100_0011_1000_0001, 1, 0b10, 0b1111_1111_0101_10},
		},
		{
			n:      bits.MSB0,
			spans:  []bits.Span{bits.W(15), bits.W(1), bits.W(2), bits.R(14)},
			v:      u32,
			fields: []uint64{0b1111_1111_0101_101, 0, 0b11},
		},
		{
			n:      bits.MSB0,
			spans:  []bits.Span{bits.R(8), bits.W(24)},
			v:      u32,
			fields: []uint64{0b0101_1010_1100_0011_1000_0001},
		},
		{
			n:      bits.LSB0,
			spans:  []bits.Span{bits.W(32)},
			v:      u32,
			fields: []uint64{uint64(u32)},
		},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%s/%v", tc.n, tc.spans), func(t *testing.T) {
			l := bits.MustLayout[uint32](tc.n, tc.spans...)
			require.Equal(t, len(tc.fields), l.Fields())

			fields := l.Split(tc.v)
			require.Equal(t, tc.fields, fields)

			dst := make([]uint64, 1)
			require.Equal(t, 1, l.SplitInto(tc.v, dst))
			require.Equal(t, tc.fields[0], dst[0])
		})
	}
}

func TestLayoutDiscard(t *testing.T) {
	full := bits.MustLayout[uint16](bits.LSB0, bits.W(4), bits.W(11), bits.W(1))
	some := bits.MustLayout[uint16](bits.LSB0, bits.W(4), bits.R(11), bits.W(1))

	const v uint16 = 0b1111_0000_0000_1011

	require.Len(t, full.Split(v), 3)
	require.Equal(t, []uint64{0b1011, 1}, some.Split(v))
	require.Equal(t, full.Spans()[1].Width, some.Spans()[1].Width)
}

func TestLayoutWidthMismatch(t *testing.T) {
	type TC struct {
		name   string
		widths []int
	}

	tcs := []TC{
		{name: "short", widths: []int{7, 1, 7}},
		{name: "over", widths: []int{7, 1, 9}},
		{name: "zero", widths: []int{8, 0, 8}},
		{name: "empty", widths: nil},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			for _, n := range []bits.Numbering{bits.LSB0, bits.MSB0} {
				_, err := bits.Split[uint16](n, 0xffff, tc.widths...)
				require.True(t, bitpart.WidthError.Has(err), "%+v", err)
			}
		})
	}

	require.Panics(t, func() {
		bits.MustLayout[uint8](bits.MSB0, bits.W(9))
	})
}

func TestLayoutJoinOverflow(t *testing.T) {
	l := bits.MustLayout[uint8](bits.MSB0, bits.W(3), bits.W(5))

	_, err := l.Join([]uint64{0b1000, 0})
	require.True(t, bits.Error.Has(err), "%+v", err)

	_, err = l.Join([]uint64{1})
	require.Error(t, err)

	v, err := l.Join([]uint64{0b101, 0b1_0001})
	require.NoError(t, err)
	require.Equal(t, uint8(0b1011_0001), v)
}

// randomSpans returns spans covering exactly width bits.
func randomSpans(rng *rand.Rand, width int) (spans []bits.Span) {
	for left := width; left > 0; {
		w := 1 + rng.Intn(left)
		if len(spans) == bitpart.MaxArity-1 {
			w = left
		}

		spans = append(spans, bits.Span{Width: w, Reserved: rng.Intn(4) == 0})
		left -= w
	}

	return spans
}

func TestLayoutRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		n := bits.Numbering(rng.Intn(2))
		spans := randomSpans(rng, 64)
		l := bits.MustLayout[uint64](n, spans...)

		// Reserved bits join as zero, so compare the fields.
		v := rng.Uint64()
		fields := l.Split(v)

		got, err := l.Join(fields)
		require.NoError(t, err)
		require.Equal(t, fields, l.Split(got), "%s %v %#x", n, spans, v)

		all := make([]bits.Span, len(spans))
		for j, s := range spans {
			all[j] = bits.W(s.Width)
		}

		lall := bits.MustLayout[uint64](n, all...)
		raw := lall.Split(v)

		back, err := lall.Join(raw)
		require.NoError(t, err)
		require.Equal(t, v, back, "%s %v", n, spans)
	}
}

func TestPartRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for _, n := range []bits.Numbering{bits.LSB0, bits.MSB0} {
		p := bits.MustPart4[uint32](n,
			bits.Uint[uint16](15),
			bits.Bool(1),
			bits.Uint[uint8](2),
			bits.Int[int16](14),
		)

		for i := 0; i < 1000; i++ {
			v := rng.Uint32()
			require.Equal(t, v, p.Join(p.Split(v)), "%s %#x", n, v)
		}
	}
}
