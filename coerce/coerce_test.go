package coerce_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpart/coerce"
)

type Num uint8

const (
	One Num = iota
	Two
	Three
	Four
)

type Fear int

const (
	Freeze Fear = iota
	Run
)

func fear(b bool) Fear {
	if b {
		return Run
	}

	return Freeze
}

// Level is a three state value decoded through UnmarshalRaw.
type Level struct {
	Name string
}

func (l *Level) UnmarshalRaw(raw uint64) {
	switch raw {
	case 0:
		l.Name = "low"
	case 1:
		l.Name = "mid"
	default:
		l.Name = "high"
	}
}

func (l Level) MarshalRaw() uint64 {
	switch l.Name {
	case "low":
		return 0
	case "mid":
		return 1
	}

	return 2
}

func TestBool(t *testing.T) {
	require.False(t, coerce.Bool(0))
	require.True(t, coerce.Bool(1))
	require.True(t, coerce.Bool(0b1000_0000))
	require.Equal(t, uint64(1), coerce.RawBool(true))
	require.Equal(t, uint64(0), coerce.RawBool(false))
}

func TestUint(t *testing.T) {
	require.Equal(t, uint8(0xcd), coerce.Uint[uint8](0xabcd))
	require.Equal(t, uint16(0xabcd), coerce.Uint[uint16](0xabcd))
	require.Equal(t, uint64(0xabcd), coerce.Uint[uint64](0xabcd))
	require.Equal(t, Three, coerce.Uint[Num](0b10))
	require.Equal(t, uint64(3), coerce.RawUint(Four))
}

func TestInt(t *testing.T) {
	type TC struct {
		raw   uint64
		width int
		v     int64
	}

	tcs := []TC{
		{raw: 0b0111, width: 4, v: 7},
		{raw: 0b1000, width: 4, v: -8},
		{raw: 0b1111, width: 4, v: -1},
		{raw: 0b0000, width: 4, v: 0},
		{raw: 0xff, width: 8, v: -1},
		{raw: 0x7f, width: 8, v: 127},
		{raw: 1<<63 | 1, width: 64, v: -(1 << 63) + 1},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%0*b", tc.width, tc.raw), func(t *testing.T) {
			v := coerce.Int[int64](tc.width)(tc.raw)
			require.Equal(t, tc.v, v)

			raw := coerce.RawInt[int64](tc.width)(v)
			require.Equal(t, tc.raw, raw)
		})
	}
}

func TestZigzag(t *testing.T) {
	type TC struct {
		raw uint64
		v   int32
	}

	tcs := []TC{
		{raw: 0b0000_0000, v: 0},
		{raw: 0b0000_0010, v: 1},
		{raw: 0b0000_0011, v: -1},
		{raw: 0b1111_1110, v: 127},
		{raw: 0b1111_1111, v: -127},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%08b", tc.raw), func(t *testing.T) {
			require.Equal(t, tc.v, coerce.Zigzag[int32](tc.raw))
			require.Equal(t, tc.raw, coerce.RawZigzag(tc.v))
		})
	}
}

func TestZigzagEdges(t *testing.T) {
	require.Equal(t, int64(0), coerce.Zigzag[int64](1))
	require.Equal(t, uint64(0), coerce.RawZigzag(coerce.Zigzag[int64](1)))

	require.Equal(t, uint64(math.MaxUint64), coerce.RawZigzag(int64(math.MinInt64)))
	require.Equal(t, int64(-math.MaxInt64), coerce.Zigzag[int64](math.MaxUint64))

	require.Equal(t, uint64(math.MaxUint64-1), coerce.RawZigzag(int64(math.MaxInt64)))
	require.Equal(t, int64(math.MaxInt64), coerce.Zigzag[int64](math.MaxUint64-1))
}

func TestDiscard(t *testing.T) {
	require.Equal(t, coerce.Void{}, coerce.Discard(0xffff))
}

func TestFromBool(t *testing.T) {
	f := coerce.FromBool(fear)
	require.Equal(t, Run, f(1))
	require.Equal(t, Freeze, f(0))
}

func TestMap(t *testing.T) {
	f := coerce.Map(coerce.Uint[uint8], func(v uint8) string {
		return fmt.Sprintf("%02x", v)
	})
	require.Equal(t, "2a", f(42))
}

func TestInto(t *testing.T) {
	require.Equal(t, Level{"low"}, coerce.Into[Level](0))
	require.Equal(t, Level{"mid"}, coerce.Into[Level](1))
	require.Equal(t, Level{"high"}, coerce.Into[Level](3))

	require.Equal(t, uint64(1), coerce.Raw(Level{"mid"}))
	require.Equal(t, uint64(0), coerce.Raw(struct{}{}))
}
