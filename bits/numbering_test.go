package bits

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

const u32 uint32 = 0b1111_1111_0101_1010_1100_0011_1000_0001

func TestWidth(t *testing.T) {
	require.Equal(t, 8, Width[uint8]())
	require.Equal(t, 16, Width[uint16]())
	require.Equal(t, 32, Width[uint32]())
	require.Equal(t, 64, Width[uint64]())
}

func TestLsbSplit(t *testing.T) {
	type TC struct {
		n     int
		field uint32
		rest  uint32
	}

	tcs := []TC{
		{n: 9, field: 0b1_1000_0001, rest: 0b1111_1111_0101_1010_1100_001},
		{n: 1, field: 1, rest: u32 >> 1},
		{n: 0, field: 0, rest: u32},
		{n: 32, field: u32, rest: 0},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprint(tc.n), func(t *testing.T) {
			field, rest := LsbSplit(u32, tc.n)
			require.Equal(t, tc.field, field, "%b", field)
			require.Equal(t, tc.rest, rest, "%b", rest)
		})
	}
}

func TestMsbSplit(t *testing.T) {
	type TC struct {
		n     int
		field uint32
		rest  uint32
	}

	tcs := []TC{
		{n: 9, field: 0b1111_1111_0, rest: 0b101_1010_1100_0011_1000_0001 << 9},
		{n: 1, field: 1, rest: 0b1111_1110_1011_0101_1000_0111_0000_0010},
		{n: 0, field: 0, rest: u32},
		{n: 32, field: u32, rest: 0},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprint(tc.n), func(t *testing.T) {
			field, rest := MsbSplit(u32, tc.n)
			require.Equal(t, tc.field, field, "%b", field)
			require.Equal(t, tc.rest, rest, "%b", rest)
		})
	}
}

func TestMask(t *testing.T) {
	require.Equal(t, uint8(0b0000_0111), mask[uint8](3))
	require.Equal(t, uint8(0b1111_1111), mask[uint8](8))
	require.Equal(t, ^uint64(0), mask[uint64](64))
	require.Equal(t, uint64(0), mask[uint64](0))
}

func TestNumbering(t *testing.T) {
	for _, n := range []Numbering{LSB0, MSB0} {
		parsed, err := ParseNumbering(n.String())
		require.NoError(t, err)
		require.Equal(t, n, parsed)
		require.True(t, n.Valid())
	}

	_, err := ParseNumbering("middle")
	require.Error(t, err)
	require.False(t, Numbering(7).Valid())
	require.Equal(t, "Numbering(7)", Numbering(7).String())
}

func TestWriter(t *testing.T) {
	w := writer[uint16]{n: LSB0}
	require.True(t, w.put(7, 0b100_1010))
	require.True(t, w.put(1, 1))
	require.True(t, w.put(8, 0xf0))
	require.Equal(t, uint16(0b1111_0000_1100_1010), w.v)

	w = writer[uint16]{n: MSB0}
	require.True(t, w.put(4, 0b1011))
	require.False(t, w.put(4, 0b1_0000))
	require.True(t, w.put(8, 0))
	require.Equal(t, uint16(0b1011_0000_0000_0000), w.v)
}
