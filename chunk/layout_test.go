package chunk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpart"
	"github.com/calebcase/bitpart/chunk"
)

func TestLayoutSplit(t *testing.T) {
	l := chunk.MustLayout(6, 1, 2, 3)
	require.Equal(t, 6, l.Size())
	require.Equal(t, []int{1, 2, 3}, l.Sizes())

	parts, err := l.Split(data)
	require.NoError(t, err)
	require.Equal(t, [][]byte{{0x00}, {0x11, 0x22}, {0x33, 0x44, 0x55}}, parts)

	// Parts alias the input.
	require.Same(t, &data[1], &parts[1][0])

	_, err = l.Split(data[:5])
	require.True(t, bitpart.LengthError.Has(err), "%+v", err)

	_, err = l.Split(append(data, 0x66))
	require.True(t, bitpart.WidthError.Has(err), "%+v", err)
}

func TestLayoutTake(t *testing.T) {
	l := chunk.MustLayout(5, 1, 2, 2)

	seq, err := l.Take(data)
	require.NoError(t, err)
	require.Equal(t, [][]byte{{0x00}, {0x11, 0x22}, {0x33, 0x44}}, seq.Head)
	require.Equal(t, []byte{0x55}, seq.Tail)
	require.Equal(t, len(data), l.Size()+len(seq.Tail))

	_, err = l.Take(data[:4])
	require.True(t, bitpart.LengthError.Has(err), "%+v", err)
}

func TestLayoutWidthMismatch(t *testing.T) {
	type TC struct {
		name  string
		size  int
		sizes []int
	}

	tcs := []TC{
		{name: "short", size: 6, sizes: []int{1, 2, 2}},
		{name: "over", size: 4, sizes: []int{1, 2, 2}},
		{name: "zero", size: 3, sizes: []int{1, 0, 2}},
		{name: "empty", size: 3},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := chunk.NewLayout(tc.size, tc.sizes...)
			require.True(t, bitpart.WidthError.Has(err), "%+v", err)
		})
	}
}
