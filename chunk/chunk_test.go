package chunk_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpart"
	"github.com/calebcase/bitpart/chunk"
)

var data = []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}

func TestCut(t *testing.T) {
	for n := 0; n <= len(data); n++ {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			seq, err := chunk.Cut(data, n)
			require.NoError(t, err)
			require.Len(t, seq.Head, n)
			require.Equal(t, n, seq.Consumed(len(data)))
			require.Equal(t, data, append(append([]byte(nil), seq.Head...), seq.Tail...))
		})
	}

	// The head is capped so appending to it cannot clobber the tail.
	seq, err := chunk.Cut(data, 2)
	require.NoError(t, err)
	require.Equal(t, 2, cap(seq.Head))
}

func TestCutShort(t *testing.T) {
	seq, err := chunk.Cut(data, len(data)+1)
	require.True(t, bitpart.LengthError.Has(err), "%+v", err)
	require.Nil(t, seq.Head)
	require.Nil(t, seq.Tail)

	_, err = chunk.Cut(data, -1)
	require.True(t, bitpart.WidthError.Has(err), "%+v", err)
}

func TestHead(t *testing.T) {
	seq, err := chunk.Head[[4]byte](data)
	require.NoError(t, err)
	require.Equal(t, [4]byte{0x00, 0x11, 0x22, 0x33}, seq.Head)
	require.Equal(t, []byte{0x44, 0x55}, seq.Tail)

	// The head is a copy.
	buf := append([]byte(nil), data...)
	seq, err = chunk.Head[[4]byte](buf)
	require.NoError(t, err)
	buf[0] = 0xff
	require.Equal(t, byte(0x00), seq.Head[0])

	exact, err := chunk.Head[[6]byte](data)
	require.NoError(t, err)
	require.Empty(t, exact.Tail)

	_, err = chunk.Head[[7]byte](data)
	require.True(t, bitpart.LengthError.Has(err), "%+v", err)
}

type MAC [6]byte

func TestArray(t *testing.T) {
	require.Equal(t, MAC{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}, chunk.Array[MAC](data))

	require.Panics(t, func() {
		chunk.Array[[4]byte](data)
	})
	require.Panics(t, func() {
		chunk.Array[[8]byte](data)
	})
}
