package bitpart_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpart"
)

func TestSeqConsumed(t *testing.T) {
	input := []byte{0, 1, 2, 3, 4}

	seq := bitpart.Seq[byte]{Head: input[0], Tail: input[3:]}
	require.Equal(t, 3, seq.Consumed(len(input)))
}

func TestTupleValues(t *testing.T) {
	t3 := bitpart.T3[uint8, bool, string]{A: 1, B: true, C: "c"}

	a, b, c := t3.Values()
	require.Equal(t, uint8(1), a)
	require.True(t, b)
	require.Equal(t, "c", c)

	t1 := bitpart.T1[int]{A: 7}
	require.Equal(t, 7, t1.Values())
}

func TestTupleCompare(t *testing.T) {
	want := bitpart.T2[uint16, []byte]{A: 0x2211, B: []byte{0x33}}
	got := bitpart.T2[uint16, []byte]{A: 0x2211, B: []byte{0x33}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
