package bitpart_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpart"
)

func TestCheck(t *testing.T) {
	type TC struct {
		n      int
		widths []int
		err    bool
	}

	tcs := []TC{
		{n: 16, widths: []int{7, 1, 8}, err: false},
		{n: 16, widths: []int{16}, err: false},
		{n: 32, widths: []int{15, 1, 2, 14}, err: false},
		{n: 16, widths: []int{7, 1, 7}, err: true},  // N-1
		{n: 16, widths: []int{7, 1, 9}, err: true},  // N+1
		{n: 16, widths: []int{8, 0, 8}, err: true},  // zero width
		{n: 16, widths: []int{9, -1, 8}, err: true}, // negative width
		{n: 16, widths: nil, err: true},
		{n: 0, widths: nil, err: true},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%d=%v", tc.n, tc.widths), func(t *testing.T) {
			err := bitpart.Check(tc.n, tc.widths...)
			if tc.err {
				require.Error(t, err)
				require.True(t, bitpart.WidthError.Has(err), "%+v", err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCheckMessage(t *testing.T) {
	err := bitpart.Check(16, 7, 1, 7)
	require.ErrorContains(t, err, "1 short of 16")

	err = bitpart.Check(16, 7, 1, 9)
	require.ErrorContains(t, err, "1 past 16")
}

func TestSum(t *testing.T) {
	total, err := bitpart.Sum(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 6, total)

	_, err = bitpart.Sum(1, 0)
	require.True(t, bitpart.WidthError.Has(err))
}

func TestCheckArity(t *testing.T) {
	require.NoError(t, bitpart.CheckArity(1))
	require.NoError(t, bitpart.CheckArity(bitpart.MaxArity))
	require.Error(t, bitpart.CheckArity(0))
	require.Error(t, bitpart.CheckArity(bitpart.MaxArity+1))
}

func TestMust(t *testing.T) {
	require.NotPanics(t, func() { bitpart.Must(nil) })
	require.Panics(t, func() { bitpart.Must(bitpart.Check(8, 9)) })
}
