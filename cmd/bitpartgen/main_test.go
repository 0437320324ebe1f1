package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpart/internal/arity"
)

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "array.gen.go")

	err := run(arity.Config{Kind: arity.Array, Package: "chunk", Max: 4}, out)
	require.NoError(t, err)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(src), "~[1]byte | ~[2]byte | ~[3]byte | ~[4]byte")

	err = run(arity.Config{Kind: "nope", Package: "chunk"}, out)
	require.True(t, arity.Error.Has(err), "%+v", err)

	err = run(arity.Config{Kind: arity.Tuple, Package: "bitpart"}, filepath.Join(out, "missing", "x.go"))
	require.Error(t, err)
}
