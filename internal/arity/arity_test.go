package arity_test

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpart/internal/arity"
)

// decls returns the names of the top level declarations in src. Methods are
// named Recv.Method.
func decls(t *testing.T, filename string, src any) (names []string) {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), filename, src, 0)
	require.NoError(t, err)

	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil {
				typ := d.Recv.List[0].Type
				if star, ok := typ.(*ast.StarExpr); ok {
					typ = star.X
				}

				switch x := typ.(type) {
				case *ast.IndexExpr:
					typ = x.X
				case *ast.IndexListExpr:
					typ = x.X
				}

				name = typ.(*ast.Ident).Name + "." + name
			}

			names = append(names, name)
		case *ast.GenDecl:
			for _, s := range d.Specs {
				if ts, ok := s.(*ast.TypeSpec); ok {
					names = append(names, ts.Name.Name)
				}
			}
		}
	}

	sort.Strings(names)

	return names
}

func TestGenerateMatchesCheckedIn(t *testing.T) {
	type TC struct {
		kind arity.Kind
		pkg  string
		file string
	}

	tcs := []TC{
		{kind: arity.Tuple, pkg: "bitpart", file: "../../tuple.gen.go"},
		{kind: arity.Bits, pkg: "bits", file: "../../bits/part.gen.go"},
		{kind: arity.Chunk, pkg: "chunk", file: "../../chunk/part.gen.go"},
		{kind: arity.Array, pkg: "chunk", file: "../../chunk/array.gen.go"},
	}

	for _, tc := range tcs {
		t.Run(string(tc.kind), func(t *testing.T) {
			var buf bytes.Buffer

			err := arity.Generate(&buf, arity.Config{Kind: tc.kind, Package: tc.pkg})
			require.NoError(t, err)

			got := decls(t, "gen.go", buf.Bytes())
			want := decls(t, tc.file, nil)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("declarations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateSmall(t *testing.T) {
	var buf bytes.Buffer

	err := arity.Generate(&buf, arity.Config{Kind: arity.Tuple, Package: "tuples", Max: 2})
	require.NoError(t, err)

	src := buf.String()
	require.Contains(t, src, "// Code generated by bitpartgen. DO NOT EDIT.")
	require.Contains(t, src, "package tuples")
	require.Contains(t, src, "// T1 is a tuple of 1 value.")
	require.Contains(t, src, "func (t T1[A]) Values() A {")
	require.Contains(t, src, "func (t T2[A, B]) Values() (A, B) {")
	require.NotContains(t, src, "T3")

	require.Equal(t, []string{"T1", "T1.Values", "T2", "T2.Values"}, decls(t, "gen.go", src))
}

func TestGenerateErrors(t *testing.T) {
	type TC struct {
		name string
		cfg  arity.Config
	}

	tcs := []TC{
		{name: "no package", cfg: arity.Config{Kind: arity.Bits}},
		{name: "unknown kind", cfg: arity.Config{Kind: "nope", Package: "p"}},
		{name: "max too large", cfg: arity.Config{Kind: arity.Chunk, Package: "p", Max: 27}},
		{name: "max negative", cfg: arity.Config{Kind: arity.Tuple, Package: "p", Max: -1}},
		{name: "array too large", cfg: arity.Config{Kind: arity.Array, Package: "p", Max: 1025}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := arity.Generate(&buf, tc.cfg)
			require.True(t, arity.Error.Has(err), "%+v", err)
			require.Zero(t, buf.Len())
		})
	}
}

func TestNewArity(t *testing.T) {
	a := arity.NewArity(3)

	require.Equal(t, "A, B, C", a.Letters())
	require.Equal(t, "F1, F2, F3", a.Types())
	require.Equal(t, "v1, v2, v3", a.Args())
	require.Equal(t, "f1, f2, f3", a.Members())

	z := arity.NewArity(26)
	require.Equal(t, "Z", z.Fields[25].Letter)
	require.Equal(t, fmt.Sprintf("F%d", 26), z.Fields[25].Type())
}
