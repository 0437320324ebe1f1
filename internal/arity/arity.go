// Package arity generates the fixed arity families of the partitioners: the
// tuple types of package bitpart, the Part1..Part26 descriptors of packages
// bits and chunk, and the ByteArray constraint of package chunk.
//
// Go has no variadic type parameters, so every arity is written out. The
// templates below are the single source of those declarations.
package arity

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"

	"github.com/zeebo/errs"
)

// Error is the class of generator errors.
var Error = errs.Class("arity")

// Kind selects the family to generate.
type Kind string

// Families.
const (
	Tuple Kind = "tuple"
	Bits  Kind = "bits"
	Chunk Kind = "chunk"
	Array Kind = "array"
)

// Kinds lists every family.
var Kinds = []Kind{Tuple, Bits, Chunk, Array}

// Config controls one generated file.
type Config struct {
	Kind    Kind
	Package string

	// Max is the highest arity (or array length for Array) generated.
	Max int

	// Module is the import path of package bitpart.
	Module string
}

// Defaults for Config.
const (
	DefaultMax      = 26
	DefaultArrayMax = 64
	DefaultModule   = "github.com/calebcase/bitpart"
)

// Field is one position of an arity.
type Field struct {
	// Index is 1 based.
	Index int

	// Letter names the tuple element (A..Z).
	Letter string
}

// Type is the type parameter of the field (F1, F2, ...).
func (f Field) Type() string { return fmt.Sprintf("F%d", f.Index) }

// Member is the descriptor struct member holding the field (f1, f2, ...).
func (f Field) Member() string { return fmt.Sprintf("f%d", f.Index) }

// Arg is the value argument or result of the field (v1, v2, ...).
func (f Field) Arg() string { return fmt.Sprintf("v%d", f.Index) }

// Arity is the template data for one arity.
type Arity struct {
	K      int
	Fields []Field
}

// NewArity returns the data for arity k.
func NewArity(k int) Arity {
	a := Arity{K: k}
	for i := 1; i <= k; i++ {
		a.Fields = append(a.Fields, Field{
			Index:  i,
			Letter: string(rune('A' + i - 1)),
		})
	}

	return a
}

func (a Arity) join(fn func(Field) string, sep string) string {
	parts := make([]string, len(a.Fields))
	for i, f := range a.Fields {
		parts[i] = fn(f)
	}

	return strings.Join(parts, sep)
}

// Letters is "A, B, C".
func (a Arity) Letters() string {
	return a.join(func(f Field) string { return f.Letter }, ", ")
}

// Types is "F1, F2, F3".
func (a Arity) Types() string {
	return a.join(Field.Type, ", ")
}

// Args is "v1, v2, v3".
func (a Arity) Args() string {
	return a.join(Field.Arg, ", ")
}

// Members is "f1, f2, f3".
func (a Arity) Members() string {
	return a.join(Field.Member, ", ")
}

// Generate writes the formatted source of one family to w.
func Generate(w io.Writer, cfg Config) (err error) {
	defer Error.WrapP(&err)

	if cfg.Package == "" {
		return Error.New("no package name")
	}
	if cfg.Module == "" {
		cfg.Module = DefaultModule
	}

	limit := 26
	if cfg.Kind == Array {
		limit = 1 << 10
	}

	if cfg.Max == 0 {
		cfg.Max = DefaultMax
		if cfg.Kind == Array {
			cfg.Max = DefaultArrayMax
		}
	}
	if cfg.Max < 1 || cfg.Max > limit {
		return Error.New("max %d outside 1..%d", cfg.Max, limit)
	}

	body, ok := bodies[cfg.Kind]
	if !ok {
		return Error.New("unknown kind %q", cfg.Kind)
	}

	tmpl, err := template.New(string(cfg.Kind)).Parse(header + body)
	if err != nil {
		return err
	}

	data := struct {
		Config
		Arities []Arity
		Sizes   []int
	}{Config: cfg}

	for k := 1; k <= cfg.Max; k++ {
		data.Arities = append(data.Arities, NewArity(k))
		data.Sizes = append(data.Sizes, k)
	}

	var buf bytes.Buffer

	err = tmpl.Execute(&buf, data)
	if err != nil {
		return err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return Error.New("format.Source: %v", err)
	}

	_, err = w.Write(src)

	return err
}
