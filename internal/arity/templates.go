package arity

const header = `// Code generated by bitpartgen. DO NOT EDIT.

package {{.Package}}
`

var bodies = map[Kind]string{
	Tuple: tupleBody,
	Bits:  bitsBody,
	Chunk: chunkBody,
	Array: arrayBody,
}

const tupleBody = `
{{range .Arities}}
// T{{.K}} is a tuple of {{.K}} {{if eq .K 1}}value{{else}}values{{end}}.
type T{{.K}}[{{.Letters}} any] struct {
{{- range .Fields}}
	{{.Letter}} {{.Letter}}
{{- end}}
}

// Values returns the elements of t in order.
func (t T{{.K}}[{{.Letters}}]) Values() {{if eq .K 1}}{{.Letters}}{{else}}({{.Letters}}){{end}} {
	return {{range $i, $f := .Fields}}{{if $i}}, {{end}}t.{{$f.Letter}}{{end}}
}
{{end}}
`

const bitsBody = `
import "{{.Module}}"
{{range .Arities}}
// Part{{.K}} splits an S into {{.K}} typed {{if eq .K 1}}field{{else}}fields{{end}}.
type Part{{.K}}[S Source, {{.Types}} any] struct {
	n Numbering
{{- range .Fields}}
	{{.Member}} Field[{{.Type}}]
{{- end}}
}

// NewPart{{.K}} validates the field widths against the width of S.
func NewPart{{.K}}[S Source, {{.Types}} any](n Numbering, {{range .Fields}}{{.Member}} Field[{{.Type}}], {{end}}) (*Part{{.K}}[S, {{.Types}}], error) {
	err := check[S](n, {{range .Fields}}{{.Member}}.shape(), {{end}})
	if err != nil {
		return nil, err
	}

	return &Part{{.K}}[S, {{.Types}}]{n: n, {{range .Fields}}{{.Member}}: {{.Member}}, {{end}}}, nil
}

// MustPart{{.K}} is NewPart{{.K}} that panics on an invalid layout.
func MustPart{{.K}}[S Source, {{.Types}} any](n Numbering, {{range .Fields}}{{.Member}} Field[{{.Type}}], {{end}}) *Part{{.K}}[S, {{.Types}}] {
	p, err := NewPart{{.K}}[S](n, {{.Members}})
	bitpart.Must(err)

	return p
}

// Numbering returns the bit numbering of p.
func (p *Part{{.K}}[S, {{.Types}}]) Numbering() Numbering {
	return p.n
}

// Widths returns the field widths in declared order.
func (p *Part{{.K}}[S, {{.Types}}]) Widths() []int {
	return []int{ {{range .Fields}}p.{{.Member}}.Width, {{end}}}
}

// Split extracts the fields of v in declared order.
func (p *Part{{.K}}[S, {{.Types}}]) Split(v S) ({{range .Fields}}{{.Arg}} {{.Type}}, {{end}}) {
	r := reader[S]{n: p.n, v: v}
{{- range .Fields}}
	{{.Arg}} = p.{{.Member}}.Coerce(r.next(p.{{.Member}}.Width))
{{- end}}

	return {{.Args}}
}

// Join composes a value from its fields. Raw values wider than their field
// are truncated.
func (p *Part{{.K}}[S, {{.Types}}]) Join({{range .Fields}}{{.Arg}} {{.Type}}, {{end}}) S {
	w := writer[S]{n: p.n}
{{- range .Fields}}
	w.put(p.{{.Member}}.Width, p.{{.Member}}.raw({{.Arg}}))
{{- end}}

	return w.v
}
{{end}}
`

const chunkBody = `
import "{{.Module}}"
{{range .Arities}}
// Part{{.K}} splits a byte buffer into {{.K}} typed {{if eq .K 1}}field{{else}}fields{{end}}.
type Part{{.K}}[{{.Types}} any] struct {
	size int
{{- range .Fields}}
	{{.Member}} Field[{{.Type}}]
{{- end}}
}

// NewPart{{.K}} validates the field sizes against size.
func NewPart{{.K}}[{{.Types}} any](size int, {{range .Fields}}{{.Member}} Field[{{.Type}}], {{end}}) (*Part{{.K}}[{{.Types}}], error) {
	err := check(size, {{range .Fields}}{{.Member}}.shape(), {{end}})
	if err != nil {
		return nil, err
	}

	return &Part{{.K}}[{{.Types}}]{size: size, {{range .Fields}}{{.Member}}: {{.Member}}, {{end}}}, nil
}

// MustPart{{.K}} is NewPart{{.K}} that panics on an invalid layout.
func MustPart{{.K}}[{{.Types}} any](size int, {{range .Fields}}{{.Member}} Field[{{.Type}}], {{end}}) *Part{{.K}}[{{.Types}}] {
	p, err := NewPart{{.K}}(size, {{.Members}})
	bitpart.Must(err)

	return p
}

// Size returns the number of bytes p consumes.
func (p *Part{{.K}}[{{.Types}}]) Size() int {
	return p.size
}

// Sizes returns the field sizes in declared order.
func (p *Part{{.K}}[{{.Types}}]) Sizes() []int {
	return []int{ {{range .Fields}}p.{{.Member}}.Size, {{end}}}
}

// Decode splits b, which must be exactly Size bytes long.
func (p *Part{{.K}}[{{.Types}}]) Decode(b []byte) ({{range .Fields}}{{.Arg}} {{.Type}}, {{end}}err error) {
	err = exact(p.size, len(b))
	if err != nil {
		return {{.Args}}, err
	}

	r := reader{b: b}
{{- range .Fields}}
	{{.Arg}} = p.{{.Member}}.Decode(r.next(p.{{.Member}}.Size))
{{- end}}

	return {{.Args}}, nil
}

// Take decodes the first Size bytes of s. The rest of s is the tail.
func (p *Part{{.K}}[{{.Types}}]) Take(s []byte) (seq bitpart.Seq[bitpart.T{{.K}}[{{.Types}}]], err error) {
	head, tail, err := cut(s, p.size)
	if err != nil {
		return seq, err
	}

	r := reader{b: head}
{{- range .Fields}}
	seq.Head.{{.Letter}} = p.{{.Member}}.Decode(r.next(p.{{.Member}}.Size))
{{- end}}
	seq.Tail = tail

	return seq, nil
}

// Append appends the encoded fields to dst.
func (p *Part{{.K}}[{{.Types}}]) Append(dst []byte, {{range .Fields}}{{.Arg}} {{.Type}}, {{end}}) []byte {
	dst, b := grow(dst, p.size)
	w := reader{b: b}
{{- range .Fields}}
	p.{{.Member}}.encode(w.next(p.{{.Member}}.Size), {{.Arg}})
{{- end}}

	return dst
}
{{end}}
`

const arrayBody = `
// ByteArray is the set of byte array types of 1 to {{.Max}} bytes.
type ByteArray interface {
	{{range $i, $n := .Sizes}}{{if $i}} | {{end}}~[{{$n}}]byte{{end}}
}
`
