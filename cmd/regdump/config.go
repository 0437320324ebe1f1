package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/zeebo/errs"

	"github.com/calebcase/bitpart"
	"github.com/calebcase/bitpart/bits"
	"github.com/calebcase/bitpart/chunk"
	"github.com/calebcase/bitpart/endian"
)

// Error is the class of regdump errors.
var Error = errs.Class("regdump")

type fileConfig struct {
	Numbering string           `toml:"numbering"`
	Order     string           `toml:"order"`
	Registers []registerConfig `toml:"register"`
	Packets   []packetConfig   `toml:"packet"`
}

type registerConfig struct {
	Name      string        `toml:"name"`
	Width     int           `toml:"width"`
	Numbering string        `toml:"numbering"`
	Fields    []fieldConfig `toml:"field"`
}

type fieldConfig struct {
	Name string `toml:"name"`
	Bits int    `toml:"bits"`
	Size int    `toml:"size"`
	Kind string `toml:"kind"`

	// Order only applies to packet fields.
	Order string `toml:"order"`
}

type packetConfig struct {
	Name   string        `toml:"name"`
	Order  string        `toml:"order"`
	Fields []fieldConfig `toml:"field"`
}

// Config is a loaded register map. Every layout in it has been validated.
type Config struct {
	Registers map[string]*Register
	Packets   map[string]*Packet
}

func loadConfig(path string) (cfg Config, err error) {
	defer Error.WrapP(&err)

	var raw fileConfig

	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cfg, err
	}

	cfg.Registers = map[string]*Register{}
	cfg.Packets = map[string]*Packet{}

	// Top level numbering and order are the defaults for every entry.
	numbering := bits.LSB0
	if meta.IsDefined("numbering") {
		numbering, err = bits.ParseNumbering(strings.TrimSpace(raw.Numbering))
		if err != nil {
			return cfg, err
		}
	}

	order := endian.Big
	if meta.IsDefined("order") {
		order, err = endian.ParseOrder(strings.TrimSpace(raw.Order))
		if err != nil {
			return cfg, err
		}
	}

	for i, rc := range raw.Registers {
		if rc.Width == 0 {
			rc.Width = 32
		}

		r, err := newRegister(rc, numbering)
		if err != nil {
			return cfg, entry("register", i, rc.Name, err)
		}

		if _, ok := cfg.Registers[r.Name]; ok {
			return cfg, Error.New("register %q defined twice", r.Name)
		}

		cfg.Registers[r.Name] = r
	}

	for i, pc := range raw.Packets {
		p, err := newPacket(pc, order)
		if err != nil {
			return cfg, entry("packet", i, pc.Name, err)
		}

		if _, ok := cfg.Packets[p.Name]; ok {
			return cfg, Error.New("packet %q defined twice", p.Name)
		}

		cfg.Packets[p.Name] = p
	}

	if len(cfg.Registers) == 0 && len(cfg.Packets) == 0 {
		return cfg, Error.New("%s: no registers or packets", path)
	}

	return cfg, nil
}

// entry wraps err with the position and name of the map entry it came from.
// The class of err stays visible to Has.
func entry(kind string, i int, name string, err error) error {
	class := errs.Class(fmt.Sprintf("%s %d (%q)", kind, i, name))

	return class.Wrap(err)
}

// Field kinds.
const (
	kindUint     = "uint"
	kindHex      = "hex"
	kindInt      = "int"
	kindZigzag   = "zigzag"
	kindBool     = "bool"
	kindReserved = "reserved"
	kindBytes    = "bytes"
	kindSkip     = "skip"
)

func normalizeKind(kind string) string {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		return kindUint
	}

	return kind
}

// Register decodes one fixed width register value.
type Register struct {
	Name   string
	Width  int
	Fields []Field

	split func(v uint64) []uint64
}

// Field is a named, non discarded field of a register or packet.
type Field struct {
	Name  string
	Width int
	Kind  string
	Order endian.Order
}

func newRegister(rc registerConfig, n bits.Numbering) (r *Register, err error) {
	name := strings.TrimSpace(rc.Name)
	if name == "" {
		return nil, Error.New("no name")
	}

	if rc.Numbering != "" {
		n, err = bits.ParseNumbering(strings.TrimSpace(rc.Numbering))
		if err != nil {
			return nil, err
		}
	}

	r = &Register{
		Name:  name,
		Width: rc.Width,
	}

	spans := make([]bits.Span, 0, len(rc.Fields))

	for _, fc := range rc.Fields {
		kind := normalizeKind(fc.Kind)

		switch kind {
		case kindReserved:
			spans = append(spans, bits.R(fc.Bits))
			continue
		case kindUint, kindHex, kindInt, kindZigzag, kindBool:
		default:
			return nil, Error.New("field %q: unknown kind %q", fc.Name, fc.Kind)
		}

		spans = append(spans, bits.W(fc.Bits))
		r.Fields = append(r.Fields, Field{
			Name:  fc.Name,
			Width: fc.Bits,
			Kind:  kind,
		})
	}

	switch rc.Width {
	case 8, 16, 32, 64:
	default:
		return nil, Error.New("width %d is not 8, 16, 32 or 64", rc.Width)
	}

	switch {
	case len(spans) > bitpart.MaxArity:
		r.split, err = chain(n, rc.Width, spans)
	case rc.Width == 8:
		r.split, err = splitter[uint8](n, spans)
	case rc.Width == 16:
		r.split, err = splitter[uint16](n, spans)
	case rc.Width == 32:
		r.split, err = splitter[uint32](n, spans)
	default:
		r.split, err = splitter[uint64](n, spans)
	}
	if err != nil {
		return nil, err
	}

	return r, nil
}

func splitter[S bits.Source](n bits.Numbering, spans []bits.Span) (func(uint64) []uint64, error) {
	l, err := bits.NewLayout[S](n, spans...)
	if err != nil {
		return nil, err
	}

	return func(v uint64) []uint64 {
		return l.Split(S(v))
	}, nil
}

// chain splits a register with more fields than one layout holds. Every
// stage but the last ends in a span covering the fields not yet decoded,
// which the next stage splits again. Stages work on the low bits of a
// uint64; a reserved span pads out the unused top.
func chain(n bits.Numbering, width int, spans []bits.Span) (func(uint64) []uint64, error) {
	widths := make([]int, len(spans))
	for i, s := range spans {
		widths[i] = s.Width
	}

	err := bitpart.Check(width, widths...)
	if err != nil {
		return nil, err
	}

	var stages []*bits.Layout[uint64]

	for w := width; ; {
		var pad []bits.Span
		if w < 64 {
			pad = []bits.Span{bits.R(64 - w)}
		}

		room := bitpart.MaxArity - len(pad)
		stage := spans[:len(spans):len(spans)]
		rest := 0

		if len(spans) > room {
			for _, s := range spans[room-1:] {
				rest += s.Width
			}

			stage = append(spans[:room-1:room-1], bits.W(rest))
			spans = spans[room-1:]
		}

		if n == bits.MSB0 {
			stage = append(pad, stage...)
		} else {
			stage = append(stage, pad...)
		}

		l, err := bits.NewLayout[uint64](n, stage...)
		if err != nil {
			return nil, err
		}

		stages = append(stages, l)

		if rest == 0 {
			break
		}

		w = rest
	}

	return func(v uint64) (out []uint64) {
		for i, l := range stages {
			values := l.Split(v)

			if i < len(stages)-1 {
				last := len(values) - 1
				v = values[last]
				values = values[:last]
			}

			out = append(out, values...)
		}

		return out
	}, nil
}

// Packet decodes a byte string. Packets with more fields than one descriptor
// holds are decoded by a chain of descriptors.
type Packet struct {
	Name   string
	Size   int
	Fields []Field

	// layouts are chained: each takes its fields from the tail of the one
	// before it.
	layouts []*chunk.Layout
}

func newPacket(pc packetConfig, order endian.Order) (p *Packet, err error) {
	name := strings.TrimSpace(pc.Name)
	if name == "" {
		return nil, Error.New("no name")
	}

	if pc.Order != "" {
		order, err = endian.ParseOrder(strings.TrimSpace(pc.Order))
		if err != nil {
			return nil, err
		}
	}

	p = &Packet{Name: name}

	var sizes []int

	for _, fc := range pc.Fields {
		kind := normalizeKind(fc.Kind)

		switch kind {
		case kindUint, kindHex:
			if fc.Size > 8 {
				return nil, Error.New("field %q: %d bytes do not fit a uint64", fc.Name, fc.Size)
			}
		case kindBytes, kindSkip:
		default:
			return nil, Error.New("field %q: unknown kind %q", fc.Name, fc.Kind)
		}

		o := order
		if fc.Order != "" {
			o, err = endian.ParseOrder(strings.TrimSpace(fc.Order))
			if err != nil {
				return nil, err
			}
		}

		sizes = append(sizes, fc.Size)
		p.Fields = append(p.Fields, Field{
			Name:  fc.Name,
			Width: fc.Size,
			Kind:  kind,
			Order: o,
		})
	}

	if len(sizes) == 0 {
		return nil, bitpart.WidthError.New("no fields")
	}

	for len(sizes) > 0 {
		k := len(sizes)
		if k > bitpart.MaxArity {
			k = bitpart.MaxArity
		}

		size, err := bitpart.Sum(sizes[:k]...)
		if err != nil {
			return nil, err
		}

		l, err := chunk.NewLayout(size, sizes[:k]...)
		if err != nil {
			return nil, err
		}

		p.layouts = append(p.layouts, l)
		p.Size += size
		sizes = sizes[k:]
	}

	return p, nil
}
