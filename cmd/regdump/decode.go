package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/calebcase/bitpart"
	"github.com/calebcase/bitpart/coerce"
)

// Value is one decoded field.
type Value struct {
	Name  string
	Value string
}

func (v Value) String() string {
	return v.Name + "=" + v.Value
}

// parseRegister reads a register value written in hex (with or without 0x),
// binary (0b) or decimal.
func parseRegister(s string) (v uint64, err error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")

	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err = strconv.ParseUint(s[2:], 16, 64)
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		v, err = strconv.ParseUint(s[2:], 2, 64)
	default:
		v, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return 0, Error.New("bad register value %q: %v", s, err)
	}

	return v, nil
}

// Decode splits v into the register's fields.
func (r *Register) Decode(v uint64) (values []Value, err error) {
	if r.Width < 64 && v>>r.Width != 0 {
		return nil, bitpart.WidthError.New("%s: %#x does not fit %d bits", r.Name, v, r.Width)
	}

	raw := r.split(v)
	values = make([]Value, len(raw))

	for i, f := range r.Fields {
		values[i] = Value{Name: f.Name, Value: formatBits(f, raw[i])}
	}

	return values, nil
}

func formatBits(f Field, raw uint64) string {
	switch f.Kind {
	case kindHex:
		return fmt.Sprintf("%#x", raw)
	case kindInt:
		return strconv.FormatInt(coerce.SignExtend(raw, f.Width), 10)
	case kindZigzag:
		return strconv.FormatInt(coerce.Zigzag[int64](raw), 10)
	case kindBool:
		return strconv.FormatBool(coerce.Bool(raw))
	}

	return strconv.FormatUint(raw, 10)
}

// parsePacket reads a packet written as hex bytes. Spaces and colons
// separate groups of bytes, and each group may start with 0x.
func parsePacket(s string) (b []byte, err error) {
	groups := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ':'
	})

	for _, g := range groups {
		if strings.HasPrefix(g, "0x") || strings.HasPrefix(g, "0X") {
			g = g[2:]
		}

		p, err := hex.DecodeString(g)
		if err != nil {
			return nil, Error.New("bad packet %q: %v", s, err)
		}

		b = append(b, p...)
	}

	return b, nil
}

// Decode splits the front of b into the packet's fields and returns the
// bytes after the packet.
func (p *Packet) Decode(b []byte) (values []Value, rest []byte, err error) {
	i := 0
	rest = b

	for _, l := range p.layouts {
		seq, err := l.Take(rest)
		if err != nil {
			return nil, b, Error.Wrap(err)
		}

		for _, part := range seq.Head {
			f := p.Fields[i]
			i++

			if f.Kind == kindSkip {
				continue
			}

			values = append(values, Value{Name: f.Name, Value: formatBytes(f, part)})
		}

		rest = seq.Tail
	}

	return values, rest, nil
}

func formatBytes(f Field, b []byte) string {
	switch f.Kind {
	case kindBytes:
		return hex.EncodeToString(b)
	case kindHex:
		return fmt.Sprintf("%#x", f.Order.Uint(b))
	}

	return strconv.FormatUint(f.Order.Uint(b), 10)
}
