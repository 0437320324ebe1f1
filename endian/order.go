package endian

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of errors from this package that are not width or
// length errors.
var Error = errs.Class("endian")

// Order is a byte order.
type Order uint8

// Byte orders.
const (
	Little Order = iota
	Big
)

func (o Order) String() string {
	switch o {
	case Little:
		return "le"
	case Big:
		return "be"
	}

	return fmt.Sprintf("Order(%d)", uint8(o))
}

// ParseOrder is the inverse of Order.String. It also accepts the long names.
func ParseOrder(s string) (o Order, err error) {
	switch s {
	case "le", "little":
		return Little, nil
	case "be", "big":
		return Big, nil
	}

	return 0, Error.New("unknown byte order %q", s)
}

// ByteOrder returns the encoding/binary equivalent of o.
func (o Order) ByteOrder() binary.ByteOrder {
	if o == Big {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Uint reads b as an unsigned integer of len(b) bytes. b must not be longer
// than 8 bytes.
func (o Order) Uint(b []byte) (v uint64) {
	bo := o.ByteOrder()

	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(bo.Uint16(b))
	case 4:
		return uint64(bo.Uint32(b))
	case 8:
		return bo.Uint64(b)
	}

	if len(b) > 8 {
		panic(Error.New("%d bytes do not fit a uint64", len(b)))
	}

	if o == Big {
		for _, c := range b {
			v = v<<8 | uint64(c)
		}

		return v
	}

	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}

	return v
}

// PutUint writes the low len(b) bytes of v into b.
func (o Order) PutUint(b []byte, v uint64) {
	bo := o.ByteOrder()

	switch len(b) {
	case 1:
		b[0] = byte(v)
		return
	case 2:
		bo.PutUint16(b, uint16(v))
		return
	case 4:
		bo.PutUint32(b, uint32(v))
		return
	case 8:
		bo.PutUint64(b, v)
		return
	}

	if o == Big {
		for i := len(b) - 1; i >= 0; i-- {
			b[i] = byte(v)
			v >>= 8
		}

		return
	}

	for i := range b {
		b[i] = byte(v)
		v >>= 8
	}
}
