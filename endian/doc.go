// Package endian reads and writes unsigned integers stored in byte fields.
//
// Byte Order
//
//	bytes     | 11 | 22 |
//	Little    0x2211     byte 0 is least significant
//	Big       0x1122     byte 0 is most significant
//
// A single byte reads the same in either order, and so does a byte array
// (Raw): order only matters once bytes are combined into a number.
//
// Mixed Orders
//
// Le, Be and Field return chunk fields, so a single chunk descriptor can
// hold integers of different orders next to raw bytes:
//
//	hdr := chunk.MustPart3(8, endian.Be[uint16](), endian.Le[uint32](), chunk.Fixed[[2]byte]())
//	a, b, c, err := hdr.Decode(buf)
package endian
