package bits_test

import (
	"fmt"

	"github.com/calebcase/bitpart/bits"
)

// A prefix coded block: the leading bits select the block type and the rest
// carry data.
func ExamplePart2() {
	block := bits.MustPart2[uint16](bits.MSB0, bits.Uint[uint8](3), bits.Uint[uint16](13))

	prefix, data := block.Split(0b001_1_0000_0000_0101)
	fmt.Printf("%03b %d\n", prefix, data)

	fmt.Printf("%016b\n", block.Join(0b001, 42))
	// Output:
	// 001 4101
	// 0010000000101010
}

func ExampleSplit() {
	fields, err := bits.Split[uint8](bits.MSB0, 0b1_010_1010, 1, 7)
	if err != nil {
		panic(err)
	}

	fmt.Println(fields)
	// Output: [1 42]
}

func ExampleLayout_Split() {
	l := bits.MustLayout[uint8](bits.MSB0, bits.R(4), bits.W(1), bits.W(3))

	fmt.Println(l.Fields(), l.Split(0b0000_1_101))
	// Output: 2 [1 5]
}
