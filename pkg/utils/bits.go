package utils

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

const BitsPerByte = 8

// Returns the size in bits of n bytes
func Bits(bytes int) int {
	return bytes * BitsPerByte
}

// Returns the size in bytes of values of a type
func Sizeof[T any]() int {
	var val T
	return int(unsafe.Sizeof(val))
}

// Returns the size in bits of values of a type
func SizeofBits[T any]() int {
	return Bits(Sizeof[T]())
}

// Returns an all ones bitmask of n bits of the given unsigned integer type.
// n equal to the size of the type yields a mask with all bits set.
func AllOnes[T constraints.Unsigned](bits int) T {
	return (T(1) << bits) - T(1)
}

// Keeps the n least significant bits of a value, discarding the rest
func Truncate[T constraints.Unsigned](value T, bits int) T {
	return value & AllOnes[T](bits)
}

// Interprets the n least significant bits of a value as a two's complement
// integer of n bits and returns it widened to 64 bits.
func SignExtend[T constraints.Unsigned](value T, bits int) int64 {
	shift := 64 - bits
	return int64(uint64(Truncate(value, bits))<<shift) >> shift
}

// Interprets the n least significant bits of a value as an unsigned integer
// of n bits and returns it widened to 64 bits.
func ZeroExtend[T constraints.Unsigned](value T, bits int) int64 {
	return int64(uint64(Truncate(value, bits)))
}

// Implements a read/write view over an unsigned interger, allowing manipullating individual bits easily
type BitView[T constraints.Unsigned] struct {
	Bits *T
}

// Returns the viewed unsigned int value
func (v BitView[T]) Value() T {
	return *v.Bits
}

// Returns the size in bits of the viewed value
func (v BitView[T]) SizeofBits() int {
	return SizeofBits[T]()
}

// Extracts a range of bits given a first bit and a width
func (v BitView[T]) Read(bit int, width int) T {
	return Truncate(v.Value()>>bit, width)
}

// Copies a value into a range of bits, given the start and width of the range.
// All most significant bits of the value not fitting into the destination range are ignored.
// The destination range is expected to be cleared.
func (v BitView[T]) Write(value T, bit int, width int) {
	*v.Bits = (*v.Bits) | (Truncate(value, width) << bit)
}

// Sets all bits in a range to 1
func (v BitView[T]) SetBits(bit int, width int) {
	v.Write(AllOnes[T](width), bit, width)
}

// Sets all bits in a range to 0
func (v BitView[T]) ClearBits(bit int, width int) {
	*v.Bits = (*v.Bits) &^ (AllOnes[T](width) << bit)
}

// Creates a bit view out of an unsigned int
func CreateBitView[T constraints.Unsigned](value *T) BitView[T] {
	return BitView[T]{
		Bits: value,
	}
}
