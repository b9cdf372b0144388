// Package imms implements the immediate operand fields of LoongArch64 instructions.
//
// An immediate is stored as the raw two's complement bits of its logical value, truncated to
// the width of the field. Each field type knows how to scatter those bits into the instruction
// word (see [Imm.Layout]) and how to recover the logical value back (see [Imm.Value]).
//
// Field layouts are named after the position of their bits within the instruction word:
// S/U for signed/unsigned, followed by one or more groups of a position letter and a width,
// from the least significant logical bits. Position letters are d (bit 0), j (bit 5),
// k (bit 10) and a (bit 15). For example Sd5k16 is a 21 bit signed immediate whose 16 least
// significant bits go to bit 10 and whose remaining 5 bits go to bit 0.
package imms

import (
	"golang.org/x/exp/constraints"
)

// Implemented by the zero sized types identifying each field layout.
// T is the storage type of the layout: a layout only satisfies Layout for the
// unsigned type wide enough to hold its raw bits
type Layout[T constraints.Unsigned] interface {
	Descriptor() *LayoutDescriptor
	storage() T
}

// An immediate value of the field layout L, stored as T.
//
// The zero value is a valid immediate holding 0.
type Imm[T constraints.Unsigned, L Layout[T]] struct {
	bits T
}

// Returns an immediate holding the given logical value, or an [*OutOfRangeError] if the
// value does not fit the field
func New[T constraints.Unsigned, L Layout[T]](value int64) (Imm[T, L], error) {
	var layout L
	descriptor := layout.Descriptor()

	if err := descriptor.Check(value); err != nil {
		return Imm[T, L]{}, err
	}

	return Imm[T, L]{bits: T(descriptor.Truncate(value))}, nil
}

// Like New, but panics if the value does not fit the field.
// Meant for values known at compile time
func MustNew[T constraints.Unsigned, L Layout[T]](value int64) Imm[T, L] {
	imm, err := New[T, L](value)

	if err != nil {
		panic(err)
	}

	return imm
}

// Returns the immediate encoded in an instruction word. Bits not owned by the field are ignored
func FromLayout[T constraints.Unsigned, L Layout[T]](word uint32) Imm[T, L] {
	var layout L
	return Imm[T, L]{bits: T(layout.Descriptor().Gather(word))}
}

// Returns the layout descriptor of the field
func (i Imm[T, L]) Descriptor() *LayoutDescriptor {
	var layout L
	return layout.Descriptor()
}

// Returns the raw stored bits
func (i Imm[T, L]) Bits() T {
	return i.bits
}

// Returns the immediate bits placed at their instruction word positions, ready to be OR-ed into the instruction
func (i Imm[T, L]) Layout() uint32 {
	return i.Descriptor().Scatter(uint32(i.bits))
}

// Returns the logical value of the immediate
func (i Imm[T, L]) Value() int64 {
	return i.Descriptor().Extend(uint32(i.bits))
}

func (i Imm[T, L]) String() string {
	return i.Descriptor().Format(i.Value())
}
