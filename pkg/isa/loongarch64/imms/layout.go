package imms

import (
	"errors"
	"fmt"

	"github.com/Manu343726/lacodec/pkg/utils"
)

// Instruction words are 32 bits wide
const InstructionBits = 32

var ErrInvalidLayout = errors.New("invalid immediate layout")

// Maps a contiguous range of bits of the logical value into a range of bits of the instruction word
type Segment struct {
	// First bit of the logical value covered by the segment
	LogicalBit int `yaml:"logical_bit"`
	// First bit within the instruction word the segment is written to
	WordBit int `yaml:"word_bit"`
	// Total bits in the segment
	Width int `yaml:"width"`
}

// Describes how an immediate field is stored and where its bits are placed within
// an instruction word.
//
// Descriptors are immutable once built, all operations are pure functions of their arguments.
type LayoutDescriptor struct {
	// Field name, following the S/U + (d=0, j=5, k=10, a=15, m=16) position notation
	Name string `yaml:"name"`
	// Bit width of the logical value
	Bits int `yaml:"bits"`
	// If true the logical value is a two's complement signed integer
	Signed bool `yaml:"signed"`
	// Bit width of the storage type holding the raw bits
	StorageBits int `yaml:"storage_bits"`
	// Where the logical bits go within the instruction word, from the least significant segment
	Segments []Segment `yaml:"segments"`
	// Field description (for documentation)
	Description string `yaml:"description"`
}

// Returns the lowest valid logical value
func (d *LayoutDescriptor) Min() int64 {
	if d.Signed {
		return -(int64(1) << (d.Bits - 1))
	}

	return 0
}

// Returns the first logical value past the highest valid one
func (d *LayoutDescriptor) Max() int64 {
	if d.Signed {
		return int64(1) << (d.Bits - 1)
	}

	return int64(1) << d.Bits
}

// Returns an error if the value is not within [Min(), Max())
func (d *LayoutDescriptor) Check(value int64) error {
	if value < d.Min() || value >= d.Max() {
		return &OutOfRangeError{
			Field: d.Name,
			Value: value,
			Min:   d.Min(),
			Max:   d.Max(),
		}
	}

	return nil
}

// Returns the two's complement bit pattern of the value truncated to the field width
func (d *LayoutDescriptor) Truncate(value int64) uint32 {
	return uint32(utils.Truncate(uint64(value), d.Bits))
}

// Places the raw bits of the field into their instruction word positions.
// Bits of the result not owned by the field are zero
func (d *LayoutDescriptor) Scatter(bits uint32) uint32 {
	var word uint32
	source := utils.CreateBitView(&bits)
	destination := utils.CreateBitView(&word)

	for _, segment := range d.Segments {
		destination.Write(source.Read(segment.LogicalBit, segment.Width), segment.WordBit, segment.Width)
	}

	return word
}

// Extracts the raw bits of the field from an instruction word, ignoring all bits owned by other fields
func (d *LayoutDescriptor) Gather(word uint32) uint32 {
	var bits uint32
	source := utils.CreateBitView(&word)
	destination := utils.CreateBitView(&bits)

	for _, segment := range d.Segments {
		destination.Write(source.Read(segment.WordBit, segment.Width), segment.LogicalBit, segment.Width)
	}

	return bits
}

// Returns the logical value stored in the given raw bits, sign extended if the field is signed
func (d *LayoutDescriptor) Extend(bits uint32) int64 {
	if d.Signed {
		return utils.SignExtend(bits, d.Bits)
	}

	return utils.ZeroExtend(bits, d.Bits)
}

// Formats a logical value of the field. Signed fields always show the sign
func (d *LayoutDescriptor) Format(value int64) string {
	if d.Signed {
		return fmt.Sprintf("%+d", value)
	}

	return fmt.Sprintf("%d", value)
}

// Returns the instruction word bits of a logical value, or an error if it does not fit the field
func (d *LayoutDescriptor) Encode(value int64) (uint32, error) {
	if err := d.Check(value); err != nil {
		return 0, err
	}

	return d.Scatter(d.Truncate(value)), nil
}

// Returns the logical value of the field encoded in an instruction word
func (d *LayoutDescriptor) Decode(word uint32) int64 {
	return d.Extend(d.Gather(word))
}

// Returns the instruction word bits owned by the field
func (d *LayoutDescriptor) Mask() uint32 {
	return d.Scatter(utils.AllOnes[uint32](d.Bits))
}

// Returns the instruction word ranges used by the field, named after the logical bits they hold
func (d *LayoutDescriptor) BitFields() []utils.BitField {
	return utils.Map(d.Segments, func(segment Segment) utils.BitField {
		name := fmt.Sprintf("%v[%v:%v]", d.Name, segment.LogicalBit+segment.Width-1, segment.LogicalBit)

		if len(d.Segments) == 1 {
			name = d.Name
		}

		return utils.BitField{
			Name:  name,
			Begin: segment.WordBit,
			Width: segment.Width,
		}
	})
}

// Checks the descriptor is consistent: segments cover every logical bit exactly once,
// do not overlap within the instruction word and the logical value fits the storage
func (d *LayoutDescriptor) Validate() error {
	if d.Bits <= 0 || d.Bits > d.StorageBits || d.StorageBits > InstructionBits {
		return utils.MakeError(ErrInvalidLayout, "%v: %v bits field does not fit %v bits storage", d.Name, d.Bits, d.StorageBits)
	}

	var logical, word uint64
	logicalView := utils.CreateBitView(&logical)
	wordView := utils.CreateBitView(&word)

	for _, segment := range d.Segments {
		if segment.Width <= 0 || segment.LogicalBit < 0 || segment.WordBit < 0 ||
			segment.LogicalBit+segment.Width > d.Bits || segment.WordBit+segment.Width > InstructionBits {
			return utils.MakeError(ErrInvalidLayout, "%v: segment %+v out of bounds", d.Name, segment)
		}

		if logicalView.Read(segment.LogicalBit, segment.Width) != 0 || wordView.Read(segment.WordBit, segment.Width) != 0 {
			return utils.MakeError(ErrInvalidLayout, "%v: segment %+v overlaps a previous segment", d.Name, segment)
		}

		logicalView.SetBits(segment.LogicalBit, segment.Width)
		wordView.SetBits(segment.WordBit, segment.Width)
	}

	if logical != utils.AllOnes[uint64](d.Bits) {
		return utils.MakeError(ErrInvalidLayout, "%v: segments do not cover all %v bits", d.Name, d.Bits)
	}

	return nil
}

func (d *LayoutDescriptor) String() string {
	signedness := "unsigned"
	if d.Signed {
		signedness = "signed"
	}

	return fmt.Sprintf("%v (%v bits %v, [%v, %v))", d.Name, d.Bits, signedness, d.Min(), d.Max())
}

// Describes a field stored contiguously starting at the given instruction word bit
func contiguous(name string, bits int, signed bool, storageBits int, wordBit int, description string) *LayoutDescriptor {
	return &LayoutDescriptor{
		Name:        name,
		Bits:        bits,
		Signed:      signed,
		StorageBits: storageBits,
		Segments:    []Segment{{LogicalBit: 0, WordBit: wordBit, Width: bits}},
		Description: description,
	}
}

// Describes a field split in two: the 16 least significant bits at word bit 10, the rest from word bit 0
func split(name string, bits int, description string) *LayoutDescriptor {
	return &LayoutDescriptor{
		Name:        name,
		Bits:        bits,
		Signed:      true,
		StorageBits: 32,
		Segments: []Segment{
			{LogicalBit: 0, WordBit: 10, Width: 16},
			{LogicalBit: 16, WordBit: 0, Width: bits - 16},
		},
		Description: description,
	}
}
