package utils

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidBitField = errors.New("invalid bit field")

// A named range of bits within a frame
type BitField struct {
	// Name of the field
	Name string

	// First (least significant) bit of the field
	Begin int

	// Field width in bits
	Width int
}

// The most significant bit used by this field
func (f *BitField) TopBit() int {
	return f.Begin + f.Width - 1
}

type bitDiagramCell struct {
	index string
	name  string
	width int
}

func writeCentered(text string, length int, builder *strings.Builder) {
	left := (length - len(text)) / 2
	right := length - len(text) - left

	builder.WriteString(strings.Repeat(" ", left))
	builder.WriteString(text)
	builder.WriteString(strings.Repeat(" ", right))
}

// Returns the fields sorted from the most significant to the least significant bit,
// with the gaps between them filled with fields named after gap
func fillBitDiagramGaps(fields []BitField, frameWidth int, gap string) ([]BitField, error) {
	sorted := make([]BitField, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Begin > sorted[j].Begin })

	result := make([]BitField, 0, len(sorted)*2+1)
	next := frameWidth - 1

	for _, field := range sorted {
		if field.Width <= 0 || field.Begin < 0 || field.TopBit() >= frameWidth {
			return nil, MakeError(ErrInvalidBitField, "field '%v' [%v:%v] does not fit a %v bit frame", field.Name, field.TopBit(), field.Begin, frameWidth)
		}

		if field.TopBit() > next {
			return nil, MakeError(ErrInvalidBitField, "field '%v' [%v:%v] overlaps another field", field.Name, field.TopBit(), field.Begin)
		}

		if field.TopBit() < next {
			result = append(result, BitField{Name: gap, Begin: field.TopBit() + 1, Width: next - field.TopBit()})
		}

		result = append(result, field)
		next = field.Begin - 1
	}

	if next >= 0 {
		result = append(result, BitField{Name: gap, Begin: 0, Width: next + 1})
	}

	return result, nil
}

// Draws an ascii diagram of a frame of frameWidth bits, most significant bit first.
// Bits not covered by any field are shown as fields named after gap.
//
//	 31      22 21 10 9        0
//	+----------+-----+----------+
//	| (unused) | imm | (unused) |
//	+----------+-----+----------+
func BitDiagram(fields []BitField, frameWidth int, gap string) (string, error) {
	allFields, err := fillBitDiagramGaps(fields, frameWidth, gap)

	if err != nil {
		return "", err
	}

	cells := Map(allFields, func(field BitField) bitDiagramCell {
		cell := bitDiagramCell{name: field.Name}
		top, low := fmt.Sprint(field.TopBit()), fmt.Sprint(field.Begin)

		if field.Width == 1 {
			cell.index = top
			cell.width = Max(len(top), len(field.Name)+2)
		} else {
			cell.width = Max(len(top)+1+len(low), len(field.Name)+2)
			cell.index = top + strings.Repeat(" ", cell.width-len(top)-len(low)) + low
		}

		return cell
	})

	var indices, border, body strings.Builder

	for _, cell := range cells {
		indices.WriteString(" ")
		indices.WriteString(cell.index)
		if len(cell.index) < cell.width {
			indices.WriteString(strings.Repeat(" ", cell.width-len(cell.index)))
		}

		border.WriteString("+")
		border.WriteString(strings.Repeat("-", cell.width))

		body.WriteString("|")
		writeCentered(cell.name, cell.width, &body)
	}

	border.WriteString("+")
	body.WriteString("|")

	var result strings.Builder

	result.WriteString(strings.TrimRight(indices.String(), " "))
	result.WriteString("\n")
	result.WriteString(border.String())
	result.WriteString("\n")
	result.WriteString(body.String())
	result.WriteString("\n")
	result.WriteString(border.String())
	result.WriteString("\n")

	return result.String(), nil
}
