package imms

import (
	"fmt"
	"strings"

	"github.com/Manu343726/lacodec/pkg/utils"
)

// Returns full documentation for the field layout, including an encoding diagram
func (d *LayoutDescriptor) Documentation(leftpad int) string {
	var builder strings.Builder
	leftpadStr := strings.Repeat(" ", leftpad)

	builder.WriteString(leftpadStr)
	builder.WriteString(d.String())
	builder.WriteString("\n\n")

	leftpadStr += "  "

	builder.WriteString(leftpadStr)
	builder.WriteString(d.Description)
	builder.WriteString("\n\n")
	builder.WriteString(fmt.Sprintf("%vinstruction word mask: %v\n\n", leftpadStr, utils.FormatUintHex(uint64(d.Mask()), 8)))

	diagram, err := utils.BitDiagram(d.BitFields(), InstructionBits, "")
	if err != nil {
		panic(fmt.Errorf("error generating documentation for field %v: %w", d.Name, err))
	}

	for _, line := range strings.Split(strings.TrimRight(diagram, "\n"), "\n") {
		builder.WriteString(leftpadStr)
		builder.WriteString(line)
		builder.WriteString("\n")
	}

	return builder.String()
}

// Dumps the documentation of all immediate field layouts as one big multiline string
func Documentation(leftpad int) string {
	var builder strings.Builder

	builder.WriteString(strings.Repeat(" ", leftpad))
	builder.WriteString(fmt.Sprintf("total immediate field layouts: %v\n\n", len(AllKinds())))

	for _, kind := range AllKinds() {
		builder.WriteString(kind.Descriptor().Documentation(leftpad + 2))
		builder.WriteString("\n")
	}

	return builder.String()
}
