// Package loongarch64 describes the loongarch64 compilation target: its ISA settings and
// the capabilities the rest of the compiler queries, and is the entry point to encode
// immediate operands of loongarch64 instructions.
package loongarch64

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Manu343726/lacodec/pkg/isa/loongarch64/imms"
	"github.com/Manu343726/lacodec/pkg/utils"
)

var (
	ErrInvalidSettings   = errors.New("invalid loongarch64 settings")
	ErrImmediateEncoding = errors.New("cannot encode immediate")
)

// How narrow integer arguments are extended when passed in registers
type ArgumentExtension uint

const (
	ArgumentExtension_None ArgumentExtension = iota
	ArgumentExtension_Uext
	ArgumentExtension_Sext
)

func (e ArgumentExtension) String() string {
	switch e {
	case ArgumentExtension_None:
		return "None"
	case ArgumentExtension_Uext:
		return "Uext"
	case ArgumentExtension_Sext:
		return "Sext"
	}

	panic("unreachable")
}

// Function code alignment, in bytes
type FunctionAlignment struct {
	Minimum   uint32
	Preferred uint32
}

// The loongarch64 backend
type Backend struct {
	triple   string
	settings Settings
	logger   *slog.Logger
}

const (
	Name          = "loongarch64"
	DefaultTriple = "loongarch64-unknown-linux-gnu"
)

// Returns a backend for the given settings. A nil logger discards all logs
func NewBackend(settings Settings, logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Backend{
		triple:   DefaultTriple,
		settings: settings,
		logger:   logger.With("backend", Name),
	}
}

func (b *Backend) Name() string {
	return Name
}

func (b *Backend) Triple() string {
	return b.triple
}

func (b *Backend) Settings() Settings {
	return b.settings
}

// Returns the ISA flags the backend was built with
func (b *Backend) ISAFlags() []Setting {
	return b.settings.Flags()
}

// Returns the size in bits of an instruction word
func (b *Backend) InstructionBits() int {
	return imms.InstructionBits
}

// Returns the size in bytes of the widest dynamic vector, or 0 without vector extensions
func (b *Backend) DynamicVectorBytes() uint32 {
	switch {
	case b.settings.HasLASX:
		return 32
	case b.settings.HasLSX:
		return 16
	}

	return 0
}

func (b *Backend) FunctionAlignment() FunctionAlignment {
	return FunctionAlignment{
		Minimum:   uint32(b.InstructionBits() / utils.BitsPerByte),
		Preferred: 16,
	}
}

// 4K pages. 16K pages are supported too, but 4K is the smallest alignment that works for both
func (b *Backend) PageSizeAlignLog2() uint8 {
	return 12
}

func (b *Backend) HasNativeFMA() bool {
	return true
}

func (b *Backend) DefaultArgumentExtension() ArgumentExtension {
	return ArgumentExtension_Sext
}

// Returns the instruction word bits of an immediate operand of the given field layout.
// The value must fit the field, out of range values are reported as errors matching
// both ErrImmediateEncoding and imms.ErrOutOfRange
func (b *Backend) EncodeImmediate(kind imms.Kind, value int64) (uint32, error) {
	bits, err := kind.Descriptor().Encode(value)

	if err != nil {
		b.logger.Debug("immediate out of range", "field", kind.String(), "value", value, "error", err)
		return 0, utils.MakeError(ErrImmediateEncoding, "%w", err)
	}

	b.logger.Debug("encoded immediate", "field", kind.String(), "value", value, "bits", utils.FormatUintHex(uint64(bits), 8))

	return bits, nil
}

// Returns the logical value of the immediate operand of the given field layout encoded in an instruction word
func (b *Backend) DecodeImmediate(kind imms.Kind, word uint32) int64 {
	return kind.Descriptor().Decode(word)
}

func (b *Backend) String() string {
	flags := utils.Map(b.ISAFlags(), func(s Setting) string {
		return fmt.Sprintf("%v=%v", s.Name, s.Value)
	})

	return fmt.Sprintf("%v (%v) {%v}", b.Name(), b.triple, strings.Join(flags, ", "))
}
