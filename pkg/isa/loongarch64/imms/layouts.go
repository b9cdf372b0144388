package imms

import (
	"strings"

	"github.com/Manu343726/lacodec/pkg/utils"
)

var (
	sd5k16Layout  = split("Sd5k16", 21, "21 bit signed branch offset of BEQZ, BNEZ, BCEQZ and BCNEZ")
	sd10k16Layout = split("Sd10k16", 26, "26 bit signed branch offset of B and BL")
	ua2Layout     = contiguous("Ua2", 2, false, 8, 15, "2 bit shift amount of ALSL.W, ALSL.D and BYTEPICK.W")
	ua3Layout     = contiguous("Ua3", 3, false, 8, 15, "3 bit byte position of BYTEPICK.D")
	sk12Layout    = contiguous("Sk12", 12, true, 16, 10, "12 bit signed immediate of ADDI, SLTI and register+offset loads and stores")
	sk14Layout    = contiguous("Sk14", 14, true, 16, 10, "14 bit signed word offset of LDPTR, STPTR, LL and SC")
	sk16Layout    = contiguous("Sk16", 16, true, 16, 10, "16 bit signed offset of JIRL and two register branches, immediate of ADDU16I.D")
	uk5Layout     = contiguous("Uk5", 5, false, 32, 10, "5 bit shift amount of 32 bit shifts and rotations")
	uk6Layout     = contiguous("Uk6", 6, false, 32, 10, "6 bit shift amount of 64 bit shifts and rotations")
	uk8Layout     = contiguous("Uk8", 8, false, 32, 10, "8 bit unsigned immediate of vector instructions and LDDIR")
	uk12Layout    = contiguous("Uk12", 12, false, 32, 10, "12 bit unsigned immediate of ANDI, ORI and XORI")
	uk14Layout    = contiguous("Uk14", 14, false, 32, 10, "14 bit control and status register number of CSRRD, CSRWR and CSRXCHG")
	uj5Layout     = contiguous("Uj5", 5, false, 8, 5, "5 bit unsigned immediate in the rj register slot")
	ud5Layout     = contiguous("Ud5", 5, false, 8, 0, "5 bit unsigned immediate in the rd register slot, hint of PRELD and code of CACOP")
	ud15Layout    = contiguous("Ud15", 15, false, 16, 0, "15 bit code of BREAK, SYSCALL, DBAR and IBAR")
	sj20Layout    = contiguous("Sj20", 20, true, 32, 5, "20 bit signed immediate of LU12I.W, LU32I.D and the PC relative address instructions")
)

type Sd5k16 struct{}
type Sd10k16 struct{}
type Ua2 struct{}
type Ua3 struct{}
type Sk12 struct{}
type Sk14 struct{}
type Sk16 struct{}
type Uk5 struct{}
type Uk6 struct{}
type Uk8 struct{}
type Uk12 struct{}
type Uk14 struct{}
type Uj5 struct{}
type Ud5 struct{}
type Ud15 struct{}
type Sj20 struct{}

func (Sd5k16) Descriptor() *LayoutDescriptor  { return sd5k16Layout }
func (Sd10k16) Descriptor() *LayoutDescriptor { return sd10k16Layout }
func (Ua2) Descriptor() *LayoutDescriptor     { return ua2Layout }
func (Ua3) Descriptor() *LayoutDescriptor     { return ua3Layout }
func (Sk12) Descriptor() *LayoutDescriptor    { return sk12Layout }
func (Sk14) Descriptor() *LayoutDescriptor    { return sk14Layout }
func (Sk16) Descriptor() *LayoutDescriptor    { return sk16Layout }
func (Uk5) Descriptor() *LayoutDescriptor     { return uk5Layout }
func (Uk6) Descriptor() *LayoutDescriptor     { return uk6Layout }
func (Uk8) Descriptor() *LayoutDescriptor     { return uk8Layout }
func (Uk12) Descriptor() *LayoutDescriptor    { return uk12Layout }
func (Uk14) Descriptor() *LayoutDescriptor    { return uk14Layout }
func (Uj5) Descriptor() *LayoutDescriptor     { return uj5Layout }
func (Ud5) Descriptor() *LayoutDescriptor     { return ud5Layout }
func (Ud15) Descriptor() *LayoutDescriptor    { return ud15Layout }
func (Sj20) Descriptor() *LayoutDescriptor    { return sj20Layout }

func (Sd5k16) storage() uint32  { return 0 }
func (Sd10k16) storage() uint32 { return 0 }
func (Ua2) storage() uint8      { return 0 }
func (Ua3) storage() uint8      { return 0 }
func (Sk12) storage() uint16    { return 0 }
func (Sk14) storage() uint16    { return 0 }
func (Sk16) storage() uint16    { return 0 }
func (Uk5) storage() uint32     { return 0 }
func (Uk6) storage() uint32     { return 0 }
func (Uk8) storage() uint32     { return 0 }
func (Uk12) storage() uint32    { return 0 }
func (Uk14) storage() uint32    { return 0 }
func (Uj5) storage() uint8      { return 0 }
func (Ud5) storage() uint8      { return 0 }
func (Ud15) storage() uint16    { return 0 }
func (Sj20) storage() uint32    { return 0 }

type (
	ImmSd5k16  = Imm[uint32, Sd5k16]
	ImmSd10k16 = Imm[uint32, Sd10k16]
	ImmUa2     = Imm[uint8, Ua2]
	ImmUa3     = Imm[uint8, Ua3]
	ImmSk12    = Imm[uint16, Sk12]
	ImmSk14    = Imm[uint16, Sk14]
	ImmSk16    = Imm[uint16, Sk16]
	ImmUk5     = Imm[uint32, Uk5]
	ImmUk6     = Imm[uint32, Uk6]
	ImmUk8     = Imm[uint32, Uk8]
	ImmUk12    = Imm[uint32, Uk12]
	ImmUk14    = Imm[uint32, Uk14]
	ImmUj5     = Imm[uint8, Uj5]
	ImmUd5     = Imm[uint8, Ud5]
	ImmUd15    = Imm[uint16, Ud15]
	ImmSj20    = Imm[uint32, Sj20]
)

// Identifies a field layout at runtime, for callers selecting the layout dynamically
// (instruction formats, command line tools, etc)
type Kind uint

const (
	Kind_Sd5k16 Kind = iota
	Kind_Sd10k16
	Kind_Ua2
	Kind_Ua3
	Kind_Sk12
	Kind_Sk14
	Kind_Sk16
	Kind_Uk5
	Kind_Uk6
	Kind_Uk8
	Kind_Uk12
	Kind_Uk14
	Kind_Uj5
	Kind_Ud5
	Kind_Ud15
	Kind_Sj20

	totalKinds int = iota
)

var kindDescriptors = [totalKinds]*LayoutDescriptor{
	Kind_Sd5k16:  sd5k16Layout,
	Kind_Sd10k16: sd10k16Layout,
	Kind_Ua2:     ua2Layout,
	Kind_Ua3:     ua3Layout,
	Kind_Sk12:    sk12Layout,
	Kind_Sk14:    sk14Layout,
	Kind_Sk16:    sk16Layout,
	Kind_Uk5:     uk5Layout,
	Kind_Uk6:     uk6Layout,
	Kind_Uk8:     uk8Layout,
	Kind_Uk12:    uk12Layout,
	Kind_Uk14:    uk14Layout,
	Kind_Uj5:     uj5Layout,
	Kind_Ud5:     ud5Layout,
	Kind_Ud15:    ud15Layout,
	Kind_Sj20:    sj20Layout,
}

var kindsByName = func() map[string]Kind {
	kinds := make(map[string]Kind, totalKinds)

	for _, kind := range AllKinds() {
		kinds[strings.ToLower(kind.String())] = kind
	}

	return kinds
}()

// Returns all the field layouts
func AllKinds() []Kind {
	kinds := make([]Kind, totalKinds)

	for i := range kinds {
		kinds[i] = Kind(i)
	}

	return kinds
}

// Returns the layout descriptor of the field
func (k Kind) Descriptor() *LayoutDescriptor {
	if int(k) < totalKinds {
		return kindDescriptors[k]
	}

	panic("unreachable")
}

func (k Kind) String() string {
	return k.Descriptor().Name
}

// Returns the field layout with the given name (case insensitive)
func ParseKind(name string) (Kind, error) {
	if kind, ok := kindsByName[strings.ToLower(name)]; ok {
		return kind, nil
	}

	return 0, utils.MakeError(ErrUnknownKind, "'%v'", name)
}
