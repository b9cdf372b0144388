package imms

import (
	"testing"

	"github.com/Manu343726/lacodec/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func storageOf[T constraints.Unsigned, L Layout[T]](imm Imm[T, L]) (int, *LayoutDescriptor) {
	return utils.SizeofBits[T](), imm.Descriptor()
}

func TestImmStorageMatchesDescriptor(t *testing.T) {
	storages := []func() (int, *LayoutDescriptor){
		func() (int, *LayoutDescriptor) { return storageOf(ImmSd5k16{}) },
		func() (int, *LayoutDescriptor) { return storageOf(ImmSd10k16{}) },
		func() (int, *LayoutDescriptor) { return storageOf(ImmUa2{}) },
		func() (int, *LayoutDescriptor) { return storageOf(ImmUa3{}) },
		func() (int, *LayoutDescriptor) { return storageOf(ImmSk12{}) },
		func() (int, *LayoutDescriptor) { return storageOf(ImmSk14{}) },
		func() (int, *LayoutDescriptor) { return storageOf(ImmSk16{}) },
		func() (int, *LayoutDescriptor) { return storageOf(ImmUk5{}) },
		func() (int, *LayoutDescriptor) { return storageOf(ImmUk6{}) },
		func() (int, *LayoutDescriptor) { return storageOf(ImmUk8{}) },
		func() (int, *LayoutDescriptor) { return storageOf(ImmUk12{}) },
		func() (int, *LayoutDescriptor) { return storageOf(ImmUk14{}) },
		func() (int, *LayoutDescriptor) { return storageOf(ImmUj5{}) },
		func() (int, *LayoutDescriptor) { return storageOf(ImmUd5{}) },
		func() (int, *LayoutDescriptor) { return storageOf(ImmUd15{}) },
		func() (int, *LayoutDescriptor) { return storageOf(ImmSj20{}) },
	}

	require.Len(t, storages, len(AllKinds()))

	for i, storage := range storages {
		bits, descriptor := storage()

		assert.Same(t, Kind(i).Descriptor(), descriptor)
		assert.Equal(t, descriptor.StorageBits, bits, descriptor.Name)
	}
}

func TestImmSk12MostNegative(t *testing.T) {
	imm, err := New[uint16, Sk12](-2048)
	require.NoError(t, err)

	assert.Equal(t, uint32(0x800<<10), imm.Layout())
	assert.Equal(t, int64(-2048), imm.Value())
	assert.Equal(t, uint16(0x800), imm.Bits())
	assert.Equal(t, "-2048", imm.String())
}

func TestImmSk12RejectsMax(t *testing.T) {
	_, err := New[uint16, Sk12](2048)
	assert.ErrorIs(t, err, ErrOutOfRange)

	imm, err := New[uint16, Sk12](2047)
	require.NoError(t, err)
	assert.Equal(t, "+2047", imm.String())
}

func TestImmUk5(t *testing.T) {
	imm, err := New[uint32, Uk5](31)
	require.NoError(t, err)

	assert.Equal(t, uint32(31<<10), imm.Layout())
	assert.Equal(t, int64(31), imm.Value())
	assert.Equal(t, "31", imm.String())

	_, err = New[uint32, Uk5](-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestImmSd5k16Zero(t *testing.T) {
	imm, err := New[uint32, Sd5k16](0)
	require.NoError(t, err)

	assert.Equal(t, int64(0), imm.Value())
	assert.Equal(t, uint32(0), imm.Layout())
	assert.Equal(t, "+0", imm.String())
}

func TestImmSj20Boundaries(t *testing.T) {
	imm, err := New[uint32, Sj20](-524288)
	require.NoError(t, err)
	assert.Equal(t, int64(-524288), imm.Value())
	assert.Equal(t, uint32(0x80000<<5), imm.Layout())

	_, err = New[uint32, Sj20](-524289)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = New[uint32, Sj20](524288)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestImmLayoutIsPure(t *testing.T) {
	first := MustNew[uint16, Sk16](-12345)
	second := MustNew[uint16, Sk16](-12345)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Layout(), second.Layout())
}

func TestImmFromLayout(t *testing.T) {
	tests := []struct {
		name     string
		word     uint32
		expected int64
		decode   func(uint32) (int64, uint32)
	}{
		{
			name:     "branch offset ignores rj",
			word:     0x43fffc9f, // beqz $a0, -1
			expected: -1,
			decode: func(word uint32) (int64, uint32) {
				imm := FromLayout[uint32, Sd5k16](word)
				return imm.Value(), imm.Layout()
			},
		},
		{
			name:     "addi.d immediate",
			word:     0x02c00484, // addi.d $a0, $a0, 1
			expected: 1,
			decode: func(word uint32) (int64, uint32) {
				imm := FromLayout[uint16, Sk12](word)
				return imm.Value(), imm.Layout()
			},
		},
		{
			name:     "break code",
			word:     0x002a0005, // break 5
			expected: 5,
			decode: func(word uint32) (int64, uint32) {
				imm := FromLayout[uint16, Ud15](word)
				return imm.Value(), imm.Layout()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, layout := tt.decode(tt.word)
			assert.Equal(t, tt.expected, value)
			assert.Equal(t, tt.word&layout, layout)
		})
	}
}

func TestImmRoundTripAllValues(t *testing.T) {
	for value := int64(-(1 << 13)); value < 1<<13; value++ {
		imm := MustNew[uint16, Sk14](value)
		require.Equal(t, value, imm.Value())
		require.Equal(t, imm, FromLayout[uint16, Sk14](imm.Layout()))
	}

	for value := int64(0); value < 1<<15; value++ {
		imm := MustNew[uint16, Ud15](value)
		require.Equal(t, value, imm.Value())
		require.Equal(t, imm, FromLayout[uint16, Ud15](imm.Layout()))
	}

	for value := int64(0); value < 8; value++ {
		imm := MustNew[uint8, Ua3](value)
		require.Equal(t, value, imm.Value())
		require.Equal(t, uint32(value)<<15, imm.Layout())
	}
}

func TestImmZeroValue(t *testing.T) {
	var imm ImmSd10k16

	assert.Equal(t, int64(0), imm.Value())
	assert.Equal(t, uint32(0), imm.Layout())
}

func TestMustNewPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { MustNew[uint8, Ua2](4) })
	assert.NotPanics(t, func() { MustNew[uint8, Ua2](3) })
}

func layoutStorageBits[T constraints.Unsigned, L Layout[T]]() (int, *LayoutDescriptor) {
	var layout L
	return utils.SizeofBits[T](), layout.Descriptor()
}

func TestLayoutsAreBoundToTheirStorage(t *testing.T) {
	storages := []func() (int, *LayoutDescriptor){
		layoutStorageBits[uint32, Sd5k16],
		layoutStorageBits[uint32, Sd10k16],
		layoutStorageBits[uint8, Ua2],
		layoutStorageBits[uint8, Ua3],
		layoutStorageBits[uint16, Sk12],
		layoutStorageBits[uint16, Sk14],
		layoutStorageBits[uint16, Sk16],
		layoutStorageBits[uint32, Uk5],
		layoutStorageBits[uint32, Uk6],
		layoutStorageBits[uint32, Uk8],
		layoutStorageBits[uint32, Uk12],
		layoutStorageBits[uint32, Uk14],
		layoutStorageBits[uint8, Uj5],
		layoutStorageBits[uint8, Ud5],
		layoutStorageBits[uint16, Ud15],
		layoutStorageBits[uint32, Sj20],
	}

	require.Len(t, storages, len(AllKinds()))

	for i, storage := range storages {
		bits, descriptor := storage()

		assert.Same(t, Kind(i).Descriptor(), descriptor)
		assert.Equal(t, descriptor.StorageBits, bits, descriptor.Name)
		assert.GreaterOrEqual(t, bits, descriptor.Bits, descriptor.Name)
	}
}

func storedAs[T constraints.Unsigned](layout any) bool {
	_, ok := layout.(Layout[T])
	return ok
}

func TestLayoutsRejectNarrowerStorage(t *testing.T) {
	tests := []struct {
		name     string
		storedAs func(any) bool
		layout   any
		expected bool
	}{
		{"Sk12 as uint8", storedAs[uint8], Sk12{}, false},
		{"Sk12 as uint16", storedAs[uint16], Sk12{}, true},
		{"Sd10k16 as uint8", storedAs[uint8], Sd10k16{}, false},
		{"Sd10k16 as uint16", storedAs[uint16], Sd10k16{}, false},
		{"Sd10k16 as uint32", storedAs[uint32], Sd10k16{}, true},
		{"Ud15 as uint8", storedAs[uint8], Ud15{}, false},
		{"Ua2 as uint8", storedAs[uint8], Ua2{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.storedAs(tt.layout))
		})
	}
}
