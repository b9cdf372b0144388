package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitDiagram_NoFields(t *testing.T) {
	actual, err := BitDiagram(nil, 16, "(unused)")
	require.NoError(t, err)

	assert.Equal(t, ""+
		` 15       0
+----------+
| (unused) |
+----------+
`,
		actual)
}

func TestBitDiagram_SingleField(t *testing.T) {
	fields := []BitField{
		{
			Name:  "imm",
			Begin: 10,
			Width: 12,
		},
	}

	actual, err := BitDiagram(fields, 32, "(unused)")
	require.NoError(t, err)

	assert.Equal(t, ""+
		` 31      22 21 10 9        0
+----------+-----+----------+
| (unused) | imm | (unused) |
+----------+-----+----------+
`,
		actual)
}

func TestBitDiagram_SplitFieldUnsorted(t *testing.T) {
	fields := []BitField{
		{Name: "hi", Begin: 0, Width: 2},
		{Name: "lo", Begin: 4, Width: 4},
	}

	actual, err := BitDiagram(fields, 8, "-")
	require.NoError(t, err)

	assert.Equal(t, ""+
		` 7  4 3 2 1  0
+----+---+----+
| lo | - | hi |
+----+---+----+
`,
		actual)
}

func TestBitDiagram_SingleBitField(t *testing.T) {
	fields := []BitField{{Name: "s", Begin: 3, Width: 1}}

	actual, err := BitDiagram(fields, 4, "x")
	require.NoError(t, err)

	assert.Equal(t, ""+
		` 3   2 0
+---+---+
| s | x |
+---+---+
`,
		actual)
}

func TestBitDiagram_InvalidFields(t *testing.T) {
	_, err := BitDiagram([]BitField{{Name: "a", Begin: 30, Width: 4}}, 32, "")
	assert.ErrorIs(t, err, ErrInvalidBitField)

	_, err = BitDiagram([]BitField{{Name: "a", Begin: 0, Width: 4}, {Name: "b", Begin: 2, Width: 4}}, 32, "")
	assert.ErrorIs(t, err, ErrInvalidBitField)
}
