package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUint(t *testing.T) {
	assert.Equal(t, "00101", FormatUintBinary(5, 5))
	assert.Equal(t, "0x02c00484", FormatUintHex(0x02c00484, 8))
	assert.Equal(t, "10_0000_0101", FormatUintBinaryGroups(0x205, 10, 4, "_"))
	assert.Equal(t, "0000 0000", FormatUintBinaryGroups(0, 8, 4, " "))
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"42", 42},
		{"-2048", -2048},
		{"0x7ff", 0x7ff},
		{"-0x800", -0x800},
		{"0b101", 5},
		{"1_000", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, err := ParseInt(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}

	_, err := ParseInt("foo")
	assert.Error(t, err)
}

func TestParseUint32(t *testing.T) {
	value, err := ParseUint32("0x43fffc9f")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x43fffc9f), value)

	_, err = ParseUint32("0x100000000")
	assert.Error(t, err)
}
