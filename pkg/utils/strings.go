package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Formats an uint value into a fixed width binary string of n bits
func FormatUintBinary(value uint64, bits int) string {
	leadingZerosFormat := "%0" + fmt.Sprint(bits) + "s"
	return fmt.Sprintf(leadingZerosFormat, strconv.FormatUint(value, 2))
}

// Formats an uint value into an fixed width hex string of n characters
func FormatUintHex(value uint64, bits int) string {
	leadingZerosFormat := "0x%0" + fmt.Sprint(bits) + "s"
	return fmt.Sprintf(leadingZerosFormat, strconv.FormatUint(value, 16))
}

// Like FormatUintBinary, but inserting a separator every group bits, counting from the least significant bit
func FormatUintBinaryGroups(value uint64, bits int, group int, separator string) string {
	digits := FormatUintBinary(value, bits)

	var builder strings.Builder

	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%group == 0 {
			builder.WriteString(separator)
		}

		builder.WriteRune(digit)
	}

	return builder.String()
}

// Parses an integer literal accepting an optional sign and 0x/0o/0b prefixes
func ParseInt(value string) (int64, error) {
	return strconv.ParseInt(strings.ReplaceAll(value, "_", ""), 0, 64)
}

// Parses an unsigned 32 bit literal accepting 0x/0o/0b prefixes
func ParseUint32(value string) (uint32, error) {
	result, err := strconv.ParseUint(strings.ReplaceAll(value, "_", ""), 0, 32)
	return uint32(result), err
}

// Returns an string containing all formatted sequence items separated by a given separator
func FormatSlice[T any](input []T, separator string) string {
	var builder strings.Builder

	for i, value := range input {
		builder.WriteString(fmt.Sprint(value))

		if i < len(input)-1 {
			builder.WriteString(separator)
		}
	}

	return builder.String()
}
