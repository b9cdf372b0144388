package loongarch64

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/Manu343726/lacodec/pkg/isa/loongarch64/imms"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	settings, err := LoadSettings(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoadSettingsFromConfig(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
isa:
  has_lasx: false
`)))

	settings, err := LoadSettings(v)
	require.NoError(t, err)

	assert.True(t, settings.HasLSX)
	assert.False(t, settings.HasLASX)
}

func TestLoadSettingsRejectsInvalidValues(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
isa:
  has_lsx: maybe
`)))

	_, err := LoadSettings(v)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestLoadSettingsFromBoundFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("has-lasx", true, "")
	require.NoError(t, flags.Parse([]string{"--has-lasx=false"}))

	v := viper.New()
	require.NoError(t, v.BindPFlag("isa.has_lasx", flags.Lookup("has-lasx")))

	settings, err := LoadSettings(v)
	require.NoError(t, err)

	assert.True(t, settings.HasLSX)
	assert.False(t, settings.HasLASX)
}

func TestSettingsFlags(t *testing.T) {
	settings := Settings{HasLSX: true, HasLASX: false}

	flags := settings.Flags()
	require.Len(t, flags, 2)

	assert.Equal(t, "has_lsx", flags[0].Name)
	assert.True(t, flags[0].Value)
	assert.Equal(t, "has_lasx", flags[1].Name)
	assert.False(t, flags[1].Value)
	assert.Equal(t, "Loongson Advanced SIMD Extension support.", flags[1].Description)
}

func TestBackendCapabilities(t *testing.T) {
	backend := NewBackend(DefaultSettings(), nil)

	assert.Equal(t, "loongarch64", backend.Name())
	assert.Equal(t, DefaultTriple, backend.Triple())
	assert.Equal(t, 32, backend.InstructionBits())
	assert.Equal(t, uint8(12), backend.PageSizeAlignLog2())
	assert.True(t, backend.HasNativeFMA())
	assert.Equal(t, ArgumentExtension_Sext, backend.DefaultArgumentExtension())
	assert.Equal(t, FunctionAlignment{Minimum: 4, Preferred: 16}, backend.FunctionAlignment())
	assert.Equal(t, "loongarch64 (loongarch64-unknown-linux-gnu) {has_lsx=true, has_lasx=true}", backend.String())
}

func TestBackendDynamicVectorBytes(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		expected uint32
	}{
		{name: "lasx", settings: Settings{HasLSX: true, HasLASX: true}, expected: 32},
		{name: "lsx only", settings: Settings{HasLSX: true}, expected: 16},
		{name: "no simd", settings: Settings{}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewBackend(tt.settings, nil).DynamicVectorBytes())
		})
	}
}

func TestBackendEncodeImmediate(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	backend := NewBackend(DefaultSettings(), logger)

	bits, err := backend.EncodeImmediate(imms.Kind_Sk12, -2048)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x800<<10), bits)
	assert.Equal(t, int64(-2048), backend.DecodeImmediate(imms.Kind_Sk12, bits))
	assert.Contains(t, logs.String(), "field=Sk12")

	_, err = backend.EncodeImmediate(imms.Kind_Sk12, 2048)
	assert.ErrorIs(t, err, ErrImmediateEncoding)
	assert.ErrorIs(t, err, imms.ErrOutOfRange)

	var rangeErr *imms.OutOfRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, int64(2048), rangeErr.Value)
	assert.Equal(t, int64(2048), rangeErr.Max)
	assert.Contains(t, logs.String(), "immediate out of range")
}

func TestArgumentExtensionString(t *testing.T) {
	assert.Equal(t, "None", ArgumentExtension_None.String())
	assert.Equal(t, "Uext", ArgumentExtension_Uext.String())
	assert.Equal(t, "Sext", ArgumentExtension_Sext.String())
}
