package loongarch64

import (
	"fmt"
	"strings"

	"github.com/Manu343726/lacodec/pkg/utils"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Configuration key holding the ISA settings group
const SettingsKey = "isa"

// ISA level settings of the loongarch64 target
type Settings struct {
	// Loongson SIMD Extension support
	HasLSX bool `mapstructure:"has_lsx" yaml:"has_lsx"`
	// Loongson Advanced SIMD Extension support
	HasLASX bool `mapstructure:"has_lasx" yaml:"has_lasx"`
}

// A named boolean ISA flag
type Setting struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Value       bool   `yaml:"value"`
}

type settingDescriptor struct {
	name         string
	description  string
	defaultValue bool
	value        func(*Settings) bool
	set          func(*Settings, bool)
}

var settingDescriptors = []settingDescriptor{
	{
		name:         "has_lsx",
		description:  "Loongson SIMD Extension support.",
		defaultValue: true,
		value:        func(s *Settings) bool { return s.HasLSX },
		set:          func(s *Settings, value bool) { s.HasLSX = value },
	},
	{
		name:         "has_lasx",
		description:  "Loongson Advanced SIMD Extension support.",
		defaultValue: true,
		value:        func(s *Settings) bool { return s.HasLASX },
		set:          func(s *Settings, value bool) { s.HasLASX = value },
	},
}

// Returns the settings with all flags set to their defaults
func DefaultSettings() Settings {
	return Settings{
		HasLSX:  true,
		HasLASX: true,
	}
}

// Returns all the flags of the settings group, in declaration order
func (s *Settings) Flags() []Setting {
	return utils.Map(settingDescriptors, func(d settingDescriptor) Setting {
		return Setting{
			Name:        d.name,
			Description: d.description,
			Value:       d.value(s),
		}
	})
}

// Registers the defaults of all ISA flags under the "isa" key
func SetSettingsDefaults(v *viper.Viper) {
	for _, d := range settingDescriptors {
		v.SetDefault(SettingsKey+"."+d.name, d.defaultValue)
	}
}

// Reads the ISA settings from the "isa" key of a viper configuration. Missing flags take their default value.
// Flags are read one by one so values coming from bound command line flags are honored
func LoadSettings(v *viper.Viper) (Settings, error) {
	SetSettingsDefaults(v)

	settings := DefaultSettings()

	for _, d := range settingDescriptors {
		key := SettingsKey + "." + d.name
		value, err := cast.ToBoolE(v.Get(key))

		if err != nil {
			return Settings{}, utils.MakeError(ErrInvalidSettings, "%v: %w", key, err)
		}

		d.set(&settings, value)
	}

	return settings, nil
}

// Dumps the documentation of the ISA settings group, with the current value of each flag
func (s *Settings) Documentation(leftpad int) string {
	var builder strings.Builder
	leftpadStr := strings.Repeat(" ", leftpad)

	builder.WriteString(fmt.Sprintf("%vsettings group: %v\n\n", leftpadStr, SettingsKey))

	for _, flag := range s.Flags() {
		builder.WriteString(fmt.Sprintf("%v  %v.%v = %v\n", leftpadStr, SettingsKey, flag.Name, flag.Value))
		builder.WriteString(fmt.Sprintf("%v    %v\n", leftpadStr, flag.Description))
	}

	return builder.String()
}
