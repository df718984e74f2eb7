package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cybergodev/nested"
)

// Settings is the resolved CLI configuration. Values come from, in order of
// precedence: explicit flags, environment variables, the config file, and
// the flag defaults.
type Settings struct {
	Format      string `mapstructure:"format" yaml:"format"`               // auto, json, yaml or toml
	Color       string `mapstructure:"color" yaml:"color"`                 // auto, always or never
	MaxDepth    int    `mapstructure:"max_depth" yaml:"max_depth"`         // Maximum tokens in a path
	MaxListSize int    `mapstructure:"max_list_size" yaml:"max_list_size"` // Maximum absolute sequence index
	Verbose     bool   `mapstructure:"verbose" yaml:"verbose"`             // Log engine operations at debug level
}

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

var (
	// envBindings maps a settings key to the environment variables that can
	// provide it. The first variable that is set wins.
	envBindings = map[string][]string{
		"format":        {"NESTED_FORMAT"},
		"color":         {"NESTED_COLOR"},
		"max_depth":     {"NESTED_MAX_DEPTH"},
		"max_list_size": {"NESTED_MAX_LIST_SIZE"},
		"verbose":       {"NESTED_VERBOSE"},
	}

	// flagBindings maps a settings key to its persistent flag
	flagBindings = map[string]string{
		"format":        "format",
		"color":         "color",
		"max_depth":     "max-depth",
		"max_list_size": "max-list-size",
		"verbose":       "verbose",
	}
)

// LoadSettings resolves settings from flags, the environment and the optional
// config file. An explicitly named config file must exist.
func LoadSettings(flags *pflag.FlagSet, configFile string) (*Settings, error) {
	v := viper.New()

	if err := bindEnvs(v); err != nil {
		return nil, err
	}
	for key, name := range flagBindings {
		if flag := flags.Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate checks the enumerated settings
func (s *Settings) Validate() error {
	if _, err := ParseFormat(s.Format); err != nil {
		return err
	}
	switch s.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("invalid color mode %q, expected auto, always or never", s.Color)
	}
	return nil
}

// EngineConfig returns the engine configuration for these settings. The CLI
// works on insertion-ordered documents, so fabricated mappings are ordered too.
func (s *Settings) EngineConfig() *nested.Config {
	cfg := nested.DefaultConfig()
	cfg.MaxDepth = s.MaxDepth
	cfg.MaxListSize = s.MaxListSize
	cfg.OrderedMappings = true
	_ = cfg.Validate()
	return cfg
}

// bindEnvs binds the environment variables to the viper instance
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)
		if err := v.BindEnv(inputs...); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	return nil
}
