// Package config loads tilepath CLI settings from an optional YAML file,
// TILEPATH_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// EnvPrefix is prepended to every environment override, e.g. TILEPATH_MODE.
const EnvPrefix = "TILEPATH"

// Map formats accepted by the build command.
const (
	FormatASCII  = "ascii"
	FormatValues = "values"
)

var (
	// ErrBadFormat indicates an unknown map format.
	ErrBadFormat = errors.New("config: map format must be ascii or values")
	// ErrNoGraphPath indicates an empty graph file path.
	ErrNoGraphPath = errors.New("config: graph path is empty")
)

// Config is the resolved CLI configuration.
type Config struct {
	Mode      gridgraph.DirectionMode `mapstructure:"mode"`
	Topology  gridgraph.Topology      `mapstructure:"topology"`
	Format    string                  `mapstructure:"format"`
	Threshold int                     `mapstructure:"threshold"`
	Graph     string                  `mapstructure:"graph"`
	Log       LogConfig               `mapstructure:"log"`
}

// LogConfig selects the zap preset and level.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug|info|warn|error
	Format string `mapstructure:"format"` // json|console
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		Mode:      gridgraph.Omnidirectional,
		Topology:  gridgraph.Rectangle,
		Format:    FormatASCII,
		Threshold: 1,
		Graph:     "graph.yaml",
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"mode":       "mode",
	"topology":   "topology",
	"format":     "format",
	"threshold":  "threshold",
	"graph":      "graph",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Load resolves configuration. path may be empty, in which case only
// defaults, environment and flags apply; a non-empty path must exist.
// Flags present in fs override everything else when set on the command line.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it on Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("mode", d.Mode.String())
	v.SetDefault("topology", d.Topology.String())
	v.SetDefault("format", d.Format)
	v.SetDefault("threshold", d.Threshold)
	v.SetDefault("graph", d.Graph)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Validate checks the fields the decoder cannot.
func (c *Config) Validate() error {
	if !c.Mode.Valid() {
		return gridgraph.ErrUnknownMode
	}
	if !c.Topology.Valid() {
		return gridgraph.ErrUnknownTopology
	}
	if c.Format != FormatASCII && c.Format != FormatValues {
		return fmt.Errorf("format %q: %w", c.Format, ErrBadFormat)
	}
	if c.Graph == "" {
		return ErrNoGraphPath
	}
	return nil
}
