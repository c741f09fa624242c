package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/ThomasCrouzet/simdedupe/internal/birthtime"
	"github.com/ThomasCrouzet/simdedupe/internal/simctl"
)

// FileName is the config file looked up in the working directory.
const FileName = "simdedupe"

type Config struct {
	Simctl     SimctlConfig `mapstructure:"simctl" yaml:"simctl"`
	DevicesDir string       `mapstructure:"devices_dir" yaml:"devices_dir,omitempty"`
	Confirm    bool         `mapstructure:"confirm" yaml:"confirm"`
	Log        LogConfig    `mapstructure:"log" yaml:"log"`
}

type SimctlConfig struct {
	Launcher     string `mapstructure:"launcher" yaml:"launcher"`
	RegistryJSON string `mapstructure:"registry_json" yaml:"registry_json,omitempty"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // trace, debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // console, json
}

// Defaults returns the configuration used when no file or env overrides
// are present. DevicesDir is left empty when the home directory is unknown.
func Defaults() *Config {
	cfg := &Config{
		Simctl: SimctlConfig{Launcher: simctl.DefaultLauncher},
		Log:    LogConfig{Level: "warn", Format: "console"},
	}
	if dir, err := birthtime.DefaultBaseDir(); err == nil {
		cfg.DevicesDir = dir
	}
	return cfg
}

// EnvPrefix namespaces environment overrides, e.g. SIMDEDUPE_SIMCTL_LAUNCHER.
const EnvPrefix = "SIMDEDUPE"

// Bind registers defaults and environment overrides on v. Viper only
// consults the environment for keys it already knows about.
func Bind(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("simctl.launcher", d.Simctl.Launcher)
	v.SetDefault("simctl.registry_json", d.Simctl.RegistryJSON)
	v.SetDefault("devices_dir", d.DevicesDir)
	v.SetDefault("confirm", d.Confirm)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load merges viper state over the defaults.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg := Defaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.Simctl.Launcher == "" {
		cfg.Simctl.Launcher = simctl.DefaultLauncher
	}
	if cfg.DevicesDir == "" {
		dir, err := birthtime.DefaultBaseDir()
		if err != nil {
			return nil, err
		}
		cfg.DevicesDir = dir
	}
	return cfg, nil
}
