// Package config is for run settings unmarshalled from Viper: defaults,
// an optional config file, MOTIFSCAN_* environment variables, then flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. MOTIFSCAN_LOG_LEVEL.
const EnvPrefix = "MOTIFSCAN"

// Keys shared with the command's flag names.
const (
	KeyLogLevel = "log-level"
	KeyQuiet    = "quiet"
	KeySummary  = "summary"
)

// Settings are ambient knobs; none of them changes what is matched.
type Settings struct {
	// debug | info | warn | error
	LogLevel string `mapstructure:"log-level"`

	// only errors reach stderr
	Quiet bool `mapstructure:"quiet"`

	// log record and match counts after a successful run
	Summary bool `mapstructure:"summary"`
}

// New returns a Viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeySummary, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file (if non-empty) into v and unmarshals the result.
func Load(v *viper.Viper, file string) (Settings, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects unknown log levels.
func (s Settings) Validate() error {
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("invalid log-level %q (want debug|info|warn|error)", s.LogLevel)
}
