// Package config loads CLI defaults from a nanoid.yaml file and NANOID_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/hustcer/nanoid"
	"github.com/hustcer/nanoid/alphabet"
	"github.com/hustcer/nanoid/internal/logging"
)

// Config holds the settings that commands fall back to when a flag is not
// given on the command line.
type Config struct {
	Alphabet  string         `mapstructure:"alphabet"`
	Preset    string         `mapstructure:"preset"`
	Size      int            `mapstructure:"size"`
	Workers   int            `mapstructure:"workers"`
	Format    string         `mapstructure:"format"`
	Normalize bool           `mapstructure:"normalize"`
	Log       logging.Config `mapstructure:"log"`
	Ledger    LedgerConfig   `mapstructure:"ledger"`

	// File is the config file that was read, or "" when none was found.
	File string `mapstructure:"-"`
}

// LedgerConfig configures `nanoid reserve`.
type LedgerConfig struct {
	Dir      string `mapstructure:"dir"`
	Attempts int    `mapstructure:"attempts"`
}

// EnvPrefix is prepended to every environment variable, as in NANOID_SIZE
// or NANOID_LOG_LEVEL.
const EnvPrefix = "NANOID"

// Name is the config file name without extension.
const Name = "nanoid"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Alphabet: alphabet.URLSafe,
		Size:     nanoid.DefaultSize,
		Workers:  4,
		Format:   "text",
		Log:      logging.Config{Level: "warn"},
		Ledger:   LedgerConfig{Dir: ".nanoid", Attempts: 10},
	}
}

// Load reads configuration. When path is empty it looks for nanoid.yaml in
// the working directory and then $HOME/.config/nanoid; a missing file is not
// an error. An explicit path must exist. Environment variables override the
// file and the file overrides Default.
func Load(path string) (*Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("alphabet", d.Alphabet)
	v.SetDefault("preset", d.Preset)
	v.SetDefault("size", d.Size)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("format", d.Format)
	v.SetDefault("normalize", d.Normalize)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.pretty", d.Log.Pretty)
	v.SetDefault("ledger.dir", d.Ledger.Dir)
	v.SetDefault("ledger.attempts", d.Ledger.Attempts)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", Name))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	return &cfg, nil
}
