package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable (QUIZBOX_SEED, ...).
const EnvPrefix = "QUIZBOX"

var ErrInvalidLogLevel = errors.New("invalid log level")

// Config holds application configuration loaded from files, env and flags.
type Config struct {
	Env  string `mapstructure:"env"`  // local, production
	Seed int64  `mapstructure:"seed"` // random seed for question picks, 0 = clock
	Log  Log    `mapstructure:"log"`
}

// Log configures the file logger. The terminal belongs to the UI, so logs
// only ever go to a file.
type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// flagKeys maps cobra flag names to config keys.
var flagKeys = map[string]string{
	"seed":      "seed",
	"log-file":  "log.file",
	"log-level": "log.level",
}

// Load reads configuration in increasing priority: defaults, config.yaml,
// environment (including a .env file), then flags that were set explicitly.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// A missing .env is fine; anything else is worth reporting.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}

	v.SetDefault("env", "local")
	v.SetDefault("seed", 0)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
		}
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values that viper cannot.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
}

// IsProduction reports whether production logging should be used.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// configDir resolves $XDG_CONFIG_HOME/quizbox, falling back to ~/.config/quizbox.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "quizbox"), nil
}
