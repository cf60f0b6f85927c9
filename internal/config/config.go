package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"bidmatch/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Format string `yaml:"format" mapstructure:"format"`
	} `yaml:"logging" mapstructure:"logging"`
	UI struct {
		StartPage string `yaml:"start_page" mapstructure:"start_page"`
		AltScreen bool   `yaml:"alt_screen" mapstructure:"alt_screen"`
		Mouse     bool   `yaml:"mouse" mapstructure:"mouse"`
	} `yaml:"ui" mapstructure:"ui"`
	Version int `yaml:"version" mapstructure:"version"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.UI.StartPage = DefaultStartPage
	cfg.UI.AltScreen = DefaultAltScreen
	cfg.UI.Mouse = DefaultMouse

	return cfg
}

// Load reads bidmatch.yaml if present and applies BIDMATCH_* environment overrides
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.ErrFailedToReadEnv
	}

	cfg := DefaultConfig()
	v := newViper(cfg)

	data, err := os.ReadFile(FileName)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	if err == nil {
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// newViper creates a viper instance seeded with defaults so env overrides resolve
func newViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("version", cfg.Version)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("ui.start_page", cfg.UI.StartPage)
	v.SetDefault("ui.alt_screen", cfg.UI.AltScreen)
	v.SetDefault("ui.mouse", cfg.UI.Mouse)

	return v
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}

	if c.UI.StartPage == "" {
		return errors.ErrStartPageRequired
	}

	return nil
}

// validateLogging validates logging settings
func (c *Config) validateLogging() error {
	if !slices.Contains(LogLevels, c.Logging.Level) {
		return fmt.Errorf("%w: '%s' (must be one of %s)", errors.ErrInvalidLogLevel, c.Logging.Level, strings.Join(LogLevels, ", "))
	}

	switch c.Logging.Format {
	case LogFormatConsole, LogFormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: '%s' (must be '%s' or '%s')", errors.ErrInvalidLogFormat, c.Logging.Format, LogFormatConsole, LogFormatJSON)
	}
}

// normalize trims and lowercases free-form string settings
func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.UI.StartPage = strings.TrimSpace(c.UI.StartPage)
}
