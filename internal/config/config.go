package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"logview/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level      string `yaml:"level" mapstructure:"level"`
		Format     string `yaml:"format" mapstructure:"format"`
		File       string `yaml:"file" mapstructure:"file"`
		MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
		MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
		MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
	}
	Bus struct {
		Buffer int `yaml:"buffer" mapstructure:"buffer"`
	}
	Tree struct {
		Indent int `yaml:"indent" mapstructure:"indent"`
	}
	Watch struct {
		Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
	}
	Version int
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Version: 1,
	}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat
	cfg.Logging.MaxSize = DefaultLogMaxSize
	cfg.Logging.MaxBackups = DefaultLogMaxBackups
	cfg.Logging.MaxAge = DefaultLogMaxAge

	cfg.Bus.Buffer = DefaultBusBuffer
	cfg.Tree.Indent = DefaultTreeIndent
	cfg.Watch.Debounce = DefaultWatchDebounce

	return cfg
}

// Load loads the configuration from logview.yaml in the working directory
func Load() (*Config, error) {
	return LoadFile(FileName)
}

// LoadFile loads the configuration from path. A missing file yields the defaults,
// and LOGVIEW_* variables from the environment or a .env file override both.
func LoadFile(path string) (*Config, error) {
	if err := loadEnvFile(EnvFile); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	v := newViper(cfg)

	data, err := os.ReadFile(path)
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

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// newViper registers every key with its default so that environment overrides apply on Unmarshal
func newViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.max_size", cfg.Logging.MaxSize)
	v.SetDefault("logging.max_backups", cfg.Logging.MaxBackups)
	v.SetDefault("logging.max_age", cfg.Logging.MaxAge)
	v.SetDefault("bus.buffer", cfg.Bus.Buffer)
	v.SetDefault("tree.indent", cfg.Tree.Indent)
	v.SetDefault("watch.debounce", cfg.Watch.Debounce)
	v.SetDefault("version", cfg.Version)

	return v
}

// loadEnvFile exports the variables of an optional .env file without overriding the environment
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToLoadEnv, err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}

	if c.Bus.Buffer <= 0 {
		return errors.ErrInvalidBusBuffer
	}

	if c.Tree.Indent < 0 {
		return errors.ErrInvalidTreeIndent
	}

	if c.Watch.Debounce <= 0 {
		return errors.ErrInvalidWatchDebounce
	}

	return nil
}

// validateLogging validates the file sink rotation settings
func (c *Config) validateLogging() error {
	if c.Logging.MaxSize < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAge < 0 {
		return errors.ErrInvalidLogRotation
	}

	return nil
}
