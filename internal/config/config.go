// Package config provides configuration management for mnemonix.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Version int           `yaml:"version"`
	Home    string        `yaml:"home"`
	Entropy EntropyConfig `yaml:"entropy"`
	Wallet  WalletConfig  `yaml:"wallet"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// EntropyConfig holds entropy generation settings. The `generate` command
// does not read them: its --raw and --bits flags select the source and size.
type EntropyConfig struct {
	// Hardened records PBKDF2-whitened entropy as preferred over raw CSPRNG bytes.
	Hardened bool `yaml:"hardened"`
	// DefaultBits is an entropy size in bits (128..256, multiple of 32).
	DefaultBits int `yaml:"default_bits"`
}

// WalletConfig holds master-node derivation settings. The `derive` command
// does not read them: its --network and --address-type flags select these.
type WalletConfig struct {
	Network     string `yaml:"network"`
	AddressType string `yaml:"address_type"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Color         string `yaml:"color"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from the specified file, seeded with Defaults
// so a partial file still yields a usable Config. An absent or unreadable
// file returns the read error and no Config.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// Path returns the default config file path under home.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// GetHome returns the mnemonix home directory path.
func (c *Config) GetHome() string {
	return c.Home
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// GetOutputFormat returns the default output format.
func (c *Config) GetOutputFormat() string {
	return c.Output.DefaultFormat
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// DefaultHome returns the default mnemonix home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mnemonix"
	}
	return filepath.Join(home, ".mnemonix")
}
