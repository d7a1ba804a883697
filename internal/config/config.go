package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// DefaultEndpoint is the SoftLayer REST endpoint used when none is configured.
const DefaultEndpoint = "https://api.softlayer.com/rest/v3.1"

// DefaultTimeout is the per-request timeout used when none is configured.
const DefaultTimeout = 30 * time.Second

// EnvPrefix is the prefix of the environment variables that override file
// values, e.g. SL_USERNAME and SL_API_KEY.
const EnvPrefix = "SL"

// Config represents the slperm configuration
type Config struct {
	Username    string `toml:"username,omitempty"`
	ApiKey      string `toml:"api_key,omitempty"`
	EndpointURL string `toml:"endpoint_url"`

	// Timeout is the per-request timeout as a duration string (e.g. "45s").
	Timeout string `toml:"timeout,omitempty"`

	// Output is the default output format: table, json or yaml.
	Output string `toml:"output,omitempty"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		EndpointURL: DefaultEndpoint,
	}
}

// IsAuthenticated returns true if both a username and an API key are configured
func (c *Config) IsAuthenticated() bool {
	return c.Username != "" && c.ApiKey != ""
}

// GetTimeout returns the configured timeout, defaulting to 30s if unset.
func (c *Config) GetTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// Load loads configuration from files and the environment, with the
// following precedence:
// 1. SL_* environment variables
// 2. Local .slpermrc file (in current directory)
// 3. Global ~/.slpermrc config file
// 4. Default values
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try global config first (lower precedence)
	globalPath, err := GlobalConfigPath()
	if err == nil {
		if data, err := os.ReadFile(globalPath); err == nil {
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", globalPath, err)
			}
		}
	}

	// Try local config (higher precedence, overwrites global)
	localPath := LocalConfigPath()
	if data, err := os.ReadFile(localPath); err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", localPath, err)
		}
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// LoadFromFile loads configuration from a specific file. Environment
// overrides still apply.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overwrites fields with any SL_USERNAME, SL_API_KEY,
// SL_ENDPOINT_URL, SL_TIMEOUT or SL_OUTPUT values that are set.
func (c *Config) ApplyEnv() {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if s := v.GetString("username"); s != "" {
		c.Username = s
	}
	if s := v.GetString("api_key"); s != "" {
		c.ApiKey = s
	}
	if s := v.GetString("endpoint_url"); s != "" {
		c.EndpointURL = s
	}
	if s := v.GetString("timeout"); s != "" {
		c.Timeout = s
	}
	if s := v.GetString("output"); s != "" {
		c.Output = s
	}
}

// LocalConfigPath returns the path to the local config file
func LocalConfigPath() string {
	return ".slpermrc"
}

// GlobalConfigPath returns the path to the global config file
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".slpermrc"), nil
}

// Save saves the configuration to the global config file
func (c *Config) Save() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// ClearApiKey removes the API key from the configuration and saves it
func (c *Config) ClearApiKey() error {
	c.ApiKey = ""
	return c.Save()
}

// ClearGlobalApiKey removes the API key from the global config file, leaving
// local files and environment values out of it. It reports whether a key
// was removed.
func ClearGlobalApiKey() (bool, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.ApiKey == "" {
		return false, nil
	}
	return true, cfg.ClearApiKey()
}
