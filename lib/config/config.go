// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/relaygroups/lib/ref"
)

// EnvironmentVariable names the variable Load reads the config path
// from.
const EnvironmentVariable = "RELAYGROUPS_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// OutputFormats lists the accepted values of Config.Output.
var OutputFormats = []string{"json", "text", "cbor"}

// Config is the relaygroups CLI configuration.
type Config struct {
	// Environment selects which override section applies.
	Environment Environment `yaml:"environment"`

	// DefaultRelay is the relay URL used when a command is given a bare
	// group id instead of a full "<relay>'<id>" identifier.
	DefaultRelay string `yaml:"default_relay"`

	// SecretKeyFile is the path to a file holding a 64-character hex
	// secret key, used to sign events. ${HOME} and ${VAR:-default}
	// references are expanded.
	SecretKeyFile string `yaml:"secret_key_file"`

	// Output is the default output format for tag lists.
	// Values: json, text, cbor. Default: json.
	Output string `yaml:"output"`

	Development *Overrides `yaml:"development,omitempty"`
	Staging     *Overrides `yaml:"staging,omitempty"`
	Production  *Overrides `yaml:"production,omitempty"`
}

// Overrides contains the fields that can be overridden per
// environment. Empty fields leave the base value in place.
type Overrides struct {
	DefaultRelay  string `yaml:"default_relay,omitempty"`
	SecretKeyFile string `yaml:"secret_key_file,omitempty"`
	Output        string `yaml:"output,omitempty"`
}

// Default returns the configuration used as a base before the file is
// applied, and by commands run without a config file.
func Default() *Config {
	return &Config{
		Environment: Development,
		Output:      "json",
	}
}

// Load loads configuration from the file named by RELAYGROUPS_CONFIG.
// Fails when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your relaygroups.yaml config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path, applies the override section
// for the configured environment, expands variables, and validates.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.SecretKeyFile = expandVars(cfg.SecretKeyFile)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnvironmentOverrides() {
	var overrides *Overrides
	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}
	if overrides == nil {
		return
	}

	if overrides.DefaultRelay != "" {
		c.DefaultRelay = overrides.DefaultRelay
	}
	if overrides.SecretKeyFile != "" {
		c.SecretKeyFile = overrides.SecretKeyFile
	}
	if overrides.Output != "" {
		c.Output = overrides.Output
	}
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}

// Validate checks the configuration and reports every problem at once,
// each naming its field.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("environment: invalid value %q", c.Environment))
	}
	if c.DefaultRelay != "" {
		if _, err := ref.ParseURL(c.DefaultRelay); err != nil {
			errs = append(errs, fmt.Errorf("default_relay: %w", err))
		}
	}
	if !slices.Contains(OutputFormats, c.Output) {
		errs = append(errs, fmt.Errorf("output must be one of: %v (got %q)", OutputFormats, c.Output))
	}

	return errors.Join(errs...)
}

// Relay returns DefaultRelay parsed as a URL. Fails when no default
// relay is configured.
func (c *Config) Relay() (ref.URL, error) {
	if c.DefaultRelay == "" {
		return ref.URL{}, errors.New("no default_relay configured; pass a full relay-url'group-id identifier or set default_relay")
	}
	return ref.ParseURL(c.DefaultRelay)
}

// ReadSecretKey reads the secret key from SecretKeyFile. Surrounding
// whitespace (a trailing newline from an editor) is ignored; the rest
// must be exactly 64 lowercase hex characters.
func (c *Config) ReadSecretKey() (string, error) {
	if c.SecretKeyFile == "" {
		return "", errors.New("no secret_key_file configured")
	}
	return ReadSecretKeyFile(c.SecretKeyFile)
}
