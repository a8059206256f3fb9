// Package config loads dop settings from the environment and an optional
// YAML defaults file.
//
// Credentials only come from the environment:
//
//	DIGITAL_OCEAN_TOKEN     personal access token
//	DIGITAL_OCEAN_SSH_KEYS  comma separated SSH key IDs added to new droplets
//
// The defaults file holds creation defaults (image, size, region, ...).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jbweber/dop/internal/catalog"
	"github.com/jbweber/dop/internal/naming"
)

const (
	// EnvToken names the variable holding the API token.
	EnvToken = "DIGITAL_OCEAN_TOKEN"
	// EnvSSHKeys names the variable holding the SSH key IDs.
	EnvSSHKeys = "DIGITAL_OCEAN_SSH_KEYS"
	// EnvConfig overrides the defaults file location.
	EnvConfig = "DOP_CONFIG"

	// DefaultImage is the image slug new droplets boot from.
	DefaultImage = "ubuntu-14-04-x64"
	// DefaultUser is the remote login used by "dop ssh".
	DefaultUser = "root"
	// DefaultActionDelay is the pause before each create/destroy call.
	DefaultActionDelay = 300 * time.Millisecond
)

var (
	// ErrMissingToken is returned when DIGITAL_OCEAN_TOKEN is unset or blank.
	ErrMissingToken = errors.New("the DO API token should be configured (set " + EnvToken + "), please read README.md to fix this issue")

	// ErrMissingSSHKeys is returned when no SSH key IDs are configured.
	ErrMissingSSHKeys = errors.New("SSH key IDs should be configured (set " + EnvSSHKeys + "), please read README.md to fix this issue")
)

// tagPattern matches the tag names the API accepts.
var tagPattern = regexp.MustCompile(`^[a-zA-Z0-9_:\-]+$`)

// Config is the effective configuration of a dop invocation.
type Config struct {
	Token    string
	SSHKeys  []int
	Defaults Defaults
}

// Defaults are the values applied to flags the user did not set.
type Defaults struct {
	Image             string        `yaml:"image,omitempty"`
	Size              string        `yaml:"size,omitempty"`
	Region            string        `yaml:"region,omitempty"`
	Prefix            string        `yaml:"prefix,omitempty"`
	User              string        `yaml:"user,omitempty"`
	PrivateNetworking *bool         `yaml:"private_networking,omitempty"` // Pointer to distinguish unset vs false
	ActionDelay       time.Duration `yaml:"action_delay,omitempty"`
	Tags              []string      `yaml:"tags,omitempty"`
}

// Load builds a Config from the environment (via getenv) and the defaults
// file at path. An empty path or a missing file leaves the built-in
// defaults in place.
//
// A missing token is not an error here; commands that talk to the API call
// RequireToken.
func Load(getenv func(string) string, path string) (*Config, error) {
	keys, err := ParseSSHKeys(getenv(EnvSSHKeys))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvSSHKeys, err)
	}

	cfg := &Config{
		Token:   strings.TrimSpace(getenv(EnvToken)),
		SSHKeys: keys,
	}

	if path != "" {
		defaults, err := LoadDefaultsFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Defaults = *defaults
	}

	cfg.Defaults.ApplyBuiltins()

	if err := cfg.Defaults.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadDefaultsFromFile reads a defaults file. A file that does not exist
// yields empty Defaults.
func LoadDefaultsFromFile(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Defaults{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var defaults Defaults
	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in %s: %w", path, err)
	}

	defaults.Normalize()
	return &defaults, nil
}

// DefaultPath returns the defaults file location:
// $DOP_CONFIG, else $XDG_CONFIG_HOME/dop/config.yaml, else
// ~/.config/dop/config.yaml.
func DefaultPath(getenv func(string) string) (string, error) {
	if p := getenv(EnvConfig); p != "" {
		return p, nil
	}

	configDir := getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "dop", "config.yaml"), nil
}

// ParseSSHKeys parses a comma separated list of key IDs.
// Blank entries are skipped.
func ParseSSHKeys(raw string) ([]int, error) {
	var keys []int
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("SSH key ID %q is not an integer", field)
		}
		keys = append(keys, id)
	}
	return keys, nil
}

// RequireToken returns ErrMissingToken when no token is configured.
func (c *Config) RequireToken() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	return nil
}

// RequireSSHKeys returns ErrMissingSSHKeys when no key IDs are configured.
func (c *Config) RequireSSHKeys() error {
	if len(c.SSHKeys) == 0 {
		return ErrMissingSSHKeys
	}
	return nil
}

// Normalize trims whitespace and lowercases slugs.
func (d *Defaults) Normalize() {
	d.Image = strings.TrimSpace(d.Image)
	d.Size = strings.ToLower(strings.TrimSpace(d.Size))
	d.Region = strings.ToLower(strings.TrimSpace(d.Region))
	d.User = strings.TrimSpace(d.User)
	for i, tag := range d.Tags {
		d.Tags[i] = strings.TrimSpace(tag)
	}
}

// ApplyBuiltins fills every unset field with the built-in default.
func (d *Defaults) ApplyBuiltins() {
	if d.Image == "" {
		d.Image = DefaultImage
	}
	if d.Size == "" {
		d.Size = catalog.DefaultSize
	}
	if d.Region == "" {
		d.Region = catalog.DefaultRegion
	}
	if d.Prefix == "" {
		d.Prefix = naming.DefaultPrefix
	}
	if d.User == "" {
		d.User = DefaultUser
	}
	if d.PrivateNetworking == nil {
		enabled := true
		d.PrivateNetworking = &enabled
	}
	if d.ActionDelay == 0 {
		d.ActionDelay = DefaultActionDelay
	}
}

// Validate checks the defaults for errors.
func (d *Defaults) Validate() error {
	if d.Size != "" {
		if err := catalog.ValidateSize(d.Size); err != nil {
			return fmt.Errorf("size: %w", err)
		}
	}
	if d.Region != "" {
		if err := catalog.ValidateRegion(d.Region); err != nil {
			return fmt.Errorf("region: %w", err)
		}
	}
	if d.ActionDelay < 0 {
		return fmt.Errorf("action_delay must be >= 0, got %s", d.ActionDelay)
	}
	for i, tag := range d.Tags {
		if !tagPattern.MatchString(tag) {
			return fmt.Errorf("tags[%d]: invalid tag %q (letters, digits, '_', '-' and ':' only)", i, tag)
		}
	}
	return nil
}

// PrivateNetworkingEnabled reports the private networking default.
func (d *Defaults) PrivateNetworkingEnabled() bool {
	return d.PrivateNetworking == nil || *d.PrivateNetworking
}
