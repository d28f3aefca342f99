package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "cdterm"
	configFile = "config.yaml"
)

// ErrUnsupportedVersion is returned when the file's version field is not 1.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/cdterm or $HOME/.config/cdterm
//   - macOS: $HOME/.config/cdterm (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\cdterm
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the default configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads the configuration from path, or from the default location when
// path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	fileMutex.Lock()
	defer fileMutex.Unlock()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return parse(data)
}

// parse decodes and validates a config file. Keys and sections missing from
// the file keep their default values; the version must be given explicitly.
func parse(data []byte) (*Config, error) {
	cfg := New()
	cfg.Version = 0
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Version != 1 {
		return nil, fmt.Errorf("%w: %d (expected 1)", ErrUnsupportedVersion, cfg.Version)
	}

	if cfg.Terminal == nil {
		cfg.Terminal = defaultTerminal()
	}
	if cfg.Server == nil {
		cfg.Server = defaultServer()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Terminal != nil {
		if c.Terminal.IntroDelayMS < 0 || c.Terminal.FadeDelayMS < 0 {
			return fmt.Errorf("terminal delays must not be negative")
		}
	}
	if c.Server != nil {
		if c.Server.Port < 0 || c.Server.Port > 65535 {
			return fmt.Errorf("server port must be between 0-65535, got %d", c.Server.Port)
		}
	}
	return nil
}

// Save writes the configuration to path, or to the default location when
// path is empty. Performs an atomic write to prevent corruption on crash.
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	fileMutex.Lock()
	defer fileMutex.Unlock()

	// Create directory with user-only permissions (0700)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := marshalConfig(c, path)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

func marshalConfig(c *Config, path string) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# cdterm Configuration File
# The destination pages (works, profile, research, contact) are fixed
# and cannot be changed here.
#
# Location: ` + path + `

`)
	return append(header, data...), nil
}

// Marshal returns the YAML encoding of the configuration.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
