package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the standard locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot start with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov %v out of range (0, 180)", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("invalid camera clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Controls.DampingFactor < 0 || c.Controls.DampingFactor > 1 {
		return fmt.Errorf("damping factor %v out of range [0, 1]", c.Controls.DampingFactor)
	}
	if c.Asset.ModelPath == "" {
		return fmt.Errorf("asset model_path is empty")
	}
	if c.Page.MountID == "" {
		return fmt.Errorf("page mount_id is empty")
	}
	return nil
}

// BaseDir is the location relative assets are resolved against: the
// directory of the config file, or the working directory without one.
func (c *Config) BaseDir() string {
	if c.source != "" {
		if abs, err := filepath.Abs(filepath.Dir(c.source)); err == nil {
			return abs
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// Source returns the config file path that was loaded, or "".
func (c *Config) Source() string {
	return c.source
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./showcase.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Showcase")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Showcase")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "showcase")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "showcase")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	cfg.source = path
	return nil
}
