package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load discovers a config file, merges it with defaults, applies environment
// variable overrides, validates the result, and returns the final config.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using dir as the first place to look for
// modal.yaml. Load() calls it with os.Getwd().
func LoadFrom(dir string) (*Config, error) {
	cfg := DefaultConfig()

	path := discoverConfigPath(dir)
	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath returns the first config file that exists, or "" when
// running on defaults only.
func discoverConfigPath(dir string) string {
	// 1. ./modal.yaml
	local := filepath.Join(dir, "modal.yaml")
	if _, err := os.Stat(local); err == nil {
		return local
	}

	// 2. ~/.config/modal/config.yaml
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	user := filepath.Join(home, ".config", "modal", "config.yaml")
	if _, err := os.Stat(user); err == nil {
		return user
	}

	return ""
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}

// merge overlays override onto base. Scalars override when non-zero, slices
// replace entirely when non-nil, pointer-to-bool fields override when non-nil.
func merge(base *Config, override *Config) {
	// UI
	if override.UI.Style != "" {
		base.UI.Style = override.UI.Style
	}
	if override.UI.Metrics != "" {
		base.UI.Metrics = override.UI.Metrics
	}
	if override.UI.FrameRate != 0 {
		base.UI.FrameRate = override.UI.FrameRate
	}
	if override.UI.KeyHoldFrames != 0 {
		base.UI.KeyHoldFrames = override.UI.KeyHoldFrames
	}
	if override.UI.DoubleClickFrames != 0 {
		base.UI.DoubleClickFrames = override.UI.DoubleClickFrames
	}
	if override.UI.MaxLineLength != 0 {
		base.UI.MaxLineLength = override.UI.MaxLineLength
	}
	if override.UI.Mouse != nil {
		base.UI.Mouse = override.UI.Mouse
	}
	if override.UI.FocusLock {
		base.UI.FocusLock = true
	}

	// Assets
	if override.Assets.Dir != "" {
		base.Assets.Dir = override.Assets.Dir
	}
	if override.Assets.Zoom != 0 {
		base.Assets.Zoom = override.Assets.Zoom
	}

	// Lang
	if override.Lang.Language != "" {
		base.Lang.Language = override.Lang.Language
	}
	if override.Lang.Dir != "" {
		base.Lang.Dir = override.Lang.Dir
	}

	// Log
	if override.Log.Dir != "" {
		base.Log.Dir = override.Log.Dir
	}
	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}
	if override.Log.Format != "" {
		base.Log.Format = override.Log.Format
	}
	if override.Log.Debug {
		base.Log.Debug = true
	}

	// Title
	if override.Title.Image != "" {
		base.Title.Image = override.Title.Image
	}
	if override.Title.Logo != "" {
		base.Title.Logo = override.Title.Logo
	}
	if override.Title.LogoX != 0 {
		base.Title.LogoX = override.Title.LogoX
	}
	if override.Title.LogoY != 0 {
		base.Title.LogoY = override.Title.LogoY
	}
	if override.Title.ButtonsX != 0 {
		base.Title.ButtonsX = override.Title.ButtonsX
	}
	if override.Title.ButtonsY != 0 {
		base.Title.ButtonsY = override.Title.ButtonsY
	}
	if override.Title.Padding != 0 {
		base.Title.Padding = override.Title.Padding
	}
	if override.Title.Buttons != nil {
		base.Title.Buttons = override.Title.Buttons
	}
	if override.Title.Version != "" {
		base.Title.Version = override.Title.Version
	}

	// Network
	if override.Network.URL != "" {
		base.Network.URL = override.Network.URL
	}
	if override.Network.PollTimeoutMS != 0 {
		base.Network.PollTimeoutMS = override.Network.PollTimeoutMS
	}
}

// applyEnvOverrides applies MODAL_* environment variables on top of the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MODAL_STYLE"); v != "" {
		cfg.UI.Style = v
	}
	if v := os.Getenv("MODAL_METRICS"); v != "" {
		cfg.UI.Metrics = v
	}
	if v := os.Getenv("MODAL_LANG"); v != "" {
		cfg.Lang.Language = v
	}
	if v := os.Getenv("MODAL_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv("MODAL_URL"); v != "" {
		cfg.Network.URL = v
	}
	if v := os.Getenv("MODAL_FRAME_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.UI.FrameRate = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: MODAL_FRAME_RATE=%q is not a valid integer, ignoring\n", v)
		}
	}
	if v := os.Getenv("MODAL_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Debug = b
		} else {
			fmt.Fprintf(os.Stderr, "warning: MODAL_DEBUG=%q is not a valid boolean, ignoring\n", v)
		}
	}
	if v := os.Getenv("MODAL_FOCUS_LOCK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UI.FocusLock = b
		} else {
			fmt.Fprintf(os.Stderr, "warning: MODAL_FOCUS_LOCK=%q is not a valid boolean, ignoring\n", v)
		}
	}
}
