package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// validate checks the config for internal consistency and returns a
// ValidationError if any checks fail. All checks run; errors are collected,
// not short-circuited.
func validate(cfg *Config) error {
	var errs []string

	switch cfg.UI.Metrics {
	case "cell", "pixel":
	default:
		errs = append(errs, fmt.Sprintf("ui.metrics %q must be \"cell\" or \"pixel\"", cfg.UI.Metrics))
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q must be \"debug\", \"info\", \"warn\", or \"error\"", cfg.Log.Level))
	}

	switch cfg.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log.format %q must be \"json\" or \"text\"", cfg.Log.Format))
	}

	if cfg.UI.Style == "" {
		errs = append(errs, "ui.style must not be empty")
	}
	if cfg.UI.FrameRate <= 0 || cfg.UI.FrameRate > 1000 {
		errs = append(errs, "ui.frame_rate must be between 1 and 1000")
	}
	if cfg.UI.KeyHoldFrames <= 0 {
		errs = append(errs, "ui.key_hold_frames must be positive")
	}
	if cfg.UI.DoubleClickFrames <= 0 {
		errs = append(errs, "ui.double_click_frames must be positive")
	}
	if cfg.UI.MaxLineLength <= 0 {
		errs = append(errs, "ui.max_line_length must be positive")
	}
	if cfg.Assets.Zoom <= 0 {
		errs = append(errs, "assets.zoom must be positive")
	}
	if cfg.Network.PollTimeoutMS < 0 {
		errs = append(errs, "network.poll_timeout_ms must not be negative")
	}

	if len(cfg.Title.Buttons) == 0 {
		errs = append(errs, "title.buttons must list at least one button")
	}
	if cfg.Title.LogoX < 0 || cfg.Title.LogoX > 1024 || cfg.Title.ButtonsX < 0 || cfg.Title.ButtonsX > 1024 {
		errs = append(errs, "title x positions must be within 0..1024")
	}
	if cfg.Title.LogoY < 0 || cfg.Title.LogoY > 768 || cfg.Title.ButtonsY < 0 || cfg.Title.ButtonsY > 768 {
		errs = append(errs, "title y positions must be within 0..768")
	}
	if _, err := semver.NewVersion(cfg.Title.Version); err != nil {
		errs = append(errs, fmt.Sprintf("title.version %q is not a valid semantic version: %v", cfg.Title.Version, err))
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
