package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks config values for life correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Window validation
	sizes := []struct {
		name  string
		value float64
	}{
		{"window.desktop_width", c.Window.DesktopWidth},
		{"window.desktop_height", c.Window.DesktopHeight},
		{"window.mobile_width", c.Window.MobileWidth},
		{"window.mobile_height", c.Window.MobileHeight},
	}
	for _, s := range sizes {
		if s.value <= 0 || s.value > 100 {
			errs = append(errs, s.name+" must be in (0, 100]")
		}
	}
	if c.Window.MobileBreakpoint < 0 {
		errs = append(errs, "window.mobile_breakpoint must be >= 0")
	}
	if c.Window.CascadeOffset < 0 {
		errs = append(errs, "window.cascade_offset must be >= 0")
	}
	if c.Window.EdgeMargin < 0 || c.Window.EdgeMargin >= 50 {
		errs = append(errs, "window.edge_margin must be in [0, 50)")
	}
	if c.Window.MinSize <= 0 || c.Window.MinSize > 100 {
		errs = append(errs, "window.min_size must be in (0, 100]")
	}

	// Terminal validation
	if c.Terminal.BlinkIntervalMs < 1 {
		errs = append(errs, "terminal.blink_interval_ms must be >= 1")
	}

	// Shell validation
	if c.Shell.User == "" {
		errs = append(errs, "shell.user must not be empty")
	}
	if c.Shell.Host == "" {
		errs = append(errs, "shell.host must not be empty")
	}
	if !strings.HasPrefix(c.Shell.Home, "/") {
		errs = append(errs, "shell.home must be an absolute path")
	}

	// UI validation
	if c.UI.CellWidth < 1 {
		errs = append(errs, "ui.cell_width must be >= 1")
	}
	if c.UI.CellHeight < 1 {
		errs = append(errs, "ui.cell_height must be >= 1")
	}
	if c.UI.TickMs < 1 {
		errs = append(errs, "ui.tick_ms must be >= 1")
	}
	if c.UI.ClockFormat == "" {
		errs = append(errs, "ui.clock_format must not be empty")
	}

	// Logging validation
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, "logging.level must be one of debug, info, warn, error")
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		errs = append(errs, "logging.format must be json or console")
	}

	// Metrics validation
	if c.Metrics.Addr != "" && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, "metrics.path must start with /")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}

// BlinkInterval returns the caret blink period.
func (c *Config) BlinkInterval() time.Duration {
	return time.Duration(c.Terminal.BlinkIntervalMs) * time.Millisecond
}

// TickInterval returns the clock refresh period.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.UI.TickMs) * time.Millisecond
}
