package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Window   WindowConfig   `json:"window"`
	Terminal TerminalConfig `json:"terminal"`
	Shell    ShellConfig    `json:"shell"`
	UI       UIConfig       `json:"ui"`
	Prefs    PrefsConfig    `json:"prefs"`
	Logging  LoggingConfig  `json:"logging"`
	Metrics  MetricsConfig  `json:"metrics"`
}

type WindowConfig struct {
	// Initial sizes, in percent of the viewport
	DesktopWidth  float64 `json:"desktop_width"`  // Default: 60
	DesktopHeight float64 `json:"desktop_height"` // Default: 70
	MobileWidth   float64 `json:"mobile_width"`   // Default: 85
	MobileHeight  float64 `json:"mobile_height"`  // Default: 60

	MobileBreakpoint float64 `json:"mobile_breakpoint"` // Default: 640 (pixels)
	CascadeOffset    float64 `json:"cascade_offset"`    // Default: 3
	EdgeMargin       float64 `json:"edge_margin"`       // Default: 5
	FirstZ           int     `json:"first_z"`           // Default: 1000
	MinSize          float64 `json:"min_size"`          // Default: 20 (resize floor)
}

type TerminalConfig struct {
	BlinkIntervalMs int `json:"blink_interval_ms"` // Default: 500
}

type ShellConfig struct {
	User string `json:"user"` // Default: "eve"
	Host string `json:"host"` // Default: "ubuntu"
	Home string `json:"home"` // Default: "/home/eve"

	// gitignore-style patterns for names ls hides without -a
	HiddenPatterns []string `json:"hidden_patterns"` // Default: [".*"]
}

type UIConfig struct {
	CellWidth   int    `json:"cell_width"`   // Default: 8 (pixels per column)
	CellHeight  int    `json:"cell_height"`  // Default: 16 (pixels per row)
	ClockFormat string `json:"clock_format"` // Default: "Mon Jan 2 15:04"
	TickMs      int    `json:"tick_ms"`      // Default: 1000 (clock refresh)
	Mouse       bool   `json:"mouse"`        // Default: true

	// Colors (lipgloss color strings)
	ColorAccent    string `json:"color_accent"`    // Default: "208" (orange)
	ColorDirectory string `json:"color_directory"` // Default: "33" (blue)
	ColorPrompt    string `json:"color_prompt"`    // Default: "42" (green)
	ColorMuted     string `json:"color_muted"`     // Default: "245"
}

type PrefsConfig struct {
	// Persist writes the preference snapshot to Path.
	Persist bool   `json:"persist"` // Default: true
	Path    string `json:"path"`    // Default: ~/.config/deskterm/prefs.yaml
}

type LoggingConfig struct {
	Level  string `json:"level"`  // Default: "info"
	Format string `json:"format"` // Default: "json" ("json" or "console")
	Path   string `json:"path"`   // Default: "" (logging disabled)
}

type MetricsConfig struct {
	Addr string `json:"addr"` // Default: "" (no listener), e.g. "127.0.0.1:9464"
	Path string `json:"path"` // Default: "/metrics"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			DesktopWidth:     60,
			DesktopHeight:    70,
			MobileWidth:      85,
			MobileHeight:     60,
			MobileBreakpoint: 640,
			CascadeOffset:    3,
			EdgeMargin:       5,
			FirstZ:           1000,
			MinSize:          20,
		},
		Terminal: TerminalConfig{
			BlinkIntervalMs: 500,
		},
		Shell: ShellConfig{
			User:           "eve",
			Host:           "ubuntu",
			Home:           "/home/eve",
			HiddenPatterns: []string{".*"},
		},
		UI: UIConfig{
			CellWidth:      8,
			CellHeight:     16,
			ClockFormat:    "Mon Jan 2 15:04",
			TickMs:         1000,
			Mouse:          true,
			ColorAccent:    "208",
			ColorDirectory: "33",
			ColorPrompt:    "42",
			ColorMuted:     "245",
		},
		Prefs: PrefsConfig{
			Persist: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Path: "/metrics",
		},
	}
}
