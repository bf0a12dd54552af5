package prefs

// Snapshot keys.
const (
	KeyBackground       = "bg-image"
	KeySoundLevel       = "sound-level"
	KeyBrightnessLevel  = "brightness-level"
	KeyChromeURL        = "chrome-url"
	KeyChromeDisplayURL = "chrome-display-url"
	KeyVSCodePath       = "vscode-path"
	KeyTrashEmpty       = "trash-empty"
	KeyTrashItems       = "trash-items"
	KeyFrequentApps     = "frequentApps"
)

// Wallpapers are the selectable backgrounds, in cycle order.
var Wallpapers = []string{"wall-1", "wall-2"}

const (
	// HomeURL is the embeddable search page the browser falls back to.
	HomeURL        = "https://www.google.com/webhp?igu=1"
	HomeDisplayURL = "https://www.google.com"
	// DefaultVSCodePath is opened when no file was viewed before.
	DefaultVSCodePath = "src/app/app.ts"
)

// AppFrequency counts how often an application window was brought up.
type AppFrequency struct {
	ID        string `mapstructure:"id" yaml:"id"`
	Frequency int    `mapstructure:"frequency" yaml:"frequency"`
}

// TrashItem is one entry shown by the trash pane.
type TrashItem struct {
	Name string `mapstructure:"name" yaml:"name"`
	Icon string `mapstructure:"icon" yaml:"icon"`
}

// Preferences is the typed view of the snapshot.
type Preferences struct {
	Background       string         `mapstructure:"bg-image"`
	SoundLevel       int            `mapstructure:"sound-level"`
	BrightnessLevel  int            `mapstructure:"brightness-level"`
	ChromeURL        string         `mapstructure:"chrome-url"`
	ChromeDisplayURL string         `mapstructure:"chrome-display-url"`
	VSCodePath       string         `mapstructure:"vscode-path"`
	TrashEmpty       bool           `mapstructure:"trash-empty"`
	TrashItems       []TrashItem    `mapstructure:"trash-items"`
	FrequentApps     []AppFrequency `mapstructure:"frequentApps"`
}

// DefaultPreferences returns the values used for keys never written.
func DefaultPreferences() Preferences {
	return Preferences{
		Background:       Wallpapers[0],
		SoundLevel:       75,
		BrightnessLevel:  100,
		ChromeURL:        HomeURL,
		ChromeDisplayURL: HomeDisplayURL,
		VSCodePath:       DefaultVSCodePath,
	}
}

// TrashIsEmpty reports whether the trash pane shows nothing. Emptying the trash
// hides stored items without deleting them.
func (p Preferences) TrashIsEmpty() bool {
	return p.TrashEmpty || len(p.TrashItems) == 0
}
