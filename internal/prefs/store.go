// Package prefs keeps the desktop's key-value preference snapshot: wallpaper,
// sound and brightness levels, the browser's last URL, the code viewer's last
// path, trash state and how often each application was opened.
//
// Values are held as a plain map so unknown keys survive a round trip. Typed
// access goes through Preferences, decoded with mapstructure. When a path is
// configured every write is persisted as YAML.
package prefs

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
}

// OSFileSystem implements FileSystem using the real OS
type OSFileSystem struct{}

func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OSFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Store is the preference snapshot. It is owned by one session and is not safe
// for concurrent use.
type Store struct {
	fs     FileSystem
	path   string
	values map[string]any
}

// NewStore creates an empty store. An empty path keeps the snapshot in memory only.
func NewStore(fs FileSystem, path string) *Store {
	return &Store{fs: fs, path: path, values: make(map[string]any)}
}

// NewMemoryStore creates a store that never touches disk.
func NewMemoryStore() *Store {
	return NewStore(nil, "")
}

// Path returns the file the snapshot is persisted to, if any.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory values with the persisted snapshot.
// A missing file leaves the store empty.
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &ReadError{Path: s.path, Cause: err}
	}
	values := make(map[string]any)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return &DecodeError{Source: s.path, Cause: err}
	}
	if values == nil {
		values = make(map[string]any)
	}
	s.values = values
	return nil
}

func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return &WriteError{Path: s.path, Cause: err}
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &WriteError{Path: s.path, Cause: err}
	}
	if err := s.fs.WriteFile(s.path, data, 0o644); err != nil {
		return &WriteError{Path: s.path, Cause: err}
	}
	return nil
}

// Get returns the raw value stored under key.
func (s *Store) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and persists the snapshot. The in-memory value
// is kept even when persisting fails.
func (s *Store) Set(key string, value any) error {
	s.values[key] = value
	return s.save()
}


// Preferences decodes the snapshot over DefaultPreferences. Strings such as
// "75" or "true" are accepted for numeric and boolean keys.
func (s *Store) Preferences() (Preferences, error) {
	out := DefaultPreferences()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return DefaultPreferences(), &DecodeError{Source: "snapshot", Cause: err}
	}
	if err := dec.Decode(s.values); err != nil {
		return DefaultPreferences(), &DecodeError{Source: "snapshot", Cause: err}
	}
	return out, nil
}

// TrackOpen bumps the application's open counter and re-sorts the list by
// descending frequency. Ties keep their previous order.
func (s *Store) TrackOpen(appID string) error {
	list := s.FrequentApps()
	found := false
	for i := range list {
		if list[i].ID == appID {
			list[i].Frequency++
			found = true
			break
		}
	}
	if !found {
		list = append(list, AppFrequency{ID: appID, Frequency: 1})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Frequency > list[j].Frequency
	})
	return s.Set(KeyFrequentApps, list)
}

// FrequentApps returns the counters, most frequent first. Undecodable data
// reads as an empty list.
func (s *Store) FrequentApps() []AppFrequency {
	p, err := s.Preferences()
	if err != nil {
		return nil
	}
	return append([]AppFrequency(nil), p.FrequentApps...)
}

// Background returns the current wallpaper key.
func (s *Store) Background() string {
	p, _ := s.Preferences()
	return p.Background
}

// CycleBackground switches to the next wallpaper and returns it.
func (s *Store) CycleBackground() (string, error) {
	current := s.Background()
	next := Wallpapers[0]
	for i, w := range Wallpapers {
		if w == current {
			next = Wallpapers[(i+1)%len(Wallpapers)]
			break
		}
	}
	return next, s.Set(KeyBackground, next)
}

// Visit normalises raw as a browser address and records it. It reports false
// for blank input, leaving the stored URL unchanged.
func (s *Store) Visit(raw string) (url, display string, ok bool, err error) {
	url, display, ok = NormalizeURL(raw)
	if !ok {
		return "", "", false, nil
	}
	if err := s.Set(KeyChromeURL, url); err != nil {
		return url, display, true, err
	}
	return url, display, true, s.Set(KeyChromeDisplayURL, display)
}

// EmptyTrash hides the trash contents.
func (s *Store) EmptyTrash() error {
	return s.Set(KeyTrashEmpty, true)
}
