package vfs

import (
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// DefaultHiddenPatterns hides dot-names, the way ls does without -a.
var DefaultHiddenPatterns = []string{".*"}

// HiddenMatcher decides which names a plain listing leaves out.
// Patterns use gitignore syntax and are matched against the bare entry name,
// so the contents of a hidden directory are not themselves hidden.
type HiddenMatcher struct {
	matcher gitignore.Matcher
}

// NewHiddenMatcher compiles patterns. Nil patterns select DefaultHiddenPatterns;
// an empty, non-nil slice hides nothing.
func NewHiddenMatcher(patterns []string) *HiddenMatcher {
	if patterns == nil {
		patterns = DefaultHiddenPatterns
	}
	var parsed []gitignore.Pattern
	for _, p := range patterns {
		if p == "" {
			continue
		}
		parsed = append(parsed, gitignore.ParsePattern(p, nil))
	}
	if len(parsed) == 0 {
		return &HiddenMatcher{}
	}
	return &HiddenMatcher{matcher: gitignore.NewMatcher(parsed)}
}

// IsHidden reports whether name is left out of plain listings.
func (h *HiddenMatcher) IsHidden(name string, isDir bool) bool {
	if h == nil || h.matcher == nil {
		return false
	}
	return h.matcher.Match([]string{name}, isDir)
}
