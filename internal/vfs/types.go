package vfs

import "strings"

// Kind is the immutable type of a node.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Path is a directory stack from the root. The zero value is the root.
type Path []string

// String renders the path the way the prompt shows it ("~", "~/projects").
func (p Path) String() string {
	if len(p) == 0 {
		return "~"
	}
	return "~/" + strings.Join(p, "/")
}

// IsRoot reports whether p names the root directory.
func (p Path) IsRoot() bool { return len(p) == 0 }

// Base returns the last segment, or "" at the root.
func (p Path) Base() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Parent returns p with its last segment popped; the root is its own parent.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return p.clone()[:len(p)-1]
}

// Join returns a new path with name appended.
func (p Path) Join(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, name)
}

// Equal reports whether both paths name the same node.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix is p itself or one of its ancestors.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	return p[:len(prefix)].Equal(prefix)
}

func (p Path) clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Entry describes one listed child.
// Mode, Size and Modified are placeholders filled only for long listings;
// no real timestamps or sizes are tracked.
type Entry struct {
	Name     string
	Kind     Kind
	Mode     string
	Size     string
	Modified string
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool { return e.Kind == KindDirectory }

// ListOptions controls List.
type ListOptions struct {
	ShowHidden bool
	LongFormat bool
}

const (
	placeholderDate     = "Jan 31 20:00"
	placeholderDirSize  = "4.0K"
	placeholderFileSize = "1.2K"
	dirMode             = "drwxr-xr-x"
	fileMode            = "-rw-r--r--"
)
