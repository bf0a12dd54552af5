// Package vfs implements the synthetic, in-memory filesystem behind the shell.
//
// The tree is a hierarchy of named nodes. Children keep insertion order, names are
// unique within a directory, a node's kind never changes, and the root always exists.
// Every mutation is a single slice update on one parent, so a failed operation never
// leaves the tree half-changed.
//
// A FileSystem is owned by exactly one session and is not safe for concurrent use.
package vfs

import (
	"strings"
)

type node struct {
	name     string
	kind     Kind
	content  string
	children []*node
}

func (n *node) isDir() bool { return n.kind == KindDirectory }

func (n *node) child(name string) (*node, int) {
	for i, c := range n.children {
		if c.name == name {
			return c, i
		}
	}
	return nil, -1
}

// put inserts c, replacing an existing child of the same name in place.
func (n *node) put(c *node) {
	if _, i := n.child(c.name); i >= 0 {
		n.children[i] = c
		return
	}
	n.children = append(n.children, c)
}

func (n *node) detach(name string) *node {
	c, i := n.child(name)
	if i < 0 {
		return nil
	}
	n.children = append(n.children[:i:i], n.children[i+1:]...)
	return c
}

func (n *node) clone(name string) *node {
	out := &node{name: name, kind: n.kind, content: n.content}
	if n.isDir() {
		out.children = make([]*node, 0, len(n.children))
		for _, c := range n.children {
			out.children = append(out.children, c.clone(c.name))
		}
	}
	return out
}

// FileSystem is the hierarchical namespace of files and directories.
type FileSystem struct {
	root   *node
	hidden *HiddenMatcher
}

// New creates an empty filesystem containing only the root directory.
// A nil matcher hides dot-names.
func New(hidden *HiddenMatcher) *FileSystem {
	if hidden == nil {
		hidden = NewHiddenMatcher(nil)
	}
	return &FileSystem{
		root:   &node{kind: KindDirectory},
		hidden: hidden,
	}
}

func (f *FileSystem) lookup(p Path) (*node, error) {
	cur := f.root
	for _, seg := range p {
		if !cur.isDir() {
			return nil, ErrNotADirectory
		}
		next, _ := cur.child(seg)
		if next == nil {
			return nil, ErrNotFound
		}
		cur = next
	}
	return cur, nil
}

// Resolve turns target into a path. Absolute targets start at the root ("~", "~/a/b"),
// anything else is relative to cwd. "." is a no-op and ".." pops one level, staying
// put at the root. Every intermediate segment must be an existing directory; the
// final segment must exist but may be a file.
func (f *FileSystem) Resolve(cwd Path, target string) (Path, error) {
	base, rest := splitTarget(cwd, target)
	out := base.clone()
	for _, seg := range rest {
		switch seg {
		case "", ".":
			continue
		case "..":
			out = out.Parent()
			continue
		}
		out = append(out, seg)
		if _, err := f.lookup(out); err != nil {
			return nil, &PathError{Op: "resolve", Path: target, Err: err}
		}
	}
	if _, err := f.lookup(out); err != nil {
		return nil, &PathError{Op: "resolve", Path: target, Err: err}
	}
	return out, nil
}

func splitTarget(cwd Path, target string) (Path, []string) {
	switch {
	case target == "~":
		return Path{}, nil
	case strings.HasPrefix(target, "~/"):
		return Path{}, strings.Split(target[2:], "/")
	default:
		return cwd, strings.Split(target, "/")
	}
}

// locate resolves the parent directory of target and returns it with the final
// name. One trailing slash is ignored.
func (f *FileSystem) locate(cwd Path, target string) (*node, Path, string, error) {
	if len(target) > 1 {
		target = strings.TrimSuffix(target, "/")
	}
	idx := strings.LastIndex(target, "/")
	dirPart, name := "", target
	if idx >= 0 {
		dirPart, name = target[:idx], target[idx+1:]
		if dirPart == "" || dirPart == "~" {
			dirPart = "~"
		}
	}
	if name == "" || name == "." || name == ".." || name == "~" {
		return nil, nil, "", ErrInvalidName
	}
	dirPath := cwd
	if dirPart != "" {
		p, err := f.Resolve(cwd, dirPart)
		if err != nil {
			return nil, nil, "", ErrNotFound
		}
		dirPath = p
	}
	dir, err := f.lookup(dirPath)
	if err != nil {
		return nil, nil, "", err
	}
	if !dir.isDir() {
		return nil, nil, "", ErrNotADirectory
	}
	return dir, dirPath, name, nil
}

// Describe reports the node at p, with the long-listing placeholders filled
// when long is set.
func (f *FileSystem) Describe(p Path, long bool) (Entry, error) {
	n, err := f.lookup(p)
	if err != nil {
		return Entry{}, &PathError{Op: "stat", Path: p.String(), Err: err}
	}
	return describe(n, long), nil
}

// IsDir reports whether p names an existing directory.
func (f *FileSystem) IsDir(p Path) bool {
	n, err := f.lookup(p)
	return err == nil && n.isDir()
}

// Children returns the names of the directory's children in insertion order,
// hidden names included.
func (f *FileSystem) Children(dir Path) []string {
	n, err := f.lookup(dir)
	if err != nil || !n.isDir() {
		return nil
	}
	names := make([]string, len(n.children))
	for i, c := range n.children {
		names[i] = c.name
	}
	return names
}

// List returns the directory's children in insertion order. Hidden names are
// dropped unless opts.ShowHidden is set.
func (f *FileSystem) List(dir Path, opts ListOptions) ([]Entry, error) {
	n, err := f.lookup(dir)
	if err != nil {
		return nil, &PathError{Op: "list", Path: dir.String(), Err: err}
	}
	if !n.isDir() {
		return nil, &PathError{Op: "list", Path: dir.String(), Err: ErrNotADirectory}
	}
	entries := make([]Entry, 0, len(n.children))
	for _, c := range n.children {
		if !opts.ShowHidden && f.hidden.IsHidden(c.name, c.isDir()) {
			continue
		}
		entries = append(entries, describe(c, opts.LongFormat))
	}
	return entries, nil
}

func describe(n *node, long bool) Entry {
	e := Entry{Name: n.name, Kind: n.kind}
	if !long {
		return e
	}
	e.Modified = placeholderDate
	if n.isDir() {
		e.Mode, e.Size = dirMode, placeholderDirSize
	} else {
		e.Mode, e.Size = fileMode, placeholderFileSize
	}
	return e
}

// Read returns a file's content. Empty files read as "".
func (f *FileSystem) Read(p Path) (string, error) {
	n, err := f.lookup(p)
	if err != nil {
		return "", &PathError{Op: "read", Path: p.String(), Err: err}
	}
	if n.isDir() {
		return "", &PathError{Op: "read", Path: p.String(), Err: ErrIsADirectory}
	}
	return n.content, nil
}

// Create adds an empty file or directory named by target, appended to its parent.
func (f *FileSystem) Create(cwd Path, target string, kind Kind) error {
	dir, _, name, err := f.locate(cwd, target)
	if err != nil {
		return &PathError{Op: "create", Path: target, Err: err}
	}
	if existing, _ := dir.child(name); existing != nil {
		return &PathError{Op: "create", Path: target, Err: ErrAlreadyExists}
	}
	dir.children = append(dir.children, &node{name: name, kind: kind})
	return nil
}

// WriteFile replaces a file's content, creating the file when it does not exist.
func (f *FileSystem) WriteFile(cwd Path, target, content string) error {
	dir, _, name, err := f.locate(cwd, target)
	if err != nil {
		return &PathError{Op: "write", Path: target, Err: err}
	}
	existing, _ := dir.child(name)
	if existing == nil {
		dir.children = append(dir.children, &node{name: name, kind: KindFile, content: content})
		return nil
	}
	if existing.isDir() {
		return &PathError{Op: "write", Path: target, Err: ErrIsADirectory}
	}
	existing.content = content
	return nil
}

// Remove detaches target, and its subtree, from its parent.
func (f *FileSystem) Remove(cwd Path, target string) error {
	dir, _, name, err := f.locate(cwd, target)
	if err != nil {
		return &PathError{Op: "remove", Path: target, Err: err}
	}
	if dir.detach(name) == nil {
		return &PathError{Op: "remove", Path: target, Err: ErrNotFound}
	}
	return nil
}

// Move renames or relocates src to dest. An existing dest of either kind is
// silently overwritten and keeps its position in the listing.
func (f *FileSystem) Move(cwd Path, src, dest string) error {
	srcDir, srcPath, srcName, err := f.locate(cwd, src)
	if err != nil {
		return &PathError{Op: "move", Path: src, Err: err}
	}
	n, _ := srcDir.child(srcName)
	if n == nil {
		return &PathError{Op: "move", Path: src, Err: ErrNotFound}
	}
	destDir, destPath, destName, err := f.locate(cwd, dest)
	if err != nil {
		return &PathError{Op: "move", Path: dest, Err: err}
	}
	if destDir == srcDir && destName == srcName {
		return nil
	}
	if n.isDir() && destPath.HasPrefix(srcPath.Join(srcName)) {
		return &PathError{Op: "move", Path: dest, Err: ErrSubdirectory}
	}
	srcDir.detach(srcName)
	n.name = destName
	destDir.put(n)
	return nil
}

// Copy duplicates src, subtree included, as dest. An existing dest is overwritten
// in place and not listed twice.
func (f *FileSystem) Copy(cwd Path, src, dest string) error {
	srcDir, _, srcName, err := f.locate(cwd, src)
	if err != nil {
		return &PathError{Op: "copy", Path: src, Err: err}
	}
	n, _ := srcDir.child(srcName)
	if n == nil {
		return &PathError{Op: "copy", Path: src, Err: ErrNotFound}
	}
	destDir, _, destName, err := f.locate(cwd, dest)
	if err != nil {
		return &PathError{Op: "copy", Path: dest, Err: err}
	}
	destDir.put(n.clone(destName))
	return nil
}
