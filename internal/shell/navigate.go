package shell

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/deskterm/internal/vfs"
)

// cd accepts "~", "..", ".", absolute "~/a/b" paths and a single directory name
// relative to the current directory. Relative paths with more than one segment
// are rejected. Absolute paths are resolved segment by segment, so every segment
// must exist, not only the first.
func (ip *Interpreter) cd(c *call) {
	if len(c.args) == 0 || c.args[0] == "~" {
		ip.cwd = vfs.Path{}
		return
	}
	if len(c.args) > 1 {
		c.fail("bash: cd: too many arguments")
		return
	}

	target := c.args[0]
	switch {
	case target == "..":
		ip.cwd = ip.cwd.Parent()
	case target == ".":
	case strings.HasPrefix(target, "~/"):
		p, err := ip.fs.Resolve(vfs.Path{}, target)
		ip.enter(c, target, p, err)
	default:
		name := strings.TrimSuffix(target, "/")
		if strings.Contains(name, "/") {
			c.fail("bash: cd: %s: No such file or directory", target)
			return
		}
		p, err := ip.fs.Resolve(ip.cwd, name)
		ip.enter(c, target, p, err)
	}
}

func (ip *Interpreter) enter(c *call, target string, p vfs.Path, err error) {
	if err != nil {
		c.fail("bash: cd: %s: No such file or directory", target)
		return
	}
	if !ip.fs.IsDir(p) {
		c.fail("bash: cd: %s: Not a directory", target)
		return
	}
	ip.cwd = p
}

// ls lists the current directory or the first non-flag operand. Short flags may
// combine "a" (show hidden) and "l" (long format); other flags are ignored.
func (ip *Interpreter) ls(c *call) {
	var opts vfs.ListOptions
	target := ""
	for _, a := range c.args {
		switch {
		case a == "--all":
			opts.ShowHidden = true
		case strings.HasPrefix(a, "--"):
		case strings.HasPrefix(a, "-") && len(a) > 1:
			opts.ShowHidden = opts.ShowHidden || strings.ContainsRune(a, 'a')
			opts.LongFormat = opts.LongFormat || strings.ContainsRune(a, 'l')
		case target == "":
			target = a
		}
	}

	dir := ip.cwd
	if target != "" {
		p, err := ip.fs.Resolve(ip.cwd, target)
		if err != nil {
			c.fail("ls: cannot access '%s': No such file or directory", target)
			return
		}
		if !ip.fs.IsDir(p) {
			e, err := ip.fs.Describe(p, opts.LongFormat)
			if err != nil {
				c.fail("ls: cannot access '%s': No such file or directory", target)
				return
			}
			e.Name = target
			ip.printEntries(c, []vfs.Entry{e}, opts.LongFormat)
			return
		}
		dir = p
	}

	entries, err := ip.fs.List(dir, opts)
	if err != nil {
		c.fail("ls: cannot access '%s': No such file or directory", dir)
		return
	}
	ip.printEntries(c, entries, opts.LongFormat)
}

func (ip *Interpreter) printEntries(c *call, entries []vfs.Entry, long bool) {
	if len(entries) == 0 {
		return
	}
	if long {
		for _, e := range entries {
			prefix := fmt.Sprintf("%s 1 %s %s %s %s ", e.Mode, ip.identity.User, ip.identity.User, e.Size, e.Modified)
			c.print(Line{{Text: prefix}, entrySegment(e)})
		}
		return
	}
	line := make(Line, 0, 2*len(entries))
	for i, e := range entries {
		if i > 0 {
			line = append(line, Segment{Text: "  "})
		}
		line = append(line, entrySegment(e))
	}
	c.print(line)
}

func entrySegment(e vfs.Entry) Segment {
	if e.IsDir() {
		return Segment{Text: e.Name, Kind: SegmentDirectory}
	}
	return Segment{Text: e.Name, Kind: SegmentFile}
}
