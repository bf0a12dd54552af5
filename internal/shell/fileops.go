package shell

import (
	"errors"

	"github.com/Cyclone1070/deskterm/internal/vfs"
)

func (ip *Interpreter) cat(c *call) {
	if len(c.args) == 0 {
		c.fail("cat: missing file operand\nTry 'cat --help' for more information.")
		return
	}
	name := c.args[0]
	p, err := ip.fs.Resolve(ip.cwd, name)
	if err != nil {
		c.fail("cat: %s: No such file or directory", name)
		return
	}
	content, err := ip.fs.Read(p)
	if errors.Is(err, vfs.ErrIsADirectory) {
		c.fail("cat: %s: Is a directory", name)
		return
	}
	if err != nil {
		c.fail("cat: %s: No such file or directory", name)
		return
	}
	c.print(plainLines(content)...)
}

// touch creates an empty file. Touching an existing name is silent.
func (ip *Interpreter) touch(c *call) {
	if len(c.args) == 0 {
		c.fail("touch: missing file operand\nTry 'touch --help' for more information.")
		return
	}
	name := c.args[0]
	err := ip.fs.Create(ip.cwd, name, vfs.KindFile)
	switch {
	case err == nil, errors.Is(err, vfs.ErrAlreadyExists), errors.Is(err, vfs.ErrInvalidName):
	default:
		c.fail("touch: cannot touch '%s': No such file or directory", name)
	}
}

func (ip *Interpreter) mkdir(c *call) {
	if len(c.args) == 0 {
		c.fail("mkdir: missing operand\nTry 'mkdir --help' for more information.")
		return
	}
	name := c.args[0]
	err := ip.fs.Create(ip.cwd, name, vfs.KindDirectory)
	switch {
	case err == nil:
	case errors.Is(err, vfs.ErrAlreadyExists):
		c.fail("mkdir: cannot create directory '%s': File exists", name)
	case errors.Is(err, vfs.ErrInvalidName):
		c.fail("mkdir: cannot create directory '%s': Invalid argument", name)
	default:
		c.fail("mkdir: cannot create directory '%s': No such file or directory", name)
	}
}

// rm removes files and directories alike; there is no -r.
func (ip *Interpreter) rm(c *call) {
	if len(c.args) == 0 {
		c.fail("rm: missing operand\nTry 'rm --help' for more information.")
		return
	}
	name := c.args[0]
	err := ip.fs.Remove(ip.cwd, name)
	switch {
	case err == nil:
	case errors.Is(err, vfs.ErrInvalidName):
		c.fail("rm: refusing to remove '.' or '..' directory: skipping '%s'", name)
	default:
		c.fail("rm: cannot remove '%s': No such file or directory", name)
	}
}

// mv renames or relocates a node. An existing destination is overwritten.
func (ip *Interpreter) mv(c *call) {
	if len(c.args) < 2 {
		c.fail("mv: missing file operand\nTry 'mv --help' for more information.")
		return
	}
	src, dest := c.args[0], c.args[1]
	err := ip.fs.Move(ip.cwd, src, dest)
	switch {
	case err == nil:
	case errors.Is(err, vfs.ErrSubdirectory):
		c.fail("mv: cannot move '%s' to a subdirectory of itself, '%s'", src, dest)
	case failedOn(err, src):
		c.fail("mv: cannot stat '%s': No such file or directory", src)
	default:
		c.fail("mv: cannot move '%s' to '%s': No such file or directory", src, dest)
	}
}

// cp duplicates a node, subtree included. An existing destination is overwritten.
func (ip *Interpreter) cp(c *call) {
	if len(c.args) < 2 {
		c.fail("cp: missing file operand\nTry 'cp --help' for more information.")
		return
	}
	src, dest := c.args[0], c.args[1]
	err := ip.fs.Copy(ip.cwd, src, dest)
	switch {
	case err == nil:
	case failedOn(err, src):
		c.fail("cp: cannot stat '%s': No such file or directory", src)
	default:
		c.fail("cp: cannot create regular file '%s': No such file or directory", dest)
	}
}

// failedOn reports whether err is a filesystem error about path.
func failedOn(err error, path string) bool {
	var pe *vfs.PathError
	return errors.As(err, &pe) && pe.Path == path
}
