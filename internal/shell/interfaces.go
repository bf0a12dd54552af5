package shell

import "github.com/Cyclone1070/deskterm/internal/vfs"

// fileSystem is the part of the virtual filesystem the builtins use.
type fileSystem interface {
	Resolve(cwd vfs.Path, target string) (vfs.Path, error)
	Describe(p vfs.Path, long bool) (vfs.Entry, error)
	IsDir(p vfs.Path) bool
	Children(dir vfs.Path) []string
	List(dir vfs.Path, opts vfs.ListOptions) ([]vfs.Entry, error)
	Read(p vfs.Path) (string, error)
	Create(cwd vfs.Path, target string, kind vfs.Kind) error
	Remove(cwd vfs.Path, target string) error
	Move(cwd vfs.Path, src, dest string) error
	Copy(cwd vfs.Path, src, dest string) error
}
