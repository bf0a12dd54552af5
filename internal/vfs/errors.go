package vfs

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrNotFound      = errors.New("no such file or directory")
	ErrAlreadyExists = errors.New("file exists")
	ErrIsADirectory  = errors.New("is a directory")
	ErrNotADirectory = errors.New("not a directory")
	ErrInvalidName   = errors.New("invalid name")
	ErrSubdirectory  = errors.New("cannot move a directory into itself")
)

// PathError records the operation and target that failed.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }
