package config

import (
	"errors"
	"io/fs"
	"os"
)

// FileSystem is the slice of file system access the settings loader needs.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	UserHomeDir() (string, error)
	IsNotExist(err error) bool
}

// RealFileSystem implements FileSystem using the os package.
type RealFileSystem struct{}

// ReadFile reads the named file and returns the contents.
func (r *RealFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) // #nosec G304 -- settings paths come from the invoking user.
}

// UserHomeDir returns the current user's home directory.
func (r *RealFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// IsNotExist reports whether err says the file is missing.
func (r *RealFileSystem) IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
