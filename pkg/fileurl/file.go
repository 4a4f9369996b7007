package fileurl

import (
	"os"
	"path/filepath"
)

// IsDir determines if the given path is a directory.
func IsDir(path string) bool {
	s, err := os.Stat(path)
	if err != nil {
		return false
	}
	return s.IsDir()
}

// IsExist checks whether a file or directory exists.
func IsExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil || os.IsExist(err)
}

// CreatePath creates all missing parent directories of path.
func CreatePath(path string, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if IsDir(dir) {
		return nil
	}
	return os.MkdirAll(dir, perm)
}

// GetExePath returns the directory of the running binary.
func GetExePath() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
