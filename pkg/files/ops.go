package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	osStat    = os.Stat
	osRename  = os.Rename
	osRemove  = os.Remove
	osMkdir   = os.Mkdir
	osChtimes = os.Chtimes
	osReadDir = os.ReadDir
)

// Rename gives the file or directory at oldPath a new name in the same
// directory and returns the resulting path.
func Rename(oldPath, newName string) (string, error) {
	dir := filepath.Dir(oldPath)
	newPath := filepath.Join(dir, newName)

	if _, err := osStat(newPath); err == nil {
		return "", fmt.Errorf("%w: %s", ErrNameCollision, newPath)
	}
	if _, err := osStat(oldPath); err != nil {
		return "", classifyOSError(err, oldPath)
	}
	if err := osRename(oldPath, newPath); err != nil {
		return "", classifyOSError(err, oldPath)
	}
	return newPath, nil
}

// Move relocates src into destDir, keeping its base name.
func Move(src, destDir string) (string, error) {
	if err := requireDir(destDir); err != nil {
		return "", err
	}
	newPath := filepath.Join(destDir, filepath.Base(src))
	if _, err := osStat(newPath); err == nil {
		return "", fmt.Errorf("%w: %s", ErrNameCollision, newPath)
	}
	if _, err := osStat(src); err != nil {
		return "", classifyOSError(err, src)
	}
	if err := osRename(src, newPath); err != nil {
		return "", classifyOSError(err, src)
	}
	return newPath, nil
}

// Copy duplicates the file src into destDir, preserving its modification
// time. The source is left untouched.
func Copy(src, destDir string) (string, error) {
	if err := requireDir(destDir); err != nil {
		return "", err
	}
	info, err := osStat(src)
	if err != nil {
		return "", classifyOSError(err, src)
	}
	newPath := filepath.Join(destDir, filepath.Base(src))
	if _, err := osStat(newPath); err == nil {
		return "", fmt.Errorf("%w: %s", ErrNameCollision, newPath)
	}

	in, err := os.Open(src)
	if err != nil {
		return "", classifyOSError(err, src)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(newPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return "", classifyOSError(err, newPath)
	}
	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = osRemove(newPath)
		return "", err
	}
	if err = out.Close(); err != nil {
		return "", err
	}
	if err = osChtimes(newPath, info.ModTime(), info.ModTime()); err != nil {
		return "", err
	}
	return newPath, nil
}

// Delete removes a file outright; a directory is removed only when empty.
func Delete(path string) error {
	info, err := osStat(path)
	if err != nil {
		return classifyOSError(err, path)
	}
	if info.IsDir() {
		entries, err := osReadDir(path)
		if err != nil {
			return classifyOSError(err, path)
		}
		if len(entries) > 0 {
			return fmt.Errorf("%w: %s", ErrDirectoryNotEmpty, path)
		}
	}
	if err := osRemove(path); err != nil {
		return classifyOSError(err, path)
	}
	return nil
}

// CreateFolder makes a single new directory under parent.
func CreateFolder(parent, name string) (string, error) {
	newPath := filepath.Join(parent, name)
	if _, err := osStat(newPath); err == nil {
		return "", fmt.Errorf("%w: %s", ErrNameCollision, newPath)
	}
	if err := osMkdir(newPath, 0755); err != nil {
		return "", classifyOSError(err, newPath)
	}
	return newPath, nil
}

func requireDir(path string) error {
	info, err := osStat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInvalidDestination, path)
	}
	return nil
}
