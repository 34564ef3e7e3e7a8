package fsops

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"syscall"

	"github.com/quantmind-br/locate/internal/core"
	"github.com/spf13/afero"
)

// Probe checks whether path exists using a metadata lookup that follows
// symlinks. Absence is reported as ProbeAbsent with a nil error; any other
// failure is ProbeFailed together with the underlying error.
func Probe(fs afero.Fs, path string) (core.ProbeState, error) {
	_, err := fs.Stat(path)
	switch {
	case err == nil:
		return core.ProbeExists, nil
	case isAbsent(err):
		return core.ProbeAbsent, nil
	default:
		return core.ProbeFailed, err
	}
}

// isAbsent treats "a parent is not a directory" the same as not existing
func isAbsent(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// IsDir checks if a path is a directory
func IsDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Lexists checks if a path exists without following a final symlink.
// Filesystems without Lstat support fall back to Stat.
func Lexists(fs afero.Fs, path string) bool {
	if lfs, ok := fs.(afero.Lstater); ok {
		_, _, err := lfs.LstatIfPossible(path)
		return err == nil
	}
	_, err := fs.Stat(path)
	return err == nil
}

// RemoveIfExists removes a file or link. A missing path is not an error.
func RemoveIfExists(fs afero.Fs, path string) error {
	if err := fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// Symlink creates newname as a symbolic link to oldname
func Symlink(fs afero.Fs, oldname, newname string) error {
	linker, ok := fs.(afero.Linker)
	if !ok {
		return fmt.Errorf("symlink %s: %w", newname, afero.ErrNoSymlink)
	}
	if err := linker.SymlinkIfPossible(oldname, newname); err != nil {
		return fmt.Errorf("symlink %s -> %s: %w", newname, oldname, err)
	}
	return nil
}

// Readlink returns the destination of the named symbolic link
func Readlink(fs afero.Fs, name string) (string, error) {
	reader, ok := fs.(afero.LinkReader)
	if !ok {
		return "", fmt.Errorf("readlink %s: %w", name, afero.ErrNoReadlink)
	}
	dest, err := reader.ReadlinkIfPossible(name)
	if err != nil {
		return "", fmt.Errorf("readlink %s: %w", name, err)
	}
	return dest, nil
}

// ListFiles returns the sorted names of non-directory entries in dir
func ListFiles(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
