package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/quantmind-br/locate/internal/security"
)

// SearchRootFromExecutable returns the parent of the directory holding exe.
// Symlinks are resolved first so an installed shim still points at the
// package checkout.
func SearchRootFromExecutable(exe string) (string, error) {
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("absolute executable path: %w", err)
	}

	return filepath.Dir(filepath.Dir(abs)), nil
}

// ResolveSearchRoot computes the search root from the running executable.
func ResolveSearchRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return SearchRootFromExecutable(exe)
}

// NormalizeRoot validates a user supplied root and makes it absolute.
func NormalizeRoot(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("search root is empty")
	}
	if err := security.ValidatePath(dir); err != nil {
		return "", fmt.Errorf("invalid search root: %w", err)
	}

	abs, err := filepath.Abs(security.SanitizePath(dir))
	if err != nil {
		return "", fmt.Errorf("absolute search root: %w", err)
	}
	return abs, nil
}
