package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// maxPathLength mirrors PATH_MAX on Linux
const maxPathLength = 4096

// ValidatePath performs general path validation
func ValidatePath(path string) error {
	// Check for null bytes
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("path contains null bytes: %q", path)
	}

	if len(path) > maxPathLength {
		return fmt.Errorf("path too long: %d characters", len(path))
	}

	return nil
}

// SanitizePath cleans a file path for safe use
func SanitizePath(path string) string {
	cleaned := filepath.Clean(path)
	return strings.ReplaceAll(cleaned, "\x00", "")
}
