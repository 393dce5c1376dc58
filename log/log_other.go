//go:build !windows

package log

import (
	"os"
	"path/filepath"
	"runtime"
)

// getDefaultDir follows the platform log conventions: ~/Library/Logs on
// macOS, the XDG config home elsewhere.
func getDefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", appDir), nil
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" || !filepath.IsAbs(base) {
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appDir, "logs"), nil
}
