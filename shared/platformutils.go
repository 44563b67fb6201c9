package shared

import (
	"os"
	"runtime"
	"strings"
)

// DefaultDirMode is used for directories the app creates.
const DefaultDirMode os.FileMode = 0755

// IsWSL checks if the program is running under Windows Subsystem for Linux.
func IsWSL() bool {
	version, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	return strings.Contains(string(version), "Microsoft") || strings.Contains(string(version), "microsoft")
}

// GetGoos returns the current operating system identifier.
// Returns "linux" if running under WSL.
func GetGoos() string {
	if IsWSL() {
		return "linux"
	}
	return runtime.GOOS
}

// EnsureDir creates path with DefaultDirMode if it does not exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, DefaultDirMode)
}
