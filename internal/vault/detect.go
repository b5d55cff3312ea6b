package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

// warningShown checks if the file-backend warning has already been shown.
// Uses a marker file in the data directory to avoid repeating on every command.
func warningShown() bool {
	return fileExists(warningMarkerPath())
}

// markWarningShown creates the marker file so the warning isn't repeated.
func markWarningShown() {
	_ = os.WriteFile(warningMarkerPath(), []byte("1"), 0600)
}

func warningMarkerPath() string {
	return filepath.Join(xdg.DataHome, "lockbox", ".file-backend-warning-shown")
}

// quietMode returns true if the user has suppressed warnings via LOCKBOX_QUIET.
func quietMode() bool {
	return os.Getenv("LOCKBOX_QUIET") == "1" || os.Getenv("LOCKBOX_QUIET") == "true"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// warnOnce prints a message to stderr, but only the first time.
// Subsequent invocations are suppressed via a marker file.
// Set LOCKBOX_QUIET=1 to suppress entirely.
func warnOnce(msg string) {
	if quietMode() || warningShown() {
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

// markWarningsDone persists the marker so future commands stay quiet.
func markWarningsDone() {
	if !warningShown() {
		markWarningShown()
	}
}

// Open creates a Backend using the platform-appropriate driver. Tries the OS
// keyring first, falls back to the encrypted file if unavailable.
// Automatically detects WSL and headless environments that need the fallback.
// The file backend key derives from LOCKBOX_STORE_PASSWORD when set.
func Open(service string) (Backend, error) {
	password := os.Getenv("LOCKBOX_STORE_PASSWORD")

	// WSL and headless environments can't use the keyring reliably
	if IsWSL() || IsHeadless() {
		warnOnce("Detected WSL/headless environment, using encrypted file storage")
		return openFile(password)
	}

	backend, err := NewKeyringBackend(service)
	if err != nil {
		warnOnce(fmt.Sprintf("Keyring unavailable (%v), falling back to encrypted file", err))
		return openFile(password)
	}

	return backend, nil
}

// OpenFile creates the encrypted file backend directly, bypassing detection.
func OpenFile() (Backend, error) {
	return openFile(os.Getenv("LOCKBOX_STORE_PASSWORD"))
}

func openFile(password string) (Backend, error) {
	if password == "" {
		warnOnce("WARNING: Using machine-specific encryption key. For better security, set a password via LOCKBOX_STORE_PASSWORD env var.")
	}
	backend, err := NewFileBackend("", password)
	if err != nil {
		return nil, err
	}
	markWarningsDone()
	return backend, nil
}

// IsWSL returns true if running under Windows Subsystem for Linux.
func IsWSL() bool {
	if runtime.GOOS != "linux" {
		return false
	}

	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}

	version := strings.ToLower(string(data))
	return strings.Contains(version, "microsoft") || strings.Contains(version, "wsl")
}

// IsHeadless returns true if running in a headless environment (no display server).
// Only applicable on Linux; macOS and Windows are assumed to have GUI.
func IsHeadless() bool {
	if runtime.GOOS != "linux" {
		return false
	}

	// Check for X11 or Wayland display
	return os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == ""
}
