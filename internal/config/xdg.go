package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigDir returns the XDG-compliant config directory for lockbox
// Typically ~/.config/lockbox/ on Linux
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "lockbox")
}

// ConfigPath returns the full path to the config file
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json5")
}

// DataDir returns the XDG-compliant data directory for lockbox
// Typically ~/.local/share/lockbox/ on Linux (encrypted vault, keyring fallback)
func DataDir() string {
	return filepath.Join(xdg.DataHome, "lockbox")
}
