package config

import (
	"fmt"
	"sort"
)

// BackendInfo describes a storage backend selectable via config or flag
type BackendInfo struct {
	Description string
	Persistent  bool
}

// Backends maps backend names to their descriptions
var Backends = map[string]BackendInfo{
	"auto": {
		Description: "OS keyring with encrypted-file fallback (default)",
		Persistent:  true,
	},
	"keyring": {
		Description: "OS keyring only (macOS Keychain, Secret Service, wincred)",
		Persistent:  true,
	},
	"file": {
		Description: "AES-256-GCM encrypted file under the data directory",
		Persistent:  true,
	},
}

// GetBackend returns the descriptor for the specified backend
func GetBackend(name string) (BackendInfo, error) {
	info, ok := Backends[name]
	if !ok {
		return BackendInfo{}, fmt.Errorf("unknown backend: %s", name)
	}
	return info, nil
}

// ValidBackends returns a sorted list of valid backend names
func ValidBackends() []string {
	names := make([]string, 0, len(Backends))
	for name := range Backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
