package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPaths is the search order used when no explicit path is given:
// the system location first, then a relative development fallback.
var DefaultPaths = []string{
	"/etc/pushover/config.toml",
	"etc/pushover/config.toml",
}

// Load reads the configuration from path, or from the first readable
// DefaultPaths entry when path is empty.
func Load(path string) (*Config, error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return Parse(path, b)
	}
	for _, p := range DefaultPaths {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		return Parse(p, b)
	}
	return nil, fmt.Errorf("config file not found; tried %s", strings.Join(DefaultPaths, " and "))
}

// Parse decodes and validates TOML configuration content. The path is only
// used in diagnostics.
func Parse(path string, data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid toml in config file %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	// Key presence, not value emptiness: an explicitly empty credential is
	// accepted and forwarded as-is.
	if !md.IsDefined("pushover", "user") {
		return nil, fmt.Errorf("config file %s: pushover.user is required", path)
	}
	if !md.IsDefined("pushover", "token") {
		return nil, fmt.Errorf("config file %s: pushover.token is required", path)
	}

	if _, _, _, err := cfg.Transport.Timeouts(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return &cfg, nil
}
