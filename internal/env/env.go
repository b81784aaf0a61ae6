// Package env loads a .env file and applies SANDBOX_* environment overrides to the config.
package env

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"block-sandbox/internal/config"
)

// Variables read by Apply.
const (
	ConfigPathVar = "SANDBOX_CONFIG"
	SeedVar       = "SANDBOX_SEED"
	FullscreenVar = "SANDBOX_FULLSCREEN"
	LogPathVar    = "SANDBOX_LOG_PATH"
)

// Load reads KEY=VALUE lines from path into the process environment. Empty lines and lines
// starting with # are skipped, surrounding quotes are stripped, and variables already set
// in the environment win. A missing file is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return errors.Wrapf(scanner.Err(), "read %s", path)
}

func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// ConfigPath returns $SANDBOX_CONFIG, or fallback when it is unset or empty.
func ConfigPath(fallback string) string {
	if p := os.Getenv(ConfigPathVar); p != "" {
		return p
	}
	return fallback
}

// Apply overrides cfg with the SANDBOX_* variables that are set. Malformed values are
// skipped and reported together in the returned error; the rest still apply.
func Apply(cfg *config.Config) error {
	var bad []string
	if v, ok := os.LookupEnv(SeedVar); ok {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = seed
		} else {
			bad = append(bad, SeedVar)
		}
	}
	if v, ok := os.LookupEnv(FullscreenVar); ok {
		if fs, err := strconv.ParseBool(v); err == nil {
			cfg.Window.Fullscreen = fs
		} else {
			bad = append(bad, FullscreenVar)
		}
	}
	if v, ok := os.LookupEnv(LogPathVar); ok {
		cfg.LogPath = v
	}
	if len(bad) > 0 {
		return errors.Errorf("invalid %s", strings.Join(bad, ", "))
	}
	return nil
}
