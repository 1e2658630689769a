package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Paths contains the standard per-user directories sidekick writes to.
type Paths struct {
	Config string // ~/.config/sidekick
	Data   string // ~/.local/share/sidekick
	Cache  string // ~/.cache/sidekick
}

// GetPaths resolves the XDG directories for sidekick. SIDEKICK_CONFIG_DIR
// overrides the config directory, which also gives tests a hermetic home.
func GetPaths() *Paths {
	p := &Paths{
		Config: filepath.Join(getEnvOrDefault("XDG_CONFIG_HOME", defaultConfigHome()), "sidekick"),
		Data:   filepath.Join(getEnvOrDefault("XDG_DATA_HOME", defaultDataHome()), "sidekick"),
		Cache:  filepath.Join(getEnvOrDefault("XDG_CACHE_HOME", defaultCacheHome()), "sidekick"),
	}
	if dir := os.Getenv("SIDEKICK_CONFIG_DIR"); dir != "" {
		p.Config = dir
	}
	return p
}

// FilePath returns the location of the persisted configuration file.
func FilePath() string {
	return filepath.Join(GetPaths().Config, "config.toml")
}

// ProjectFileName is the per-project overrides file looked up in the
// working directory. It supports comments (JSONC) and is never written.
const ProjectFileName = "sidekick.jsonc"

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultConfigHome() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("APPDATA")
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}

func defaultDataHome() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("APPDATA")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share")
}

func defaultCacheHome() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "cache")
	}
	return filepath.Join(os.Getenv("HOME"), ".cache")
}
