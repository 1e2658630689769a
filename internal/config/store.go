package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/tidwall/jsonc"

	"github.com/sidekick-cli/sidekick/internal/logging"
)

// Load resolves the effective configuration for this process.
//
// Layers are merged in order, later layers winning field-by-field:
//
//  1. Default()
//  2. the persisted config.toml
//  3. project overrides (sidekick.jsonc in the working directory)
//  4. SIDEKICK_* environment variables
//  5. the invocation layer built from command-line flags
//
// Steps 1-2 also decide what config.toml should look like given the current
// defaults; when the reserialized form differs from the file (including the
// file not existing yet), the file is rewritten so newly introduced settings
// become visible to the user without clobbering their customizations.
// Layers 3-5 are ephemeral and never persisted.
//
// Only real I/O failures are fatal; a malformed config file degrades to
// defaults.
func Load(invocation *Layer) (Config, error) {
	path := FilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Config{}, fmt.Errorf("create config directory: %w", err)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var fileLayer Layer
	if len(onDisk) > 0 {
		if err := toml.Unmarshal(onDisk, &fileLayer); err != nil {
			// Tolerated on purpose, and only here: a corrupt file must not
			// abort startup, so it degrades to an empty layer.
			logging.Warn().Err(err).Str("path", path).
				Msg("config file is malformed, running on defaults")
			fileLayer = Layer{}
		}
	}

	// What the file should contain: current defaults plus whatever the user
	// already customized.
	disk := Default()
	disk.Merge(&fileLayer)

	rendered, err := renderTOML(disk)
	if err != nil {
		return Config{}, fmt.Errorf("encode config: %w", err)
	}
	if rendered != string(onDisk) {
		if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
			return Config{}, fmt.Errorf("write config file: %w", err)
		}
		if len(onDisk) == 0 {
			logging.Info().Str("path", path).Msg("created default config")
		} else {
			logUpgrade(path, string(onDisk), rendered)
		}
	}

	final := disk
	if project := projectLayer(); project != nil {
		final.Merge(project)
	}
	final.Merge(envLayer())
	if invocation != nil {
		final.Merge(invocation)
	}
	return final, nil
}

// renderTOML produces the canonical on-disk form of a resolved config.
// Encoding is deterministic, so comparing rendered strings detects drift.
func renderTOML(cfg Config) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// projectLayer reads the optional per-project overrides file from the
// working directory. Parse failures degrade to no overrides.
func projectLayer() *Layer {
	data, err := os.ReadFile(ProjectFileName)
	if err != nil {
		return nil
	}
	var layer Layer
	if err := json.Unmarshal(jsonc.ToJSON(data), &layer); err != nil {
		logging.Warn().Err(err).Str("path", ProjectFileName).
			Msg("project overrides are malformed, ignoring them")
		return nil
	}
	logging.Debug().Str("path", ProjectFileName).Msg("applying project overrides")
	return &layer
}

// envLayer builds a layer from SIDEKICK_* environment variables.
func envLayer() *Layer {
	layer := &Layer{}
	if v := os.Getenv("SIDEKICK_BACKEND"); v != "" {
		var backend Backend
		if err := backend.UnmarshalText([]byte(v)); err != nil {
			logging.Warn().Err(err).Msg("ignoring SIDEKICK_BACKEND")
		} else {
			layer.Backend = &backend
		}
	}
	if v := os.Getenv("SIDEKICK_MODEL"); v != "" {
		layer.Model = &v
	}
	if v := os.Getenv("SIDEKICK_BASE_URL"); v != "" {
		layer.BaseURL = &v
	}
	return layer
}

// logUpgrade reports a config file rewrite, with the full patch at debug
// level so users can see what an upgrade changed.
func logUpgrade(path, before, after string) {
	logging.Info().Str("path", path).Msg("updated config with new defaults")
	if logging.Logger.GetLevel() > logging.DebugLevel {
		return
	}
	dmp := diffmatchpatch.New()
	patch := dmp.PatchToText(dmp.PatchMake(before, after))
	logging.Debug().Str("path", path).Str("patch", patch).Msg("config file changes")
}
