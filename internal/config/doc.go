// Package config resolves one authoritative configuration for a sidekick
// process from several overlapping sources.
//
// # Layering
//
// A sparse Layer describes what a single source explicitly specified; every
// field is optional. Layers are merged onto the built-in defaults in a fixed
// order, later layers winning field-by-field:
//
//  1. Default() - built-in defaults, always constructible on their own
//  2. config.toml under the per-user config directory
//  3. sidekick.jsonc project overrides in the working directory
//  4. SIDEKICK_* environment variables
//  5. command-line flags of the current invocation
//
// All precedence rules live in Config.Merge. Two of them are deliberate
// policy rather than accident:
//
//   - A list field in a layer replaces the base list only when non-empty.
//     There is no way for a layer to clear a list to empty.
//   - A system prompt that is blank after trimming clears the resolved
//     prompt entirely; every other field treats absence as inheritance.
//
// # Persistence
//
// Load keeps config.toml synchronized with the defaults that ship with the
// binary: after merging the file layer onto fresh defaults, the result is
// reserialized and written back whenever it differs from the on-disk text.
// New settings introduced by an upgrade therefore appear in the file
// automatically, while existing customizations survive. Layers 3-5 are
// ephemeral and never written to disk.
//
// A malformed config.toml is tolerated: it degrades to an empty layer with
// a warning instead of failing startup. Only real I/O errors are fatal.
package config
