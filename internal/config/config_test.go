package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestDefaultIsSelfConsistent(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultBackend, cfg.Backend)
	assert.Equal(t, cfg.Backend.DefaultModel(), cfg.Model)
	assert.Equal(t, cfg.Backend.DefaultBaseURL(), cfg.BaseURL)
	assert.Equal(t, DefaultSystemPrompt, cfg.SystemPrompt)
	assert.Equal(t, 120, cfg.TimeoutSeconds)
	assert.Equal(t, 50, cfg.MaxIterations)
	assert.Equal(t, 1000, cfg.MaxReadLines)
	assert.Equal(t, []string{"."}, cfg.AccessiblePaths)
	assert.Equal(t, []string{".git"}, cfg.IgnoredPaths)
	assert.True(t, cfg.TerminalBell)
	assert.False(t, cfg.AutoExecute)
}

func TestMergeEmptyLayerChangesNothing(t *testing.T) {
	cfg := Default()
	want := Default()

	cfg.Merge(&Layer{})

	assert.Equal(t, want, cfg)
}

func TestMergeScalarOverrides(t *testing.T) {
	cfg := Default()

	cfg.Merge(&Layer{
		Model:          strPtr("custom-model"),
		TimeoutSeconds: intPtr(30),
		MaxIterations:  intPtr(10),
		MaxReadLines:   intPtr(200),
		TerminalBell:   boolPtr(false),
		AutoExecute:    boolPtr(true),
	})

	assert.Equal(t, "custom-model", cfg.Model)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, 10, cfg.MaxIterations)
	assert.Equal(t, 200, cfg.MaxReadLines)
	assert.False(t, cfg.TerminalBell)
	assert.True(t, cfg.AutoExecute)
	// Untouched fields survive.
	assert.Equal(t, DefaultBackend, cfg.Backend)
	assert.Equal(t, DefaultSystemPrompt, cfg.SystemPrompt)
}

func TestMergeBackendRecomputesBaseURL(t *testing.T) {
	cfg := Default()
	backend := BackendOllama

	cfg.Merge(&Layer{Backend: &backend})

	assert.Equal(t, BackendOllama, cfg.Backend)
	assert.Equal(t, BackendOllama.DefaultBaseURL(), cfg.BaseURL)
}

func TestMergeBackendWithExplicitBaseURLKeepsIt(t *testing.T) {
	cfg := Default()
	backend := BackendOllama

	cfg.Merge(&Layer{
		Backend: &backend,
		BaseURL: strPtr("http://example.com:9999/v1"),
	})

	assert.Equal(t, BackendOllama, cfg.Backend)
	assert.Equal(t, "http://example.com:9999/v1", cfg.BaseURL)
}

func TestMergeBaseURLPinnedInEarlierLayerIsRecomputed(t *testing.T) {
	// A pinned URL only survives a backend switch made in the same layer.
	cfg := Default()
	cfg.Merge(&Layer{BaseURL: strPtr("http://example.com/v1")})
	require.Equal(t, "http://example.com/v1", cfg.BaseURL)

	backend := BackendOpenAI
	cfg.Merge(&Layer{Backend: &backend})

	assert.Equal(t, BackendOpenAI.DefaultBaseURL(), cfg.BaseURL)
}

func TestMergeSystemPromptBlankClears(t *testing.T) {
	for _, blank := range []string{"", "   ", "\n\t "} {
		cfg := Default()
		cfg.Merge(&Layer{SystemPrompt: strPtr(blank)})
		assert.Empty(t, cfg.SystemPrompt, "prompt %q should clear", blank)
	}
}

func TestMergeSystemPromptReplacedVerbatim(t *testing.T) {
	cfg := Default()

	cfg.Merge(&Layer{SystemPrompt: strPtr("  be brief  ")})

	assert.Equal(t, "  be brief  ", cfg.SystemPrompt)
}

func TestMergeEmptyListMeansNotSpecified(t *testing.T) {
	cfg := Default()

	cfg.Merge(&Layer{
		AllowedCommandPrefixes: []string{},
		IgnoredPaths:           nil,
		AccessiblePaths:        []string{},
	})

	assert.Equal(t, Default().AllowedCommandPrefixes, cfg.AllowedCommandPrefixes)
	assert.Equal(t, Default().IgnoredPaths, cfg.IgnoredPaths)
	assert.Equal(t, Default().AccessiblePaths, cfg.AccessiblePaths)
}

func TestMergeNonEmptyListReplacesWholesale(t *testing.T) {
	cfg := Default()

	cfg.Merge(&Layer{AllowedCommandPrefixes: []string{"go test"}})

	assert.Equal(t, []string{"go test"}, cfg.AllowedCommandPrefixes)
}

func TestMergeClonesLayerLists(t *testing.T) {
	cfg := Default()
	paths := []string{"/srv/project"}

	cfg.Merge(&Layer{AccessiblePaths: paths})
	paths[0] = "/mutated"

	assert.Equal(t, []string{"/srv/project"}, cfg.AccessiblePaths)
}

func TestMergeLayersInOrderLaterWins(t *testing.T) {
	cfg := Default()

	cfg.Merge(&Layer{Model: strPtr("from-file"), TimeoutSeconds: intPtr(60)})
	cfg.Merge(&Layer{Model: strPtr("from-flags")})

	assert.Equal(t, "from-flags", cfg.Model)
	assert.Equal(t, 60, cfg.TimeoutSeconds)
}

func TestBackendUnmarshalText(t *testing.T) {
	var b Backend
	require.NoError(t, b.UnmarshalText([]byte("ollama")))
	assert.Equal(t, BackendOllama, b)

	err := b.UnmarshalText([]byte("skynet"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")
}
