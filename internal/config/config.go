package config

import "strings"

// DefaultSystemPrompt is the built-in instruction text used when no layer
// overrides the system prompt. It is process-wide immutable data.
const DefaultSystemPrompt = `You are an AI coding assistant, pair programming with a USER to solve their coding task.

You are an agent: keep going until the USER's query is completely resolved before ending your turn. Only stop when you are sure the problem is solved. Keep it simple and precise.

<tool_calling>
1. ALWAYS follow the tool call schema exactly and provide all required parameters.
2. Prefer gathering information with tools over asking the USER.
3. If you are unsure about file contents or codebase structure, read files instead of guessing.
4. Batch shell commands (compiling, linting) together with edit calls where appropriate.
</tool_calling>

<context>
Be THOROUGH when gathering information. Trace every symbol back to its definitions and usages. Look past the first seemingly relevant result and explore alternative implementations and edge cases until you have comprehensive coverage.
</context>

When using markdown, use backticks to format file, directory, function, and class names. To search for code, use the ripgrep 'rg -n' command.`

// Config is the fully resolved configuration. Every field has a concrete
// value; it is built once per process by merging layers onto Default() and
// is immutable afterwards. An empty SystemPrompt means "no system prompt".
type Config struct {
	Backend                Backend  `toml:"backend"`
	Model                  string   `toml:"model"`
	SystemPrompt           string   `toml:"system_prompt,omitempty"`
	TimeoutSeconds         int      `toml:"timeout_seconds"`
	MaxIterations          int      `toml:"max_iterations"`
	MaxReadLines           int      `toml:"max_read_lines"`
	AllowedCommandPrefixes []string `toml:"allowed_command_prefixes"`
	IgnoredPaths           []string `toml:"ignored_paths"`
	AccessiblePaths        []string `toml:"accessible_paths"`
	TerminalBell           bool     `toml:"terminal_bell"`
	ShowSystemPrompt       bool     `toml:"show_system_prompt"`
	DebugToolCalls         bool     `toml:"debug_tool_calls"`
	AutoExecute            bool     `toml:"auto_execute"`
	PrintMessages          bool     `toml:"print_messages"`
	BaseURL                string   `toml:"base_url"`
}

// Default returns the built-in configuration. It needs no external data and
// always satisfies the invariant that BaseURL matches the backend.
func Default() Config {
	backend := DefaultBackend
	return Config{
		Backend:        backend,
		Model:          backend.DefaultModel(),
		SystemPrompt:   DefaultSystemPrompt,
		TimeoutSeconds: 120,
		MaxIterations:  50,
		MaxReadLines:   1000,
		AllowedCommandPrefixes: []string{
			"ls", "cat", "echo", "pwd", "rg", "git diff",
		},
		IgnoredPaths:    []string{".git"},
		AccessiblePaths: []string{"."},
		TerminalBell:    true,
		BaseURL:         backend.DefaultBaseURL(),
	}
}

// Merge applies a layer on top of the configuration; layer values win
// field-by-field. All precedence rules live here and nowhere else.
//
// List fields replace the base list wholesale only when the layer's list is
// non-empty: an empty list means "not specified", never "clear to empty".
// Switching backends recomputes BaseURL from the new backend's default
// unless the same layer also pins an explicit BaseURL.
func (c *Config) Merge(layer *Layer) {
	if layer.Backend != nil {
		c.Backend = *layer.Backend
		if layer.BaseURL == nil {
			c.BaseURL = c.Backend.DefaultBaseURL()
		}
	}
	if layer.Model != nil {
		c.Model = *layer.Model
	}
	if layer.SystemPrompt != nil {
		// A blank prompt is an explicit "no system prompt".
		if strings.TrimSpace(*layer.SystemPrompt) == "" {
			c.SystemPrompt = ""
		} else {
			c.SystemPrompt = *layer.SystemPrompt
		}
	}
	if layer.TimeoutSeconds != nil {
		c.TimeoutSeconds = *layer.TimeoutSeconds
	}
	if layer.MaxIterations != nil {
		c.MaxIterations = *layer.MaxIterations
	}
	if layer.MaxReadLines != nil {
		c.MaxReadLines = *layer.MaxReadLines
	}
	if len(layer.AllowedCommandPrefixes) > 0 {
		c.AllowedCommandPrefixes = append([]string(nil), layer.AllowedCommandPrefixes...)
	}
	if len(layer.IgnoredPaths) > 0 {
		c.IgnoredPaths = append([]string(nil), layer.IgnoredPaths...)
	}
	if len(layer.AccessiblePaths) > 0 {
		c.AccessiblePaths = append([]string(nil), layer.AccessiblePaths...)
	}
	if layer.TerminalBell != nil {
		c.TerminalBell = *layer.TerminalBell
	}
	if layer.ShowSystemPrompt != nil {
		c.ShowSystemPrompt = *layer.ShowSystemPrompt
	}
	if layer.DebugToolCalls != nil {
		c.DebugToolCalls = *layer.DebugToolCalls
	}
	if layer.AutoExecute != nil {
		c.AutoExecute = *layer.AutoExecute
	}
	if layer.PrintMessages != nil {
		c.PrintMessages = *layer.PrintMessages
	}
	if layer.BaseURL != nil {
		c.BaseURL = *layer.BaseURL
	}
}
