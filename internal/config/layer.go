package config

// Layer is a sparse configuration source: a persisted file, a project
// overrides file, environment variables, or the flags of one invocation.
// Every field is optional; a nil pointer (or empty list) means the source
// did not mention the field, so the value from the previous layer survives.
//
// The one exception is SystemPrompt: a pointer to an empty or
// whitespace-only string is a deliberate "clear the prompt" signal, not an
// omission. See Config.Merge.
type Layer struct {
	Backend                *Backend `toml:"backend" json:"backend"`
	Model                  *string  `toml:"model" json:"model"`
	SystemPrompt           *string  `toml:"system_prompt" json:"system_prompt"`
	TimeoutSeconds         *int     `toml:"timeout_seconds" json:"timeout_seconds"`
	MaxIterations          *int     `toml:"max_iterations" json:"max_iterations"`
	MaxReadLines           *int     `toml:"max_read_lines" json:"max_read_lines"`
	AllowedCommandPrefixes []string `toml:"allowed_command_prefixes" json:"allowed_command_prefixes"`
	IgnoredPaths           []string `toml:"ignored_paths" json:"ignored_paths"`
	AccessiblePaths        []string `toml:"accessible_paths" json:"accessible_paths"`
	TerminalBell           *bool    `toml:"terminal_bell" json:"terminal_bell"`
	ShowSystemPrompt       *bool    `toml:"show_system_prompt" json:"show_system_prompt"`
	DebugToolCalls         *bool    `toml:"debug_tool_calls" json:"debug_tool_calls"`
	AutoExecute            *bool    `toml:"auto_execute" json:"auto_execute"`
	PrintMessages          *bool    `toml:"print_messages" json:"print_messages"`
	BaseURL                *string  `toml:"base_url" json:"base_url"`
}
