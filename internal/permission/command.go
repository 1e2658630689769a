package permission

import "strings"

// IsCommandAllowed checks a shell command against the prefix allow-list.
// Matching is a literal, case-sensitive prefix test on the raw command
// string; there is no shell tokenization and no whitespace normalization.
// Callers needing semantic command understanding layer Inspect on top.
//
// An empty allow-list disables the gate: every command is allowed. That is
// a real policy choice (opt-in allow-listing), not an oversight; flipping
// it to "empty means deny everything" is a one-line change here.
func IsCommandAllowed(command string, allowedPrefixes []string) error {
	if len(allowedPrefixes) == 0 {
		return nil
	}
	for _, prefix := range allowedPrefixes {
		if strings.HasPrefix(command, prefix) {
			return nil
		}
	}
	return &CommandDeniedError{Command: command, Prefixes: allowedPrefixes}
}
