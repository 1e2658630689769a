// Package permission is sidekick's security boundary: every filesystem
// path and every shell command the agent proposes to touch passes through
// the checks here before anything happens.
//
// Enforcement is cooperative, not an OS sandbox. Callers must invoke the
// guards before performing the real operation; nothing intercepts at the
// syscall level.
//
// # Guards
//
// IsPathAccessible grants access to a path when its canonical (absolute,
// symlink-free) form descends from one of the configured accessible roots.
// Canonicalization is mandatory: comparing raw strings would let ../
// traversal or symlink tricks escape the roots. Non-existent paths are
// judged by their parent directory, so creating a new file inside a root
// is permitted.
//
// IsCommandAllowed is a coarse textual gate over a prefix allow-list. It
// deliberately does no shell parsing; an empty allow-list disables the
// gate entirely.
//
// # Layered on top
//
// Inspect and CheckCommandPaths add the semantic layer the coarse gate
// leaves to callers: they parse the command line as bash and run the path
// arguments of filesystem-mutating commands through the path guard.
//
// Gate ties everything to a session: auto-execute mode, remembered
// "always" approvals, and a confirmation callback for everything else.
//
// All denials come back as typed errors (see IsDenied); the agent is
// expected to explain them to the user and move on. Nothing here panics
// or aborts the process.
package permission
