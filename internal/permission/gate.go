package permission

import (
	"context"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/sidekick-cli/sidekick/internal/config"
	"github.com/sidekick-cli/sidekick/internal/logging"
)

// Decision is the user's answer to a confirmation request.
type Decision string

const (
	DecisionOnce   Decision = "once"
	DecisionAlways Decision = "always"
	DecisionReject Decision = "reject"
)

// Request describes a command awaiting user confirmation.
type Request struct {
	ID      string
	Command string
}

// ConfirmFunc prompts the user and returns their decision. It runs on the
// caller's goroutine; ctx carries the caller's cancellation.
type ConfirmFunc func(ctx context.Context, req Request) (Decision, error)

// Gate combines both guards with the auto-execute setting and remembered
// per-session approvals. Guards themselves stay pure; the gate is the only
// stateful piece, and it is safe for concurrent use.
type Gate struct {
	cfg     config.Config
	confirm ConfirmFunc

	mu       sync.Mutex
	approved map[string]bool // command pattern -> approved for this session
}

// NewGate creates a gate over a resolved configuration. confirm may be nil,
// in which case anything that would need a prompt is rejected.
func NewGate(cfg config.Config, confirm ConfirmFunc) *Gate {
	return &Gate{
		cfg:      cfg,
		confirm:  confirm,
		approved: make(map[string]bool),
	}
}

// AuthorizePath checks a filesystem path against the accessible roots.
func (g *Gate) AuthorizePath(path string) error {
	return IsPathAccessible(path, g.cfg.AccessiblePaths)
}

// AuthorizeCommand decides whether a shell command may run.
//
// The allow-list gate and the per-path check of mutating commands are
// enforced unconditionally. After that, auto-execute mode or a remembered
// "always" approval lets the command through; everything else goes to the
// confirm callback.
func (g *Gate) AuthorizeCommand(ctx context.Context, command string) error {
	if err := IsCommandAllowed(command, g.cfg.AllowedCommandPrefixes); err != nil {
		return err
	}
	if err := CheckCommandPaths(command, g.cfg.AccessiblePaths); err != nil {
		if IsDenied(err) {
			return err
		}
		// Not parseable as bash. The coarse gate already passed, so fall
		// through to confirmation rather than failing.
		logging.Debug().Err(err).Str("command", command).
			Msg("command not parseable, skipping path inspection")
	}

	if g.cfg.AutoExecute {
		return nil
	}

	pattern := commandPattern(command)
	g.mu.Lock()
	remembered := g.approved[pattern]
	g.mu.Unlock()
	if remembered {
		return nil
	}

	req := Request{ID: ulid.Make().String(), Command: command}
	if g.confirm == nil {
		return &RejectedError{RequestID: req.ID, Command: command}
	}
	decision, err := g.confirm(ctx, req)
	if err != nil {
		return err
	}
	switch decision {
	case DecisionOnce:
		return nil
	case DecisionAlways:
		g.mu.Lock()
		g.approved[pattern] = true
		g.mu.Unlock()
		return nil
	default:
		return &RejectedError{RequestID: req.ID, Command: command}
	}
}

// commandPattern reduces a command line to the key "always" approvals are
// remembered under: its first word.
func commandPattern(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
