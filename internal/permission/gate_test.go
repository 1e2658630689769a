package permission

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidekick-cli/sidekick/internal/config"
)

func gateConfig(roots []string, prefixes []string, autoExecute bool) config.Config {
	cfg := config.Default()
	cfg.AccessiblePaths = roots
	cfg.AllowedCommandPrefixes = prefixes
	cfg.AutoExecute = autoExecute
	return cfg
}

func TestGateDeniesBeforeAsking(t *testing.T) {
	asked := false
	gate := NewGate(gateConfig(nil, []string{"ls"}, false),
		func(ctx context.Context, req Request) (Decision, error) {
			asked = true
			return DecisionOnce, nil
		})

	err := gate.AuthorizeCommand(context.Background(), "rm -rf /")

	require.Error(t, err)
	var denied *CommandDeniedError
	assert.ErrorAs(t, err, &denied)
	assert.False(t, asked, "denied commands must not reach the user")
}

func TestGateAutoExecuteSkipsConfirmation(t *testing.T) {
	gate := NewGate(gateConfig(nil, nil, true),
		func(ctx context.Context, req Request) (Decision, error) {
			t.Fatal("confirm must not be called in auto-execute mode")
			return DecisionReject, nil
		})

	assert.NoError(t, gate.AuthorizeCommand(context.Background(), "ls -la"))
}

func TestGateAsksAndHonorsReject(t *testing.T) {
	gate := NewGate(gateConfig(nil, nil, false),
		func(ctx context.Context, req Request) (Decision, error) {
			assert.NotEmpty(t, req.ID)
			assert.Equal(t, "ls -la", req.Command)
			return DecisionReject, nil
		})

	err := gate.AuthorizeCommand(context.Background(), "ls -la")

	require.Error(t, err)
	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.True(t, IsDenied(err))
}

func TestGateRemembersAlwaysApprovals(t *testing.T) {
	asks := 0
	gate := NewGate(gateConfig(nil, nil, false),
		func(ctx context.Context, req Request) (Decision, error) {
			asks++
			return DecisionAlways, nil
		})

	require.NoError(t, gate.AuthorizeCommand(context.Background(), "git status"))
	require.NoError(t, gate.AuthorizeCommand(context.Background(), "git log --oneline"))
	assert.Equal(t, 1, asks, "second git command should reuse the approval")

	require.NoError(t, gate.AuthorizeCommand(context.Background(), "ls"))
	assert.Equal(t, 2, asks, "a different command still asks")
}

func TestGateOnceApprovalIsNotRemembered(t *testing.T) {
	asks := 0
	gate := NewGate(gateConfig(nil, nil, false),
		func(ctx context.Context, req Request) (Decision, error) {
			asks++
			return DecisionOnce, nil
		})

	require.NoError(t, gate.AuthorizeCommand(context.Background(), "ls"))
	require.NoError(t, gate.AuthorizeCommand(context.Background(), "ls"))
	assert.Equal(t, 2, asks)
}

func TestGateNilConfirmRejects(t *testing.T) {
	gate := NewGate(gateConfig(nil, nil, false), nil)

	err := gate.AuthorizeCommand(context.Background(), "ls")

	var rejected *RejectedError
	assert.ErrorAs(t, err, &rejected)
}

func TestGateBlocksMutationsOutsideRootsEvenWithAutoExecute(t *testing.T) {
	accessible, inaccessible := setupDirs(t)
	gate := NewGate(gateConfig([]string{accessible}, nil, true), nil)

	err := gate.AuthorizeCommand(context.Background(),
		"rm "+filepath.Join(inaccessible, "secret.txt"))

	require.Error(t, err)
	var notAccessible *NotAccessibleError
	assert.ErrorAs(t, err, &notAccessible)
}

func TestGateAuthorizePath(t *testing.T) {
	accessible, inaccessible := setupDirs(t)
	gate := NewGate(gateConfig([]string{accessible}, nil, false), nil)

	assert.NoError(t, gate.AuthorizePath(filepath.Join(accessible, "file.txt")))
	assert.Error(t, gate.AuthorizePath(filepath.Join(inaccessible, "secret.txt")))
}

func TestGateUnparseableCommandFallsThroughToConfirm(t *testing.T) {
	asked := false
	gate := NewGate(gateConfig(nil, nil, false),
		func(ctx context.Context, req Request) (Decision, error) {
			asked = true
			return DecisionOnce, nil
		})

	err := gate.AuthorizeCommand(context.Background(), "echo 'unterminated")

	assert.NoError(t, err)
	assert.True(t, asked)
}
