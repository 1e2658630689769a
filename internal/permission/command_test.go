package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyAllowListAllowsEverything(t *testing.T) {
	assert.NoError(t, IsCommandAllowed("rm -rf /", nil))
	assert.NoError(t, IsCommandAllowed("anything at all", []string{}))
	assert.NoError(t, IsCommandAllowed("", nil))
}

func TestCommandMatchingAPrefixIsAllowed(t *testing.T) {
	prefixes := []string{"ls", "echo", "git diff"}

	assert.NoError(t, IsCommandAllowed("ls -l", prefixes))
	assert.NoError(t, IsCommandAllowed("echo 'hello'", prefixes))
	assert.NoError(t, IsCommandAllowed("git diff --stat", prefixes))
}

func TestCommandMatchingNoPrefixIsDenied(t *testing.T) {
	prefixes := []string{"ls", "echo"}

	err := IsCommandAllowed("rm -rf /", prefixes)

	require.Error(t, err)
	var denied *CommandDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "rm -rf /", denied.Command)
	assert.Equal(t, prefixes, denied.Prefixes)
	assert.True(t, IsDenied(err))
}

func TestFullPathPrefixes(t *testing.T) {
	prefixes := []string{"/bin/ls"}

	assert.NoError(t, IsCommandAllowed("/bin/ls -a", prefixes))
	assert.Error(t, IsCommandAllowed("/usr/bin/rm -rf /", prefixes))
}

func TestPrefixMatchIsCaseSensitiveAndLiteral(t *testing.T) {
	prefixes := []string{"git diff"}

	assert.Error(t, IsCommandAllowed("Git diff", prefixes))
	assert.Error(t, IsCommandAllowed(" git diff", prefixes))
	// No tokenization: the prefix also matches inside a longer first word.
	assert.NoError(t, IsCommandAllowed("git difftool", prefixes))
}
