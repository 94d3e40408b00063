package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Flags(t *testing.T) {
	assert.NotNil(t, rootCmd.Flags().Lookup("simulate"))
	assert.NotNil(t, rootCmd.Flags().Lookup("renderer"))

	// Flags stop at the first positional argument so ping's own flags
	// survive untouched.
	require.NoError(t, rootCmd.Flags().Parse([]string{"8.8.8.8", "--simulate"}))
	assert.Equal(t, []string{"8.8.8.8", "--simulate"}, rootCmd.Flags().Args(),
		"--simulate after the host belongs to ping, not to us")
}

func TestFormatVersion(t *testing.T) {
	assert.Equal(t, "dev", formatVersion("dev"))
	assert.Equal(t, "", formatVersion(""))
	assert.Equal(t, "v1.2.3", formatVersion("1.2.3"))
	assert.Equal(t, "v1.2.3", formatVersion("v1.2.3"))
}

func TestSetVersionInfo(t *testing.T) {
	defer SetVersionInfo("dev", "none", "unknown")

	SetVersionInfo("9.9.9", "abc", "today")
	assert.Equal(t, "9.9.9", GetVersion())
}
