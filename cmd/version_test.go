package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCmd_PrintsToolVersion(t *testing.T) {
	root, buf := newTestRoot(newVersionCmd())
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	require.Contains(t, buf.String(), "version")
}
