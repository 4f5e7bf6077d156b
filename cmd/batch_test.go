package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	m "aledit.dev/pkg/aledit/internal/model"
)

func writeFasta(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBatchCmd_AlignsEveryPair(t *testing.T) {
	fake := &fakeAligner{res: m.AlignResult{EditDistance: 1, EndLocations: []int{3}}}
	swapAligner(t, fake)

	queries := writeFasta(t, "queries.fasta", ">q1\nACGT\n>q2\nTTTT\n")
	targets := writeFasta(t, "targets.fasta", ">t1\nACGTACGT\n")

	root, buf := newTestRoot(newBatchCmd())
	root.SetArgs([]string{"batch", queries, targets, "--parallel", "2"})

	require.NoError(t, root.Execute())

	require.Equal(t, 2, fake.calls)
	require.ElementsMatch(t, []string{"ACGT", "TTTT"}, fake.queries)

	out := buf.String()
	require.Contains(t, out, "q1")
	require.Contains(t, out, "q2")
	require.Contains(t, out, "t1")
	require.Contains(t, out, "PAIRS 2")
}

func TestBatchCmd_MissingFileErrors(t *testing.T) {
	fake := &fakeAligner{}
	swapAligner(t, fake)

	root, _ := newTestRoot(newBatchCmd())
	root.SetArgs([]string{"batch", filepath.Join(t.TempDir(), "absent"), "also-absent"})

	require.Error(t, root.Execute())
	require.Zero(t, fake.calls)
}

func TestBatchCmd_RequiresTwoArgs(t *testing.T) {
	root, _ := newTestRoot(newBatchCmd())
	root.SetArgs([]string{"batch", "only-one"})

	require.Error(t, root.Execute())
}
