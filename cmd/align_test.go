package cmd

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"aledit.dev/pkg/aledit/internal/domain"
	m "aledit.dev/pkg/aledit/internal/model"
)

type fakeAligner struct {
	mu      sync.Mutex
	res     m.AlignResult
	calls   int
	queries []string
	targets []string
	cfg     m.AlignConfig
}

func (f *fakeAligner) Align(_ context.Context, query, target []byte, cfg m.AlignConfig) (m.AlignResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.queries = append(f.queries, string(query))
	f.targets = append(f.targets, string(target))
	f.cfg = cfg

	return f.res, nil
}

func swapAligner(t *testing.T, fake domain.Aligner) {
	t.Helper()

	original := aligner
	aligner = fake
	t.Cleanup(func() { aligner = original })
}

func newTestRoot(subCmd *cobra.Command) (*cobra.Command, *bytes.Buffer) {
	root := newRootCmd()
	configureRootFlags(root)
	root.AddCommand(subCmd)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)

	return root, &buf
}

func TestAlignCmd_FlagsFlowIntoConfig(t *testing.T) {
	fake := &fakeAligner{res: m.AlignResult{EditDistance: 2, EndLocations: []int{4}}}
	swapAligner(t, fake)

	root, buf := newTestRoot(newAlignCmd())
	root.SetArgs([]string{
		"align", "missing", "mississipi",
		"--mode", "infix",
		"--task", "locations",
		"--bound", "3",
		"--equal", "A=N",
	})

	require.NoError(t, root.Execute())

	require.Equal(t, 1, fake.calls)
	require.Equal(t, []string{"missing"}, fake.queries)
	require.Equal(t, []string{"mississipi"}, fake.targets)
	require.Equal(t, m.ModeInfix, fake.cfg.Mode)
	require.Equal(t, m.TaskLocations, fake.cfg.Task)
	require.Equal(t, 3, fake.cfg.K)
	require.Equal(t, []m.EqualityPair{{First: 'A', Second: 'N'}}, fake.cfg.Equalities)

	require.Contains(t, buf.String(), "edit distance: 2")
}

func TestAlignCmd_DefaultsAreGlobalDistance(t *testing.T) {
	fake := &fakeAligner{res: m.AlignResult{EditDistance: 0, EndLocations: []int{2}}}
	swapAligner(t, fake)

	root, _ := newTestRoot(newAlignCmd())
	root.SetArgs([]string{"align", "abc", "abc"})

	require.NoError(t, root.Execute())

	require.Equal(t, m.ModeGlobal, fake.cfg.Mode)
	require.Equal(t, m.TaskDistance, fake.cfg.Task)
	require.Equal(t, -1, fake.cfg.K)
}

func TestAlignCmd_RejectsUnknownMode(t *testing.T) {
	fake := &fakeAligner{}
	swapAligner(t, fake)

	root, _ := newTestRoot(newAlignCmd())
	root.SetArgs([]string{"align", "a", "b", "--mode", "sideways"})

	require.Error(t, root.Execute())
	require.Zero(t, fake.calls)
}

func TestAlignCmd_MissingTargetErrors(t *testing.T) {
	fake := &fakeAligner{}
	swapAligner(t, fake)

	root, _ := newTestRoot(newAlignCmd())
	root.SetArgs([]string{"align", "onlyquery"})

	require.Error(t, root.Execute())
	require.Zero(t, fake.calls)
}

func TestAlignCmd_NotFoundWithinBound(t *testing.T) {
	fake := &fakeAligner{res: m.AlignResult{EditDistance: -1}}
	swapAligner(t, fake)

	root, buf := newTestRoot(newAlignCmd())
	root.SetArgs([]string{"align", "kitten", "sitting", "--bound", "1"})

	require.NoError(t, root.Execute())
	require.Contains(t, buf.String(), "not within bound")
}
