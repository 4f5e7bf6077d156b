// Package controller renders alignment results for the CLI.
package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "aledit.dev/pkg/aledit/internal/model"
	"aledit.dev/pkg/aledit/pkg/cigar"
)

// Presenter displays alignment outcomes.
type Presenter interface {
	// ShowResult prints one alignment of query against target.
	ShowResult(ctx context.Context, query, target []byte, res m.AlignResult) error

	// ShowBatch prints a summary table for a batch of alignments.
	ShowBatch(ctx context.Context, alignments []m.Alignment) error
}

// Options tune the presentation.
type Options struct {
	// Format selects the CIGAR flavor for paths.
	Format cigar.Format

	// Pretty adds a styled three-line rendering of the aligned sequences.
	Pretty bool
}

// NewPresenter creates a Presenter printing through the given command.
func NewPresenter(cmd *cobra.Command, opts Options) Presenter {
	return &simplePresenter{cmd: cmd, opts: opts}
}

type simplePresenter struct {
	cmd  *cobra.Command
	opts Options
}

func (p *simplePresenter) ShowResult(ctx context.Context, query, target []byte, res m.AlignResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !res.Found() {
		p.cmd.Println("edit distance: not within bound")
		return nil
	}

	p.cmd.Printf("edit distance: %d\n", res.EditDistance)
	p.cmd.Printf("end locations: %s\n", formatLocations(res.EndLocations))
	if res.StartLocations != nil {
		p.cmd.Printf("start locations: %s\n", formatLocations(res.StartLocations))
	}

	if res.Path == nil {
		return nil
	}

	enc, err := cigar.Encode(res.Path, p.opts.Format)
	if err != nil {
		return fmt.Errorf("encode path: %w", err)
	}
	p.cmd.Printf("cigar: %s\n", enc)

	if p.opts.Pretty {
		p.cmd.Printf("\n%s", renderAlignmentText(query, target, res))
	}

	return nil
}

func (p *simplePresenter) ShowBatch(ctx context.Context, alignments []m.Alignment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Query", "Target", "Distance", "Start", "End", "Cigar"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	found := 0
	for _, a := range alignments {
		row, err := p.batchRow(a)
		if err != nil {
			return err
		}

		table.Append(row)
		if a.Result.Found() {
			found++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Pairs %d", len(alignments)),
		fmt.Sprintf("Found %d", found),
		"", "", "", "",
	})

	table.Render()
	p.cmd.Printf("\n%s", buf.String())

	return nil
}

func (p *simplePresenter) batchRow(a m.Alignment) ([]string, error) {
	if !a.Result.Found() {
		return []string{a.QueryID, a.TargetID, "-", "-", "-", ""}, nil
	}

	start, end := "-", "-"
	if len(a.Result.EndLocations) > 0 {
		end = fmt.Sprintf("%d", a.Result.EndLocations[0])
	}
	if len(a.Result.StartLocations) > 0 {
		start = fmt.Sprintf("%d", a.Result.StartLocations[0])
	}

	enc := ""
	if a.Result.Path != nil {
		var err error
		enc, err = cigar.Encode(a.Result.Path, p.opts.Format)
		if err != nil {
			return nil, fmt.Errorf("encode path for %s/%s: %w", a.QueryID, a.TargetID, err)
		}
	}

	return []string{
		a.QueryID, a.TargetID,
		fmt.Sprintf("%d", a.Result.EditDistance),
		start, end, enc,
	}, nil
}

func formatLocations(locs []int) string {
	parts := make([]string, len(locs))
	for i, l := range locs {
		parts[i] = fmt.Sprintf("%d", l)
	}

	return strings.Join(parts, ", ")
}

var (
	matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	editStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
)

// renderAlignmentText draws the aligned sequences in three rows: query on
// top, target at the bottom, and a marker row with '|' on matches between
// them. Gaps show as '-'. The target row starts at the alignment's start
// location.
func renderAlignmentText(query, target []byte, res m.AlignResult) string {
	if len(res.StartLocations) == 0 || res.StartLocations[0] < 0 {
		return ""
	}

	var qRow, marker, tRow strings.Builder

	qi, ti := 0, res.StartLocations[0]
	for _, op := range res.Path {
		switch op {
		case cigar.OpMatch:
			qRow.WriteByte(query[qi])
			marker.WriteString(matchStyle.Render("|"))
			tRow.WriteByte(target[ti])
			qi++
			ti++
		case cigar.OpMismatch:
			qRow.WriteString(editStyle.Render(string(query[qi])))
			marker.WriteByte(' ')
			tRow.WriteString(editStyle.Render(string(target[ti])))
			qi++
			ti++
		case cigar.OpInsertTarget:
			qRow.WriteString(editStyle.Render(string(query[qi])))
			marker.WriteByte(' ')
			tRow.WriteByte('-')
			qi++
		case cigar.OpInsertQuery:
			qRow.WriteByte('-')
			marker.WriteByte(' ')
			tRow.WriteString(editStyle.Render(string(target[ti])))
			ti++
		}
	}

	return fmt.Sprintf("%s %s\n%s %s\n%s %s\n",
		labelStyle.Render("query "), qRow.String(),
		labelStyle.Render("      "), marker.String(),
		labelStyle.Render("target"), tRow.String(),
	)
}
