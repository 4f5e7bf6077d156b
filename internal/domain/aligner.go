// Package domain implements bounded pairwise edit-distance alignment on
// byte sequences using Myers' bit-parallel algorithm with Ukkonen banding.
package domain

import (
	"context"
	"fmt"

	m "aledit.dev/pkg/aledit/internal/model"
	"aledit.dev/pkg/aledit/pkg/cigar"
)

// Aligner computes edit-distance alignments of a query against a target.
type Aligner interface {
	Align(ctx context.Context, query, target []byte, cfg m.AlignConfig) (m.AlignResult, error)
}

// NewAligner returns the default stateless aligner. It is safe for
// concurrent use.
func NewAligner() Aligner {
	return &aligner{}
}

type aligner struct{}

func (a *aligner) Align(ctx context.Context, query, target []byte, cfg m.AlignConfig) (m.AlignResult, error) {
	qSyms, tSyms, alphabetSize := buildAlphabet(query, target, cfg.Equalities)

	res := m.AlignResult{EditDistance: -1, AlphabetSize: alphabetSize}

	if len(query) == 0 || len(target) == 0 {
		return alignEmpty(cfg, len(query), len(target), alphabetSize), nil
	}

	state := newSearchState(qSyms, tSyms, alphabetSize)
	distance, ends := state.findDistance(cfg.Mode, cfg.K)
	if distance < 0 {
		return res, nil
	}
	res.EditDistance = distance
	res.EndLocations = ends

	if cfg.Task == m.TaskDistance {
		return res, nil
	}

	starts, err := findStartLocations(ctx, qSyms, tSyms, alphabetSize, cfg.Mode, distance, ends)
	if err != nil {
		return m.AlignResult{}, fmt.Errorf("recover start locations: %w", err)
	}
	res.StartLocations = starts

	if cfg.Task == m.TaskPath {
		path, err := tracePath(qSyms, tSyms, starts[0], ends[0], distance)
		if err != nil {
			return m.AlignResult{}, fmt.Errorf("trace path: %w", err)
		}
		res.Path = path
	}

	return res, nil
}

// alignEmpty handles the cases where one or both sequences are empty, which
// the block machinery cannot represent. A global alignment of an empty side
// costs the other side's length; prefix and infix alignments of the query
// against an empty target cost the query's length, and their end location
// is reported as -1 since no target symbol is consumed.
func alignEmpty(cfg m.AlignConfig, qLen, tLen, alphabetSize int) m.AlignResult {
	res := m.AlignResult{EditDistance: -1, AlphabetSize: alphabetSize}

	var distance, end int
	if cfg.Mode == m.ModeGlobal {
		distance, end = max(qLen, tLen), tLen-1
	} else {
		distance, end = qLen, -1
	}
	if cfg.K >= 0 && distance > cfg.K {
		return res
	}

	res.EditDistance = distance
	res.EndLocations = []int{end}
	if cfg.Task == m.TaskDistance {
		return res
	}

	start := -1
	if cfg.Mode == m.ModeGlobal && tLen > 0 {
		start = 0
	}
	res.StartLocations = []int{start}
	if cfg.Task != m.TaskPath {
		return res
	}

	switch {
	case tLen == 0 && qLen > 0:
		res.Path = repeatOp(cigar.OpInsertTarget, qLen)
	case cfg.Mode == m.ModeGlobal && qLen == 0 && tLen > 0:
		res.Path = repeatOp(cigar.OpInsertQuery, tLen)
	}
	return res
}

func repeatOp(op cigar.Op, n int) []cigar.Op {
	ops := make([]cigar.Op, n)
	for i := range ops {
		ops[i] = op
	}
	return ops
}
