// Package model defines the data structures for pairwise alignment.
package model

import (
	"fmt"
	"strings"

	"aledit.dev/pkg/aledit/pkg/cigar"
)

// Mode selects which gaps around the query are free of charge.
type Mode uint8

const (
	// ModeGlobal penalizes gaps at both ends of both sequences
	// (Needleman-Wunsch).
	ModeGlobal Mode = iota
	// ModePrefix does not penalize a gap after the query's end: trailing
	// target characters are free.
	ModePrefix
	// ModeInfix does not penalize gaps before and after the query: the
	// query may land anywhere inside the target.
	ModeInfix
)

func (m Mode) String() string {
	switch m {
	case ModePrefix:
		return "prefix"
	case ModeInfix:
		return "infix"
	}
	return "global"
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global", "nw":
		return ModeGlobal, nil
	case "prefix", "shw":
		return ModePrefix, nil
	case "infix", "hw":
		return ModeInfix, nil
	}
	return ModeGlobal, fmt.Errorf("unknown alignment mode %q", s)
}

// Task tells the aligner how much to compute. Each level includes the
// previous one: locations imply distance, a path implies locations.
type Task uint8

const (
	// TaskDistance computes the edit distance and end locations.
	TaskDistance Task = iota
	// TaskLocations additionally recovers start locations.
	TaskLocations
	// TaskPath additionally reconstructs an explicit edit path for the
	// first start/end pair.
	TaskPath
)

func (t Task) String() string {
	switch t {
	case TaskLocations:
		return "locations"
	case TaskPath:
		return "path"
	}
	return "distance"
}

// ParseTask converts a task name to a Task.
func ParseTask(s string) (Task, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distance":
		return TaskDistance, nil
	case "locations", "loc":
		return TaskLocations, nil
	case "path":
		return TaskPath, nil
	}
	return TaskDistance, fmt.Errorf("unknown alignment task %q", s)
}

// EqualityPair declares two byte values equal for comparison purposes.
// Pairs are symmetric and compose transitively: A≡B and B≡C imply A≡C.
type EqualityPair struct {
	First  byte
	Second byte
}

// AlignConfig carries the per-invocation alignment parameters.
type AlignConfig struct {
	// K bounds the edit distance. Distances above K report -1. A negative
	// K means unbounded: the engine auto-adjusts the bound internally.
	K int

	Mode Mode
	Task Task

	// Equalities extends byte equality beyond identity.
	Equalities []EqualityPair
}

// DefaultConfig mirrors the conventional defaults: unbounded global
// distance-only alignment with no extra equalities.
func DefaultConfig() AlignConfig {
	return AlignConfig{K: -1, Mode: ModeGlobal, Task: TaskDistance}
}

// AlignResult is the outcome of one alignment. It is owned entirely by the
// caller; no state is shared with the engine.
type AlignResult struct {
	// EditDistance is the minimal edit distance, or -1 when it exceeds the
	// configured bound K. When -1, all location and path fields are nil.
	EditDistance int

	// EndLocations holds the zero-based target positions where optimal
	// alignments end, ascending and unique.
	EndLocations []int

	// StartLocations pairs with EndLocations index by index; it is set for
	// TaskLocations and TaskPath. StartLocations[i] <= EndLocations[i].
	StartLocations []int

	// Path is the edit path for the first start/end pair, in query order.
	// Set only for TaskPath.
	Path []cigar.Op

	// AlphabetSize counts the distinct symbol classes across both inputs.
	AlphabetSize int
}

// Found reports whether the distance is within the configured bound.
func (r AlignResult) Found() bool { return r.EditDistance >= 0 }
