package model

import (
	"fmt"
	"strings"
)

// SequenceRecord is one named sequence, typically a FASTA record.
type SequenceRecord struct {
	ID  string
	Seq []byte
}

// Alignment pairs two named sequences with their alignment outcome, as
// produced by a batch run.
type Alignment struct {
	QueryID  string
	TargetID string
	Query    []byte
	Target   []byte
	Result   AlignResult
}

// ParseEqualityPair reads a pair declaration of the form "X=Y", where X and
// Y are single characters.
func ParseEqualityPair(s string) (EqualityPair, error) {
	parts := strings.Split(s, "=")
	if len(parts) != 2 || len(parts[0]) != 1 || len(parts[1]) != 1 {
		return EqualityPair{}, fmt.Errorf("equality pair %q must have the form X=Y", s)
	}

	return EqualityPair{First: parts[0][0], Second: parts[1][0]}, nil
}
