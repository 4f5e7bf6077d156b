// Package cigar encodes edit-operation sequences as CIGAR strings and
// parses them back into run-length tokens.
//
// See http://samtools.github.io/hts-specs/SAMv1.pdf for the grammar.
package cigar

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is a single edit operation of an alignment path, in query order.
type Op uint8

const (
	// OpMatch consumes one query and one target symbol that compare equal.
	OpMatch Op = iota
	// OpInsertTarget consumes one query symbol; the target gains a gap.
	OpInsertTarget
	// OpInsertQuery consumes one target symbol; the query gains a gap.
	OpInsertQuery
	// OpMismatch consumes one query and one target symbol that differ.
	OpMismatch
)

// Format selects the CIGAR letter set.
type Format uint8

const (
	// Standard folds Match and Mismatch into 'M'; gaps are 'I' and 'D'.
	Standard Format = iota
	// Extended distinguishes Match '=' from Mismatch 'X'; gaps are 'I' and 'D'.
	Extended
)

func (f Format) String() string {
	if f == Extended {
		return "extended"
	}
	return "standard"
}

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return Standard, nil
	case "extended":
		return Extended, nil
	}
	return Standard, fmt.Errorf("unknown cigar format %q", s)
}

// letter maps an operation to its CIGAR letter under the given format.
func letter(op Op, f Format) (byte, error) {
	switch op {
	case OpMatch:
		if f == Extended {
			return '=', nil
		}
		return 'M', nil
	case OpMismatch:
		if f == Extended {
			return 'X', nil
		}
		return 'M', nil
	case OpInsertTarget:
		return 'I', nil
	case OpInsertQuery:
		return 'D', nil
	}
	return 0, fmt.Errorf("unknown edit operation %d", op)
}

// Encode run-length-encodes ops into a CIGAR string. Consecutive operations
// that share a letter under the chosen format merge into one token, so in
// Standard format a Match run followed by a Mismatch run emits a single 'M'
// token. An empty path is a caller error, not an empty string.
func Encode(ops []Op, f Format) (string, error) {
	if len(ops) == 0 {
		return "", fmt.Errorf("cigar: empty edit-operation path")
	}

	var b strings.Builder

	run, err := letter(ops[0], f)
	if err != nil {
		return "", err
	}

	n := 1
	for _, op := range ops[1:] {
		l, err := letter(op, f)
		if err != nil {
			return "", err
		}

		if l == run {
			n++
			continue
		}

		b.WriteString(strconv.Itoa(n))
		b.WriteByte(run)
		run, n = l, 1
	}

	b.WriteString(strconv.Itoa(n))
	b.WriteByte(run)

	return b.String(), nil
}

// Token is one <count><letter> unit of a CIGAR string.
type Token struct {
	N      int
	Letter byte
}

func validLetter(c byte) bool {
	switch c {
	case 'M', 'I', 'D', '=', 'X':
		return true
	}
	return false
}

// Parse splits a CIGAR string into its run-length tokens. Counts must be
// positive decimal integers without leading zeros.
func Parse(s string) ([]Token, error) {
	if s == "" {
		return nil, fmt.Errorf("cigar: empty string")
	}

	var tokens []Token

	i := 0
	for i < len(s) {
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}

		if j == i {
			return nil, fmt.Errorf("cigar: missing count at offset %d in %q", i, s)
		}
		if s[i] == '0' {
			return nil, fmt.Errorf("cigar: invalid count %q in %q", s[i:j], s)
		}
		if j == len(s) {
			return nil, fmt.Errorf("cigar: missing operation letter at end of %q", s)
		}
		if !validLetter(s[j]) {
			return nil, fmt.Errorf("cigar: invalid operation %q in %q", s[j], s)
		}

		n, err := strconv.Atoi(s[i:j])
		if err != nil {
			return nil, fmt.Errorf("cigar: parse count %q: %w", s[i:j], err)
		}

		tokens = append(tokens, Token{N: n, Letter: s[j]})
		i = j + 1
	}

	return tokens, nil
}

// Join renders tokens back into a CIGAR string. Parse followed by Join
// reproduces the input exactly.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(strconv.Itoa(t.N))
		b.WriteByte(t.Letter)
	}
	return b.String()
}
