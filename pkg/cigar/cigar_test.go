package cigar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode_StandardFoldsMismatchIntoM(t *testing.T) {
	ops := []Op{OpMatch, OpMatch, OpMismatch, OpMatch, OpInsertQuery}

	s, err := Encode(ops, Standard)
	require.NoError(t, err)
	require.Equal(t, "4M1D", s)
}

func TestEncode_ExtendedKeepsMismatchDistinct(t *testing.T) {
	ops := []Op{OpMatch, OpMatch, OpMismatch, OpMatch, OpInsertQuery}

	s, err := Encode(ops, Extended)
	require.NoError(t, err)
	require.Equal(t, "2=1X1=1D", s)
}

func TestEncode_InsertTargetIsI(t *testing.T) {
	s, err := Encode([]Op{OpInsertTarget, OpInsertTarget}, Standard)
	require.NoError(t, err)
	require.Equal(t, "2I", s)
}

func TestEncode_EmptyPathErrors(t *testing.T) {
	_, err := Encode(nil, Standard)
	require.Error(t, err)
}

func TestEncode_UnknownOpErrors(t *testing.T) {
	_, err := Encode([]Op{Op(42)}, Extended)
	require.Error(t, err)
}

func TestParse_RoundTripsThroughJoin(t *testing.T) {
	for _, s := range []string{"4M1D", "2=1X1=1D", "120M", "1I1D1M"} {
		tokens, err := Parse(s)
		require.NoError(t, err)
		require.Equal(t, s, Join(tokens))
	}
}

func TestParse_Tokens(t *testing.T) {
	tokens, err := Parse("12M3I")
	require.NoError(t, err)
	require.Equal(t, []Token{{N: 12, Letter: 'M'}, {N: 3, Letter: 'I'}}, tokens)
}

func TestParse_RejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "M", "3", "03M", "0M", "3Z", "3M4"} {
		_, err := Parse(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("extended")
	require.NoError(t, err)
	require.Equal(t, Extended, f)

	f, err = ParseFormat(" Standard ")
	require.NoError(t, err)
	require.Equal(t, Standard, f)

	_, err = ParseFormat("compact")
	require.Error(t, err)
}
