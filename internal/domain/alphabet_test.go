package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "aledit.dev/pkg/aledit/internal/model"
)

func TestBuildAlphabet_DenseIDsInAppearanceOrder(t *testing.T) {
	q, tgt, size := buildAlphabet([]byte("bab"), []byte("cab"), nil)

	require.Equal(t, 3, size)
	require.Equal(t, []uint8{0, 1, 0}, q)
	require.Equal(t, []uint8{2, 1, 0}, tgt)
}

func TestBuildAlphabet_PairsCollapseClasses(t *testing.T) {
	pairs := []m.EqualityPair{{First: 'a', Second: 'b'}}

	q, tgt, size := buildAlphabet([]byte("ab"), []byte("ba"), pairs)

	require.Equal(t, 1, size)
	require.Equal(t, []uint8{0, 0}, q)
	require.Equal(t, []uint8{0, 0}, tgt)
}

func TestBuildAlphabet_ChainThroughAbsentByte(t *testing.T) {
	// 'b' appears in neither sequence but still links 'a' and 'c'.
	pairs := []m.EqualityPair{
		{First: 'a', Second: 'b'},
		{First: 'b', Second: 'c'},
	}

	q, tgt, size := buildAlphabet([]byte("ac"), []byte("ca"), pairs)

	require.Equal(t, 1, size)
	require.Equal(t, []uint8{0, 0}, q)
	require.Equal(t, []uint8{0, 0}, tgt)
}

func TestBuildAlphabet_AbsentBytesGetNoClass(t *testing.T) {
	_, _, size := buildAlphabet([]byte("aa"), []byte("aa"), nil)

	require.Equal(t, 1, size)
}

func TestBlockCellAbove(t *testing.T) {
	// All positive deltas: every row up from the bottom is one less.
	b := block{p: ^uint64(0), score: wordSize}

	require.Equal(t, wordSize, b.cellAbove(0))
	require.Equal(t, wordSize-1, b.cellAbove(1))
	require.Equal(t, 1, b.cellAbove(wordSize-1))
}

func TestBuildPeq_PaddingRowsMatchEverything(t *testing.T) {
	qSyms := []uint8{0, 1, 0}
	peq := buildPeq(2, qSyms, 1)

	// Class 0 matches rows 0 and 2, class 1 matches row 1; rows 3..63 are
	// padding and must be set in every class.
	padding := ^uint64(7)
	require.Equal(t, uint64(0b101)|padding, peq[0][0])
	require.Equal(t, uint64(0b010)|padding, peq[1][0])
}
