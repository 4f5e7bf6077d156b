package domain

import (
	m "aledit.dev/pkg/aledit/internal/model"
)

// searchState bundles the precomputed inputs shared by the distance engines
// for one query/target pair.
type searchState struct {
	peq       [][]uint64
	maxBlocks int
	padding   int // rows in the last block past the query's end
	qLen      int
	tSyms     []uint8
}

func newSearchState(qSyms, tSyms []uint8, alphabetSize int) *searchState {
	maxBlocks := ceilDiv(len(qSyms), wordSize)
	return &searchState{
		peq:       buildPeq(alphabetSize, qSyms, maxBlocks),
		maxBlocks: maxBlocks,
		padding:   maxBlocks*wordSize - len(qSyms),
		qLen:      len(qSyms),
		tSyms:     tSyms,
	}
}

// findDistance locates the minimal edit distance under the given mode and
// bound k, together with the end positions in the target where it is
// achieved. A negative k means unbounded: the search starts with a bound of
// one machine word and doubles it until a distance is found, which keeps
// small distances cheap without a second code path. Returns -1 and no
// positions when every alignment costs more than k.
func (s *searchState) findDistance(mode m.Mode, k int) (int, []int) {
	if k < 0 {
		for k = wordSize; ; k *= 2 {
			if d, pos := s.findDistance(mode, k); d >= 0 {
				return d, pos
			}
			// The distance never exceeds the combined length.
			if k >= s.qLen+len(s.tSyms) {
				return -1, nil
			}
		}
	}

	if mode == m.ModeGlobal {
		d := s.global(k)
		if d < 0 {
			return -1, nil
		}
		return d, []int{len(s.tSyms) - 1}
	}

	return s.semiGlobal(mode, k)
}

// semiGlobal scans the target with the banded Myers recurrence for the
// prefix and infix modes. The band of active blocks grows downward one
// block per column at most and shrinks from the bottom whenever a block's
// score can no longer come back under the bound. Infix mode additionally
// resets the entering horizontal delta to zero, which lets an alignment
// start at any target position, and never drops the top block since a
// fresh start can bring any later column back into play.
func (s *searchState) semiGlobal(mode m.Mode, k int) (int, []int) {
	startHin := 1
	if mode == m.ModeInfix {
		startHin = 0
		// An infix alignment never costs more than deleting the whole query.
		if k > s.qLen {
			k = s.qLen
		}
	}

	blocks := make([]block, s.maxBlocks)
	firstBlock := 0
	lastBlock := min(ceilDiv(k+1, wordSize), s.maxBlocks) - 1
	for b := 0; b <= lastBlock; b++ {
		blocks[b] = block{p: ^uint64(0), score: (b + 1) * wordSize}
	}

	best := -1
	var positions []int

	for c, sym := range s.tSyms {
		peqC := s.peq[sym]

		hout := startHin
		for b := firstBlock; b <= lastBlock; b++ {
			hout = blocks[b].advance(peqC[b], hout)
			blocks[b].score += hout
		}

		// Grow the band one block when the cell below the current bottom
		// could still score within k, otherwise retire blocks whose whole
		// word is provably above the bound.
		if lastBlock < s.maxBlocks-1 &&
			blocks[lastBlock].score-hout <= k &&
			(peqC[lastBlock+1]&1 != 0 || hout < 0) {
			prevBottom := blocks[lastBlock].score - hout
			lastBlock++
			nb := &blocks[lastBlock]
			nb.p, nb.m = ^uint64(0), 0
			nb.score = prevBottom + wordSize + nb.advance(peqC[lastBlock], hout)
		} else {
			for lastBlock >= firstBlock && blocks[lastBlock].score >= k+wordSize {
				if mode == m.ModeInfix && lastBlock == 0 {
					break
				}
				lastBlock--
			}
		}

		if mode == m.ModePrefix {
			for firstBlock <= lastBlock && blocks[firstBlock].score >= k+wordSize {
				firstBlock++
			}
		}

		if lastBlock < firstBlock {
			// Every remaining cell is above the bound and prefix columns
			// only ever build on these, so no better end exists further on.
			break
		}

		if lastBlock == s.maxBlocks-1 {
			colScore := blocks[lastBlock].cellAbove(s.padding)
			if colScore <= k {
				if colScore < best || best == -1 {
					best = colScore
					positions = positions[:0]
					// From here on only equal or better scores matter.
					k = best
				}
				if colScore == best {
					positions = append(positions, c)
				}
			}
		}
	}

	return best, positions
}

// global computes the bounded edit distance for the global mode. Cells
// further than k from either diagonal of the dynamic-programming matrix
// cannot lie on a path within the bound, so only the blocks covering the
// stripe between the two diagonals are ever computed.
func (s *searchState) global(k int) int {
	n := len(s.tSyms)

	diff := s.qLen - n
	if diff < 0 {
		diff = -diff
	}
	if k < diff {
		return -1
	}
	if k > max(s.qLen, n) {
		k = max(s.qLen, n)
	}

	// Row r is live in column c when lo <= r-c <= hi.
	lo := max(-k, s.qLen-n-k)
	hi := min(k, s.qLen-n+k)

	blocks := make([]block, s.maxBlocks)
	blocks[0] = block{p: ^uint64(0), score: wordSize}
	firstBlock, lastBlock := 0, 0

	for c, sym := range s.tSyms {
		wanted := min(s.maxBlocks-1, (c+hi)/wordSize)
		for lastBlock < wanted {
			lastBlock++
			blocks[lastBlock] = block{
				p:     ^uint64(0),
				score: blocks[lastBlock-1].score + wordSize,
			}
		}

		if lowRow := c + lo; lowRow > 0 && lowRow/wordSize > firstBlock {
			firstBlock = lowRow / wordSize
		}
		if firstBlock > lastBlock {
			return -1
		}

		peqC := s.peq[sym]
		hout := 1
		for b := firstBlock; b <= lastBlock; b++ {
			hout = blocks[b].advance(peqC[b], hout)
			blocks[b].score += hout
		}
	}

	if lastBlock < s.maxBlocks-1 {
		return -1
	}
	score := blocks[s.maxBlocks-1].cellAbove(s.padding)
	if score > k {
		return -1
	}
	return score
}
