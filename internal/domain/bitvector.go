package domain

// Myers bit-vector primitives. The query is processed in 64-bit blocks of
// rows; each block keeps two delta vectors (P = +1 steps, M = -1 steps down
// the column) and the score of its bottom row.

const (
	wordSize  = 64
	hiBitMask = uint64(1) << (wordSize - 1)
)

// block is the per-word dynamic-programming state of one query-row block.
type block struct {
	p     uint64 // positive vertical deltas
	m     uint64 // negative vertical deltas
	score int    // score of the block's bottom row in the current column
}

// advance runs one step of the Myers recurrence for this block: it consumes
// the horizontal delta hin entering the block's top row (-1, 0 or +1) and
// the match vector eq for the current target symbol, updates the delta
// vectors in place and returns the horizontal delta leaving the bottom row.
// The caller adds the returned delta to the block score.
func (b *block) advance(eq uint64, hin int) int {
	pv, mv := b.p, b.m

	xv := eq | mv
	if hin < 0 {
		eq |= 1
	}
	xh := (((eq & pv) + pv) ^ pv) | eq

	ph := mv | ^(xh | pv)
	mh := pv & xh

	hout := 0
	if ph&hiBitMask != 0 {
		hout = 1
	}
	if mh&hiBitMask != 0 {
		hout = -1
	}

	ph <<= 1
	mh <<= 1
	if hin < 0 {
		mh |= 1
	} else if hin > 0 {
		ph |= 1
	}

	b.p = mh | ^(xv | ph)
	b.m = ph & xv

	return hout
}

// cellAbove returns the score of the cell `up` rows above the block's bottom
// row, reconstructed from the delta vectors.
func (b *block) cellAbove(up int) int {
	s := b.score
	mask := hiBitMask
	for r := 0; r < up; r++ {
		if b.p&mask != 0 {
			s--
		}
		if b.m&mask != 0 {
			s++
		}
		mask >>= 1
	}
	return s
}

// buildPeq precomputes, per symbol class and per block, the bit mask of
// query rows matching that class. Rows past the query's end are padding and
// match every symbol, so the bottom of the last block behaves like a run of
// free diagonals.
func buildPeq(alphabetSize int, qSyms []uint8, maxBlocks int) [][]uint64 {
	peq := make([][]uint64, alphabetSize)
	for s := range peq {
		peq[s] = make([]uint64, maxBlocks)
		for b := 0; b < maxBlocks; b++ {
			var w uint64
			for r := (b+1)*wordSize - 1; r >= b*wordSize; r-- {
				w <<= 1
				if r >= len(qSyms) || qSyms[r] == uint8(s) {
					w |= 1
				}
			}
			peq[s][b] = w
		}
	}
	return peq
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
