package domain

import (
	"fmt"

	"aledit.dev/pkg/aledit/pkg/cigar"
)

const unreachable = 1 << 30

// tracePath reconstructs an explicit edit path for the target span
// [start, end] whose global distance to the query is already known. A plain
// banded dynamic-programming matrix is filled and walked back; the band
// radius is the known distance, since no cell further from the diagonal can
// lie on a path of that cost. Ties on the way back prefer a matching
// diagonal step, then consuming a query symbol, then a target symbol, and a
// mismatch only when nothing else reaches the cell's score.
func tracePath(qSyms, tSyms []uint8, start, end, distance int) ([]cigar.Op, error) {
	span := tSyms[start : end+1]
	rows, cols := len(qSyms), len(span)
	radius := distance

	dp := make([][]int32, rows+1)
	for i := range dp {
		dp[i] = make([]int32, cols+1)
		for j := range dp[i] {
			dp[i][j] = unreachable
		}
	}
	for j := 0; j <= min(cols, radius); j++ {
		dp[0][j] = int32(j)
	}
	for i := 0; i <= min(rows, radius); i++ {
		dp[i][0] = int32(i)
	}

	for i := 1; i <= rows; i++ {
		for j := max(1, i-radius); j <= min(cols, i+radius); j++ {
			v := dp[i-1][j-1]
			if qSyms[i-1] != span[j-1] {
				v++
			}
			if up := dp[i-1][j] + 1; up < v {
				v = up
			}
			if left := dp[i][j-1] + 1; left < v {
				v = left
			}
			dp[i][j] = v
		}
	}

	if dp[rows][cols] != int32(distance) {
		return nil, fmt.Errorf("span %d..%d has distance %d, want %d", start, end, dp[rows][cols], distance)
	}

	ops := make([]cigar.Op, 0, rows+cols)
	i, j := rows, cols
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && qSyms[i-1] == span[j-1] && dp[i][j] == dp[i-1][j-1]:
			ops = append(ops, cigar.OpMatch)
			i--
			j--
		case i > 0 && dp[i][j] == dp[i-1][j]+1:
			ops = append(ops, cigar.OpInsertTarget)
			i--
		case j > 0 && dp[i][j] == dp[i][j-1]+1:
			ops = append(ops, cigar.OpInsertQuery)
			j--
		case i > 0 && j > 0 && qSyms[i-1] != span[j-1] && dp[i][j] == dp[i-1][j-1]+1:
			ops = append(ops, cigar.OpMismatch)
			i--
			j--
		default:
			return nil, fmt.Errorf("no predecessor for cell (%d,%d)", i, j)
		}
	}

	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	return ops, nil
}
