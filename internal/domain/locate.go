package domain

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	m "aledit.dev/pkg/aledit/internal/model"
)

// findStartLocations recovers, for every end position, where the optimal
// alignment begins. Global and prefix alignments are anchored at the
// target's start. For infix mode each end position gets its own search:
// aligning the reversed query against the reversed target prefix turns the
// start position into an end position of a prefix alignment, found with the
// same engine bounded by the known distance. Ends are independent, so they
// run concurrently.
func findStartLocations(ctx context.Context, qSyms, tSyms []uint8, alphabetSize int, mode m.Mode, distance int, ends []int) ([]int, error) {
	starts := make([]int, len(ends))

	if mode != m.ModeInfix {
		return starts, nil
	}

	rq := reversed(qSyms)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, end := range ends {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rt := reversed(tSyms[:end+1])
			rs := newSearchState(rq, rt, alphabetSize)
			d, positions := rs.findDistance(m.ModePrefix, distance)
			if d != distance || len(positions) == 0 {
				return fmt.Errorf("no alignment of cost %d ends at target position %d", distance, end)
			}

			// The furthest reversed end is the smallest start, so ties on
			// cost resolve to the longest aligned span.
			starts[i] = end - positions[len(positions)-1]
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return starts, nil
}

func reversed(s []uint8) []uint8 {
	r := make([]uint8, len(s))
	for i, v := range s {
		r[len(s)-1-i] = v
	}
	return r
}
