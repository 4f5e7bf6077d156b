package domain

import (
	m "aledit.dev/pkg/aledit/internal/model"
)

// buildAlphabet maps the raw bytes of both sequences to dense symbol-class
// ids and returns the transformed sequences plus the class count.
//
// Equality pairs induce an equivalence relation over the byte domain, so the
// mapping is computed with a union-find resolved once up front: declared
// pairs collapse into one class and transitive chains (A≡B, B≡C) come out
// as a single class even when the linking byte never appears in either
// sequence. Bytes absent from both sequences get no class.
func buildAlphabet(query, target []byte, pairs []m.EqualityPair) ([]uint8, []uint8, int) {
	var parent [256]int16
	for i := range parent {
		parent[i] = int16(i)
	}

	find := func(x int16) int16 {
		for parent[x] != x {
			parent[x] = parent[parent[x]] // path halving
			x = parent[x]
		}
		return x
	}

	for _, p := range pairs {
		a, b := find(int16(p.First)), find(int16(p.Second))
		if a != b {
			parent[b] = a
		}
	}

	var classOf [256]int16
	for i := range classOf {
		classOf[i] = -1
	}

	size := 0
	transform := func(seq []byte) []uint8 {
		out := make([]uint8, len(seq))
		for i, c := range seq {
			root := find(int16(c))
			if classOf[root] < 0 {
				classOf[root] = int16(size)
				size++
			}
			out[i] = uint8(classOf[root])
		}
		return out
	}

	q := transform(query)
	t := transform(target)

	return q, t, size
}
