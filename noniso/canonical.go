package noniso

import (
	"strconv"
	"strings"

	"github.com/unfoldlab/rotunfold/polyhedron"
	"github.com/unfoldlab/rotunfold/record"
)

// Sequence reduces faces to the tagged pair sequence
// [gon₁, step₁, gon₂, step₂, …]: for each face its gon followed by the
// clockwise count from the entry edge to the exit edge within the face's
// edge cycle. The first face carries step 0 (it has no entry edge) and
// the last face step -1 (it has no exit edge).
func Sequence(p *polyhedron.Polyhedron, faces []record.UnfoldedFace) []int {
	k := len(faces)
	seq := make([]int, 0, 2*k)

	for j := 0; j < k; j++ {
		f := faces[j]
		seq = append(seq, f.Gon)

		switch j {
		case 0:
			seq = append(seq, 0)
			continue
		case k - 1:
			seq = append(seq, -1)
			continue
		}

		edges := p.Edges[f.FaceID]
		gon := f.Gon
		pos := p.EdgeIndex(f.FaceID, f.EdgeID)
		if pos < 0 {
			pos = 0
		}

		// Count clockwise steps from the entry edge to the exit edge.
		next := faces[j+1].EdgeID
		cnt := 1
		for step := 1; step <= gon; step++ {
			idx := ((pos-step)%gon + gon) % gon
			if edges[idx] == next {
				break
			}
			cnt++
		}
		seq = append(seq, cnt)
	}

	return seq
}

// Flip mirrors the sequence: a clockwise step c within a gon-g face
// becomes g-c on the mirrored polyhedron. Endpoint tags are preserved.
func Flip(seq []int) []int {
	out := make([]int, len(seq))
	n := len(seq)
	for i := 0; i < n; i += 2 {
		g, c := seq[i], seq[i+1]
		out[i] = g
		switch i {
		case 0:
			out[i+1] = 0
		case n - 2:
			out[i+1] = -1
		default:
			out[i+1] = g - c
		}
	}

	return out
}

// Reverse walks the path from its last face to its first. An interior
// step c seen forwards is traversed as g-c backwards; the endpoint tags
// swap roles.
func Reverse(seq []int) []int {
	k := len(seq) / 2
	out := make([]int, 0, len(seq))
	for i := k - 1; i >= 0; i-- {
		g, c := seq[2*i], seq[2*i+1]
		out = append(out, g)
		switch i {
		case k - 1:
			out = append(out, 0)
		case 0:
			out = append(out, -1)
		default:
			out = append(out, g-c)
		}
	}

	return out
}

// CanonicalKey returns the lexicographically smallest of the four
// symmetry variants of seq: identity, flip, reverse, and flip+reverse.
func CanonicalKey(seq []int) []int {
	best := seq
	for _, cand := range [][]int{Flip(seq), Reverse(seq), Reverse(Flip(seq))} {
		if Compare(cand, best) < 0 {
			best = cand
		}
	}

	return best
}

// Compare lexicographically compares two equal-length int slices.
// Returns -1 if a < b, 0 if equal, +1 if a > b.
func Compare(a, b []int) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}

	return 0
}

// Signature joins a canonical key into a single string usable as a map key.
func Signature(key []int) string {
	var sb strings.Builder
	for i, v := range key {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}
