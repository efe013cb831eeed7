package polyhedron

import "fmt"

// EdgeIndex returns the position of edge within Edges[face], or -1 when
// the edge does not belong to the face.
func (p *Polyhedron) EdgeIndex(face, edge int) int {
	for i, e := range p.Edges[face] {
		if e == edge {
			return i
		}
	}

	return -1
}

// AreNeighbors reports whether faces f and g share an edge on the
// polyhedron.
func (p *Polyhedron) AreNeighbors(f, g int) bool {
	for _, n := range p.Neighbors[f] {
		if n == g {
			return true
		}
	}

	return false
}

// Validate checks the structural invariants: every neighbor reference is
// in range, adjacency is reciprocal, and every edge id is shared by
// exactly two faces. A violation is fatal to the caller; search must not
// start on an inconsistent structure.
func (p *Polyhedron) Validate() error {
	if p.NumFaces == 0 {
		return ErrNoFaces
	}

	// 1. Per-face shape checks.
	for f := 0; f < p.NumFaces; f++ {
		gon := p.Gons[f]
		if gon < 3 || len(p.Edges[f]) != gon || len(p.Neighbors[f]) != gon {
			return fmt.Errorf("%w: face %d", ErrBadGon, f)
		}
	}

	// 2. Bounds and reciprocity: if f lists g across edge e, g must list
	//    f across the same e.
	for f := 0; f < p.NumFaces; f++ {
		for k, e := range p.Edges[f] {
			g := p.Neighbors[f][k]
			if g < 0 || g >= p.NumFaces || g == f {
				return fmt.Errorf("%w: face %d edge %d -> face %d", ErrFaceBounds, f, e, g)
			}
			j := p.EdgeIndex(g, e)
			if j < 0 || p.Neighbors[g][j] != f {
				return fmt.Errorf("%w: face %d edge %d face %d", ErrNotReciprocal, f, e, g)
			}
		}
	}

	// 3. Edge two-coverage: each edge id appears in exactly two cycles.
	count := make(map[int]int)
	for f := 0; f < p.NumFaces; f++ {
		for _, e := range p.Edges[f] {
			count[e]++
		}
	}
	for e, c := range count {
		if c != 2 {
			return fmt.Errorf("%w: edge %d appears %d times", ErrEdgeCoverage, e, c)
		}
	}

	return nil
}
