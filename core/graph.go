package core

// DenseGraph is a simple undirected graph on vertices 1..n, stored as a
// dense n×n 0/1 byte matrix in row-major order. The diagonal is zero and
// the matrix is kept symmetric by construction.
//
// The zero value is not usable; obtain instances from NewDenseGraph or
// FromMatrix.
type DenseGraph struct {
	n    int
	bits []byte // row-major; bits[(u-1)*n+(v-1)] is 1 iff u~v
}

// NewDenseGraph returns an edgeless graph of order n.
// Returns ErrBadOrder if n < 1.
// Time: O(n²) for the zeroed matrix; Memory: O(n²).
func NewDenseGraph(n int) (*DenseGraph, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}

	return &DenseGraph{n: n, bits: make([]byte, n*n)}, nil
}

// FromMatrix builds a graph from an n×n 0/1 matrix given as rows.
// Shape and entry values are validated (ErrBadShape, ErrBadEntry);
// symmetry and a zero diagonal are the producer's contract and are
// taken on trust, as the wire protocol demands.
// Time: O(n²).
func FromMatrix(rows [][]byte) (*DenseGraph, error) {
	n := len(rows)
	if n < 1 {
		return nil, ErrBadShape
	}
	g := &DenseGraph{n: n, bits: make([]byte, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, ErrBadShape
		}
		for j, e := range row {
			if e != 0 && e != 1 {
				return nil, ErrBadEntry
			}
			g.bits[i*n+j] = e
		}
	}

	return g, nil
}

// Order returns n, the number of vertices.
func (g *DenseGraph) Order() int { return g.n }

// SetEdge records the undirected edge {u, v}, writing both triangles.
// Returns ErrVertexRange if either endpoint is outside 1..n and
// ErrSelfLoop if u == v. Time: O(1).
func (g *DenseGraph) SetEdge(u, v int) error {
	if u < 1 || u > g.n || v < 1 || v > g.n {
		return ErrVertexRange
	}
	if u == v {
		return ErrSelfLoop
	}
	g.bits[(u-1)*g.n+(v-1)] = 1
	g.bits[(v-1)*g.n+(u-1)] = 1

	return nil
}

// Adjacent reports whether u and v are joined by an edge. Ids outside
// 1..n are the caller's error; Adjacent does not re-validate them on
// the hot path. Time: O(1).
func (g *DenseGraph) Adjacent(u, v int) bool {
	return g.bits[(u-1)*g.n+(v-1)] != 0
}

// Row returns the neighbourhood row of v as a read-only view: entry c
// is non-zero iff v is adjacent to vertex c+1. Callers scanning a set
// of m candidates pay O(m). The slice aliases the store and must not
// be written.
func (g *DenseGraph) Row(v int) []byte {
	return g.bits[(v-1)*g.n : v*g.n : v*g.n]
}

// Degree returns the number of neighbours of v. Time: O(n).
func (g *DenseGraph) Degree(v int) int {
	deg := 0
	for _, e := range g.Row(v) {
		if e != 0 {
			deg++
		}
	}

	return deg
}
