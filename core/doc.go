// Package core provides the two read-mostly stores the clique engine
// searches over: a dense adjacency matrix for a simple undirected graph,
// and a table of non-negative integer weight vectors, one per vertex.
//
// Vertices are identified by the 1-based ids of the wire protocol, 1..n.
// Weight-vector coordinates are plain 0-based slice indices, 0..d-1.
//
// DenseGraph trades memory for speed: edge tests are O(1) and a row scan
// over m candidates is O(m), which is what the colouring and branching
// steps of the search lean on. WeightTable keeps, next to every weight
// vector, the ascending list of its non-zero coordinates, so sparse
// vectors are walked in O(support) rather than O(d).
//
// Both stores are built once and are read-only during a search; they are
// safe for concurrent readers.
package core
