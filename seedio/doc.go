// Package seedio binds the clique engine to its numeric text protocol.
//
// The input stream is whitespace-separated integers, in order: the two
// engine flags (first-only, maximal-only, each 0 or 1), the graph
// order n and weight dimension d, the n×n 0/1 adjacency matrix in
// row-major order, the n weight vectors of length d, and then any
// number of seeds. A seed is |S| followed by S, |A| followed by A,
// then the d entries of the target vector; vertex ids are 1-based.
//
// Run processes the seeds whose 1-based stream index falls inside a
// window [start, end] (end −1 = unbounded), which is how large jobs
// parallelise: disjoint windows, one process each. Seeds outside the
// window are still read, so every process sees the same indexing.
// Solutions stream out as a single bracketed array; statistics come
// back in the Result.
//
// End of input at a seed boundary ends the run cleanly; end of input
// inside a seed is ErrTruncated.
package seedio
