// Package topology exports a trained Mealy IOHMM's per-input transition
// structure for inspection and debugging: a weighted core.Graph view of
// A(.|x), a dense adjacency matrix over the same structure, and
// reachability queries built on bfs.BFS.
//
// None of this is consulted by Alphas, Betas, Probability, or Train — it
// exists purely so a caller can ask "which states can I reach from state i
// under input x?" or "what does this model's state graph look like?"
// without re-deriving it from the raw A(.|x) lookups by hand.
package topology
