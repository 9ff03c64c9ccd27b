// Package tunnels plans the cheapest network of tunnels that links every dig
// site in a backyard grid: a minimum spanning tree over the sites, with tunnel
// cost as the edge weight.
//
// What's inside
//
//	pq/            — generic binary min-heap (bulk build, insert, extract-min)
//	disjointset/   — union-find forest with path compression and union by size
//	prim_kruskal/  — Edge model, Kruskal (default) and Prim MST drivers
//	gridgraph/     — (row, col) ⇄ linear index, dense vertex ids for used cells
//	backyard/      — dig-site file parser and tunnel plan writer
//	cmd/backyarddig — command line entry point
//
// Quick ASCII example:
//
//	(0,0)──1──(0,1)
//	  │ ╲       │
//	 10  4      2
//	  │    ╲    │
//	(2,2)──3──(1,1)
//
// The plan keeps the 1, 2 and 3 tunnels for a total cost of 6.
//
// Every structure is single-owner and synchronous; build a fresh queue and
// forest per computation when running plans concurrently.
//
//	go install github.com/katalvlaran/tunnels/cmd/backyarddig@latest
package tunnels
