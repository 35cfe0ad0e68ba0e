// Package tollway finds cheapest routes through weighted road networks where
// some roads charge a toll and a driver may carry coupons that waive tolls.
//
// What is inside?
//
//	A small, thread-safe graph store plus one best-first search engine that
//	powers four modes:
//		• BFS       fewest roads
//		• Dijkstra  lowest total weight
//		• AStar     lowest total weight, guided by a coordinate heuristic
//		• Tollway   lowest total weight when up to k tolls may be skipped
//
// Under the hood, everything is organized under these subpackages:
//
//	core/     Graph, Vertex, Edge, tolls and coordinate metrics
//	pq/       generic indexed min-heap with decrease-key
//	search/   BFS, Dijkstra, AStar and the coupon-aware Tollway search
//	matrix/   dense adjacency matrix export/import with a parallel toll matrix
//	builder/  deterministic synthetic networks (grid, path, random geometric)
//	spatial/  R-tree snapping of coordinates to the nearest vertex
//	metrics/  Prometheus observer for search statistics
//	cmd/      the tollway command
//
// Quick ASCII example:
//
//	        B
//	   1 $ / \ 1
//	      A   D          A–B carries a toll of 0.5 of its weight 1.
//	   1   \ / 1
//	        C
//
// With zero coupons A→B→D and A→C→D both cost 2. With one coupon the toll on
// A–B is waived and A→B→D costs 1.5.
//
//	go get github.com/katalvlaran/tollway
package tollway
