// Package builder generates deterministic road-network fixtures for tollway.
//
// Every generator is a Constructor run by BuildGraph (or Build). Vertices get
// planar coordinates; edge weights are derived from those coordinates, so the
// default Euclidean A* heuristic is admissible on every generated graph.
//
// Constructors:
//
//	Grid(rows, cols)            rows×cols lattice, IDs "r,c"
//	Path(n)                     straight road of n vertices
//	RandomGeometric(n, radius)  connected random geometric graph
//
// Options:
//
//	WithSeed / WithRand         RNG for every stochastic choice
//	WithSpacing                 coordinate scale
//	WithTollProbability         share of tolled edges
//	WithTollFraction            toll as a fraction of the edge weight
//	WithDetour                  weight stretch factor ≥ 1
//	WithIDScheme                vertex naming (Path, RandomGeometric)
//
// Same inputs, options and seed always produce the same graph, including
// vertex order, edge order, weights and tolls.
package builder
