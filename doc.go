// Package stepviz turns classic algorithms into frame-by-frame animations.
//
// Every algorithm is a step generator: a function that takes its input and
// returns an iter.Seq of immutable snapshots, one per meaningful operation.
// A consumer ranges over the sequence (or pulls it with step.Cursor) and
// draws each snapshot; breaking out of the loop abandons the run at once.
//
// What is inside?
//
//	sorting/     - eleven sorts: bubble, selection, insertion, merge, quick,
//	               heap, shell, cocktail, counting, radix, bucket
//	search/      - linear, binary, jump, interpolation, exponential, ternary
//	pathfind/    - BFS, DFS, Dijkstra and A* on a 2D maze, plus maze builders
//	graphsearch/ - BFS, DFS and Dijkstra on a weighted, positioned graph
//	step/        - Cursor and helpers over any generator
//	player/      - paced playback with cancellation and Prometheus metrics
//	race/        - concurrent sort comparison on one input
//	catalog/     - names, descriptions and complexities of every algorithm
//	cmd/stepviz  - terminal player and HTTP/NDJSON server
//
// Quick example:
//
//	for s := range sorting.Bubble([]int{3, 1, 2}) {
//		fmt.Println(s.Array, s.Comparing, s.Swapped, s.Sorted)
//	}
//
// Generators never mutate their input and never share memory between
// frames, so a snapshot may be kept, marshalled or sent to another
// goroutine freely.
//
//	go install github.com/katalvlaran/stepviz/cmd/stepviz@latest
package stepviz
