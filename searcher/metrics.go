package searcher

import "time"

// SearchMetric captures how much work one FindMove call performed. Both
// engines are single-threaded and synchronous, so plain counters suffice;
// fields not relevant to an engine stay zero.
type SearchMetric struct {
	Duration    time.Duration
	Nodes       int // minimax: positions visited, leaves included
	Cutoffs     int // minimax: alpha-beta cuts taken
	Simulations int // mcts: completed iterations
	Expansions  int // mcts: tree nodes created
}
