package engine

import "github.com/tjamescouch/agentchat-chess/internal/board"

// Engine bundles the searcher with cumulative statistics for the host
// loop and the persistence layer.
type Engine struct {
	searcher *Searcher

	searches      uint64
	nodesSearched uint64
	perftRuns     uint64
	perftNodes    uint64
}

// NewEngine creates an engine.
func NewEngine() *Engine {
	return &Engine{searcher: NewSearcher()}
}

// Search runs a fixed-depth search and returns the best move with its
// score in centipawns.
func (e *Engine) Search(pos *board.Position, depth int) (board.Move, int) {
	move, score := e.searcher.Search(pos, depth)
	e.searches++
	e.nodesSearched += e.searcher.Nodes()
	return move, score
}

// Evaluate returns the static evaluation of the position.
func (e *Engine) Evaluate(pos *board.Position) int {
	return Evaluate(pos)
}

// Perft counts leaf nodes at the given depth; the standard move
// generation correctness check. Depth 1 short-circuits to the legal
// move count.
func (e *Engine) Perft(pos *board.Position, depth int) uint64 {
	nodes := perft(pos, depth)
	e.perftRuns++
	e.perftNodes += nodes
	return nodes
}

func perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		pos.MakeMove(moves.Get(i))
		nodes += perft(pos, depth-1)
		pos.UnmakeMove()
	}

	return nodes
}

// Searches returns the number of searches run.
func (e *Engine) Searches() uint64 {
	return e.searches
}

// NodesSearched returns the cumulative node count across searches.
func (e *Engine) NodesSearched() uint64 {
	return e.nodesSearched
}

// PerftRuns returns the number of perft invocations.
func (e *Engine) PerftRuns() uint64 {
	return e.perftRuns
}

// PerftNodes returns the cumulative perft leaf count.
func (e *Engine) PerftNodes() uint64 {
	return e.perftNodes
}
