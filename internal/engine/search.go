package engine

import "github.com/tjamescouch/agentchat-chess/internal/board"

// Infinity bounds the alpha-beta window. A forced mate found at a node
// scores -Infinity+1 so it still loses to every non-mate line after
// negation stacking.
const Infinity = 100000

// Searcher walks the game tree with negamax and alpha-beta pruning. It
// borrows the caller's position for the duration of a search and
// returns it byte-identical, with the undo stack at its original
// height.
type Searcher struct {
	pos   *board.Position
	nodes uint64
}

// NewSearcher creates a searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Nodes returns the number of nodes visited by the last search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Search returns the best move and its score at the given depth.
// Calling it on a position with no legal moves is a caller bug; the
// host loop checks for mate and stalemate first.
func (s *Searcher) Search(pos *board.Position, depth int) (board.Move, int) {
	s.pos = pos
	s.nodes = 0

	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		panic("Search: no legal moves")
	}

	bestMove := board.NoMove
	bestScore := -Infinity

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		s.pos.MakeMove(m)
		score := -s.negamax(depth-1, -Infinity, Infinity)
		s.pos.UnmakeMove()

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
	}

	return bestMove, bestScore
}

// negamax evaluates the subtree below the current position with a
// fail-hard alpha-beta window.
func (s *Searcher) negamax(depth, alpha, beta int) int {
	s.nodes++

	if depth == 0 {
		return Evaluate(s.pos)
	}

	moves := s.pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		if s.pos.IsInCheck(s.pos.SideToMove) {
			return -Infinity + 1
		}
		return 0
	}

	for i := 0; i < moves.Len(); i++ {
		s.pos.MakeMove(moves.Get(i))
		score := -s.negamax(depth-1, -beta, -alpha)
		s.pos.UnmakeMove()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
