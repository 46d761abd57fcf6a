package searcher

import (
	"math"
	"wyb/game"
)

type Minimax struct {
	search
}

// NewMinimax returns a depth-limited alpha-beta searcher rating leaves with
// evaluate.
func NewMinimax(evaluate game.Evaluate, options ...Option) *Minimax {
	return &Minimax{search: newSearch(evaluate, options)}
}

// AlphaBeta returns the minimax rating of pos searched depth plies deep with
// toMove acting first. Ratings are always from the Maximizer's point of view:
// the Maximizer's plies raise alpha, the other side's plies lower beta, and
// the side to move flips on every ply.
//
// A position is a leaf when depth runs out, the game is finished or toMove
// has no legal move. The window only prunes; ratings outside it are returned
// unclamped.
func (m *Minimax) AlphaBeta(pos game.Position, depth int, alpha, beta float64, toMove game.Side) float64 {
	if depth <= 0 || pos.Phase() == game.Finished {
		return m.leaf(pos)
	}
	moves := pos.LegalMoves(toMove)
	if len(moves) == 0 {
		return m.leaf(pos)
	}

	m.metrics.AddNode()
	m.shuffle(moves)

	if toMove == Maximizer {
		v := math.Inf(-1)
		for i, move := range moves {
			v = max(v, m.AlphaBeta(pos.Play(move), depth-1, alpha, beta, toMove.Opponent()))
			alpha = max(alpha, v)
			if beta <= alpha {
				m.cutoff(i, len(moves))
				break
			}
		}
		return v
	}

	v := math.Inf(1)
	for i, move := range moves {
		v = min(v, m.AlphaBeta(pos.Play(move), depth-1, alpha, beta, toMove.Opponent()))
		beta = min(beta, v)
		if beta <= alpha {
			m.cutoff(i, len(moves))
			break
		}
	}
	return v
}

func (m *Minimax) leaf(pos game.Position) float64 {
	m.metrics.AddLeaf()
	return m.evaluate(pos, Maximizer)
}

func (m *Minimax) cutoff(index, total int) {
	if index < total-1 { // Only count cuts that skipped siblings
		m.metrics.AddCutoff()
	}
}
