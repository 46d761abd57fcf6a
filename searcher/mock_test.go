package searcher

import (
	"fmt"
	"wyb/game"

	"golang.org/x/exp/rand"
)

// mockPosition is an explicit game tree. Move i leads to children[i].
type mockPosition struct {
	key      string
	finished bool
	rating   float64 // From White's point of view
	children []*mockPosition
}

func (m *mockPosition) LegalMoves(side game.Side) []game.Delta {
	if m.finished {
		return nil
	}
	moves := make([]game.Delta, len(m.children))
	for i := range m.children {
		moves[i] = game.Delta{Kind: game.Shift, Player: side, Target: game.Pos{X: i}}
	}
	return moves
}

func (m *mockPosition) Play(move game.Delta) game.Position {
	return m.children[move.Target.X]
}

func (m *mockPosition) PlayerSquares(side game.Side) []game.Square {
	return nil
}

func (m *mockPosition) Mobility(side game.Side) int {
	return len(m.children)
}

func (m *mockPosition) Phase() game.Phase {
	if m.finished {
		return game.Finished
	}
	return game.Movement
}

func (m *mockPosition) Round() int {
	return 0
}

func (m *mockPosition) String() string {
	return m.key
}

func mockEvaluate(pos game.Position, side game.Side) float64 {
	rating := pos.(*mockPosition).rating
	if side == game.Black {
		return -rating
	}
	return rating
}

// randomTree builds a tree of the given depth with up to branching children
// per node. Some inner nodes are finished or have no children at all.
func randomTree(rng *rand.Rand, key string, depth, branching int) *mockPosition {
	node := &mockPosition{key: key, rating: float64(rng.Intn(201) - 100)}
	if depth == 0 {
		return node
	}
	switch rng.Intn(10) {
	case 0:
		node.finished = true
		return node
	case 1:
		return node
	}
	for i := 0; i < 1+rng.Intn(branching); i++ {
		node.children = append(node.children, randomTree(rng, fmt.Sprintf("%s.%d", key, i), depth-1, branching))
	}
	return node
}

// scale multiplies every rating in the tree by factor.
func scale(node *mockPosition, factor float64) {
	node.rating *= factor
	for _, child := range node.children {
		scale(child, factor)
	}
}

// minimax is the unpruned reference search.
func minimax(pos *mockPosition, depth int, toMove game.Side) float64 {
	if depth == 0 || pos.finished || len(pos.children) == 0 {
		return pos.rating
	}
	best := minimax(pos.children[0], depth-1, toMove.Opponent())
	for _, child := range pos.children[1:] {
		v := minimax(child, depth-1, toMove.Opponent())
		if toMove == game.White {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	return best
}
