package agent

import "wyb/game"

// stubPosition is an explicit game tree. Move i places on (i, 0) and leads to
// children[i]; killed[i] lists the captures it causes.
type stubPosition struct {
	name     string
	phase    game.Phase
	round    int
	white    []game.Square
	black    []game.Square
	children []*stubPosition
	killed   [][]game.Pos
}

func (s *stubPosition) LegalMoves(side game.Side) []game.Delta {
	moves := make([]game.Delta, len(s.children))
	for i := range s.children {
		target := game.Pos{X: i}
		moves[i] = game.Delta{Kind: game.Place, Player: side, Target: target}
		if i < len(s.killed) {
			moves[i].Killed = s.killed[i]
		}
	}
	return moves
}

func (s *stubPosition) Play(move game.Delta) game.Position {
	if move.Kind == game.Forfeit {
		next := *s
		next.round++
		return &next
	}
	return s.children[move.Target.X]
}

func (s *stubPosition) PlayerSquares(side game.Side) []game.Square {
	if side == game.White {
		return s.white
	}
	return s.black
}

func (s *stubPosition) Mobility(side game.Side) int {
	return 0
}

func (s *stubPosition) Phase() game.Phase {
	return s.phase
}

func (s *stubPosition) Round() int {
	return s.round
}

func (s *stubPosition) String() string {
	return s.name
}

func pieces(side game.Side, n int) []game.Square {
	squares := make([]game.Square, n)
	for i := range squares {
		squares[i] = game.Square{Pos: game.Pos{X: 3, Y: 3}, Piece: game.Piece{ID: i, Owner: side}}
	}
	return squares
}

// leaf is a finished position rated by its piece counts alone.
func leaf(name string, white, black int) *stubPosition {
	return &stubPosition{name: name, phase: game.Finished, white: pieces(game.White, white), black: pieces(game.Black, black)}
}
