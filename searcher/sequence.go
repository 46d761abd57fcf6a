package searcher

import "wyb/game"

// Sequencer searches a single side's moves only, as in the massacre puzzle
// where the opponent never moves. Lines of play are compared as whole rating
// sequences with CompareRatings rather than as single scores.
type Sequencer struct {
	search
}

func NewSequencer(evaluate game.Evaluate, options ...Option) *Sequencer {
	return &Sequencer{search: newSearch(evaluate, options)}
}

// BestMove returns side's best move from pos looking depth moves ahead,
// along with the ratings of the line that justified it. It returns false if
// side has no legal move. Positions in recent are never worth revisiting.
func (s *Sequencer) BestMove(pos game.Position, side game.Side, depth int, recent Recent) (game.Delta, Ratings, bool) {
	moves := pos.LegalMoves(side)
	if len(moves) == 0 {
		return game.Delta{}, nil, false
	}

	s.metrics.AddNode()
	s.shuffle(moves)

	best := moves[0]
	bestRatings := s.Rate(pos.Play(best), side, depth-1, recent)
	for _, move := range moves[1:] {
		ratings := s.Rate(pos.Play(move), side, depth-1, recent)
		// Ties keep the earlier move, which is random after the shuffle
		if CompareRatings(ratings, bestRatings) > 0 {
			best, bestRatings = move, ratings
		}
	}
	return best, bestRatings, true
}

// Rate returns the ratings of the best line from pos, at most depth+1 long.
// The last element is pos's own rating.
func (s *Sequencer) Rate(pos game.Position, side game.Side, depth int, recent Recent) Ratings {
	if recent != nil && recent.Contains(pos.String()) {
		return Ratings{RepeatRating}
	}

	s.metrics.AddLeaf()
	rating := s.evaluate(pos, side)
	if depth <= 0 || pos.Phase() == game.Finished {
		return Ratings{rating}
	}

	_, best, ok := s.BestMove(pos, side, depth, recent)
	if !ok { // Stuck: nothing deeper to compare
		return Ratings{rating}
	}
	return append(best, rating)
}
