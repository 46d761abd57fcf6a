package game

import "math"

// RatingPrecision is the number of decimal places ratings are rounded to, so
// that independently computed ratings compare equal despite float noise.
const RatingPrecision = 10

// Massacre weights. Own pieces weigh more than enemy pieces so trading a
// piece for a piece is never attractive.
const (
	MassacreOwnWeight      = 1.1
	MassacreOpponentWeight = 1.0
	MassacreDistanceWeight = 0.001
)

// Evaluate rates pos with the weight vector w. The rating is computed for
// White; Black's rating is its negation.
func (w Weights) Evaluate(pos Position, side Side) float64 {
	rating := w.rate(pos)
	if side == Black {
		return -rating
	}
	return rating
}

func (w Weights) rate(pos Position) float64 {
	own := pos.PlayerSquares(White)
	opponent := pos.PlayerSquares(Black)

	score := w[OwnPieces]*float64(len(own)) +
		w[OpponentPieces]*float64(len(opponent)) +
		w[OwnMobility]*float64(pos.Mobility(White)) +
		w[OpponentMobility]*float64(pos.Mobility(Black)) +
		w[OwnCohesion]*spread(own) +
		w[OpponentCohesion]*spread(opponent) +
		w[OwnCentrality]*eccentricity(own) +
		w[OpponentCentrality]*eccentricity(opponent)

	return Round(score)
}

// EvaluateMassacre rates pos for the side trying to remove every enemy
// piece. The distance term pulls own pieces towards a single enemy anchor,
// the oldest enemy piece, so that separated pieces still find their target.
func EvaluateMassacre(pos Position, side Side) float64 {
	own := pos.PlayerSquares(side)
	opponent := pos.PlayerSquares(side.Opponent())

	distance := 0
	if len(opponent) > 0 {
		anchor := opponent[0].Pos
		for _, square := range own {
			distance += square.Pos.Manhattan(anchor)
		}
	}

	return Round(MassacreOwnWeight*float64(len(own)) -
		MassacreOpponentWeight*float64(len(opponent)) -
		MassacreDistanceWeight*float64(distance))
}

// Round rounds a rating to RatingPrecision decimal places.
func Round(rating float64) float64 {
	scale := math.Pow10(RatingPrecision)
	return math.Round(rating*scale) / scale
}

// spread is the damped average pairwise Manhattan distance between squares.
// The +1 keeps a lone piece (or none) defined and shrinks the term for small
// groups.
func spread(squares []Square) float64 {
	total := 0
	for i, a := range squares {
		for _, b := range squares[i+1:] {
			total += a.Pos.Manhattan(b.Pos)
		}
	}
	return float64(total) / float64(len(squares)+1)
}

// eccentricity is the damped average Manhattan distance from the centre.
func eccentricity(squares []Square) float64 {
	const centre = float64(Size-1) / 2
	total := 0.0
	for _, s := range squares {
		total += math.Abs(centre-float64(s.Pos.X)) + math.Abs(centre-float64(s.Pos.Y))
	}
	return total / float64(len(squares)+1)
}
