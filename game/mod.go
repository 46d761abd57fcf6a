package game

// Side identifies one of the two players. White is the canonical side: every
// rating is computed from White's point of view and negated for Black.
type Side int

const (
	White Side = iota
	Black
)

func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// Phase of the game. A position's phase never decreases.
type Phase int

const (
	Placement Phase = iota
	Movement
	Finished
)

func (p Phase) String() string {
	switch p {
	case Placement:
		return "placement"
	case Movement:
		return "movement"
	default:
		return "finished"
	}
}

// Position should be immutable - Play always returns a new Position and
// leaves the receiver untouched.
type Position interface {
	// LegalMoves returns every rule-legal move for side. May be empty.
	LegalMoves(side Side) []Delta
	Play(move Delta) Position
	// PlayerSquares returns the squares occupied by side, oldest piece first.
	PlayerSquares(side Side) []Square
	// Mobility counts the legal moves of side without materializing them.
	Mobility(side Side) int
	Phase() Phase
	Round() int
	// String is the canonical form, used only to detect repeated positions.
	String() string
}

// Evaluate rates a position from side's point of view.
type Evaluate func(pos Position, side Side) float64
