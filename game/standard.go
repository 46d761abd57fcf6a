package game

type StandardRules struct {
	PiecesPerPlayer int
	FirstShrink     int
	SecondShrink    int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		PiecesPerPlayer: 12,
		FirstShrink:     128,
		SecondShrink:    192,
	}
}

func (sr *StandardRules) PlacementTurns() int {
	return 2 * sr.PiecesPerPlayer
}

func (sr *StandardRules) PlacementRows(side Side) (int, int) {
	if side == White {
		return 0, Size - 3
	}
	return 2, Size - 1
}

func (sr *StandardRules) ShrinkAfter() []int {
	return []int{sr.FirstShrink, sr.SecondShrink}
}

func (sr *StandardRules) IsOver(white, black int) bool {
	return white < 2 || black < 2
}

// MassacreRules is the single-player puzzle: the board starts in the
// movement phase, never shrinks, and ends once either side has no pieces.
type MassacreRules struct{}

func NewMassacreRules() *MassacreRules {
	return &MassacreRules{}
}

func (MassacreRules) PlacementTurns() int           { return 0 }
func (MassacreRules) PlacementRows(Side) (int, int) { return 0, Size - 1 }
func (MassacreRules) ShrinkAfter() []int            { return nil }
func (MassacreRules) IsOver(white, black int) bool  { return white == 0 || black == 0 }
