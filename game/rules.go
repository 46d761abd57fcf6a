package game

type Rules interface {
	// PlacementTurns is the number of turns (both sides) spent placing pieces.
	PlacementTurns() int
	// PlacementRows returns the inclusive rows side may place pieces on.
	PlacementRows(side Side) (minY, maxY int)
	// ShrinkAfter returns the movement-phase turn counts after which the
	// board loses its outer ring.
	ShrinkAfter() []int
	// IsOver decides whether the movement phase ended given the piece counts.
	IsOver(white, black int) bool
}
