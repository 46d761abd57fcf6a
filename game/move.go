package game

import (
	"fmt"
	"slices"
)

// MoveKind distinguishes the three ways a turn can be spent.
type MoveKind int

const (
	Place MoveKind = iota
	Shift
	Forfeit
)

// Delta describes one transition between positions, including every side
// effect the rules attach to it. Equal ignores Origin unless the move is a Shift.
type Delta struct {
	Kind   MoveKind
	Player Side
	Origin Pos // Only meaningful for Shift
	Target Pos
	// Squares whose pieces were captured at the end of the turn. Includes
	// Target when the mover walked into a capture.
	Killed []Pos
	// Squares removed by the deathzone.
	Eliminated []Pos
	// Squares that became corners because of the deathzone.
	NewCorners []Pos
}

// ForfeitMove is the delta of side passing its turn.
func ForfeitMove(side Side) Delta {
	return Delta{Kind: Forfeit, Player: side}
}

func (d Delta) Equal(other Delta) bool {
	if d.Kind != other.Kind || d.Player != other.Player || d.Target != other.Target {
		return false
	}
	if d.Kind == Shift && d.Origin != other.Origin {
		return false
	}
	return slices.Equal(d.Killed, other.Killed) &&
		slices.Equal(d.Eliminated, other.Eliminated) &&
		slices.Equal(d.NewCorners, other.NewCorners)
}

// Suicide reports whether the moving piece is itself captured.
func (d Delta) Suicide() bool {
	return d.Kind != Forfeit && slices.Contains(d.Killed, d.Target)
}

// Action returns the boundary form of the delta, as reported to an opponent.
func (d Delta) Action() Action {
	switch d.Kind {
	case Place:
		return PlaceAction(d.Target)
	case Shift:
		return MoveAction(d.Origin, d.Target)
	default:
		return ForfeitAction()
	}
}

func (d Delta) String() string {
	switch d.Kind {
	case Place:
		return fmt.Sprintf("%s places at %v, killed %v", d.Player, d.Target, d.Killed)
	case Shift:
		return fmt.Sprintf("%s moves %v to %v, killed %v", d.Player, d.Origin, d.Target, d.Killed)
	default:
		return fmt.Sprintf("%s forfeits", d.Player)
	}
}
