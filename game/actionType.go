package game

import "fmt"

// ActionType represents the type of action a player reports.
type ActionType int

const (
	PlaceActionType ActionType = iota
	MoveActionType
	ForfeitActionType
)

// Action represents an action reported across the referee boundary. It is
// decoded once into one of its three variants and never inspected by shape.
type Action struct {
	Type   ActionType
	Origin Pos // Only set for MoveActionType
	Target Pos // Unset for ForfeitActionType
}

func PlaceAction(target Pos) Action {
	return Action{Type: PlaceActionType, Target: target}
}

func MoveAction(origin, target Pos) Action {
	return Action{Type: MoveActionType, Origin: origin, Target: target}
}

func ForfeitAction() Action {
	return Action{Type: ForfeitActionType}
}

// Matches reports whether move realises the action.
func (a Action) Matches(move Delta) bool {
	switch a.Type {
	case PlaceActionType:
		return move.Kind == Place && move.Target == a.Target
	case MoveActionType:
		return move.Kind == Shift && move.Origin == a.Origin && move.Target == a.Target
	default:
		return move.Kind == Forfeit
	}
}

func (a Action) String() string {
	switch a.Type {
	case PlaceActionType:
		return fmt.Sprintf("%v", a.Target)
	case MoveActionType:
		return fmt.Sprintf("(%v, %v)", a.Origin, a.Target)
	default:
		return "forfeit"
	}
}
