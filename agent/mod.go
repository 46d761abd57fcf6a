package agent

import (
	"wyb/experiments/metrics"
	"wyb/game"

	"github.com/pkg/errors"
)

type Agent interface {
	// ChooseMove picks and plays this agent's next move. It returns false when
	// there is no legal move, in which case the turn is forfeited.
	ChooseMove() (game.Delta, bool)
	// Update plays the opponent's reported action on the agent's position.
	Update(action game.Action) error
	// LastMetric returns the metrics of the latest decision, if collected.
	LastMetric() metrics.SearchMetric
}

// ErrDesync means the reported opponent action is not legal in the agent's
// position: the two views of the game have diverged and cannot be trusted.
var ErrDesync = errors.New("opponent action matches no legal move")

// ErrStuck means the searching side has no legal move left.
var ErrStuck = errors.New("no legal move left")

// ErrStepLimit means the game did not finish within the allowed moves.
var ErrStepLimit = errors.New("step limit reached")
