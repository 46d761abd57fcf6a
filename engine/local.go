package engine

import (
	"time"
	"wyb/agent"
	"wyb/experiments/metrics"
	"wyb/game"
	"wyb/meta"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ErrIllegalMove means an agent played a move its referee does not allow.
var ErrIllegalMove = errors.New("illegal move")

type Option func(l *Local)

// WithMaxTurns stops a game that is not finished after turns turns. It is
// then recorded as a draw.
func WithMaxTurns(turns int) Option {
	return func(l *Local) {
		if turns > 0 {
			l.maxTurns = turns
		}
	}
}

// WithBoard starts the game from board instead of an empty standard board.
// Both agents must start from the same position.
func WithBoard(board *game.Board) Option {
	return func(l *Local) {
		if board != nil {
			l.board = board
		}
	}
}

// Local referees a game between two in-process agents. It keeps its own
// board, checks every move against it and relays each move to the other
// agent as an action.
type Local struct {
	board    *game.Board
	agents   [2]agent.Agent // Indexed by game.Side
	maxTurns int
}

func NewLocal(white, black agent.Agent, options ...Option) *Local {
	if white == nil || black == nil {
		panic("need an agent for each side")
	}
	l := &Local{ // Default values
		board:    game.NewBoard(nil),
		agents:   [2]agent.Agent{game.White: white, game.Black: black},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *Local) Board() *game.Board {
	return l.board
}

// Run executes the entire game loop until the game is finished or the turn
// limit is reached. An illegal move or a desynchronized agent aborts the game.
func (l *Local) Run() (Result, error) {
	start := time.Now()
	result := Result{GameMetric: metrics.GameMetric{
		StartingPlayer: l.board.Turn(),
		StartTime:      start,
	}}

	log.Info().Msgf("%s is starting", l.board.Turn())

	for l.board.Phase() != game.Finished && result.Turns < l.maxTurns {
		side := l.board.Turn()
		mover, other := l.agents[side], l.agents[side.Opponent()]

		move, err := l.referee(side, mover)
		if err != nil {
			return result, err
		}
		l.board = l.board.Play(move).(*game.Board)
		result.Turns++
		result.MoveMetrics = append(result.MoveMetrics, metrics.MoveMetric{
			Step:         result.Turns,
			Player:       side,
			SearchMetric: mover.LastMetric(),
		})

		if err := other.Update(move.Action()); err != nil {
			return result, errors.WithMessagef(err, "relaying turn %d to %s", result.Turns, side.Opponent())
		}
	}

	winner, ok := l.board.Winner()
	result.Winner = winner
	result.Draw = !ok
	if l.board.Phase() != game.Finished {
		log.Info().Msgf("stopped after %d turns (no winner yet)", result.Turns)
	} else {
		log.Info().Msgf("game ended after %d turns with winner: %s", result.Turns, result.Outcome())
	}

	result.GameMetric.Winner = result.Outcome()
	result.GameMetric.EndTime = time.Now()
	result.GameMetric.Duration = result.GameMetric.EndTime.Sub(start)
	result.GameMetric.TotalMoves = result.Turns
	return result, nil
}

// referee asks side for its move and returns the referee's own version of it.
// An agent may only forfeit when it has no legal move.
func (l *Local) referee(side game.Side, mover agent.Agent) (game.Delta, error) {
	legal := l.board.LegalMoves(side)
	move, ok := mover.ChooseMove()
	if !ok {
		if len(legal) > 0 {
			return game.Delta{}, errors.Wrapf(ErrIllegalMove, "%s forfeited with %d legal moves in round %d", side, len(legal), l.board.Round())
		}
		log.Info().Msgf("%s has no legal move and forfeits round %d", side, l.board.Round())
		return game.ForfeitMove(side), nil
	}
	for _, m := range legal {
		if m.Equal(move) {
			return m, nil
		}
	}
	return game.Delta{}, errors.Wrapf(ErrIllegalMove, "%s played %v in round %d", side, move, l.board.Round())
}
