package agent

import (
	"wyb/game"
	"wyb/meta"
	"wyb/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type MassacreOption func(m *Massacre)

// Massacre drives one side alone until every opposing piece is captured. The
// opponent never moves, so the search compares whole lines of the side's own
// moves and avoids positions it occupied recently.
type Massacre struct {
	side     game.Side
	position game.Position
	depth    int
	maxSteps int
	seed     uint64
	history  *searcher.History
	sequence *searcher.Sequencer
}

func WithHistoryCapacity(capacity int) MassacreOption {
	return func(m *Massacre) {
		m.history = searcher.NewHistory(capacity)
	}
}

func WithMaxSteps(steps int) MassacreOption {
	return func(m *Massacre) {
		m.maxSteps = steps
	}
}

func WithMassacreSeed(seed uint64) MassacreOption {
	return func(m *Massacre) {
		m.seed = seed
	}
}

func NewMassacre(side game.Side, position game.Position, depth int, options ...MassacreOption) *Massacre {
	m := &Massacre{ // Default values
		side:     side,
		position: position,
		depth:    max(depth, 1),
		maxSteps: meta.MAX_TURNS,
		seed:     meta.SEED,
	}
	for _, option := range options {
		option(m)
	}
	if m.history == nil {
		m.history = searcher.NewHistory(meta.HISTORY_CAPACITY)
	}
	m.sequence = searcher.NewSequencer(game.EvaluateMassacre, searcher.WithSeed(m.seed))
	return m
}

func (m *Massacre) Position() game.Position {
	return m.position
}

func (m *Massacre) History() *searcher.History {
	return m.history
}

// Run plays moves until the game is finished and returns them in order. It
// fails with ErrStuck when the side has no legal move left and with
// ErrStepLimit when maxSteps moves were not enough.
func (m *Massacre) Run() ([]game.Delta, error) {
	var moves []game.Delta
	for m.position.Phase() != game.Finished {
		if m.maxSteps > 0 && len(moves) >= m.maxSteps {
			return moves, errors.Wrapf(ErrStepLimit, "%d moves played", len(moves))
		}

		move, ratings, ok := m.sequence.BestMove(m.position, m.side, m.depth, m.history)
		if !ok {
			return moves, errors.Wrapf(ErrStuck, "%s after %d moves", m.side, len(moves))
		}
		log.Debug().Msgf("%s plays %v %v", m.side, move, ratings)

		m.history.Add(m.position.String())
		m.position = m.position.Play(move)
		moves = append(moves, move)
	}
	log.Info().Msgf("%s cleared the board in %d moves", m.side, len(moves))
	return moves, nil
}
