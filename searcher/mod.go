package searcher

import (
	"wyb/experiments/metrics"
	"wyb/game"
	"wyb/meta"

	"golang.org/x/exp/rand"
)

// Initial search window of a root call.
const AlphaStart = -9999.0
const BetaStart = 9999.0

// Maximizer is the side whose ratings the minimax scale is expressed in.
// The other side minimizes.
const Maximizer = game.White

type Option func(s *search)

// search holds what Minimax and Sequencer share: a read-only evaluator, the
// generator used to shuffle moves and a metrics collector.
type search struct {
	evaluate game.Evaluate
	rng      *rand.Rand
	metrics  metrics.Collector
}

func WithSeed(seed uint64) Option {
	return func(s *search) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares rng with the caller, so one seed drives every random
// choice of a player.
func WithRand(rng *rand.Rand) Option {
	return func(s *search) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(s *search) {
		s.metrics = metrics.NewCollector()
	}
}

func newSearch(evaluate game.Evaluate, options []Option) search {
	if evaluate == nil {
		panic("Must specify an evaluation function")
	}
	s := search{ // Default values
		evaluate: evaluate,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(meta.SEED))
	}
	return s
}

func (s *search) Metrics() metrics.Collector {
	return s.metrics
}

// shuffle randomizes move order in place, so that pruning is not biased by
// the order the rules generate moves in.
func (s *search) shuffle(moves []game.Delta) {
	s.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
}
