package agent

import (
	"slices"
	"wyb/clock"
	"wyb/experiments/metrics"
	"wyb/game"
	"wyb/meta"
	"wyb/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

type Option func(p *Player)

// Player plays one side of a game with alpha-beta search. It owns its view of
// the game: a single position reference replaced after every move, its own
// or the opponent's.
type Player struct {
	side          game.Side
	position      game.Position
	weights       game.Weights
	timer         clock.Timer
	budget        Budget
	depth         int // Fixed search depth; 0 derives it from the budget
	filterSuicide bool
	seed          uint64
	withMetrics   bool
	rng           *rand.Rand
	minimax       *searcher.Minimax
	lastMetric    metrics.SearchMetric
}

type candidate struct {
	move  game.Delta
	score float64
}

func WithWeights(weights game.Weights) Option {
	return func(p *Player) {
		p.weights = weights
	}
}

func WithTimer(timer clock.Timer) Option {
	return func(p *Player) {
		if timer != nil {
			p.timer = timer
		}
	}
}

func WithBudget(budget Budget) Option {
	return func(p *Player) {
		p.budget = budget
	}
}

// WithFixedDepth always searches depth plies instead of deriving the depth
// from the remaining time. Panic mode still applies.
func WithFixedDepth(depth int) Option {
	return func(p *Player) {
		if depth > 0 {
			p.depth = depth
		}
	}
}

// WithSuicideFilter drops placements that get the placed piece captured,
// once the first round is over, even when they rate as well as any other.
func WithSuicideFilter() Option {
	return func(p *Player) {
		p.filterSuicide = true
	}
}

func WithSeed(seed uint64) Option {
	return func(p *Player) {
		p.seed = seed
	}
}

func WithMetrics() Option {
	return func(p *Player) {
		p.withMetrics = true
	}
}

// NewPlayer returns a time-budgeted player for side starting from position.
func NewPlayer(side game.Side, position game.Position, options ...Option) *Player {
	p := &Player{ // Default values
		side:     side,
		position: position,
		weights:  game.DefaultWeights,
		timer:    clock.NewStopwatch(meta.TIME_LIMIT),
		budget:   DefaultBudget(),
		seed:     meta.SEED,
	}
	for _, option := range options {
		option(p)
	}

	p.rng = rand.New(rand.NewSource(p.seed))
	searchOptions := []searcher.Option{searcher.WithRand(p.rng)}
	if p.withMetrics {
		searchOptions = append(searchOptions, searcher.WithMetrics())
	}
	p.minimax = searcher.NewMinimax(p.weights.Evaluate, searchOptions...)
	return p
}

// NewTunedPlayer returns a player driven by an externally supplied weight
// vector, as used when tuning weights over many games. It searches one ply,
// ignores the clock and never places a piece where it is captured at once.
func NewTunedPlayer(side game.Side, position game.Position, weights game.Weights, options ...Option) *Player {
	defaults := []Option{
		WithWeights(weights),
		WithFixedDepth(1),
		WithSuicideFilter(),
		WithSeed(meta.TUNED_SEED),
		WithTimer(clock.Unlimited()),
	}
	return NewPlayer(side, position, append(defaults, options...)...)
}

func (p *Player) Side() game.Side {
	return p.side
}

func (p *Player) Position() game.Position {
	return p.position
}

func (p *Player) Weights() game.Weights {
	return p.weights
}

func (p *Player) LastMetric() metrics.SearchMetric {
	return p.lastMetric
}

func (p *Player) ChooseMove() (game.Delta, bool) {
	defer p.timer.Track()()

	moves := p.position.LegalMoves(p.side)
	if len(moves) == 0 {
		log.Warn().Msgf("%s has no legal move in round %d", p.side, p.position.Round())
		return game.Delta{}, false
	}

	collector := p.minimax.Metrics()
	remaining := p.timer.Remaining()
	if p.budget.IsPanic(remaining) {
		collector.Start(0)
		collector.SetPanic(true)
		move := moves[p.rng.Intn(len(moves))]
		log.Warn().Msgf("%s is out of time (%v remaining), playing random move %v", p.side, remaining, move)
		return p.play(move, collector), true
	}

	depth := p.depth
	if depth == 0 {
		depth = p.budget.Depth(remaining, p.position.Round())
	}
	log.Debug().Msgf("%s is looking %d moves ahead over %d moves", p.side, depth, len(moves))

	collector.Start(depth)
	candidates := make([]candidate, len(moves))
	for i, move := range moves {
		next := p.position.Play(move)
		score := p.minimax.AlphaBeta(next, depth-1, searcher.AlphaStart, searcher.BetaStart, p.side.Opponent())
		candidates[i] = candidate{move: move, score: score}
	}

	if p.filterSuicide && p.position.Phase() == game.Placement && p.position.Round() > 0 {
		safe := lo.Filter(candidates, func(c candidate, _ int) bool {
			return !c.move.Suicide()
		})
		if len(safe) > 0 {
			candidates = safe
		}
	}

	best := bestCandidates(candidates, p.side)
	choice := best[p.rng.Intn(len(best))]
	log.Debug().Msgf("%s plays %v [%v] among %d best", p.side, choice.move, choice.score, len(best))
	return p.play(choice.move, collector), true
}

func (p *Player) play(move game.Delta, collector metrics.Collector) game.Delta {
	p.position = p.position.Play(move)
	p.lastMetric = collector.Complete()
	return move
}

// Update plays the opponent's action. A forfeit only advances the round. If
// no legal move realises the action, the position is left untouched and an
// error wrapping ErrDesync is returned.
func (p *Player) Update(action game.Action) error {
	defer p.timer.Track()()

	opponent := p.side.Opponent()
	if action.Type == game.ForfeitActionType {
		log.Warn().Msgf("%s forfeited its turn in round %d", opponent, p.position.Round())
		p.position = p.position.Play(game.ForfeitMove(opponent))
		return nil
	}

	moves := p.position.LegalMoves(opponent)
	i := slices.IndexFunc(moves, action.Matches)
	if i < 0 {
		log.Error().Msgf("%s reported %v which is not legal in the %s phase", opponent, action, p.position.Phase())
		return errors.Wrapf(ErrDesync, "%s reported %v in round %d", opponent, action, p.position.Round())
	}
	p.position = p.position.Play(moves[i])
	return nil
}

// bestCandidates returns the candidates with the best score for side: the
// highest for the Maximizer, the lowest for the other side.
func bestCandidates(candidates []candidate, side game.Side) []candidate {
	scores := lo.Map(candidates, func(c candidate, _ int) float64 {
		return c.score
	})
	target := slices.Min(scores)
	if side == searcher.Maximizer {
		target = slices.Max(scores)
	}
	return lo.Filter(candidates, func(c candidate, _ int) bool {
		return c.score == target
	})
}
