package experiments

import (
	"math"
	"runtime"
	"sync"
	"wyb/agent"
	"wyb/clock"
	"wyb/engine"
	"wyb/experiments/metrics"
	"wyb/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

// AgentConfig describes a player taking part in a matchup.
type AgentConfig struct {
	ID      int
	Weights game.Weights
	Depth   int // Fixed search depth; 0 plays one ply
}

// Tally sums up the games of a matchup.
type Tally struct {
	White       AgentConfig
	Black       AgentConfig
	WhiteWins   int
	BlackWins   int
	Draws       int
	GameMetrics []metrics.GameMetric   // In game order
	MoveMetrics [][]metrics.MoveMetric // Per game, in game order
}

func (t Tally) Games() int {
	return t.WhiteWins + t.BlackWins + t.Draws
}

// Records flattens the tally into game and move records numbered from 1.
func (t Tally) Records() ([]metrics.GameRecord, []metrics.MoveRecord) {
	games := make([]metrics.GameRecord, len(t.GameMetrics))
	moves := []metrics.MoveRecord{}
	for i, gameMetric := range t.GameMetrics {
		games[i] = metrics.GameRecord{ID: i + 1, White: t.White.ID, Black: t.Black.ID, GameMetric: gameMetric}
		for _, moveMetric := range t.MoveMetrics[i] {
			moves = append(moves, metrics.MoveRecord{Game: i + 1, MoveMetric: moveMetric})
		}
	}
	return games, moves
}

// RunMatchup plays games between white and black concurrently. Game i is
// seeded with seed+i; a zero seed draws a random base seed instead.
func RunMatchup(white, black AgentConfig, games int, seed uint64) (Tally, error) {
	if seed == 0 {
		seed = frand.Uint64n(math.MaxUint64)
	}
	log.Info().Msgf("starting matchup between white=%d and black=%d for %d games (seed %d)...", white.ID, black.ID, games, seed)

	tally := Tally{
		White:       white,
		Black:       black,
		GameMetrics: make([]metrics.GameMetric, games),
		MoveMetrics: make([][]metrics.MoveMetric, games),
	}
	var mu sync.Mutex

	g := errgroup.Group{}
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < games; i++ {
		g.Go(func() error {
			result, err := runGame(white, black, seed+uint64(i))
			if err != nil {
				log.Error().Msgf("game %d of %d failed: %v", i+1, games, err)
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			tally.GameMetrics[i] = result.GameMetric
			tally.MoveMetrics[i] = result.MoveMetrics
			switch {
			case result.Draw:
				tally.Draws++
			case result.Winner == game.White:
				tally.WhiteWins++
			default:
				tally.BlackWins++
			}
			log.Info().Msgf("completed game %d of %d with winner: %s", i+1, games, result.Outcome())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return tally, err
	}

	log.Info().Msgf("completed matchup: white %d, black %d, draws %d", tally.WhiteWins, tally.BlackWins, tally.Draws)
	return tally, nil
}

// runGame executes a single refereed game between two tuned players.
func runGame(white, black AgentConfig, seed uint64) (engine.Result, error) {
	board := game.NewBoard(nil)
	e := engine.NewLocal(
		newPlayer(white, game.White, board, seed),
		newPlayer(black, game.Black, board, seed^math.MaxUint32),
		engine.WithBoard(board),
	)
	return e.Run()
}

func newPlayer(config AgentConfig, side game.Side, board *game.Board, seed uint64) *agent.Player {
	return agent.NewTunedPlayer(side, board, config.Weights,
		agent.WithFixedDepth(config.Depth),
		agent.WithSeed(seed),
		agent.WithTimer(clock.Unlimited()),
		agent.WithMetrics(),
	)
}
