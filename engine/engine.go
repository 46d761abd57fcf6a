package engine

import (
	"wyb/experiments/metrics"
	"wyb/game"
)

type Engine interface {
	// Run plays a game till it is finished or a max number of turns is reached
	Run() (Result, error)
}

type Result struct {
	Winner      game.Side
	Draw        bool // Finished without a winner, or stopped at the turn limit
	Turns       int
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

// Outcome names the result as recorded in game metrics.
func (r Result) Outcome() string {
	if r.Draw {
		return "draw"
	}
	return r.Winner.String()
}
