package agent

import (
	"time"
	"wyb/meta"
)

// DepthCost is the time per remaining round a search depth needs.
type DepthCost struct {
	Depth    int
	PerRound time.Duration
}

// Budget turns the remaining thinking time into a search depth. The costs
// are empirical calibration values, not rules.
type Budget struct {
	Panic          time.Duration // Below this, moves are picked at random
	ExpectedRounds int           // Rounds a game is expected to last
	Margin         int           // Extra rounds the remaining time is spread over
	Depths         []DepthCost
}

func DefaultBudget() Budget {
	return Budget{
		Panic:          meta.PANIC_REMAINING,
		ExpectedRounds: meta.EXPECTED_ROUNDS,
		Margin:         meta.ROUND_SAFETY_MARGIN,
		Depths: []DepthCost{
			{Depth: 1, PerRound: 0},
			{Depth: 2, PerRound: meta.DEPTH_TWO_TURN_TIME},
		},
	}
}

func (b Budget) IsPanic(remaining time.Duration) bool {
	return remaining < b.Panic
}

// Depth returns the deepest candidate depth whose cost stays below the time
// available per expected remaining round. It is never below 1.
func (b Budget) Depth(remaining time.Duration, round int) int {
	rounds := max(b.ExpectedRounds-round, 0) + b.Margin
	perRound := remaining / time.Duration(max(rounds, 1))

	depth := 1
	for _, cost := range b.Depths {
		if perRound > cost.PerRound && cost.Depth > depth {
			depth = cost.Depth
		}
	}
	return depth
}
