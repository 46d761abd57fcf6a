// meta/meta.go
package meta

import "time"

// TIME_LIMIT is the total thinking time of one player over a whole game.
const TIME_LIMIT = 120 * time.Second

// PANIC_REMAINING is the remaining time below which moves are picked at random.
const PANIC_REMAINING = 2 * time.Second

// EXPECTED_ROUNDS covers the placement rounds and the movement rounds until
// around the second deathzone.
const EXPECTED_ROUNDS = 24 + 194

// ROUND_SAFETY_MARGIN is added to the remaining expected rounds when spreading
// the remaining time.
const ROUND_SAFETY_MARGIN = 10

// DEPTH_TWO_TURN_TIME is the time per remaining round needed to search two
// plies deep.
const DEPTH_TWO_TURN_TIME = 200 * time.Millisecond

// SEED seeds the time-budgeted player.
const SEED = 1337

// TUNED_SEED seeds the player driven by an external weight vector.
const TUNED_SEED = 13373

// HISTORY_CAPACITY is the number of recent positions remembered in massacre mode.
const HISTORY_CAPACITY = 512

// MASSACRE_DEPTH is the default look-ahead of the massacre search.
const MASSACRE_DEPTH = 3

// MAX_TURNS bounds a locally refereed game.
const MAX_TURNS = 500
