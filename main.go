package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"wyb/agent"
	"wyb/experiments"
	"wyb/experiments/metrics"
	"wyb/game"
	"wyb/meta"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "match", "One of match, moves or massacre")
	games := flag.Int("games", 10, "Number of games per matchup")
	seed := flag.Uint64("seed", 0, "Base seed of a matchup, random when 0")
	white := flag.String("white", "", "Weights of the white player, e.g. own_pieces=1,opponent_pieces=-1")
	black := flag.String("black", "", "Weights of the black player")
	depth := flag.Int("depth", 0, "Search depth, defaults per mode")
	records := flag.Bool("csv", false, "Print game and move records of a matchup as CSV")
	verbose := flag.Bool("v", false, "Log search details")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch *mode {
	case "match":
		err = runMatchup(*white, *black, *depth, *games, *seed, *records)
	case "moves":
		err = countMoves(os.Stdin)
	case "massacre":
		err = runMassacre(os.Stdin, *depth)
	default:
		err = errors.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func runMatchup(white, black string, depth, games int, seed uint64, records bool) error {
	whiteWeights, err := parseWeights(white)
	if err != nil {
		return err
	}
	blackWeights, err := parseWeights(black)
	if err != nil {
		return err
	}

	tally, err := experiments.RunMatchup(
		experiments.AgentConfig{ID: 1, Weights: whiteWeights, Depth: depth},
		experiments.AgentConfig{ID: 2, Weights: blackWeights, Depth: depth},
		games, seed,
	)
	if err != nil {
		return err
	}
	fmt.Printf("white %d, black %d, draws %d\n", tally.WhiteWins, tally.BlackWins, tally.Draws)
	if !records {
		return nil
	}

	gameRecords, moveRecords := tally.Records()
	writer := metrics.NewWriter(os.Stdout)
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	return writer.WriteMoveRecords(moveRecords)
}

func parseWeights(config string) (game.Weights, error) {
	if config == "" {
		return game.DefaultWeights, nil
	}
	return game.ParseWeights(config)
}

// readBoard reads a board in the movement phase from r.
func readBoard(r io.Reader, rules game.Rules) (*game.Board, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return game.ParseBoard(string(text), rules, rules.PlacementTurns())
}

// countMoves prints the number of moves available to White, then to Black.
func countMoves(r io.Reader) error {
	board, err := readBoard(r, game.NewStandardRules())
	if err != nil {
		return err
	}
	fmt.Println(board.Mobility(game.White))
	fmt.Println(board.Mobility(game.Black))
	return nil
}

// runMassacre prints the moves White plays to capture every black piece.
func runMassacre(r io.Reader, depth int) error {
	board, err := readBoard(r, game.NewMassacreRules())
	if err != nil {
		return err
	}
	if depth <= 0 {
		depth = meta.MASSACRE_DEPTH
	}

	moves, err := agent.NewMassacre(game.White, board, depth).Run()
	for _, move := range moves {
		fmt.Printf("(%d, %d) -> (%d, %d)\n", move.Origin.X, move.Origin.Y, move.Target.X, move.Target.Y)
	}
	return err
}
