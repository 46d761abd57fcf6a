package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, rules Rules, round int, rows ...string) *Board {
	t.Helper()
	b, err := ParseBoard(strings.Join(rows, "\n"), rules, round)
	require.NoError(t, err)
	return b
}

func findMove(t *testing.T, moves []Delta, action Action) Delta {
	t.Helper()
	for _, move := range moves {
		if action.Matches(move) {
			return move
		}
	}
	require.Failf(t, "missing move", "%v is not among %d legal moves", action, len(moves))
	return Delta{}
}

func TestNewBoard(t *testing.T) {
	t.Run("starting in the placement phase with four corners", func(t *testing.T) {
		b := NewBoard(nil)

		require.Equal(t, Placement, b.Phase())
		require.Equal(t, 0, b.Round())
		require.Equal(t, White, b.Turn(), "White should place first")
		require.Equal(t, strings.Join([]string{
			"X - - - - - - X",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"X - - - - - - X",
		}, "\n"), b.String())
	})

	t.Run("restricting placements to each side's rows", func(t *testing.T) {
		b := NewBoard(nil)

		require.Len(t, b.LegalMoves(White), 46)
		require.Len(t, b.LegalMoves(Black), 46)
		require.Equal(t, 46, b.Mobility(White))
		for _, move := range b.LegalMoves(White) {
			require.LessOrEqual(t, move.Target.Y, 5, "White should not place on Black's home rows")
		}
		for _, move := range b.LegalMoves(Black) {
			require.GreaterOrEqual(t, move.Target.Y, 2, "Black should not place on White's home rows")
		}
	})

	t.Run("starting the massacre puzzle in the movement phase", func(t *testing.T) {
		require.Equal(t, Movement, NewBoard(NewMassacreRules()).Phase())
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("reading its own canonical form", func(t *testing.T) {
		rows := []string{
			"X - - - - - - X",
			"- - @ O - - - -",
			"- - - - - - - -",
			"O - - - - - - -",
			"- - - - O - - -",
			"- - - @ - O - -",
			"- - @ - - - - -",
			"X - - - - - - X",
		}
		b := parse(t, nil, 24, rows...)

		require.Equal(t, strings.Join(rows, "\n"), b.String())
		require.Equal(t, Movement, b.Phase())
		require.Equal(t, 4, b.Count(White))
		require.Equal(t, 3, b.Count(Black))
	})

	t.Run("issuing piece IDs in reading order", func(t *testing.T) {
		b := parse(t, NewMassacreRules(), 0,
			"X - - - - - - X",
			"- - - - - - @ -",
			"- - - - - - - -",
			"- @ - - - - - -",
			"- - - - - - - -",
			"- - - - O - - -",
			"- - - - - - - -",
			"X - - - - - - X",
		)

		squares := b.PlayerSquares(Black)
		require.Equal(t, Pos{X: 6, Y: 1}, squares[0].Pos, "First black piece read should come first")
		require.Equal(t, Pos{X: 1, Y: 3}, squares[1].Pos)
		require.Less(t, squares[0].Piece.ID, squares[1].Piece.ID)
	})

	t.Run("rejecting malformed boards", func(t *testing.T) {
		_, err := ParseBoard("X - X", nil, 0)
		require.Error(t, err, "Too few rows should be rejected")

		rows := strings.Repeat("- - - - - - - -\n", 7) + "- - - - - - - ?"
		_, err = ParseBoard(rows, nil, 0)
		require.ErrorContains(t, err, "unknown symbol")
	})
}

func TestBoardPlay(t *testing.T) {
	t.Run("capturing a sandwiched enemy piece", func(t *testing.T) {
		b := parse(t, nil, 2,
			"X - - - - - - X",
			"- - - - - - - -",
			"- - O @ - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"X - - - - - - X",
		)

		move := findMove(t, b.LegalMoves(White), PlaceAction(Pos{X: 4, Y: 2}))
		next := b.Play(move).(*Board)

		require.Equal(t, []Pos{{X: 3, Y: 2}}, move.Killed)
		require.Equal(t, 0, next.Count(Black))
		require.Equal(t, 3, next.Round())
		require.Equal(t, 1, b.Count(Black), "Playing should leave the source board untouched")
	})

	t.Run("capturing against a corner", func(t *testing.T) {
		b := parse(t, nil, 2,
			"X @ - - - - - X",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"X - - - - - - X",
		)

		move := findMove(t, b.LegalMoves(White), PlaceAction(Pos{X: 2, Y: 0}))

		require.Equal(t, []Pos{{X: 1, Y: 0}}, move.Killed)
	})

	t.Run("resolving the mover's captures before its own", func(t *testing.T) {
		b := parse(t, nil, 2,
			"X - - - - - - X",
			"- - - - - - - -",
			"- - - - - - - -",
			"- O @ - @ - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"X - - - - - - X",
		)

		move := findMove(t, b.LegalMoves(White), PlaceAction(Pos{X: 3, Y: 3}))

		require.Equal(t, []Pos{{X: 2, Y: 3}}, move.Killed, "Placed piece should survive after capturing")
		require.False(t, move.Suicide())
	})

	t.Run("placing into a capture", func(t *testing.T) {
		b := parse(t, nil, 2,
			"X - - - - - - X",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - @ - @ - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"X - - - - - - X",
		)

		move := findMove(t, b.LegalMoves(White), PlaceAction(Pos{X: 3, Y: 3}))
		next := b.Play(move).(*Board)

		require.True(t, move.Suicide(), "Placed piece should be captured")
		require.Equal(t, 0, next.Count(White))
	})

	t.Run("entering the movement phase after the last placement", func(t *testing.T) {
		b := NewBoard(nil)
		for b.Phase() == Placement {
			moves := b.LegalMoves(b.Turn())
			b = b.Play(moves[len(moves)/2]).(*Board)
		}

		require.NotEqual(t, Placement, b.Phase())
		require.Equal(t, 24, b.Round())
		require.Equal(t, 0, b.MovementTurns())
	})

	t.Run("stepping and jumping", func(t *testing.T) {
		b := parse(t, NewMassacreRules(), 0,
			"X - - - - - - X",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - O - - - -",
			"- - - @ - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"X - - - - - - X",
		)

		targets := []Pos{}
		for _, move := range b.LegalMoves(White) {
			require.Equal(t, Pos{X: 3, Y: 3}, move.Origin)
			targets = append(targets, move.Target)
		}

		require.ElementsMatch(t, []Pos{{X: 3, Y: 2}, {X: 4, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 5}}, targets)
		require.Equal(t, 4, b.Mobility(White))
	})

	t.Run("ending the massacre when the last enemy piece is captured", func(t *testing.T) {
		b := parse(t, NewMassacreRules(), 0,
			"X - - - - - - X",
			"- - - - - - - -",
			"- - - - - - - -",
			"- O @ - O - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"X - - - - - - X",
		)

		move := findMove(t, b.LegalMoves(White), MoveAction(Pos{X: 4, Y: 3}, Pos{X: 3, Y: 3}))
		next := b.Play(move).(*Board)
		winner, ok := next.Winner()

		require.Equal(t, Finished, next.Phase())
		require.True(t, ok)
		require.Equal(t, White, winner)
		require.Empty(t, next.LegalMoves(White), "Finished game should have no moves")
	})

	t.Run("forfeiting only advances the round", func(t *testing.T) {
		b := parse(t, nil, 30,
			"X - - - - - - X",
			"- - O - - - - -",
			"- - O - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - @ - -",
			"- - - - - @ - -",
			"X - - - - - - X",
		)

		next := b.Play(ForfeitMove(White)).(*Board)

		require.Equal(t, 31, next.Round())
		require.Equal(t, b.String(), next.String())
	})
}

func TestBoardShrink(t *testing.T) {
	t.Run("removing the outer ring after the first deathzone turn", func(t *testing.T) {
		b := parse(t, nil, 24+127,
			"X - - - - - - X",
			"- - @ O - - - -",
			"- - - - - - - -",
			"O - - - - - - -",
			"- - - - O - - -",
			"- - - @ - O - -",
			"- - @ - - - - -",
			"X - - - - - - X",
		)

		move := findMove(t, b.LegalMoves(White), MoveAction(Pos{X: 4, Y: 4}, Pos{X: 4, Y: 3}))
		next := b.Play(move).(*Board)

		require.Equal(t, 128, next.MovementTurns())
		require.Contains(t, move.Eliminated, Pos{X: 0, Y: 3}, "Piece on the outer ring should be eliminated")
		require.Len(t, move.Eliminated, 28)
		require.Equal(t, []Pos{{X: 1, Y: 1}, {X: 1, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 1}}, move.NewCorners)
		require.Equal(t, []Pos{{X: 2, Y: 1}}, move.Killed, "New corner should capture the black piece beside it")
		require.Equal(t, strings.Join([]string{
			"# # # # # # # #",
			"# X - O - - X #",
			"# - - - - - - #",
			"# - - - O - - #",
			"# - - - - - - #",
			"# - - @ - O - #",
			"# X @ - - - X #",
			"# # # # # # # #",
		}, "\n"), next.String())
		require.Equal(t, Movement, next.Phase())
	})

	t.Run("ending in a draw when the second deathzone leaves both sides short", func(t *testing.T) {
		b := parse(t, nil, 24+191,
			"# # # # # # # #",
			"# X - O - - X #",
			"# - - - - - - #",
			"# - - - O - - #",
			"# - - - - - - #",
			"# - - @ - O - #",
			"# X @ - - - X #",
			"# # # # # # # #",
		)

		move := findMove(t, b.LegalMoves(White), MoveAction(Pos{X: 4, Y: 3}, Pos{X: 4, Y: 2}))
		next := b.Play(move).(*Board)
		_, ok := next.Winner()

		require.Len(t, move.Eliminated, 20)
		require.Equal(t, []Pos{{X: 2, Y: 2}, {X: 2, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 2}}, move.NewCorners)
		require.Equal(t, []Pos{{X: 5, Y: 5}}, move.Killed, "Piece under a new corner should be captured")
		require.Equal(t, Finished, next.Phase())
		require.False(t, ok, "Both sides below two pieces should be a draw")
	})
}
