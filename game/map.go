package game

import "fmt"

// Size is the width and height of the full board.
const Size = 8

// Pos is a square coordinate. X grows to the right and Y grows downwards.
type Pos struct {
	X int
	Y int
}

func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}

// Manhattan returns the sum of absolute coordinate differences.
func (p Pos) Manhattan(o Pos) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (p Pos) onBoard() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Directions in which pieces move and capture.
var directions = [4]Pos{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// Piece is a single piece. IDs are issued by the board when the piece is
// placed and never reused within a game.
type Piece struct {
	ID    int
	Owner Side
}

// Square describes an occupied square.
type Square struct {
	Pos   Pos
	Piece Piece
}

type cellKind uint8

const (
	empty cellKind = iota
	corner
	removed // Outside the current ring after a deathzone
	occupied
)

type cell struct {
	kind  cellKind
	piece Piece
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
