package game

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Board is the reference Position: an 8x8 board with corners, sandwich
// captures and a shrinking deathzone. A Board is never modified after it is
// returned; Play copies it.
type Board struct {
	rules  Rules
	cells  [Size][Size]cell // Indexed [y][x]
	round  int              // Turns played so far, both sides and all phases
	phase  Phase
	ring   int // Number of deathzones applied
	nextID int // ID of the next placed piece
}

// NewBoard returns the starting position for rules: an empty board with its
// four corners marked.
func NewBoard(rules Rules) *Board {
	if rules == nil {
		rules = NewStandardRules()
	}
	b := &Board{rules: rules}
	for _, c := range b.corners() {
		b.set(c, cell{kind: corner})
	}
	if rules.PlacementTurns() == 0 {
		b.phase = Movement
	}
	return b
}

func (b *Board) Rules() Rules {
	return b.rules
}

func (b *Board) Phase() Phase {
	return b.phase
}

func (b *Board) Round() int {
	return b.round
}

// Turn returns the side expected to act next. White acts first in both the
// placement and the movement phase.
func (b *Board) Turn() Side {
	if b.round%2 == 0 {
		return White
	}
	return Black
}

// MovementTurns is the number of turns played since the movement phase began.
func (b *Board) MovementTurns() int {
	return max(0, b.round-b.rules.PlacementTurns())
}

func (b *Board) LegalMoves(side Side) []Delta {
	moves := []Delta{}
	switch b.phase {
	case Placement:
		for _, target := range b.placements(side) {
			_, move := b.next(Place, side, Pos{}, target)
			moves = append(moves, move)
		}
	case Movement:
		for _, square := range b.PlayerSquares(side) {
			for _, target := range b.destinations(square.Pos) {
				_, move := b.next(Shift, side, square.Pos, target)
				moves = append(moves, move)
			}
		}
	}
	return moves
}

func (b *Board) Mobility(side Side) int {
	switch b.phase {
	case Placement:
		return len(b.placements(side))
	case Movement:
		count := 0
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				c := b.cells[y][x]
				if c.kind == occupied && c.piece.Owner == side {
					count += len(b.destinations(Pos{X: x, Y: y}))
				}
			}
		}
		return count
	default:
		return 0
	}
}

func (b *Board) Play(move Delta) Position {
	next, _ := b.next(move.Kind, move.Player, move.Origin, move.Target)
	return next
}

func (b *Board) PlayerSquares(side Side) []Square {
	squares := []Square{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := b.cells[y][x]
			if c.kind == occupied && c.piece.Owner == side {
				squares = append(squares, Square{Pos: Pos{X: x, Y: y}, Piece: c.piece})
			}
		}
	}
	slices.SortFunc(squares, func(a, b Square) int {
		return a.Piece.ID - b.Piece.ID
	})
	return squares
}

// Count returns the number of pieces side has on the board.
func (b *Board) Count(side Side) int {
	count := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if c := b.cells[y][x]; c.kind == occupied && c.piece.Owner == side {
				count++
			}
		}
	}
	return count
}

// Winner returns the winning side once the game is finished. It returns false
// for unfinished games and draws.
func (b *Board) Winner() (Side, bool) {
	if b.phase != Finished {
		return White, false
	}
	white, black := b.Count(White), b.Count(Black)
	whiteLost := b.rules.IsOver(white, max(black, 2))
	blackLost := b.rules.IsOver(max(white, 2), black)
	switch {
	case whiteLost && !blackLost:
		return Black, true
	case blackLost && !whiteLost:
		return White, true
	default:
		return White, false
	}
}

func (b *Board) next(kind MoveKind, side Side, origin, target Pos) (*Board, Delta) {
	nb := *b
	move := Delta{Kind: kind, Player: side, Target: target}
	switch kind {
	case Place:
		nb.set(target, cell{kind: occupied, piece: Piece{ID: nb.nextID, Owner: side}})
		nb.nextID++
		move.Killed = nb.capture(target, side)
	case Shift:
		move.Origin = origin
		piece := nb.at(origin).piece
		nb.set(origin, cell{kind: empty})
		nb.set(target, cell{kind: occupied, piece: piece})
		move.Killed = nb.capture(target, side)
	case Forfeit:
		move.Target = Pos{}
	}
	nb.round++
	nb.advance(&move)
	return &nb, move
}

// capture removes the enemies of side sandwiched by the piece on target, then
// the piece itself if it is left sandwiched.
func (b *Board) capture(target Pos, side Side) []Pos {
	var killed []Pos
	for _, d := range directions {
		n := target.Add(d)
		c := b.at(n)
		if c.kind != occupied || c.piece.Owner == side {
			continue
		}
		if b.hostile(n.Add(d), c.piece.Owner) {
			killed = append(killed, n)
		}
	}
	for _, p := range killed {
		b.set(p, cell{kind: empty})
	}
	if b.surrounded(target, side) {
		killed = append(killed, target)
		b.set(target, cell{kind: empty})
	}
	return killed
}

func (b *Board) advance(move *Delta) {
	if b.phase == Placement && b.round >= b.rules.PlacementTurns() {
		b.phase = Movement
	}
	if b.phase != Movement {
		return
	}
	turns := b.MovementTurns()
	if slices.Contains(b.rules.ShrinkAfter(), turns) {
		b.shrink(move)
	}
	if b.rules.IsOver(b.Count(White), b.Count(Black)) {
		b.phase = Finished
	}
}

// shrink removes the outermost remaining ring, places the new corners and
// lets them capture, top-left first and counter-clockwise.
func (b *Board) shrink(move *Delta) {
	lo, hi := b.ring, Size-1-b.ring
	for y := lo; y <= hi; y++ {
		for x := lo; x <= hi; x++ {
			if x != lo && x != hi && y != lo && y != hi {
				continue
			}
			p := Pos{X: x, Y: y}
			b.set(p, cell{kind: removed})
			move.Eliminated = append(move.Eliminated, p)
		}
	}
	b.ring++

	corners := b.corners()
	for _, c := range corners {
		if b.at(c).kind == occupied {
			move.Killed = append(move.Killed, c)
		}
		b.set(c, cell{kind: corner})
		move.NewCorners = append(move.NewCorners, c)
	}
	for _, c := range corners {
		for _, d := range directions {
			n := c.Add(d)
			piece := b.at(n)
			if piece.kind == occupied && b.hostile(n.Add(d), piece.piece.Owner) {
				b.set(n, cell{kind: empty})
				move.Killed = append(move.Killed, n)
			}
		}
	}
}

// corners of the current ring: top-left, bottom-left, bottom-right, top-right.
func (b *Board) corners() [4]Pos {
	lo, hi := b.ring, Size-1-b.ring
	return [4]Pos{{X: lo, Y: lo}, {X: lo, Y: hi}, {X: hi, Y: hi}, {X: hi, Y: lo}}
}

func (b *Board) placements(side Side) []Pos {
	minY, maxY := b.rules.PlacementRows(side)
	var targets []Pos
	for y := max(minY, 0); y <= min(maxY, Size-1); y++ {
		for x := 0; x < Size; x++ {
			if b.cells[y][x].kind == empty {
				targets = append(targets, Pos{X: x, Y: y})
			}
		}
	}
	return targets
}

// destinations of the piece on p: adjacent empty squares, or the empty square
// beyond an adjacent piece.
func (b *Board) destinations(p Pos) []Pos {
	var targets []Pos
	for _, d := range directions {
		n := p.Add(d)
		switch b.at(n).kind {
		case empty:
			targets = append(targets, n)
		case occupied:
			if j := n.Add(d); b.at(j).kind == empty {
				targets = append(targets, j)
			}
		}
	}
	return targets
}

// hostile reports whether the square on p threatens pieces of side.
func (b *Board) hostile(p Pos, side Side) bool {
	c := b.at(p)
	return c.kind == corner || (c.kind == occupied && c.piece.Owner != side)
}

func (b *Board) surrounded(p Pos, side Side) bool {
	horizontal := b.hostile(p.Add(directions[1]), side) && b.hostile(p.Add(directions[3]), side)
	vertical := b.hostile(p.Add(directions[0]), side) && b.hostile(p.Add(directions[2]), side)
	return horizontal || vertical
}

func (b *Board) at(p Pos) cell {
	if !p.onBoard() {
		return cell{kind: removed}
	}
	return b.cells[p.Y][p.X]
}

func (b *Board) set(p Pos, c cell) {
	b.cells[p.Y][p.X] = c
}

// Canonical symbols of the text form.
const (
	emptySymbol   = "-"
	cornerSymbol  = "X"
	removedSymbol = "#"
	whiteSymbol   = "O"
	blackSymbol   = "@"
)

// String returns the canonical form: one line per row, squares separated by
// single spaces.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			c := b.cells[y][x]
			switch {
			case c.kind == empty:
				sb.WriteString(emptySymbol)
			case c.kind == corner:
				sb.WriteString(cornerSymbol)
			case c.kind == removed:
				sb.WriteString(removedSymbol)
			case c.piece.Owner == White:
				sb.WriteString(whiteSymbol)
			default:
				sb.WriteString(blackSymbol)
			}
		}
		if y < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard reads a board in its canonical form. Pieces get IDs in reading
// order. round sets the number of turns already played, which decides the
// phase.
func ParseBoard(text string, rules Rules, round int) (*Board, error) {
	if rules == nil {
		rules = NewStandardRules()
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < Size {
		return nil, errors.Errorf("board has %d rows, want %d", len(lines), Size)
	}

	b := &Board{rules: rules, round: round}
	for y, line := range lines[:Size] {
		symbols := strings.Fields(line)
		if len(symbols) != Size {
			return nil, errors.Errorf("row %d has %d squares, want %d", y, len(symbols), Size)
		}
		for x, symbol := range symbols {
			var c cell
			switch symbol {
			case emptySymbol:
			case cornerSymbol:
				c.kind = corner
			case removedSymbol:
				c.kind = removed
			case whiteSymbol, blackSymbol:
				owner := White
				if symbol == blackSymbol {
					owner = Black
				}
				c = cell{kind: occupied, piece: Piece{ID: b.nextID, Owner: owner}}
				b.nextID++
			default:
				return nil, errors.Errorf("unknown symbol %q at %v", symbol, Pos{X: x, Y: y})
			}
			b.cells[y][x] = c
		}
	}
	for b.ring < Size/2 && b.cells[b.ring][b.ring].kind == removed {
		b.ring++
	}

	if round >= rules.PlacementTurns() {
		b.phase = Movement
		if rules.IsOver(b.Count(White), b.Count(Black)) {
			b.phase = Finished
		}
	}
	return b, nil
}
