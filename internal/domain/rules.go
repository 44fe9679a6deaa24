package domain

// Direction names one of the four lines through a cell.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
	AscendingDiagonal
	DescendingDiagonal
)

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case AscendingDiagonal:
		return "ascending diagonal"
	case DescendingDiagonal:
		return "descending diagonal"
	default:
		return "unknown"
	}
}

// CheckWin reports whether piece has at least runLength in a row on any of
// the four lines through pos. pos is expected to hold piece; callers check
// right after a successful Drop.
func CheckWin(b *Board, pos Position, piece Piece, runLength int) bool {
	_, won := WinningDirection(b, pos, piece, runLength)
	return won
}

// WinningDirection is CheckWin that also reports the first winning line in
// the order vertical, horizontal, ascending, descending.
func WinningDirection(b *Board, pos Position, piece Piece, runLength int) (Direction, bool) {
	// Only the lines passing through pos can have changed
	for dir, segment := range Segments(b, pos) {
		if MaxRun(b.Pieces(segment), piece) >= runLength {
			return Direction(dir), true
		}
	}
	return 0, false
}

// Segments returns the column, row, ascending and descending diagonal
// through pos, indexed by Direction.
func Segments(b *Board, pos Position) [4][]Position {
	return [4][]Position{
		Vertical:           ColumnSegment(b, pos),
		Horizontal:         RowSegment(b, pos),
		AscendingDiagonal:  AscendingSegment(b, pos),
		DescendingDiagonal: DescendingSegment(b, pos),
	}
}

func ColumnSegment(b *Board, pos Position) []Position {
	_, rows := b.Dimensions()
	segment := make([]Position, rows)
	for r := range segment {
		segment[r] = Position{Column: pos.Column, Row: r}
	}
	return segment
}

func RowSegment(b *Board, pos Position) []Position {
	columns, _ := b.Dimensions()
	segment := make([]Position, columns)
	for c := range segment {
		segment[c] = Position{Column: c, Row: pos.Row}
	}
	return segment
}

// AscendingSegment walks the diagonal where column and row grow together,
// from its lower-left end to its upper-right end.
func AscendingSegment(b *Board, pos Position) []Position {
	columns, rows := b.Dimensions()
	c, r := pos.Column, pos.Row

	start := min(c, r)
	end := min(columns-1-c, rows-1-r)

	segment := make([]Position, 0, start+end+1)
	for k := 0; k <= start+end; k++ {
		segment = append(segment, Position{Column: c - start + k, Row: r - start + k})
	}
	return segment
}

// DescendingSegment walks the diagonal where the column grows as the row
// shrinks, from its upper-left end to its lower-right end.
func DescendingSegment(b *Board, pos Position) []Position {
	columns, rows := b.Dimensions()
	c, r := pos.Column, pos.Row

	start := min(c, rows-1-r)
	end := min(columns-1-c, r)

	segment := make([]Position, 0, start+end+1)
	for k := 0; k <= start+end; k++ {
		segment = append(segment, Position{Column: c - start + k, Row: r + start - k})
	}
	return segment
}

// MaxRun returns the length of the longest run of target in line.
func MaxRun(line []Piece, target Piece) int {
	best, count := 0, 0
	for _, p := range line {
		if p != target {
			count = 0
			continue
		}
		count++
		best = max(best, count)
	}
	return best
}
