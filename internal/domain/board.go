package domain

import "fmt"

// Board is a grid of columns, each holding its cells from the bottom row
// upward. A cell is only non-empty if every cell below it is non-empty.
type Board struct {
	columns int
	rows    int
	cells   [][]Piece // cells[column][row]
}

func NewBoard(columns, rows int) (*Board, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, columns, rows)
	}

	cells := make([][]Piece, columns)
	for c := range cells {
		cells[c] = make([]Piece, rows)
	}
	return &Board{columns: columns, rows: rows, cells: cells}, nil
}

func (b *Board) Dimensions() (columns, rows int) {
	return b.columns, b.rows
}

func (b *Board) Contains(pos Position) bool {
	return pos.Column >= 0 && pos.Column < b.columns && pos.Row >= 0 && pos.Row < b.rows
}

func (b *Board) IsValidColumn(column int) bool {
	return column >= 0 && column < b.columns
}

// Drop places piece on the lowest empty cell of column. The board is left
// untouched when an error is returned.
func (b *Board) Drop(column int, piece Piece) (Position, error) {
	if !b.IsValidColumn(column) {
		return Position{}, fmt.Errorf("%w: %d is not between 0 and %d", ErrInvalidColumn, column, b.columns-1)
	}
	if !piece.IsPlayerPiece() {
		return Position{}, fmt.Errorf("%w: %v", ErrInvalidPiece, piece)
	}

	for row := 0; row < b.rows; row++ {
		if b.cells[column][row] == Empty {
			b.cells[column][row] = piece
			return Position{Column: column, Row: row}, nil
		}
	}

	return Position{}, fmt.Errorf("%w: column %d", ErrColumnFull, column)
}

func (b *Board) Get(pos Position) (Piece, error) {
	if !b.Contains(pos) {
		return Empty, fmt.Errorf("%w: (%d, %d)", ErrInvalidPosition, pos.Column, pos.Row)
	}
	return b.cells[pos.Column][pos.Row], nil
}

// Height returns the number of pieces stacked in column.
func (b *Board) Height(column int) int {
	if !b.IsValidColumn(column) {
		return 0
	}
	h := 0
	for h < b.rows && b.cells[column][h] != Empty {
		h++
	}
	return h
}

func (b *Board) IsColumnFull(column int) bool {
	return b.IsValidColumn(column) && b.cells[column][b.rows-1] != Empty
}

func (b *Board) IsFull() bool {
	for c := 0; c < b.columns; c++ {
		if !b.IsColumnFull(c) {
			return false
		}
	}
	return true
}

// ValidColumns lists the columns that can still take a piece.
func (b *Board) ValidColumns() []int {
	valid := []int{}
	for c := 0; c < b.columns; c++ {
		if !b.IsColumnFull(c) {
			valid = append(valid, c)
		}
	}
	return valid
}

// Column returns a copy of column, bottom cell first.
func (b *Board) Column(column int) []Piece {
	if !b.IsValidColumn(column) {
		return nil
	}
	out := make([]Piece, b.rows)
	copy(out, b.cells[column])
	return out
}

// Row returns a copy of row, leftmost cell first.
func (b *Board) Row(row int) []Piece {
	if row < 0 || row >= b.rows {
		return nil
	}
	out := make([]Piece, b.columns)
	for c := range out {
		out[c] = b.cells[c][row]
	}
	return out
}

// Pieces resolves a segment of positions to the pieces they hold.
// Positions outside the board read as Empty.
func (b *Board) Pieces(segment []Position) []Piece {
	out := make([]Piece, len(segment))
	for i, pos := range segment {
		if b.Contains(pos) {
			out[i] = b.cells[pos.Column][pos.Row]
		}
	}
	return out
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([][]Piece, len(b.cells))
	for i := range b.cells {
		cells[i] = make([]Piece, len(b.cells[i]))
		copy(cells[i], b.cells[i])
	}
	return &Board{columns: b.columns, rows: b.rows, cells: cells}
}

func (b *Board) Equal(other *Board) bool {
	if other == nil || b.columns != other.columns || b.rows != other.rows {
		return false
	}
	for c := range b.cells {
		for r := range b.cells[c] {
			if b.cells[c][r] != other.cells[c][r] {
				return false
			}
		}
	}
	return true
}
