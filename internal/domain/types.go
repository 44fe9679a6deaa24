package domain

import (
	"errors"
	"strings"
)

// Piece is the content of a single board cell.
type Piece int

const (
	Empty  Piece = 0
	PieceA Piece = 1
	PieceB Piece = 2
)

// IsPlayerPiece reports whether p is one of the two pieces a player can drop.
func (p Piece) IsPlayerPiece() bool {
	return p == PieceA || p == PieceB
}

func (p Piece) Opponent() Piece {
	switch p {
	case PieceA:
		return PieceB
	case PieceB:
		return PieceA
	default:
		return Empty
	}
}

func (p Piece) String() string {
	switch p {
	case Empty:
		return "empty"
	case PieceA:
		return "A"
	case PieceB:
		return "B"
	default:
		return "invalid"
	}
}

// Position identifies a cell. Row 0 is the bottom of the board.
type Position struct {
	Column int
	Row    int
}

type Player struct {
	Name  string
	Piece Piece
}

func (p Player) valid() bool {
	return strings.TrimSpace(p.Name) != "" && p.Piece.IsPlayerPiece()
}

const (
	DefaultColumns   = 7
	DefaultRows      = 6
	DefaultRunLength = 4
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidDimension Error = "invalid board dimension"
	ErrInvalidColumn    Error = "invalid column"
	ErrColumnFull       Error = "column is full"
	ErrInvalidPosition  Error = "invalid position"
	ErrInvalidPiece     Error = "invalid piece"
	ErrInvalidRunLength Error = "invalid run length"
	ErrInvalidPlayer    Error = "invalid player"
	ErrGameFinished     Error = "game is finished"
)

// IsRecoverable reports whether err is a move error the player can fix by
// choosing another column.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrInvalidColumn) || errors.Is(err, ErrColumnFull)
}
