package terminal

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stevenyany/Connect-4/internal/domain"
	"github.com/stevenyany/Connect-4/internal/service/game"
)

type Glyphs struct {
	Empty  string
	PieceA string
	PieceB string
}

func DefaultGlyphs() Glyphs {
	return Glyphs{Empty: ".", PieceA: "X", PieceB: "O"}
}

func (g Glyphs) For(p domain.Piece) string {
	switch p {
	case domain.PieceA:
		return g.PieceA
	case domain.PieceB:
		return g.PieceB
	default:
		return g.Empty
	}
}

// Renderer prints a session as plain text. It satisfies game.Observer.
type Renderer struct {
	out    io.Writer
	glyphs Glyphs
}

var _ game.Observer = (*Renderer)(nil)

func NewRenderer(out io.Writer, glyphs Glyphs) *Renderer {
	return &Renderer{out: out, glyphs: glyphs}
}

// RenderBoard writes the column numbers followed by the rows, top row first.
func (r *Renderer) RenderBoard(b *domain.Board) {
	columns, rows := b.Dimensions()
	width := len(strconv.Itoa(columns - 1))

	cells := make([]string, columns)
	for c := range cells {
		cells[c] = pad(strconv.Itoa(c), width)
	}
	fmt.Fprintln(r.out, strings.TrimRight(strings.Join(cells, " "), " "))

	for row := rows - 1; row >= 0; row-- {
		for c, p := range b.Row(row) {
			cells[c] = pad(r.glyphs.For(p), width)
		}
		fmt.Fprintln(r.out, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) GameStarted(players [2]domain.Player, board *domain.Board) {
	for _, p := range players {
		fmt.Fprintf(r.out, "%s, you are piece %s.\n", p.Name, r.glyphs.For(p.Piece))
	}
	fmt.Fprintln(r.out)
	r.RenderBoard(board)
}

func (r *Renderer) MoveRejected(_ domain.Player, column int, err error) {
	switch {
	case errors.Is(err, domain.ErrColumnFull):
		fmt.Fprintf(r.out, "Column %d is already full. Please select another one.\n\n", column)
	case errors.Is(err, domain.ErrInvalidColumn):
		fmt.Fprintf(r.out, "Column %d is not on the board. Please select another one.\n\n", column)
	default:
		fmt.Fprintf(r.out, "%v\n\n", err)
	}
}

func (r *Renderer) MovePlayed(_ domain.Player, _ domain.Position, board *domain.Board) {
	fmt.Fprintln(r.out)
	r.RenderBoard(board)
}

func (r *Renderer) GameOver(result game.Result, _ *domain.Board) {
	if result.Winner != nil {
		fmt.Fprintf(r.out, "Congratulations %s, you have won!\n", result.Winner.Name)
		return
	}
	fmt.Fprintln(r.out, "Game Over! It is a tie.")
}

func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
