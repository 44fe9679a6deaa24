package terminal

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stevenyany/Connect-4/internal/domain"
	"github.com/stevenyany/Connect-4/internal/service/game"
)

func TestRenderBoard(t *testing.T) {
	b, err := domain.NewBoard(7, 6)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	for _, move := range []struct {
		column int
		piece  domain.Piece
	}{
		{3, domain.PieceA},
		{3, domain.PieceB},
		{0, domain.PieceA},
		{6, domain.PieceB},
	} {
		if _, err := b.Drop(move.column, move.piece); err != nil {
			t.Fatalf("Drop: %v", err)
		}
	}

	var out bytes.Buffer
	NewRenderer(&out, DefaultGlyphs()).RenderBoard(b)

	want := strings.Join([]string{
		"0 1 2 3 4 5 6",
		". . . . . . .",
		". . . . . . .",
		". . . . . . .",
		". . . . . . .",
		". . . O . . .",
		"X . . X . . O",
		"",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("board mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderWideBoard(t *testing.T) {
	b, err := domain.NewBoard(12, 1)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if _, err := b.Drop(11, domain.PieceB); err != nil {
		t.Fatalf("Drop: %v", err)
	}

	var out bytes.Buffer
	NewRenderer(&out, Glyphs{Empty: "-", PieceA: "R", PieceB: "Y"}).RenderBoard(b)

	lines := strings.Split(out.String(), "\n")
	if lines[0] != "0  1  2  3  4  5  6  7  8  9  10 11" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "-  -  -  -  -  -  -  -  -  -  -  Y" {
		t.Fatalf("row = %q", lines[1])
	}
}

func TestRendererMessages(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, DefaultGlyphs())
	players := [2]domain.Player{
		{Name: "Ada", Piece: domain.PieceA},
		{Name: "Brian", Piece: domain.PieceB},
	}
	b, _ := domain.NewBoard(2, 2)

	r.GameStarted(players, b)
	r.MoveRejected(players[0], 1, fmt.Errorf("%w: column 1", domain.ErrColumnFull))
	r.GameOver(game.Result{Status: domain.StatusWon, Winner: &players[1]}, b)
	r.GameOver(game.Result{Status: domain.StatusDraw}, b)

	text := out.String()
	for _, want := range []string{
		"Ada, you are piece X.\n",
		"Brian, you are piece O.\n",
		"Column 1 is already full. Please select another one.\n",
		"Congratulations Brian, you have won!\n",
		"Game Over! It is a tie.\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestTerminalSessionEndToEnd(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader("3\n0\n3\n1\nfoo\n3\n2\n3\n"), &out, 7)
	renderer := NewRenderer(&out, DefaultGlyphs())
	players := [2]domain.Player{
		{Name: "Ada", Piece: domain.PieceA},
		{Name: "Brian", Piece: domain.PieceB},
	}

	s, err := game.NewSession(domain.DefaultRules(), players, prompter, renderer)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	result, err := s.Play()
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if result.Winner == nil || result.Winner.Name != "Ada" {
		t.Fatalf("unexpected result %+v", result)
	}
	if !strings.HasSuffix(out.String(), "Congratulations Ada, you have won!\n") {
		t.Fatalf("unexpected ending:\n%s", out.String())
	}
}
