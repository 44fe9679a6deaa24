package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/stevenyany/Connect-4/internal/config"
	"github.com/stevenyany/Connect-4/internal/domain"
	"github.com/stevenyany/Connect-4/internal/service/game"
	"github.com/stevenyany/Connect-4/internal/transport/terminal"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.LoadConfig()
	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if envErr != nil {
		log.Println("[CONFIG] No .env file found")
	}

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(os.Stdout, "\nInput closed, leaving the game.")
			return
		}
		log.Printf("[MAIN] %v", err)
		fmt.Fprintf(os.Stderr, "connect4: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config, in io.Reader, out io.Writer) error {
	rules := cfg.Rules()
	if err := rules.Validate(); err != nil {
		return err
	}

	prompter := terminal.NewPrompter(in, out, rules.Columns)
	names, err := prompter.ReadPlayers()
	if err != nil {
		return err
	}

	players := [2]domain.Player{
		{Name: names[0], Piece: domain.PieceA},
		{Name: names[1], Piece: domain.PieceB},
	}
	renderer := terminal.NewRenderer(out, terminal.Glyphs{
		Empty:  cfg.EmptyGlyph,
		PieceA: cfg.PieceAGlyph,
		PieceB: cfg.PieceBGlyph,
	})

	session, err := game.NewSession(rules, players, prompter, renderer)
	if err != nil {
		return err
	}
	_, err = session.Play()
	return err
}

// setupLogging sends log output to path, or drops it when path is empty so
// it does not mix with the game text.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
