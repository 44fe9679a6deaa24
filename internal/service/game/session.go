package game

import (
	"fmt"
	"log"
	"time"

	"github.com/stevenyany/Connect-4/internal/domain"
	"github.com/stevenyany/Connect-4/pkg/uid"
)

// MoveSource asks a player which column to play. It blocks until the player
// answers; any error it returns ends the session.
type MoveSource interface {
	RequestColumn(playerName string) (int, error)
}

// Observer is told about everything that happens in a session. Boards are
// snapshots and may be kept.
type Observer interface {
	GameStarted(players [2]domain.Player, board *domain.Board)
	MoveRejected(player domain.Player, column int, err error)
	MovePlayed(player domain.Player, pos domain.Position, board *domain.Board)
	GameOver(result Result, board *domain.Board)
}

type Result struct {
	GameID   string
	Status   domain.GameStatus
	Winner   *domain.Player
	Moves    int
	Duration time.Duration
}

type Session struct {
	GameID    string
	CreatedAt time.Time
	game      *domain.Game
	source    MoveSource
	observer  Observer
}

func NewSession(rules domain.Rules, players [2]domain.Player, source MoveSource, observer Observer) (*Session, error) {
	g, err := domain.NewGame(rules, players)
	if err != nil {
		return nil, err
	}

	s := &Session{
		GameID:    uid.GenerateGameID(),
		CreatedAt: time.Now(),
		game:      g,
		source:    source,
		observer:  observer,
	}

	log.Printf("[SESSION] Created session %s: %s vs %s on %dx%d, %d to win",
		s.GameID, players[0].Name, players[1].Name, rules.Columns, rules.Rows, rules.RunLength)
	return s, nil
}

// Play runs turns until the game is won or drawn. Bad columns are reported
// to the observer and the same player is asked again.
func (s *Session) Play() (Result, error) {
	s.observer.GameStarted(s.game.Players(), s.game.Board())

	for !s.game.IsFinished() {
		player := s.game.CurrentPlayer()

		column, err := s.source.RequestColumn(player.Name)
		if err != nil {
			log.Printf("[SESSION] Session %s aborted waiting for %s: %v", s.GameID, player.Name, err)
			return Result{}, fmt.Errorf("request column from %s: %w", player.Name, err)
		}

		pos, err := s.game.MakeMove(column)
		if domain.IsRecoverable(err) {
			log.Printf("[MOVE] %s rejected column %d in %s: %v", player.Name, column, s.GameID, err)
			s.observer.MoveRejected(player, column, err)
			continue
		}
		if err != nil {
			return Result{}, fmt.Errorf("move by %s: %w", player.Name, err)
		}

		log.Printf("[MOVE] %s played (%d, %d) in %s", player.Name, pos.Column, pos.Row, s.GameID)
		s.observer.MovePlayed(player, pos, s.game.Board())
	}

	result := s.result()
	s.logResult(result)
	s.observer.GameOver(result, s.game.Board())
	return result, nil
}

func (s *Session) Game() *domain.Game {
	return s.game
}

func (s *Session) result() Result {
	result := Result{
		GameID:   s.GameID,
		Status:   s.game.Status(),
		Moves:    s.game.MoveCount(),
		Duration: time.Since(s.CreatedAt),
	}
	if winner, ok := s.game.Winner(); ok {
		result.Winner = &winner
	}
	return result
}

func (s *Session) logResult(result Result) {
	if result.Winner == nil {
		log.Printf("[SESSION] Session %s ended in a draw after %d moves", s.GameID, result.Moves)
		return
	}

	board := s.game.Board()
	pos, _ := s.game.LastMove()
	dir, _ := domain.WinningDirection(board, pos, result.Winner.Piece, s.game.Rules().RunLength)
	log.Printf("[SESSION] Session %s won by %s with a %s line after %d moves (%s)",
		s.GameID, result.Winner.Name, dir, result.Moves, result.Duration.Round(time.Millisecond))
}
