package domain

import "fmt"

// Rules holds the board size and the number of pieces in a row needed to win.
type Rules struct {
	Columns   int
	Rows      int
	RunLength int
}

func DefaultRules() Rules {
	return Rules{
		Columns:   DefaultColumns,
		Rows:      DefaultRows,
		RunLength: DefaultRunLength,
	}
}

func (r Rules) Validate() error {
	if r.Columns <= 0 || r.Rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, r.Columns, r.Rows)
	}
	if r.RunLength <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRunLength, r.RunLength)
	}
	return nil
}

// MaxMoves is the number of moves after which the board is full.
func (r Rules) MaxMoves() int {
	return r.Columns * r.Rows
}

// Game alternates two players over one board until someone wins or every
// cell is taken.
type Game struct {
	board     *Board
	rules     Rules
	players   [2]Player
	turn      int
	status    GameStatus
	winner    int
	moveCount int
	lastMove  *Position
}

func NewGame(rules Rules, players [2]Player) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	for i, p := range players {
		if !p.valid() {
			return nil, fmt.Errorf("%w: player %d", ErrInvalidPlayer, i+1)
		}
	}
	if players[0].Piece != PieceA || players[1].Piece != PieceB {
		return nil, fmt.Errorf("%w: players must hold pieces A and B in order", ErrInvalidPlayer)
	}

	board, err := NewBoard(rules.Columns, rules.Rows)
	if err != nil {
		return nil, err
	}

	return &Game{
		board:   board,
		rules:   rules,
		players: players,
		status:  StatusActive,
		winner:  -1,
	}, nil
}

func (g *Game) CurrentPlayer() Player {
	return g.players[g.turn%2]
}

// MakeMove drops the current player's piece into column. Board errors are
// returned unchanged and do not consume the turn.
func (g *Game) MakeMove(column int) (Position, error) {
	if g.IsFinished() {
		return Position{}, ErrGameFinished
	}

	player := g.CurrentPlayer()
	pos, err := g.board.Drop(column, player.Piece)
	if err != nil {
		return Position{}, err
	}

	g.moveCount++
	g.lastMove = &pos

	if CheckWin(g.board, pos, player.Piece, g.rules.RunLength) {
		g.status = StatusWon
		g.winner = g.turn % 2
		return pos, nil
	}

	if g.moveCount >= g.rules.MaxMoves() {
		g.status = StatusDraw
		return pos, nil
	}

	g.turn++
	return pos, nil
}

func (g *Game) IsFinished() bool {
	return g.status == StatusWon || g.status == StatusDraw
}

func (g *Game) Status() GameStatus {
	return g.status
}

func (g *Game) Winner() (Player, bool) {
	if g.winner < 0 {
		return Player{}, false
	}
	return g.players[g.winner], true
}

func (g *Game) LastMove() (Position, bool) {
	if g.lastMove == nil {
		return Position{}, false
	}
	return *g.lastMove, true
}

func (g *Game) MoveCount() int {
	return g.moveCount
}

// Board returns a snapshot; mutating it does not affect the game.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

func (g *Game) Players() [2]Player {
	return g.players
}

func (g *Game) Rules() Rules {
	return g.rules
}
