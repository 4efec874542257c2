// Package engine provides chess move validation and board manipulation.
package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Logger receives the engine's debug trace. *logging.Logger satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

// Option configures a Position.
type Option func(*Position)

// WithLogger routes the engine's debug trace to l.
func WithLogger(l Logger) Option {
	return func(p *Position) {
		if l != nil {
			p.log = l
		}
	}
}

// WithStrictSelfCheck makes ApplyMove reject every move that leaves the
// mover's own king reachable by an enemy piece, not only moves made while
// already in check.
func WithStrictSelfCheck(strict bool) Option {
	return func(p *Position) {
		p.strict = strict
	}
}

// Position is a game in progress: the board, whose turn it is, check state,
// the pending-castle flag and the king-square caches, each with one ply of
// history for rollback.
type Position struct {
	board     chess.Board
	prevBoard chess.Board
	toMove    chess.Colour
	checked   chess.Colour // Uncoloured when nobody is in check
	castling  bool

	// King squares indexed by colour; NoSquare when a king is missing.
	kings     [2]chess.Square
	prevKings [2]chess.Square

	// canUndo is set by a committed move and cleared by anything that
	// edits the board outside ApplyMove.
	canUndo bool

	strict bool
	log    Logger
}

// NewPosition creates a position in the standard starting arrangement with
// White to move.
func NewPosition(opts ...Option) *Position {
	board := chess.NewStartingBoard()
	p := &Position{
		board:     board,
		prevBoard: board,
		toMove:    chess.White,
		checked:   chess.Uncoloured,
		log:       nopLogger{},
	}
	p.kings[chess.White] = chess.MustParseSquare("E1")
	p.kings[chess.Black] = chess.MustParseSquare("E8")
	p.prevKings = p.kings
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PieceAt returns the piece on sq and whether the square is occupied.
func (p *Position) PieceAt(sq chess.Square) (chess.Piece, bool) {
	return p.board.Get(sq)
}

// Board returns a copy of the current board.
func (p *Position) Board() chess.Board {
	return p.board
}

// SideToMove returns the colour whose turn it is.
func (p *Position) SideToMove() chess.Colour {
	return p.toMove
}

// InCheck returns the colour currently in check, if any.
func (p *Position) InCheck() (chess.Colour, bool) {
	return p.checked, p.checked != chess.Uncoloured
}

// CastlePending reports whether a castle has been validated but its rook
// relocation not yet performed.
func (p *Position) CastlePending() bool {
	return p.castling
}

// KingSquare returns the cached square of the given colour's king, or
// NoSquare if that king is missing.
func (p *Position) KingSquare(colour chess.Colour) chess.Square {
	if colour != chess.White && colour != chess.Black {
		return chess.NoSquare
	}
	return p.kings[colour]
}

// Place puts a piece on sq without any legality check. It is meant for
// setup and debugging; king caches and check state are refreshed afterwards.
func (p *Position) Place(sq chess.Square, piece chess.Piece) {
	p.board.Set(sq, piece)
	p.canUndo = false
	p.refreshKings()
	p.recomputeCheck()
	p.log.Debugf("placed %s on %s", piece, sq)
}

// Remove empties sq without any legality check.
func (p *Position) Remove(sq chess.Square) {
	p.Place(sq, chess.Piece{})
}

// PlacePiece is Place driven by text, as typed at a debug prompt: a colour
// name (Black, White) and a piece name (Pawn, Rook, Knight, Bishop, Queen,
// King), both case-insensitive. Any other text is a caller bug and panics.
func (p *Position) PlacePiece(sq chess.Square, colourName, kindName string) {
	colour, err := chess.ParseColour(strings.TrimSpace(colourName))
	if err != nil {
		panic(err)
	}
	kind, err := chess.ParseKind(strings.TrimSpace(kindName))
	if err != nil {
		panic(err)
	}
	p.Place(sq, chess.NewPiece(kind, colour))
}

// SetSideToMove hands the turn to colour. Debug only.
func (p *Position) SetSideToMove(colour chess.Colour) {
	if colour != chess.White && colour != chess.Black {
		return
	}
	p.toMove = colour
	p.canUndo = false
}

func (p *Position) refreshKings() {
	p.kings[chess.White] = p.board.FindKing(chess.White)
	p.kings[chess.Black] = p.board.FindKing(chess.Black)
}

// State is every field of a Position, for serialisation collaborators.
// RestoreState(SaveState()) is lossless.
type State struct {
	Board         chess.Board  `json:"board"`
	PrevBoard     chess.Board  `json:"prev_board"`
	ToMove        chess.Colour `json:"current_player"`
	CheckedFlag   bool         `json:"checked_flag"`
	Checked       chess.Colour `json:"checked_player"`
	CastlingFlag  bool         `json:"castling_flag"`
	WhiteKing     chess.Square `json:"wkc"`
	BlackKing     chess.Square `json:"bkc"`
	PrevWhiteKing chess.Square `json:"old_wkc"`
	PrevBlackKing chess.Square `json:"old_bkc"`
}

// Validate checks that s can be restored without breaking the engine's
// assumptions: every occupant on both boards is a real piece of a real
// colour, the side to move and checked side are White or Black, and the king
// caches are board squares or NoSquare. Errors wrap errors.ErrInvalidState.
func (s State) Validate() error {
	if err := validateBoard("board", &s.Board); err != nil {
		return err
	}
	if err := validateBoard("prev_board", &s.PrevBoard); err != nil {
		return err
	}
	if !isSide(s.ToMove) {
		return errors.Wrapf(errors.ErrInvalidState, "current player %d", int(s.ToMove))
	}
	if s.CheckedFlag && !isSide(s.Checked) {
		return errors.Wrapf(errors.ErrInvalidState, "checked player %d", int(s.Checked))
	}

	kings := []struct {
		name string
		sq   chess.Square
	}{
		{"wkc", s.WhiteKing},
		{"bkc", s.BlackKing},
		{"old_wkc", s.PrevWhiteKing},
		{"old_bkc", s.PrevBlackKing},
	}
	for _, k := range kings {
		if k.sq < 0 || k.sq > chess.NoSquare {
			return errors.Wrapf(errors.ErrInvalidState, "%s %d", k.name, int(k.sq))
		}
	}
	return nil
}

func validateBoard(name string, board *chess.Board) error {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board[sq]
		if piece.Kind == chess.NoKind {
			continue
		}
		if piece.Kind < chess.Pawn || piece.Kind > chess.King {
			return errors.Wrapf(errors.ErrInvalidState, "%s: kind %d on %s", name, int(piece.Kind), sq)
		}
		if !isSide(piece.Colour) {
			return errors.Wrapf(errors.ErrInvalidState, "%s: colour %d on %s", name, int(piece.Colour), sq)
		}
	}
	return nil
}

func isSide(c chess.Colour) bool {
	return c == chess.White || c == chess.Black
}

// SaveState captures the full position for later restoration.
func (p *Position) SaveState() State {
	_, inCheck := p.InCheck()
	return State{
		Board:         p.board,
		PrevBoard:     p.prevBoard,
		ToMove:        p.toMove,
		CheckedFlag:   inCheck,
		Checked:       p.checked,
		CastlingFlag:  p.castling,
		WhiteKing:     p.kings[chess.White],
		BlackKing:     p.kings[chess.Black],
		PrevWhiteKing: p.prevKings[chess.White],
		PrevBlackKing: p.prevKings[chess.Black],
	}
}

// RestoreState restores a previously saved position. Engine options such as
// the logger are kept.
func (p *Position) RestoreState(s State) {
	p.board = s.Board
	p.prevBoard = s.PrevBoard
	p.toMove = s.ToMove
	p.checked = chess.Uncoloured
	if s.CheckedFlag {
		p.checked = s.Checked
	}
	p.castling = s.CastlingFlag
	p.canUndo = false
	p.kings[chess.White] = s.WhiteKing
	p.kings[chess.Black] = s.BlackKing
	p.prevKings[chess.White] = s.PrevWhiteKing
	p.prevKings[chess.Black] = s.PrevBlackKing
}

// NewPositionFromState builds a position from a saved state.
func NewPositionFromState(s State, opts ...Option) *Position {
	p := NewPosition(opts...)
	p.RestoreState(s)
	return p
}
