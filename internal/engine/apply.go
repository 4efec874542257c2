package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ApplyMove plays from -> to for the side to move. The caller must have
// validated the move with IsLegal first; a move from an empty square is a
// caller bug and panics with a *errors.MoveError.
//
// The move is committed, and the turn passes, unless it leaves the mover's
// king attacked while the mover was already in check (or, with
// WithStrictSelfCheck, in any case). A rejected move restores the position
// exactly as it was, except that any pending castle is dropped, and
// ApplyMove returns false.
func (p *Position) ApplyMove(from, to chess.Square) bool {
	piece, ok := p.board.Get(from)
	if !ok {
		panic(&errors.MoveError{
			Err:    errors.ErrEmptySource,
			From:   from.String(),
			To:     to.String(),
			Player: p.toMove.String(),
		})
	}
	if !to.Valid() {
		panic(&errors.MoveError{
			Err:    errors.ErrInvalidSquare,
			From:   from.String(),
			To:     to.String(),
			Player: p.toMove.String(),
		})
	}

	mover := p.toMove
	wasChecked := p.checked == mover
	castle := p.isCastle(from, to)
	if castle {
		p.castling = true
	}

	saved := *p

	p.prevBoard = p.board
	p.prevKings = p.kings

	captured, _ := p.board.Get(to)
	if captured.Kind == chess.King {
		p.kings[captured.Colour] = chess.NoSquare
	}
	if piece.Kind == chess.King {
		p.kings[piece.Colour] = to
	}

	p.board.Clear(from)
	p.board.Set(to, piece.WithMoved())
	if castle {
		p.relocateRook(from, to)
	}

	// TODO: en passant capture belongs here once pawns record a double step.

	p.recomputeCheck()

	if (wasChecked || p.strict) && p.KingAttacked(mover) {
		*p = saved
		p.castling = false
		p.log.Debugf("%s: %s -> %s leaves the king attacked, reverted", mover, from, to)
		return false
	}

	p.castling = false
	p.canUndo = true
	p.toMove = mover.Opposite()
	p.log.Debugf("%s: %s %s -> %s", mover, piece.Kind, from, to)
	return true
}

// TryMove validates and applies from -> to in one call. It returns a
// *errors.MoveError wrapping ErrIllegalMove when the move is rejected at
// either stage.
func (p *Position) TryMove(from, to chess.Square) error {
	if !p.IsLegal(from, to) || !p.ApplyMove(from, to) {
		return &errors.MoveError{
			Err:    errors.ErrIllegalMove,
			From:   from.String(),
			To:     to.String(),
			Player: p.toMove.String(),
		}
	}
	return nil
}

// Undo restores the board and king caches saved by the last committed move
// and hands the turn back. Only one ply of history is kept; a second Undo
// without an intervening move does nothing, and so does an Undo after the
// board was edited with Place, Remove, SetSideToMove or RestoreState.
func (p *Position) Undo() bool {
	if !p.canUndo {
		return false
	}
	p.canUndo = false
	p.board = p.prevBoard
	p.kings = p.prevKings
	p.toMove = p.toMove.Opposite()
	p.castling = false
	p.recomputeCheck()
	p.log.Debugf("undo: %s to move", p.toMove)
	return true
}
