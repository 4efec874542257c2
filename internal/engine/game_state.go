package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Status summarises the position for the side to move.
type Status int

const (
	// InPlay means the side to move is not in check.
	InPlay Status = iota
	// Check means the side to move is in check.
	Check
)

func (s Status) String() string {
	switch s {
	case InPlay:
		return "in play"
	case Check:
		return "check"
	}
	return "unknown"
}

// Status returns the state of the game for the side to move.
//
// TODO: report checkmate and stalemate once MovesFrom excludes moves that
// ApplyMove would revert; until then an empty move list is not conclusive.
func (p *Position) Status() Status {
	if checked, ok := p.InCheck(); ok && checked == p.toMove {
		return Check
	}
	return InPlay
}

// HasMoves returns true if the side to move has any move that IsLegal accepts.
func (p *Position) HasMoves() bool {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece, ok := p.board.Get(sq)
		if !ok || piece.Colour != p.toMove {
			continue
		}
		if len(p.MovesFrom(sq)) > 0 {
			return true
		}
	}
	return false
}
