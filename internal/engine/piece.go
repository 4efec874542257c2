package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// canPieceMove checks if the piece standing on from can move to to. It does
// not look at whose turn it is. A king's two-square step is evaluated as a
// castle only when allowCastle is set; reachability queries leave it unset
// since castling never captures.
func (p *Position) canPieceMove(piece chess.Piece, from, to chess.Square, allowCastle bool) bool {
	switch piece.Kind {
	case chess.Pawn:
		return p.pawnMove(piece, from, to)
	case chess.Knight:
		return p.knightMove(piece, from, to)
	case chess.Bishop:
		return p.bishopMove(piece, from, to)
	case chess.Rook:
		return p.rookMove(piece, from, to)
	case chess.Queen:
		return p.queenMove(piece, from, to)
	case chess.King:
		return p.kingMove(piece, from, to, allowCastle)
	case chess.NoKind:
		return false
	default:
		panic(errors.Wrapf(errors.ErrInvalidPiece, "kind %d on %s", int(piece.Kind), from))
	}
}

// mustBe asserts that a predicate was handed the kind it knows how to move.
func mustBe(piece chess.Piece, kind chess.Kind) {
	if piece.Kind != kind {
		panic(errors.Wrapf(errors.ErrWrongKind, "%s is not a %s", piece, kind))
	}
}

// knightMove accepts exactly the L-shaped jumps, each checked against edge
// wrap along the path it implies.
func (p *Position) knightMove(piece chess.Piece, from, to chess.Square) bool {
	mustBe(piece, chess.Knight)

	df := chess.AbsFileDelta(from, to)
	dr := chess.AbsRankDelta(from, to)
	if !(df == 1 && dr == 2) && !(df == 2 && dr == 1) {
		return false
	}

	f, t := int(from), int(to)
	switch t - f {
	case 17, 15: // two up, one across
		if !withinEdges(f+16, t) {
			p.log.Debugf("knight %s -> %s wraps going up", from, to)
			return false
		}
	case -17, -15: // two down, one across
		if !withinEdges(f-16, t) {
			p.log.Debugf("knight %s -> %s wraps going down", from, to)
			return false
		}
	case 10: // one up, two right
		if !withinEdges(f+9, t) || !withinEdges(f+10, t) {
			return false
		}
	case 6: // one up, two left
		if !withinEdges(f+7, t) || !withinEdges(f+6, t) {
			return false
		}
	case -10: // one down, two left
		if !withinEdges(f-9, t) || !withinEdges(f-10, t) {
			return false
		}
	case -6: // one down, two right
		if !withinEdges(f-7, t) || !withinEdges(f-6, t) {
			return false
		}
	}

	return p.canEnter(piece.Colour, to)
}

func (p *Position) bishopMove(piece chess.Piece, from, to chess.Square) bool {
	mustBe(piece, chess.Bishop)
	return p.diagonalMove(piece.Colour, from, to)
}

func (p *Position) rookMove(piece chess.Piece, from, to chess.Square) bool {
	mustBe(piece, chess.Rook)
	return p.straightMove(piece.Colour, from, to)
}

// queenMove is legal iff the same squares make a bishop or a rook move.
func (p *Position) queenMove(piece chess.Piece, from, to chess.Square) bool {
	mustBe(piece, chess.Queen)
	return p.diagonalMove(piece.Colour, from, to) || p.straightMove(piece.Colour, from, to)
}

// diagonalMove: equal non-zero file and rank deltas, nothing in between.
func (p *Position) diagonalMove(colour chess.Colour, from, to chess.Square) bool {
	df := chess.AbsFileDelta(from, to)
	dr := chess.AbsRankDelta(from, to)
	if df < 1 || dr < 1 || df != dr {
		return false
	}
	if !p.isDiagonalClear(from, to) {
		return false
	}
	return p.canEnter(colour, to)
}

// straightMove: exactly one of the file and rank deltas is zero, nothing in between.
func (p *Position) straightMove(colour chess.Colour, from, to chess.Square) bool {
	df := chess.AbsFileDelta(from, to)
	dr := chess.AbsRankDelta(from, to)
	if (df == 0) == (dr == 0) {
		return false
	}
	if !p.isStraightClear(from, to) {
		return false
	}
	return p.canEnter(colour, to)
}

// kingMove accepts a single step in any of the eight directions, or hands a
// two-square step along the rank to the castling check.
func (p *Position) kingMove(piece chess.Piece, from, to chess.Square, allowCastle bool) bool {
	mustBe(piece, chess.King)

	f, t := int(from), int(to)
	legal := false
	switch t - f {
	case 8, 1, -1, -8:
		legal = withinEdges(f, t) && p.canEnter(piece.Colour, to)
	case 7, 9:
		legal = withinEdges(f+8, t) && p.canEnter(piece.Colour, to)
	case -7, -9:
		legal = withinEdges(f-8, t) && p.canEnter(piece.Colour, to)
	case 2, -2:
		if !allowCastle {
			return false
		}
		return p.castlingCheck(piece, from, to)
	}

	if legal && (chess.AbsFileDelta(from, to) > 1 || chess.AbsRankDelta(from, to) > 1) {
		p.log.Debugf("king %s -> %s moved too far", from, to)
		return false
	}
	return legal
}
