package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMove checks pushes and captures for a pawn. Direction is fixed by
// colour; there is no en passant.
func (p *Position) pawnMove(piece chess.Piece, from, to chess.Square) bool {
	mustBe(piece, chess.Pawn)

	dir := -1
	if piece.IsWhite() {
		dir = 1
	}

	f, t := int(from), int(to)
	legal := false
	switch t - f {
	case 8 * dir:
		if p.board.Occupied(to) {
			return false
		}
		legal = true
	case 16 * dir:
		if piece.Moved {
			return false
		}
		if p.board.Occupied(chess.Square(f + 8*dir)) {
			p.log.Debugf("pawn %s -> %s blocked at %s", from, to, chess.Square(f+8*dir))
			return false
		}
		if p.board.Occupied(to) {
			return false
		}
		legal = true
	case 7 * dir, 9 * dir:
		if !withinEdges(f, t) {
			p.log.Debugf("pawn %s -> %s crosses the A/H edge", from, to)
			return false
		}
		target, ok := p.board.Get(to)
		if !ok {
			return false
		}
		legal = piece.IsWhite() != target.IsWhite()
	}

	if chess.AbsFileDelta(from, to) > 1 {
		return false
	}
	if chess.AbsRankDelta(from, to) > 2 {
		return false
	}
	return legal
}
