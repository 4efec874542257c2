package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// withinEdges guards index arithmetic against wrapping from file H to file
// A. Deltas such as +7, +9 or +17 land on valid indices even when the step
// crosses a board edge, so the pawn, king and knight predicates pass the
// square they stepped through (cur) and the destination (target) here.
//
// A step from the A file onto a multiple of 7, or from a multiple of 7 onto
// the A file, is rejected, except that target 0 (and cur 0) are always let
// through. This corner allowance is kept exactly as the rule was first
// written, quirks included: a white pawn on A6 cannot capture on B7 and a
// knight on A5 cannot reach B7.
func withinEdges(cur, target int) bool {
	if cur < 0 || cur > chess.NumSquares-1 {
		return false
	}
	if cur%8 == 0 && target%7 == 0 {
		return target == 0
	}
	if cur%7 == 0 && target%8 == 0 {
		return cur == 0
	}
	return true
}

// isDiagonalClear checks that every square strictly between from and to,
// which must share a diagonal, is empty.
func (p *Position) isDiagonalClear(from, to chess.Square) bool {
	fileDir := sign(chess.FileDelta(from, to))
	rankDir := sign(chess.RankDelta(from, to))
	steps := chess.AbsFileDelta(from, to)

	for i := 1; i < steps; i++ {
		sq := chess.NewSquare(from.File()+i*fileDir, from.Rank()+i*rankDir)
		if p.board.Occupied(sq) {
			p.log.Debugf("diagonal %s -> %s blocked at %s", from, to, sq)
			return false
		}
	}
	return true
}

// isStraightClear checks that every square strictly between from and to,
// which must share a file or a rank, is empty.
func (p *Position) isStraightClear(from, to chess.Square) bool {
	fileDir := sign(chess.FileDelta(from, to))
	rankDir := sign(chess.RankDelta(from, to))
	steps := chess.AbsFileDelta(from, to) + chess.AbsRankDelta(from, to)

	for i := 1; i < steps; i++ {
		sq := chess.NewSquare(from.File()+i*fileDir, from.Rank()+i*rankDir)
		if p.board.Occupied(sq) {
			p.log.Debugf("line %s -> %s blocked at %s", from, to, sq)
			return false
		}
	}
	return true
}

// canEnter reports whether a piece of the given colour may finish on to:
// the square is empty or holds an enemy piece.
func (p *Position) canEnter(colour chess.Colour, to chess.Square) bool {
	other, ok := p.board.Get(to)
	if !ok {
		return true
	}
	return colour.IsWhite() != other.IsWhite()
}
