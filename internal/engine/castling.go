package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castlingCheck validates a king's two-file step as a castle. The king must
// be unmoved and not in check. An unmoved rook of its own colour must stand
// in the corner on that side of the same rank with every square between
// them empty, and neither square the king passes over or stops on may be
// reachable by an enemy piece.
func (p *Position) castlingCheck(king chess.Piece, from, to chess.Square) bool {
	mustBe(king, chess.King)

	if checked, ok := p.InCheck(); ok && checked == king.Colour {
		p.log.Debugf("%s cannot castle out of check", king.Colour)
		return false
	}
	if king.Moved {
		p.log.Debugf("%s king has already moved", king.Colour)
		return false
	}
	if chess.RankDelta(from, to) != 0 {
		return false
	}

	dir := sign(chess.FileDelta(from, to))
	rookSq := rookCorner(from, dir)
	rook, ok := p.board.Get(rookSq)
	if !ok || !rook.Is(chess.Rook, king.Colour) || rook.Moved {
		p.log.Debugf("no unmoved %s rook on %s", king.Colour, rookSq)
		return false
	}

	for f := from.File() + dir; f != rookSq.File(); f += dir {
		sq := chess.NewSquare(f, from.Rank())
		if p.board.Occupied(sq) {
			p.log.Debugf("castling blocked at %s", sq)
			return false
		}
	}

	enemy := king.Colour.Opposite()
	for i := 1; i <= 2; i++ {
		sq := chess.NewSquare(from.File()+i*dir, from.Rank())
		if attackers := p.MovesToByColour(sq, enemy); len(attackers) > 0 {
			p.log.Debugf("castling through %s attacked from %s", sq, chess.FormatSquares(attackers))
			return false
		}
	}

	return true
}

// rookCorner returns the corner square on the king's rank in direction dir.
func rookCorner(king chess.Square, dir int) chess.Square {
	if dir > 0 {
		return chess.NewSquare(chess.BoardSize-1, king.Rank())
	}
	return chess.NewSquare(0, king.Rank())
}

// relocateRook completes a castle whose king has already landed on kingTo,
// moving the rook from its corner to the square the king passed over.
func (p *Position) relocateRook(kingFrom, kingTo chess.Square) {
	dir := sign(chess.FileDelta(kingFrom, kingTo))
	rookFrom := rookCorner(kingFrom, dir)
	rook, ok := p.board.Get(rookFrom)
	if !ok || rook.Kind != chess.Rook {
		p.log.Debugf("castle pending but no rook on %s", rookFrom)
		return
	}
	rookTo := chess.NewSquare(kingFrom.File()+dir, kingFrom.Rank())
	p.board.Clear(rookFrom)
	p.board.Set(rookTo, rook.WithMoved())
	p.log.Debugf("castled: rook %s -> %s", rookFrom, rookTo)
}
