package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// recomputeCheck rebuilds the check state by scanning the board from A1 to
// H8. The first piece whose destination set contains the opposing king's
// cached square names the checked side; if no piece does, nobody is in check.
func (p *Position) recomputeCheck() {
	p.checked = chess.Uncoloured
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece, ok := p.board.Get(sq)
		if !ok {
			continue
		}
		victim := piece.Colour.Opposite()
		king := p.KingSquare(victim)
		if !king.Valid() {
			continue
		}
		if slices.Contains(p.reach(sq), king) {
			p.checked = victim
			p.log.Debugf("%s on %s checks the %s king on %s", piece, sq, victim, king)
			return
		}
	}
}

// KingAttacked reports whether any enemy piece can move onto the given
// colour's king. A missing king is never attacked.
func (p *Position) KingAttacked(colour chess.Colour) bool {
	king := p.KingSquare(colour)
	if !king.Valid() {
		return false
	}
	return len(p.MovesToByColour(king, colour.Opposite())) > 0
}
