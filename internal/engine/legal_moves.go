package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsLegal reports whether the side to move may play from -> to. The source
// must hold a piece of the side to move; the piece kind then decides. A
// legal castle leaves the pending-castle flag set for ApplyMove.
func (p *Position) IsLegal(from, to chess.Square) bool {
	legal := p.isLegal(from, to)
	if legal && p.isCastle(from, to) {
		p.castling = true
	}
	return legal
}

// isLegal is IsLegal without the pending-castle side effect, for enumeration.
func (p *Position) isLegal(from, to chess.Square) bool {
	if !to.Valid() {
		return false
	}
	piece, ok := p.board.Get(from)
	if !ok {
		return false
	}
	if piece.Colour != p.toMove {
		p.log.Debugf("%s on %s does not belong to %s", piece, from, p.toMove)
		return false
	}
	return p.canPieceMove(piece, from, to, true)
}

// isCastle reports whether from -> to is a king's two-file step along its rank.
func (p *Position) isCastle(from, to chess.Square) bool {
	piece, ok := p.board.Get(from)
	if !ok || piece.Kind != chess.King {
		return false
	}
	return chess.AbsFileDelta(from, to) == 2 && chess.RankDelta(from, to) == 0
}

// MovesFrom returns every destination the side to move can reach from sq,
// in ascending square order. It is empty when sq holds no piece of the side
// to move.
func (p *Position) MovesFrom(sq chess.Square) []chess.Square {
	var moves []chess.Square
	if !p.board.Occupied(sq) {
		return moves
	}
	for to := chess.Square(0); to < chess.NumSquares; to++ {
		if p.isLegal(sq, to) {
			moves = append(moves, to)
		}
	}
	return moves
}

// MovesTo returns every square from which the side to move can legally
// move onto sq.
func (p *Position) MovesTo(sq chess.Square) []chess.Square {
	var sources []chess.Square
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		if p.isLegal(from, sq) {
			sources = append(sources, from)
		}
	}
	return sources
}

// MovesToByColour returns the squares of colour's pieces that could move
// onto sq, whoever's turn it is. Castling is not counted. This is the
// "which enemy pieces can move here" query behind castling and check.
func (p *Position) MovesToByColour(sq chess.Square, colour chess.Colour) []chess.Square {
	var sources []chess.Square
	if !sq.Valid() {
		return sources
	}
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		piece, ok := p.board.Get(from)
		if !ok || piece.Colour != colour {
			continue
		}
		if p.canPieceMove(piece, from, sq, false) {
			sources = append(sources, from)
		}
	}
	return sources
}

// reach returns every square the piece on from could move to, ignoring
// whose turn it is and castling.
func (p *Position) reach(from chess.Square) []chess.Square {
	var squares []chess.Square
	piece, ok := p.board.Get(from)
	if !ok {
		return squares
	}
	for to := chess.Square(0); to < chess.NumSquares; to++ {
		if p.canPieceMove(piece, from, to, false) {
			squares = append(squares, to)
		}
	}
	return squares
}
