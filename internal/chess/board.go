package chess

import "github.com/lgbarn/chess-rules-go/internal/errors"

// Board is the 64-square array, indexed by Square. Empty squares hold the
// zero Piece. Being a plain array, a Board copies by value, which is what
// the engine's one-ply snapshot relies on.
type Board [NumSquares]Piece

// backRank is the starting arrangement of the first and last ranks, file A to H.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStartingBoard returns the standard chess starting arrangement with every
// pawn, rook and king unmoved.
func NewStartingBoard() Board {
	var b Board
	for file := 0; file < BoardSize; file++ {
		b[NewSquare(file, 0)] = W(backRank[file])
		b[NewSquare(file, 1)] = W(Pawn)
		b[NewSquare(file, 6)] = B(Pawn)
		b[NewSquare(file, 7)] = B(backRank[file])
	}
	return b
}

// Get returns the piece on sq and whether the square is occupied.
// Off-board squares read as empty.
func (b *Board) Get(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	p := b[sq]
	return p, !p.IsEmpty()
}

// Occupied reports whether sq holds a piece.
func (b *Board) Occupied(sq Square) bool {
	return sq.Valid() && !b[sq].IsEmpty()
}

// Set places p on sq. Placing an uncoloured piece is a representation error
// and panics, as does an off-board square.
func (b *Board) Set(sq Square, p Piece) {
	if !sq.Valid() {
		panic(errors.Wrapf(errors.ErrInvalidSquare, "set square %d", int(sq)))
	}
	if !p.IsEmpty() && p.Colour != White && p.Colour != Black {
		panic(errors.Wrapf(errors.ErrUncoloured, "set %s on %s", p.Kind, sq))
	}
	b[sq] = p
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

// FindKing returns the square of the given colour's king, or NoSquare if
// there is none (debug placement can produce such boards).
func (b *Board) FindKing(colour Colour) Square {
	for sq := Square(0); sq < NumSquares; sq++ {
		if b[sq].Is(King, colour) {
			return sq
		}
	}
	return NoSquare
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for _, p := range b {
		if !p.IsEmpty() {
			n++
		}
	}
	return n
}
