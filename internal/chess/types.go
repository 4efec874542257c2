// Package chess provides core chess types: colours, piece kinds, pieces,
// squares and the 64-square board array.
package chess

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
	Uncoloured // Only used for "no player is in check"; never a board occupant
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Uncoloured"
	}
}

// Opposite returns the opposite colour. Uncoloured has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return Uncoloured
	}
}

// IsWhite reports the colour as a boolean, white=true and black=false.
// It panics on Uncoloured: that sentinel must never reach a board occupant.
func (c Colour) IsWhite() bool {
	switch c {
	case White:
		return true
	case Black:
		return false
	default:
		panic(errors.Wrapf(errors.ErrUncoloured, "colour %d has no side", int(c)))
	}
}

// ColourFromBool maps white=true, black=false.
func ColourFromBool(white bool) Colour {
	if white {
		return White
	}
	return Black
}

// ParseColour converts a case-insensitive colour name ("White", "black") to a Colour.
func ParseColour(name string) (Colour, error) {
	switch strings.ToLower(name) {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	}
	return Uncoloured, &errors.ParseError{Err: errors.ErrInvalidColour, Input: name, Expected: "Black or White"}
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// TracksMoved reports whether the kind carries a has-moved flag.
// Only pawns, rooks and kings do: their history gates double steps and castling.
func (k Kind) TracksMoved() bool {
	switch k {
	case Pawn, Rook, King:
		return true
	case Knight, Bishop, Queen, NoKind:
		return false
	default:
		panic(errors.Wrapf(errors.ErrInvalidPiece, "kind %d", int(k)))
	}
}

// ParseKind converts a case-insensitive piece name ("Pawn", "knight") to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "pawn":
		return Pawn, nil
	case "knight":
		return Knight, nil
	case "bishop":
		return Bishop, nil
	case "rook":
		return Rook, nil
	case "queen":
		return Queen, nil
	case "king":
		return King, nil
	}
	return NoKind, &errors.ParseError{Err: errors.ErrInvalidPiece, Input: name, Expected: "Pawn, Rook, Knight, Bishop, Queen or King"}
}

// Piece is a coloured piece value. The zero Piece is an empty square.
// Pieces have no identity: when a piece's moved flag changes the board entry
// is replaced with a new value.
type Piece struct {
	Kind   Kind   `json:"kind"`
	Colour Colour `json:"colour"`
	Moved  bool   `json:"moved,omitempty"`
}

// NewPiece creates an unmoved piece of the given kind and colour.
func NewPiece(kind Kind, colour Colour) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates an unmoved white piece.
func W(kind Kind) Piece {
	return NewPiece(kind, White)
}

// B creates an unmoved black piece.
func B(kind Kind) Piece {
	return NewPiece(kind, Black)
}

// IsEmpty reports whether p is the empty-square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// IsWhite reports the piece colour as a boolean; see Colour.IsWhite.
func (p Piece) IsWhite() bool {
	return p.Colour.IsWhite()
}

// WithMoved returns the moved-state variant of p. Kinds that do not track
// movement are returned unchanged.
func (p Piece) WithMoved() Piece {
	if p.Kind.TracksMoved() {
		p.Moved = true
	}
	return p
}

// Unmoved reports whether p is a pawn, rook or king that has not moved yet.
func (p Piece) Unmoved() bool {
	return p.Kind.TracksMoved() && !p.Moved
}

// Is reports whether p has the given kind and colour, ignoring the moved flag.
func (p Piece) Is(kind Kind, colour Colour) bool {
	return p.Kind == kind && p.Colour == colour
}

// String returns e.g. "White Rook" or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}
