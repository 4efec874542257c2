package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Layout maps square text such as "E1" to the piece standing there.
type Layout map[string]chess.Piece

// MustBoard builds a board holding exactly the pieces in layout.
// It calls t.Fatal on a malformed square.
func MustBoard(t *testing.T, layout Layout) chess.Board {
	t.Helper()
	var board chess.Board
	for text, piece := range layout {
		sq, err := chess.ParseSquare(text)
		if err != nil {
			t.Fatalf("layout square %q: %v", text, err)
		}
		board.Set(sq, piece)
	}
	return board
}

// Squares parses each name into a square, for building expected move lists.
// Invalid names panic.
func Squares(names ...string) []chess.Square {
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		squares = append(squares, chess.MustParseSquare(name))
	}
	return squares
}

// Sq is chess.MustParseSquare, shortened for table-driven tests.
func Sq(name string) chess.Square {
	return chess.MustParseSquare(name)
}
