package chess

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'A'
	RankBase = '1'
)

// Square is a board cell index, rank-major: row*8 + col, with row 0 = rank 1
// and col 0 = file A. A1 is 0, H1 is 7, A2 is 8 and H8 is 63.
type Square int

// NoSquare is the out-of-range sentinel used when a square is not found,
// e.g. a missing king.
const NoSquare Square = NumSquares

// NewSquare builds a square from a 0-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// File returns the 0-based file (column) of s.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the 0-based rank (row) of s.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// String returns the coordinate text, e.g. "E2", or "-" for an off-board square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}

// ParseSquare converts coordinate text ("A1".."H8", letter case-insensitive)
// into a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: text, Expected: "a letter A-H and a digit 1-8"}
	}
	f, r := text[0], text[1]
	if f >= 'a' && f <= 'h' {
		f -= 'a' - 'A'
	}
	if f < 'A' || f > 'H' || r < '1' || r > '8' {
		return NoSquare, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: text, Expected: "a letter A-H and a digit 1-8"}
	}
	return NewSquare(int(f-FileBase), int(r-RankBase)), nil
}

// MustParseSquare is ParseSquare for caller-supplied constants: malformed
// text is a caller bug and panics.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// FileDelta returns the signed file difference to - from.
func FileDelta(from, to Square) int {
	return to.File() - from.File()
}

// RankDelta returns the signed rank difference to - from.
func RankDelta(from, to Square) int {
	return to.Rank() - from.Rank()
}

// AbsFileDelta returns the absolute file difference between two squares.
func AbsFileDelta(a, b Square) int {
	return abs(FileDelta(a, b))
}

// AbsRankDelta returns the absolute rank difference between two squares.
func AbsRankDelta(a, b Square) int {
	return abs(RankDelta(a, b))
}

// FormatSquares joins squares as coordinate text, e.g. "E3, E4".
func FormatSquares(squares []Square) string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return strings.Join(names, ", ")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
