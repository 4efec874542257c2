// Package render draws positions and move lists as text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Glyphs for the unicode board. Black uses the outline set and White the
// solid set, which reads correctly on a dark terminal.
var unicodeGlyphs = map[chess.Colour]map[chess.Kind]string{
	chess.White: {
		chess.Pawn: "♟", chess.Knight: "♞", chess.Bishop: "♝",
		chess.Rook: "♜", chess.Queen: "♛", chess.King: "♚",
	},
	chess.Black: {
		chess.Pawn: "♙", chess.Knight: "♘", chess.Bishop: "♗",
		chess.Rook: "♖", chess.Queen: "♕", chess.King: "♔",
	},
}

// Board writes board in the given style, rank 8 at the top.
func Board(w io.Writer, board *chess.Board, cfg config.DisplayConfig) error {
	var sb strings.Builder

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		if cfg.ShowCoordinates && cfg.Style != config.Grid {
			fmt.Fprintf(&sb, "%d ", rank+1)
		}
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.NewSquare(file, rank)
			sb.WriteString(cell(board, sq, cfg.Style))
		}
		sb.WriteByte('\n')
	}
	if cfg.ShowCoordinates && cfg.Style != config.Grid {
		sb.WriteString("  ")
		for file := 0; file < chess.BoardSize; file++ {
			fmt.Fprintf(&sb, " %c ", chess.FileBase+file)
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// cell renders one square three columns wide (four for the grid).
func cell(board *chess.Board, sq chess.Square, style config.BoardStyle) string {
	if style == config.Grid {
		return " " + sq.String() + " "
	}
	piece, ok := board.Get(sq)
	if !ok {
		return " _ "
	}
	if style == config.Unicode {
		return " " + unicodeGlyphs[piece.Colour][piece.Kind] + " "
	}
	letter := piece.Kind.Letter()
	if piece.Colour == chess.Black {
		letter += 'a' - 'A'
	}
	return " " + string(letter) + " "
}

// Squares writes a comma-separated square list, or "none".
func Squares(w io.Writer, label string, squares []chess.Square) error {
	list := "none"
	if len(squares) > 0 {
		list = chess.FormatSquares(squares)
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", label, list)
	return err
}

// Piece writes a piece description such as "White Knight" or "Empty".
func Piece(w io.Writer, sq chess.Square, piece chess.Piece) error {
	_, err := fmt.Fprintf(w, "%s: %s\n", sq, piece)
	return err
}
