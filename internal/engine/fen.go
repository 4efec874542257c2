package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoKind
	}
}

// PieceToFENLetter returns the FEN letter for a piece: upper case for
// White, lower case for Black.
func PieceToFENLetter(piece chess.Piece) byte {
	letter := piece.Kind.Letter()
	if piece.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewPositionFromFEN creates a position from a FEN string. Only the piece
// placement field is required. Castling rights decide which kings and
// corner rooks are unmoved, and pawns off their starting rank are marked
// moved. The en passant and clock fields are accepted but not used.
func NewPositionFromFEN(fen string, opts ...Option) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	var board chess.Board
	if err := parsePiecePositions(&board, parts[0]); err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}

	rights, err := parseCastlingRights(parts)
	if err != nil {
		return nil, err
	}
	markMoved(&board, rights)

	p := NewPosition(opts...)
	p.board = board
	p.prevBoard = board
	p.toMove = toMove
	p.refreshKings()
	p.prevKings = p.kings
	p.recomputeCheck()
	return p, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in %q: %w", len(ranks), positions, errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			case c > unicode.MaxASCII:
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			default:
				kind := ConvertFENCharToKind(byte(c))
				if kind == chess.NoKind {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.NewSquare(file, rank), chess.NewPiece(kind, colour))
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field. White moves when it is absent.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.Uncoloured, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// castlingRights holds the four castling flags of a FEN string.
type castlingRights struct {
	whiteKing, whiteQueen, blackKing, blackQueen bool
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(parts []string) (castlingRights, error) {
	var rights castlingRights
	if len(parts) < 3 || parts[2] == "-" {
		return rights, nil
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.whiteKing = true
		case 'Q':
			rights.whiteQueen = true
		case 'k':
			rights.blackKing = true
		case 'q':
			rights.blackQueen = true
		default:
			return rights, fmt.Errorf("invalid castling field: %s: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	return rights, nil
}

// markMoved sets the moved flag on every pawn, rook and king whose history
// the placement and castling rights rule out as unmoved.
func markMoved(board *chess.Board, rights castlingRights) {
	unmovedRooks := map[chess.Square]chess.Colour{}
	if rights.whiteKing {
		unmovedRooks[chess.NewSquare(7, 0)] = chess.White
	}
	if rights.whiteQueen {
		unmovedRooks[chess.NewSquare(0, 0)] = chess.White
	}
	if rights.blackKing {
		unmovedRooks[chess.NewSquare(7, 7)] = chess.Black
	}
	if rights.blackQueen {
		unmovedRooks[chess.NewSquare(0, 7)] = chess.Black
	}
	kingHome := map[chess.Colour]chess.Square{
		chess.White: chess.NewSquare(4, 0),
		chess.Black: chess.NewSquare(4, 7),
	}
	kingRights := map[chess.Colour]bool{
		chess.White: rights.whiteKing || rights.whiteQueen,
		chess.Black: rights.blackKing || rights.blackQueen,
	}

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece, ok := board.Get(sq)
		if !ok {
			continue
		}
		moved := false
		switch piece.Kind {
		case chess.Pawn:
			home := 1
			if piece.Colour == chess.Black {
				home = 6
			}
			moved = sq.Rank() != home
		case chess.Rook:
			colour, ok := unmovedRooks[sq]
			moved = !ok || colour != piece.Colour
		case chess.King:
			moved = sq != kingHome[piece.Colour] || !kingRights[piece.Colour]
		}
		if moved {
			board.Set(sq, piece.WithMoved())
		}
	}
}

// FEN returns the position as a FEN string. Castling rights are derived
// from unmoved kings and corner rooks; the en passant field is always "-"
// and the clocks are not tracked.
func (p *Position) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &p.board)
	sb.WriteByte(' ')
	if p.toMove == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.castlingField())
	sb.WriteString(" - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := board.Get(chess.NewSquare(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// castlingField builds the FEN castling availability from the board.
func (p *Position) castlingField() string {
	unmoved := func(file, rank int, kind chess.Kind, colour chess.Colour) bool {
		piece, ok := p.board.Get(chess.NewSquare(file, rank))
		return ok && piece.Is(kind, colour) && !piece.Moved
	}

	var sb strings.Builder
	if unmoved(4, 0, chess.King, chess.White) {
		if unmoved(7, 0, chess.Rook, chess.White) {
			sb.WriteByte('K')
		}
		if unmoved(0, 0, chess.Rook, chess.White) {
			sb.WriteByte('Q')
		}
	}
	if unmoved(4, 7, chess.King, chess.Black) {
		if unmoved(7, 7, chess.Rook, chess.Black) {
			sb.WriteByte('k')
		}
		if unmoved(0, 7, chess.Rook, chess.Black) {
			sb.WriteByte('q')
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
