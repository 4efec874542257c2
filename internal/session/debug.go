package session

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/render"
)

// debugCommand runs the commands that only exist in debug mode. It reports
// whether fields named one of them.
func (s *Session) debugCommand(fields []string) (bool, error) {
	if len(fields) != 1 {
		return false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "leave_debug":
		s.debug = false
		s.log.SetDebug(false)
		return true, s.printf("left debug mode...")
	case "place_piece":
		return true, s.placePiece()
	case "black":
		s.pos.SetSideToMove(chess.Black)
		return true, s.printf("swapping to black...")
	case "white":
		s.pos.SetSideToMove(chess.White)
		return true, s.printf("swapping to white...")
	case "serialize":
		return true, s.serialize()
	case "new_game_custom":
		return true, s.newGameCustom()
	}
	return false, nil
}

// placePiece reads "coord colour kind" from the next line, e.g. "D4 white queen".
func (s *Session) placePiece() error {
	if err := s.printf("Enter: coord, colour, piece"); err != nil {
		return err
	}
	line, ok := s.readLine()
	if !ok {
		return nil
	}

	sq, piece, err := parsePlacement(line)
	if err != nil {
		return s.printf("%v", err)
	}
	s.pos.Place(sq, piece)
	if err := render.Piece(s.out, sq, piece); err != nil {
		return err
	}
	return s.drawBoard()
}

func parsePlacement(line string) (chess.Square, chess.Piece, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return chess.NoSquare, chess.Piece{}, &errors.ParseError{
			Err:      errors.ErrInvalidPiece,
			Input:    line,
			Expected: "coord colour piece",
		}
	}
	sq, err := chess.ParseSquare(fields[0])
	if err != nil {
		return chess.NoSquare, chess.Piece{}, err
	}
	colour, err := chess.ParseColour(fields[1])
	if err != nil {
		return chess.NoSquare, chess.Piece{}, err
	}
	kind, err := chess.ParseKind(fields[2])
	if err != nil {
		return chess.NoSquare, chess.Piece{}, err
	}
	return sq, chess.NewPiece(kind, colour), nil
}

func (s *Session) serialize() error {
	if err := s.printf("serializing..."); err != nil {
		return err
	}
	if err := render.WriteStateJSON(s.out, s.pos.SaveState()); err != nil {
		return err
	}
	return s.printf("done!")
}

// newGameCustom reads a JSON state, as written by serialize, from the next
// line and replaces the position with it.
func (s *Session) newGameCustom() error {
	if err := s.printf("Enter a specific game state:"); err != nil {
		return err
	}
	line, ok := s.readLine()
	if !ok {
		return nil
	}
	if err := s.printf("argument given: '%s'", line); err != nil {
		return err
	}

	state, err := render.ReadStateJSON(line)
	if err != nil {
		return s.printf("%v", err)
	}
	s.pos = engine.NewPositionFromState(state, s.engineOptions()...)
	return s.drawBoard()
}
