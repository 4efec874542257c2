package session

import (
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/audit"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/render"
	"github.com/lgbarn/chess-rules-go/internal/storage"
)

// command dispatches the commands available outside debug mode.
func (s *Session) command(fields []string) error {
	switch name := strings.ToLower(fields[0]); {
	case name == "quit" || name == "exit":
		s.done = true
		return s.printf("Chess finished!")
	case name == "debug_mode":
		s.debug = true
		s.log.SetDebug(true)
		return s.printf("Entered debug mode")
	case name == "board":
		return s.drawBoard()
	case name == "fen":
		return s.printf("%s", s.pos.FEN())
	case name == "load":
		return s.load(strings.Join(fields[1:], " "))
	case name == "undo":
		return s.undo()
	case name == "status":
		return s.status()
	case name == "audit":
		return s.audit()
	case name == "save" || name == "restore" || name == "delete":
		if len(fields) != 2 {
			return s.printf("usage: %s <name>", name)
		}
		return s.snapshot(name, fields[1])
	case name == "list":
		return s.list()
	case len(fields) == 3:
		return s.move(fields[0], fields[2])
	case len(fields) == 1:
		return s.listMoves(fields[0])
	default:
		return s.printf("%v: %q", errors.ErrUnknownCommand, strings.Join(fields, " "))
	}
}

// move handles "E2 -> E4". The middle token is not inspected.
func (s *Session) move(fromText, toText string) error {
	from, errFrom := chess.ParseSquare(fromText)
	to, errTo := chess.ParseSquare(toText)
	if errFrom != nil || errTo != nil {
		s.log.Debugf("move %s -> %s: %v", fromText, toText, firstError(errFrom, errTo))
		return s.printf("Invalid move!: %s -> %s", fromText, toText)
	}

	if err := s.pos.TryMove(from, to); err != nil {
		s.log.Debugf("%v", err)
		return s.printf("Invalid move!: %s -> %s", from, to)
	}
	if err := s.printf("Valid move!: %s -> %s", from, to); err != nil {
		return err
	}
	if s.cfg.Display.ShowBoardAfterMove {
		return s.drawBoard()
	}
	return nil
}

func (s *Session) listMoves(text string) error {
	sq, err := chess.ParseSquare(text)
	if err != nil {
		s.log.Debugf("%v", err)
		return s.printf("%v: %q", errors.ErrUnknownCommand, text)
	}
	return render.Squares(s.out, "Valid moves", s.pos.MovesFrom(sq))
}

func (s *Session) load(fen string) error {
	pos, err := engine.NewPositionFromFEN(fen, s.engineOptions()...)
	if err != nil {
		return s.printf("%v", err)
	}
	s.pos = pos
	if err := s.printf("Loaded %s", pos.FEN()); err != nil {
		return err
	}
	return s.drawBoard()
}

func (s *Session) undo() error {
	if !s.pos.Undo() {
		return s.printf("Nothing to undo")
	}
	if err := s.printf("Took back the last move"); err != nil {
		return err
	}
	return s.drawBoard()
}

// status prints the game status, flagging a side to move with nothing to play.
func (s *Session) status() error {
	if !s.pos.HasMoves() {
		return s.printf("%s, no moves for %s", s.pos.Status(), s.pos.SideToMove())
	}
	return s.printf("%s", s.pos.Status())
}

func (s *Session) audit() error {
	divergences, err := audit.Compare(s.pos)
	if err != nil {
		return s.printf("%v", err)
	}
	if len(divergences) == 0 {
		return s.printf("Move generation agrees with the reference")
	}
	for _, d := range divergences {
		if err := s.printf("%s", d); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) snapshot(cmd, name string) error {
	if s.store == nil {
		return s.printf("Snapshots are disabled")
	}

	switch cmd {
	case "save":
		snap := storage.Snapshot{
			Name:    name,
			FEN:     s.pos.FEN(),
			SavedAt: time.Now(),
			State:   s.pos.SaveState(),
		}
		if err := s.store.Save(snap); err != nil {
			return s.printf("%v", err)
		}
		return s.printf("Saved %s", name)

	case "restore":
		snap, err := s.store.Load(name)
		if err != nil {
			return s.printf("%v", err)
		}
		s.pos.RestoreState(snap.State)
		if err := s.printf("Restored %s", name); err != nil {
			return err
		}
		return s.drawBoard()

	default:
		if err := s.store.Delete(name); err != nil {
			return s.printf("%v", err)
		}
		return s.printf("Deleted %s", name)
	}
}

func (s *Session) list() error {
	if s.store == nil {
		return s.printf("Snapshots are disabled")
	}
	names, err := s.store.List()
	if err != nil {
		return s.printf("%v", err)
	}
	if len(names) == 0 {
		return s.printf("Snapshots: none")
	}
	return s.printf("Snapshots: %s", strings.Join(names, ", "))
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
