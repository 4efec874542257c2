// Package session implements the line-oriented command interpreter that sits
// between a player and the rules engine.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/logging"
	"github.com/lgbarn/chess-rules-go/internal/render"
	"github.com/lgbarn/chess-rules-go/internal/storage"
)

// Snapshots is the part of the snapshot store the interpreter uses.
type Snapshots interface {
	Save(snap storage.Snapshot) error
	Load(name string) (storage.Snapshot, error)
	Delete(name string) error
	List() ([]string, error)
}

// Session owns one Position and feeds it commands read from cfg.InputFile.
// It is not safe for concurrent use.
type Session struct {
	cfg   *config.Config
	log   *logging.Logger
	store Snapshots
	pos   *engine.Position

	in    *bufio.Scanner
	out   io.Writer
	debug bool
	done  bool
}

// New creates a session over cfg's streams. store may be nil, in which case
// the snapshot commands report that storage is disabled.
func New(cfg *config.Config, log *logging.Logger, store Snapshots) (*Session, error) {
	if log == nil {
		log = logging.Discard()
	}
	s := &Session{
		cfg:   cfg,
		log:   log,
		store: store,
		in:    bufio.NewScanner(cfg.InputFile),
		out:   cfg.OutputFile,
		debug: cfg.Debug,
	}
	log.SetDebug(cfg.Debug)

	if cfg.Rules.StartFEN != "" {
		pos, err := engine.NewPositionFromFEN(cfg.Rules.StartFEN, s.engineOptions()...)
		if err != nil {
			return nil, err
		}
		s.pos = pos
	} else {
		s.pos = engine.NewPosition(s.engineOptions()...)
	}
	return s, nil
}

func (s *Session) engineOptions() []engine.Option {
	return []engine.Option{
		engine.WithLogger(s.log),
		engine.WithStrictSelfCheck(s.cfg.Rules.StrictSelfCheck),
	}
}

// Position returns the position the session is playing.
func (s *Session) Position() *engine.Position {
	return s.pos
}

// Debug reports whether the debug-only commands are enabled.
func (s *Session) Debug() bool {
	return s.debug
}

// Run draws the board and prompts, then executes one command per input line
// until the input ends or a quit command is read. Command failures are
// reported on the output and do not stop the loop; only write and read
// errors are returned.
func (s *Session) Run() error {
	if err := s.drawBoard(); err != nil {
		return err
	}
	for !s.done {
		if err := s.prompt(); err != nil {
			return err
		}
		line, ok := s.readLine()
		if !ok {
			break
		}
		if err := s.Execute(line); err != nil {
			return err
		}
	}
	return s.in.Err()
}

// Execute runs a single command line. It is exported so front ends other
// than Run can drive a session one line at a time.
func (s *Session) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	s.log.Debugf("command %q", line)

	if s.debug {
		if handled, err := s.debugCommand(fields); handled {
			return err
		}
	}
	return s.command(fields)
}

func (s *Session) prompt() error {
	if _, err := fmt.Fprintf(s.out, "Player: %s's move:\n", s.pos.SideToMove()); err != nil {
		return err
	}
	if checked, ok := s.pos.InCheck(); ok {
		_, err := fmt.Fprintf(s.out, "Checked: %s!\n", checked)
		return err
	}
	return nil
}

// readLine returns the next input line, or false at end of input.
func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimRight(s.in.Text(), "\r"), true
}

func (s *Session) drawBoard() error {
	board := s.pos.Board()
	return render.Board(s.out, &board, s.cfg.Display)
}

func (s *Session) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.out, format+"\n", args...)
	return err
}
