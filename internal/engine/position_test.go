package engine

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// newTestPosition builds a position holding exactly layout, with toMove to
// play and check state computed.
func newTestPosition(t *testing.T, toMove chess.Colour, layout testutil.Layout, opts ...Option) *Position {
	t.Helper()
	p := NewPosition(opts...)
	p.board = testutil.MustBoard(t, layout)
	p.prevBoard = p.board
	p.toMove = toMove
	p.refreshKings()
	p.prevKings = p.kings
	p.recomputeCheck()
	return p
}

// recordingLogger keeps every debug line.
type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Debugf(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

var sq = testutil.Sq

func TestNewPosition(t *testing.T) {
	p := NewPosition()

	tests := []struct {
		square string
		want   chess.Piece
	}{
		{"A1", chess.W(chess.Rook)},
		{"E1", chess.W(chess.King)},
		{"D1", chess.W(chess.Queen)},
		{"E8", chess.B(chess.King)},
		{"H8", chess.B(chess.Rook)},
		{"B7", chess.B(chess.Pawn)},
	}
	for _, tt := range tests {
		got, ok := p.PieceAt(sq(tt.square))
		if !ok || got != tt.want {
			t.Errorf("PieceAt(%s) = %v, %v, want %v", tt.square, got, ok, tt.want)
		}
	}

	for rank := 2; rank <= 5; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			s := chess.NewSquare(file, rank)
			if _, ok := p.PieceAt(s); ok {
				t.Errorf("PieceAt(%s) occupied, want empty", s)
			}
		}
	}

	if p.SideToMove() != chess.White {
		t.Errorf("SideToMove() = %v, want White", p.SideToMove())
	}
	if c, ok := p.InCheck(); ok {
		t.Errorf("InCheck() = %v, true, want no check", c)
	}
	if p.CastlePending() {
		t.Error("CastlePending() = true on a new position")
	}
	if got := p.KingSquare(chess.White); got != sq("E1") {
		t.Errorf("KingSquare(White) = %v, want E1", got)
	}
	if got := p.KingSquare(chess.Black); got != sq("E8") {
		t.Errorf("KingSquare(Black) = %v, want E8", got)
	}
	if got := p.KingSquare(chess.Uncoloured); got != chess.NoSquare {
		t.Errorf("KingSquare(Uncoloured) = %v, want NoSquare", got)
	}
}

func TestPlace_UpdatesKingCache(t *testing.T) {
	p := NewPosition()

	p.Remove(sq("E1"))
	if got := p.KingSquare(chess.White); got != chess.NoSquare {
		t.Errorf("after Remove(E1) KingSquare(White) = %v, want NoSquare", got)
	}

	p.Place(sq("D4"), chess.W(chess.King))
	if got := p.KingSquare(chess.White); got != sq("D4") {
		t.Errorf("after Place(D4) KingSquare(White) = %v, want D4", got)
	}
}

func TestPlace_RecomputesCheck(t *testing.T) {
	p := newTestPosition(t, chess.White, testutil.Layout{
		"E1": chess.W(chess.King),
		"A8": chess.B(chess.King),
	})

	p.Place(sq("E5"), chess.B(chess.Rook))
	checked, ok := p.InCheck()
	if !ok || checked != chess.White {
		t.Errorf("InCheck() = %v, %v, want White, true", checked, ok)
	}

	p.Remove(sq("E5"))
	if checked, ok := p.InCheck(); ok {
		t.Errorf("InCheck() after removing the rook = %v, true, want no check", checked)
	}
}

func TestPlacePiece(t *testing.T) {
	tests := []struct {
		name   string
		colour string
		kind   string
		want   chess.Piece
	}{
		{"capitalised", "White", "Queen", chess.W(chess.Queen)},
		{"lower case", "black", "knight", chess.B(chess.Knight)},
		{"upper case", "WHITE", "PAWN", chess.W(chess.Pawn)},
		{"padded", " Black ", " Rook", chess.B(chess.Rook)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPosition()
			p.PlacePiece(sq("D4"), tt.colour, tt.kind)
			got, ok := p.PieceAt(sq("D4"))
			if !ok || got != tt.want {
				t.Errorf("PieceAt(D4) = %v, %v, want %v", got, ok, tt.want)
			}
		})
	}
}

func TestPlacePiece_InvalidTextPanics(t *testing.T) {
	tests := []struct {
		name   string
		colour string
		kind   string
		target error
	}{
		{"bad colour", "Purple", "Queen", errors.ErrInvalidColour},
		{"bad kind", "White", "Dragon", errors.ErrInvalidPiece},
		{"empty kind", "White", "", errors.ErrInvalidPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPosition()
			r := testutil.AssertPanics(t, func() { p.PlacePiece(sq("D4"), tt.colour, tt.kind) })
			err, ok := r.(error)
			if !ok {
				t.Fatalf("recovered %T, want error", r)
			}
			testutil.AssertErrorIs(t, err, tt.target)
		})
	}
}

func TestSetSideToMove(t *testing.T) {
	p := NewPosition()
	p.SetSideToMove(chess.Black)
	if p.SideToMove() != chess.Black {
		t.Errorf("SideToMove() = %v, want Black", p.SideToMove())
	}
	p.SetSideToMove(chess.Uncoloured)
	if p.SideToMove() != chess.Black {
		t.Errorf("SetSideToMove(Uncoloured) changed the turn to %v", p.SideToMove())
	}
}

func TestSaveRestoreState(t *testing.T) {
	p := NewPosition()
	mustApply(t, p, "E2", "E4")
	mustApply(t, p, "E7", "E5")
	saved := p.SaveState()

	mustApply(t, p, "G1", "F3")
	if diff := cmp.Diff(saved, p.SaveState()); diff == "" {
		t.Fatal("SaveState() unchanged after a move")
	}

	p.RestoreState(saved)
	if diff := cmp.Diff(saved, p.SaveState()); diff != "" {
		t.Errorf("RestoreState mismatch (-want +got):\n%s", diff)
	}

	q := NewPositionFromState(saved)
	if diff := cmp.Diff(saved, q.SaveState()); diff != "" {
		t.Errorf("NewPositionFromState mismatch (-want +got):\n%s", diff)
	}
	if q.SideToMove() != chess.White {
		t.Errorf("SideToMove() = %v, want White", q.SideToMove())
	}
}

func TestSaveState_CheckFields(t *testing.T) {
	p := newTestPosition(t, chess.White, testutil.Layout{
		"E1": chess.W(chess.King),
		"E8": chess.B(chess.Rook),
		"A8": chess.B(chess.King),
	})

	s := p.SaveState()
	if !s.CheckedFlag || s.Checked != chess.White {
		t.Errorf("State check = %v/%v, want true/White", s.CheckedFlag, s.Checked)
	}
	if s.WhiteKing != sq("E1") || s.BlackKing != sq("A8") {
		t.Errorf("State kings = %v/%v, want E1/A8", s.WhiteKing, s.BlackKing)
	}
}

func TestWithLogger(t *testing.T) {
	rec := &recordingLogger{}
	p := NewPosition(WithLogger(rec))

	if p.IsLegal(sq("E7"), sq("E5")) {
		t.Fatal("IsLegal(E7, E5) = true with White to move")
	}
	if len(rec.lines) == 0 {
		t.Fatal("no debug output recorded")
	}
	testutil.AssertContains(t, strings.Join(rec.lines, "\n"), "does not belong to White")
}

func TestWithLogger_Nil(t *testing.T) {
	p := NewPosition(WithLogger(nil))
	// Must not panic on a nil logger.
	p.IsLegal(sq("E7"), sq("E5"))
}

// mustApply validates and applies a move, failing the test if either step rejects it.
func mustApply(t *testing.T, p *Position, from, to string) {
	t.Helper()
	if !p.IsLegal(sq(from), sq(to)) {
		t.Fatalf("IsLegal(%s, %s) = false, want true", from, to)
	}
	if !p.ApplyMove(sq(from), sq(to)) {
		t.Fatalf("ApplyMove(%s, %s) = false, want true", from, to)
	}
}

func TestStateValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*State)
		wantErr bool
	}{
		{name: "starting position", mutate: func(*State) {}},
		{name: "after a move", mutate: func(s *State) { s.PrevBoard[sq("E2")] = chess.Piece{} }},
		{name: "missing king", mutate: func(s *State) { s.WhiteKing = chess.NoSquare }},
		{name: "unknown kind", mutate: func(s *State) { s.Board[sq("E3")] = chess.Piece{Kind: 9, Colour: chess.White} }, wantErr: true},
		{name: "uncoloured piece", mutate: func(s *State) { s.Board[sq("E2")] = chess.Piece{Kind: chess.Pawn, Colour: chess.Uncoloured} }, wantErr: true},
		{name: "bad previous board", mutate: func(s *State) { s.PrevBoard[sq("A1")] = chess.Piece{Kind: -1, Colour: chess.White} }, wantErr: true},
		{name: "uncoloured side to move", mutate: func(s *State) { s.ToMove = chess.Uncoloured }, wantErr: true},
		{name: "checked side uncoloured", mutate: func(s *State) { s.CheckedFlag, s.Checked = true, chess.Uncoloured }, wantErr: true},
		{name: "king off board", mutate: func(s *State) { s.BlackKing = 70 }, wantErr: true},
		{name: "negative previous king", mutate: func(s *State) { s.PrevWhiteKing = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewPosition().SaveState()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidState)
				return
			}
			if err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}
