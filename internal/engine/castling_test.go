package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestCastling_KingsideEndToEnd(t *testing.T) {
	p := NewPosition()
	p.Remove(sq("F1"))
	p.Remove(sq("G1"))

	for _, s := range []string{"E1", "F1", "G1"} {
		if attackers := p.MovesToByColour(sq(s), chess.Black); len(attackers) != 0 {
			t.Fatalf("%s attacked from %v", s, attackers)
		}
	}

	moves := p.MovesFrom(sq("E1"))
	testutil.AssertEqual(t, moves, testutil.Squares("F1", "G1"))
	if p.CastlePending() {
		t.Fatal("MovesFrom left a castle pending")
	}

	if !p.IsLegal(sq("E1"), sq("G1")) {
		t.Fatal("IsLegal(E1, G1) = false, want castle")
	}
	if !p.CastlePending() {
		t.Fatal("CastlePending() = false after a legal castle check")
	}
	if !p.ApplyMove(sq("E1"), sq("G1")) {
		t.Fatal("ApplyMove(E1, G1) = false")
	}

	king, _ := p.PieceAt(sq("G1"))
	rook, _ := p.PieceAt(sq("F1"))
	testutil.AssertEqual(t, king, chess.Piece{Kind: chess.King, Colour: chess.White, Moved: true})
	testutil.AssertEqual(t, rook, chess.Piece{Kind: chess.Rook, Colour: chess.White, Moved: true})
	for _, s := range []string{"E1", "H1"} {
		if _, ok := p.PieceAt(sq(s)); ok {
			t.Errorf("PieceAt(%s) occupied after castling", s)
		}
	}
	if p.CastlePending() {
		t.Error("CastlePending() = true after ApplyMove")
	}
	if got := p.KingSquare(chess.White); got != sq("G1") {
		t.Errorf("KingSquare(White) = %v, want G1", got)
	}
	if p.SideToMove() != chess.Black {
		t.Errorf("SideToMove() = %v, want Black", p.SideToMove())
	}
}

func TestCastling_Queenside(t *testing.T) {
	p, err := NewPositionFromFEN("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1")
	if err != nil {
		t.Fatalf("NewPositionFromFEN: %v", err)
	}
	mustApply(t, p, "E8", "C8")

	king, _ := p.PieceAt(sq("C8"))
	rook, _ := p.PieceAt(sq("D8"))
	if !king.Is(chess.King, chess.Black) || !rook.Is(chess.Rook, chess.Black) {
		t.Errorf("C8/D8 = %v/%v, want black king and rook", king, rook)
	}
	if _, ok := p.PieceAt(sq("A8")); ok {
		t.Error("A8 still occupied after castling")
	}
}

func TestCastling_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		layout testutil.Layout
		to     string
	}{
		{"king has moved", testutil.Layout{
			"E1": chess.W(chess.King).WithMoved(), "H1": chess.W(chess.Rook),
		}, "G1"},
		{"rook has moved", testutil.Layout{
			"E1": chess.W(chess.King), "H1": chess.W(chess.Rook).WithMoved(),
		}, "G1"},
		{"no rook", testutil.Layout{
			"E1": chess.W(chess.King),
		}, "G1"},
		{"enemy rook in the corner", testutil.Layout{
			"E1": chess.W(chess.King), "H1": chess.B(chess.Rook),
		}, "G1"},
		{"piece in between", testutil.Layout{
			"E1": chess.W(chess.King), "H1": chess.W(chess.Rook), "G1": chess.W(chess.Knight),
		}, "G1"},
		{"queenside knight on B1", testutil.Layout{
			"E1": chess.W(chess.King), "A1": chess.W(chess.Rook), "B1": chess.W(chess.Knight),
		}, "C1"},
		{"in check", testutil.Layout{
			"E1": chess.W(chess.King), "H1": chess.W(chess.Rook), "E5": chess.B(chess.Rook).WithMoved(),
		}, "G1"},
		{"passing through attack", testutil.Layout{
			"E1": chess.W(chess.King), "H1": chess.W(chess.Rook), "F5": chess.B(chess.Rook).WithMoved(),
		}, "G1"},
		{"landing on attack", testutil.Layout{
			"E1": chess.W(chess.King), "H1": chess.W(chess.Rook), "G5": chess.B(chess.Rook).WithMoved(),
		}, "G1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.layout["A8"] = chess.B(chess.King).WithMoved()
			p := newTestPosition(t, chess.White, tt.layout)
			if p.IsLegal(sq("E1"), sq(tt.to)) {
				t.Errorf("IsLegal(E1, %s) = true, want false", tt.to)
			}
			if p.CastlePending() {
				t.Error("CastlePending() = true after a rejected castle")
			}
		})
	}
}

func TestCastling_NotAnAttack(t *testing.T) {
	p := newTestPosition(t, chess.Black, testutil.Layout{
		"E1": chess.W(chess.King),
		"H1": chess.W(chess.Rook),
		"G1": chess.B(chess.Knight),
		"A8": chess.B(chess.King).WithMoved(),
	})
	// The castling step never counts as reaching a square.
	if got := p.MovesToByColour(sq("G1"), chess.White); len(got) != 1 || got[0] != sq("H1") {
		t.Errorf("MovesToByColour(G1, White) = %v, want [H1]", got)
	}
}

func TestCastling_RevertedClearsPending(t *testing.T) {
	p := newTestPosition(t, chess.White, testutil.Layout{
		"E1": chess.W(chess.King),
		"H1": chess.W(chess.Rook),
		"A8": chess.B(chess.King).WithMoved(),
	}, WithStrictSelfCheck(true))

	if !p.IsLegal(sq("E1"), sq("G1")) {
		t.Fatal("IsLegal(E1, G1) = false, want castle")
	}
	// A rook dropped on the g-file after validation makes the landing square unsafe.
	p.board.Set(sq("G8"), chess.B(chess.Rook))
	if p.ApplyMove(sq("E1"), sq("G1")) {
		t.Fatal("ApplyMove(E1, G1) = true onto an attacked square")
	}
	if p.CastlePending() {
		t.Error("CastlePending() = true after a reverted castle")
	}
	rook, _ := p.PieceAt(sq("H1"))
	if !rook.Is(chess.Rook, chess.White) || rook.Moved {
		t.Errorf("H1 = %v, want the unmoved white rook", rook)
	}
}
