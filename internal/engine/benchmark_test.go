package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":  InitialFEN,
	"Midgame":  "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":  "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"Castling": "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewPositionFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewPositionFromFEN(fen)
			}
		})
	}
}

func BenchmarkFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			p, _ := NewPositionFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p.FEN()
			}
		})
	}
}

func BenchmarkRecomputeCheck(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			p, _ := NewPositionFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p.recomputeCheck()
			}
		})
	}
}

func BenchmarkMovesFrom(b *testing.B) {
	p, _ := NewPositionFromFEN(benchFENs["Complex"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
			p.MovesFrom(sq)
		}
	}
}

func BenchmarkApplyMove(b *testing.B) {
	cases := []struct {
		name     string
		fen      string
		from, to string
	}{
		{"PawnPush", InitialFEN, "E2", "E4"},
		{"Knight", InitialFEN, "G1", "F3"},
		{"Castle", benchFENs["Castling"], "E1", "G1"},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			from, to := chess.MustParseSquare(tc.from), chess.MustParseSquare(tc.to)
			start, _ := NewPositionFromFEN(tc.fen)
			state := start.SaveState()
			p := NewPosition()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p.RestoreState(state)
				if p.IsLegal(from, to) {
					p.ApplyMove(from, to)
				}
			}
		})
	}
}
