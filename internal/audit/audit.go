// Package audit cross-checks engine move generation against the
// dragontoothmg legal move generator.
//
// The engine differs from standard chess in places, such as the missing en
// passant capture and the literal edge-wrap guard, so divergences are
// reported rather than treated as failures.
package audit

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Divergence lists, for one source square, the destinations only the
// reference generator accepts (Missing) and those only the engine accepts
// (Extra).
type Divergence struct {
	From    chess.Square
	Missing []chess.Square
	Extra   []chess.Square
}

func (d Divergence) String() string {
	var parts []string
	if len(d.Missing) > 0 {
		parts = append(parts, "missing "+chess.FormatSquares(d.Missing))
	}
	if len(d.Extra) > 0 {
		parts = append(parts, "extra "+chess.FormatSquares(d.Extra))
	}
	return fmt.Sprintf("%s: %s", d.From, strings.Join(parts, "; "))
}

// Compare generates the side to move's moves with both the engine and the
// reference generator and returns every source square where they disagree,
// ordered by square. Both kings must be on the board.
func Compare(pos *engine.Position) ([]Divergence, error) {
	if pos.KingSquare(chess.White) == chess.NoSquare || pos.KingSquare(chess.Black) == chess.NoSquare {
		return nil, errors.Wrap(errors.ErrInvalidState, "audit needs both kings on the board")
	}

	want := referenceMoves(pos.FEN())
	got := engineMoves(pos)

	sources := maps.Keys(want)
	for from := range got {
		if _, ok := want[from]; !ok {
			sources = append(sources, from)
		}
	}
	slices.Sort(sources)

	var out []Divergence
	for _, from := range sources {
		d := Divergence{
			From:    from,
			Missing: difference(want[from], got[from]),
			Extra:   difference(got[from], want[from]),
		}
		if len(d.Missing) > 0 || len(d.Extra) > 0 {
			out = append(out, d)
		}
	}
	return out, nil
}

// referenceMoves maps each source square to its sorted, de-duplicated
// destinations. Promotions produce one move per piece, hence the dedupe.
func referenceMoves(fen string) map[chess.Square][]chess.Square {
	board := dragontoothmg.ParseFen(fen)
	moves := make(map[chess.Square][]chess.Square)
	for _, m := range board.GenerateLegalMoves() {
		from, to := chess.Square(m.From()), chess.Square(m.To())
		if !slices.Contains(moves[from], to) {
			moves[from] = append(moves[from], to)
		}
	}
	for _, dests := range moves {
		slices.Sort(dests)
	}
	return moves
}

func engineMoves(pos *engine.Position) map[chess.Square][]chess.Square {
	moves := make(map[chess.Square][]chess.Square)
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		if dests := pos.MovesFrom(from); len(dests) > 0 {
			moves[from] = dests
		}
	}
	return moves
}

// difference returns the members of a not in b.
func difference(a, b []chess.Square) []chess.Square {
	var out []chess.Square
	for _, sq := range a {
		if !slices.Contains(b, sq) {
			out = append(out, sq)
		}
	}
	return out
}
