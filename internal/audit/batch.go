package audit

import (
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Report is the audit result for one position of a batch.
type Report struct {
	Index       int
	FEN         string
	Divergences []Divergence
	// Duplicate is set when an earlier FEN in the batch described the same
	// position; such entries are not audited again.
	Duplicate bool
	Err       error
}

// Agrees reports whether the position was audited without divergences.
func (r Report) Agrees() bool {
	return r.Err == nil && !r.Duplicate && len(r.Divergences) == 0
}

// Batch audits every FEN on workers goroutines and returns one report per
// input, in input order.
func Batch(fens []string, workers int) []Report {
	type job struct {
		index int
		fen   string
		pos   *engine.Position
	}

	reports := make([]Report, len(fens))
	detector := hashing.NewDuplicateDetector(0)
	var jobs []job

	for i, fen := range fens {
		reports[i] = Report{Index: i, FEN: fen}
		pos, err := engine.NewPositionFromFEN(fen)
		if err != nil {
			reports[i].Err = err
			continue
		}
		board := pos.Board()
		if detector.CheckAndAdd(&board, pos.SideToMove()) {
			reports[i].Duplicate = true
			continue
		}
		jobs = append(jobs, job{index: i, fen: fen, pos: pos})
	}

	results := worker.Map(jobs, func(j job) Report {
		divergences, err := Compare(j.pos)
		return Report{Index: j.index, FEN: j.fen, Divergences: divergences, Err: err}
	}, worker.WithWorkers(workers))

	for _, r := range results {
		reports[r.Index] = r
	}
	return reports
}
