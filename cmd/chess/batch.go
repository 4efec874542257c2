// batch.go - Batch audit of FEN files
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/audit"
)

// runAudit audits every position in path and writes a report to w.
func runAudit(w io.Writer, path string, workers int) error {
	file, err := os.Open(path) //nolint:gosec // G304: path is user-specified
	if err != nil {
		return err
	}
	defer file.Close()

	fens, err := readFENs(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return writeAuditReport(w, audit.Batch(fens, workers))
}

// readFENs returns one FEN per non-blank line, skipping # comments.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

// auditStats summarises a batch audit.
type auditStats struct {
	agree, diverge, duplicate, failed int
}

func writeAuditReport(w io.Writer, reports []audit.Report) error {
	var stats auditStats
	bw := bufio.NewWriter(w)

	for _, r := range reports {
		switch {
		case r.Err != nil:
			stats.failed++
			fmt.Fprintf(bw, "%d: %s\n  error: %v\n", r.Index+1, r.FEN, r.Err)
		case r.Duplicate:
			stats.duplicate++
		case len(r.Divergences) > 0:
			stats.diverge++
			fmt.Fprintf(bw, "%d: %s\n", r.Index+1, r.FEN)
			for _, d := range r.Divergences {
				fmt.Fprintf(bw, "  %s\n", d)
			}
		default:
			stats.agree++
		}
	}

	fmt.Fprintf(bw, "%d positions: %d agree, %d diverge, %d duplicate, %d failed\n",
		len(reports), stats.agree, stats.diverge, stats.duplicate, stats.failed)
	return bw.Flush()
}
