// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Rules
	strictSelfCheck = flag.Bool("strict", false, "Reject every move that leaves the mover's king attacked")
	startFEN        = flag.String("fen", "", "Start from this FEN position instead of the standard one")

	// Display
	boardStyle = flag.String("style", "letters", "Board style: letters, unicode, grid")
	noCoords   = flag.Bool("nocoords", false, "Don't label files and ranks")
	noRedraw   = flag.Bool("noredraw", false, "Don't redraw the board after each move")

	// Snapshots
	storeDir = flag.String("db", "", "Directory for saved positions (default: in memory)")
	noStore  = flag.Bool("nostore", false, "Disable the save, restore and list commands")

	// Streams
	inputFile  = flag.String("i", "", "Read commands from this file (default: stdin)")
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write log messages to this file (default: stderr)")

	// Batch audit
	auditFile  = flag.String("audit", "", "Audit every FEN in this file against the reference generator and exit")
	numWorkers = flag.Int("workers", runtime.NumCPU(), "Number of goroutines for -audit")

	// Other options
	debugMode = flag.Bool("debug", false, "Start in debug mode")
	quiet     = flag.Bool("s", false, "Silent mode (no informational messages)")
	help      = flag.Bool("h", false, "Show help")
	version   = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration. Streams are
// opened separately by main.
func applyFlags(cfg *config.Config) error {
	applyRulesFlags(cfg)
	if err := applyDisplayFlags(cfg); err != nil {
		return err
	}
	applyStorageFlags(cfg)

	cfg.Debug = *debugMode
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// applyRulesFlags configures the engine options.
func applyRulesFlags(cfg *config.Config) {
	cfg.Rules.StrictSelfCheck = *strictSelfCheck
	cfg.Rules.StartFEN = *startFEN
}

// applyDisplayFlags configures board drawing.
func applyDisplayFlags(cfg *config.Config) error {
	style, err := config.ParseBoardStyle(*boardStyle)
	if err != nil {
		return err
	}
	cfg.Display.Style = style
	cfg.Display.ShowCoordinates = !*noCoords
	cfg.Display.ShowBoardAfterMove = !*noRedraw
	return nil
}

// applyStorageFlags configures the snapshot store.
func applyStorageFlags(cfg *config.Config) {
	switch {
	case *noStore:
		cfg.Storage.Enabled = false
	case *storeDir != "":
		cfg.Storage.Enabled = true
		cfg.Storage.Dir = *storeDir
		cfg.Storage.InMemory = false
	}
}
