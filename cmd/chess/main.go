// chess is an interactive chess rules engine driven by text commands.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/logging"
	"github.com/lgbarn/chess-rules-go/internal/session"
	"github.com/lgbarn/chess-rules-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up input, output and log files
	closers := setupStreams(cfg)
	defer closeAll(closers)

	log := logging.New(cfg.LogFile, cfg.Debug)

	if *auditFile != "" {
		if err := runAudit(cfg.OutputFile, *auditFile, *numWorkers); err != nil {
			log.Errorf("%v", err)
			closeAll(closers)
			os.Exit(1)
		}
		return
	}

	store, err := openStore(cfg, log)
	if err != nil {
		log.Errorf("%v", err)
		closeAll(closers)
		os.Exit(1)
	}
	if store != nil {
		defer store.Close()
	}

	if err := run(cfg, log, store); err != nil {
		log.Errorf("%v", err)
		if store != nil {
			store.Close()
		}
		closeAll(closers)
		os.Exit(1)
	}
}

// run plays one session to the end of its input.
func run(cfg *config.Config, log *logging.Logger, store *storage.Storage) error {
	var snapshots session.Snapshots
	if store != nil {
		snapshots = store
	}

	s, err := session.New(cfg, log, snapshots)
	if err != nil {
		return err
	}
	if err := s.Run(); err != nil {
		return err
	}
	if cfg.Verbosity > 0 {
		log.Infof("final position %s", s.Position().FEN())
	}
	return nil
}

// openStore opens the snapshot store, or returns nil when snapshots are off.
func openStore(cfg *config.Config, log *logging.Logger) (*storage.Storage, error) {
	if !cfg.Storage.Enabled {
		return nil, nil
	}
	store, err := storage.Open(cfg.Storage, log)
	if err != nil {
		return nil, err
	}
	if cfg.Verbosity > 1 {
		if cfg.Storage.InMemory {
			log.Infof("snapshots kept in memory")
		} else {
			log.Infof("snapshots stored in %s", cfg.Storage.Dir)
		}
	}
	return store, nil
}

// setupStreams opens the files named by -i, -o and -l.
func setupStreams(cfg *config.Config) []io.Closer {
	var closers []io.Closer

	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file %s: %v\n", *inputFile, err)
			os.Exit(1)
		}
		cfg.InputFile = file
		closers = append(closers, file)
	}

	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
			closeAll(closers)
			os.Exit(1)
		}
		cfg.SetOutput(file)
		closers = append(closers, file)
	}

	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			closeAll(closers)
			os.Exit(1)
		}
		cfg.LogFile = file
		closers = append(closers, file)
	}

	return closers
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		_ = c.Close()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "An interactive chess rules engine.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  E2 -> E4         move a piece\n")
	fmt.Fprintf(os.Stderr, "  E2               list the moves of the piece on E2\n")
	fmt.Fprintf(os.Stderr, "  board, fen       show the position\n")
	fmt.Fprintf(os.Stderr, "  load <fen>       set up a FEN position\n")
	fmt.Fprintf(os.Stderr, "  undo             take back the last move\n")
	fmt.Fprintf(os.Stderr, "  status           show check and whether the side to move has moves\n")
	fmt.Fprintf(os.Stderr, "  audit            compare move generation with a reference generator\n")
	fmt.Fprintf(os.Stderr, "  save <name>      save the position\n")
	fmt.Fprintf(os.Stderr, "  restore <name>   restore a saved position\n")
	fmt.Fprintf(os.Stderr, "  delete <name>    delete a saved position\n")
	fmt.Fprintf(os.Stderr, "  list             list saved positions\n")
	fmt.Fprintf(os.Stderr, "  debug_mode       enable place_piece, black, white, serialize,\n")
	fmt.Fprintf(os.Stderr, "                   new_game_custom and leave_debug\n")
	fmt.Fprintf(os.Stderr, "  quit             leave\n")
}
