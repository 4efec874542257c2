package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RulesConfig holds settings that change how moves are judged.
type RulesConfig struct {
	// StrictSelfCheck rejects every move that leaves the mover's king
	// attacked, not only moves made while already in check.
	StrictSelfCheck bool

	// StartFEN, when set, replaces the standard starting position.
	StartFEN string
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{}
}

// Validate checks the rules configuration. Only the shape of StartFEN is
// checked here; the engine reports malformed placements.
func (r *RulesConfig) Validate() error {
	if r.StartFEN == "" {
		return nil
	}
	fields := strings.Fields(r.StartFEN)
	if len(fields) == 0 {
		return fmt.Errorf("blank start FEN: %w", errors.ErrInvalidConfig)
	}
	if n := strings.Count(fields[0], "/"); n != 7 {
		return fmt.Errorf("start FEN has %d ranks, want 8: %w", n+1, errors.ErrInvalidConfig)
	}
	return nil
}
