package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// BoardStyle selects how the board is drawn.
type BoardStyle int

const (
	Letters BoardStyle = iota // Piece letters, upper case for White
	Unicode                   // Chess glyphs
	Grid                      // Square indices only, for orientation
)

func (s BoardStyle) String() string {
	switch s {
	case Letters:
		return "letters"
	case Unicode:
		return "unicode"
	case Grid:
		return "grid"
	}
	return fmt.Sprintf("BoardStyle(%d)", int(s))
}

// ParseBoardStyle converts a style name to a BoardStyle.
func ParseBoardStyle(name string) (BoardStyle, error) {
	switch strings.ToLower(name) {
	case "letters", "":
		return Letters, nil
	case "unicode":
		return Unicode, nil
	case "grid":
		return Grid, nil
	}
	return Letters, fmt.Errorf("unknown board style %q: %w", name, errors.ErrInvalidConfig)
}

// DisplayConfig holds settings for drawing the board.
type DisplayConfig struct {
	// Style selects letters, unicode glyphs or the index grid.
	Style BoardStyle

	// ShowCoordinates prints file letters and rank numbers around the board.
	ShowCoordinates bool

	// ShowBoardAfterMove redraws the board after every committed move.
	ShowBoardAfterMove bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Style:              Letters,
		ShowCoordinates:    true,
		ShowBoardAfterMove: true,
	}
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	if d.Style < Letters || d.Style > Grid {
		return fmt.Errorf("board style %d: %w", int(d.Style), errors.ErrInvalidConfig)
	}
	return nil
}
