package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidPiece", ErrInvalidPiece, ErrInvalidPiece},
		{"ErrInvalidColour", ErrInvalidColour, ErrInvalidColour},
		{"ErrUncoloured", ErrUncoloured, ErrUncoloured},
		{"ErrEmptySource", ErrEmptySource, ErrEmptySource},
		{"ErrWrongKind", ErrWrongKind, ErrWrongKind},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrSnapshotNotFound", ErrSnapshotNotFound, ErrSnapshotNotFound},
		{"ErrUnknownCommand", ErrUnknownCommand, ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrInvalidSquare, ErrInvalidPiece) {
		t.Error("ErrInvalidSquare should not match ErrInvalidPiece")
	}
	if errors.Is(ErrIllegalMove, ErrEmptySource) {
		t.Error("ErrIllegalMove should not match ErrEmptySource")
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to parse position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
	if !Is(wrapped, ErrInvalidFEN) {
		t.Errorf("Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:    ErrIllegalMove,
				From:   "E2",
				To:     "E5",
				Player: "White",
			},
			contains: []string{"White", "E2 -> E5", "illegal move"},
		},
		{
			name: "square only",
			err: &MoveError{
				Err:  ErrEmptySource,
				From: "D4",
			},
			contains: []string{"square D4", "no piece on source square"},
		},
		{
			name:     "error only",
			err:      &MoveError{Err: ErrIllegalMove},
			contains: []string{"illegal move"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_Unwrap(t *testing.T) {
	err := &MoveError{Err: ErrIllegalMove, From: "A1", To: "A8"}

	if !errors.Is(err, ErrIllegalMove) {
		t.Error("errors.Is(MoveError, ErrIllegalMove) = false, want true")
	}

	var me *MoveError
	wrapped := fmt.Errorf("session: %w", err)
	if !As(wrapped, &me) {
		t.Fatal("As(wrapped, *MoveError) = false, want true")
	}
	if me.From != "A1" {
		t.Errorf("MoveError.From = %q, want %q", me.From, "A1")
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "input and expectation",
			err:  &ParseError{Err: ErrInvalidSquare, Input: "Z9", Expected: "A1..H8"},
			want: `"Z9": expected A1..H8: invalid square`,
		},
		{
			name: "error only",
			err:  &ParseError{Err: ErrInvalidPiece},
			want: "invalid piece",
		},
		{
			name: "no error",
			err:  &ParseError{Input: "x"},
			want: `"x"`,
		},
		{
			name: "empty",
			err:  &ParseError{},
			want: "parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrInvalidSquare, "place_piece %s", "Q9")
	if !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("errors.Is(Wrapf(...), ErrInvalidSquare) = false, want true")
	}
	if got, want := err.Error(), "place_piece Q9: invalid square"; got != want {
		t.Errorf("Wrapf().Error() = %q, want %q", got, want)
	}
}
