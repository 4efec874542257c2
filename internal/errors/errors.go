// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates coordinate text that is not "A1".."H8",
	// or a square index outside 0-63.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidPiece indicates a piece name outside the fixed vocabulary.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrInvalidColour indicates a colour name outside the fixed vocabulary.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrUncoloured indicates the "nobody" colour reached a board occupant.
	ErrUncoloured = errors.New("uncoloured piece")

	// ErrEmptySource indicates a move was applied from an empty square.
	ErrEmptySource = errors.New("no piece on source square")

	// ErrWrongKind indicates a piece predicate was handed another kind of piece.
	ErrWrongKind = errors.New("wrong piece kind")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidState indicates a saved position that cannot be decoded.
	ErrInvalidState = errors.New("invalid position state")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSnapshotNotFound indicates a named snapshot is missing from storage.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrUnknownCommand indicates an interpreter command that is not recognised.
	ErrUnknownCommand = errors.New("unknown command")
)

// MoveError wraps errors with move context: the source and destination
// squares as text and the side that attempted the move. It implements the
// error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	From   string // Source square text, e.g. "E2"
	To     string // Destination square text (empty if not applicable)
	Player string // Side to move when the error occurred (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Player != "" {
		parts = append(parts, e.Player)
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s -> %s", e.From, e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("square %s", e.From))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to parse user supplied text, such as a
// coordinate, a piece name or a FEN field.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text that failed to parse
	Expected string // What was expected
}

// Error returns a formatted error message with the offending input.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}
	if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target.
// It forwards to the standard library so callers need only one errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
