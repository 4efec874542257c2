package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// WriteStateJSON writes a position state as a single JSON line, so it can be
// pasted back to new_game_custom.
func WriteStateJSON(w io.Writer, state engine.State) error {
	enc := json.NewEncoder(w)
	return enc.Encode(state)
}

// ReadStateJSON parses a state written by WriteStateJSON and rejects states
// the engine cannot hold.
func ReadStateJSON(text string) (engine.State, error) {
	var state engine.State
	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&state); err != nil {
		return state, &errors.ParseError{
			Err:      fmt.Errorf("%w: %v", errors.ErrInvalidState, err),
			Input:    truncate(text, 40),
			Expected: "position JSON",
		}
	}
	if err := state.Validate(); err != nil {
		return state, &errors.ParseError{Err: err, Input: truncate(text, 40), Expected: "position JSON"}
	}
	return state, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
