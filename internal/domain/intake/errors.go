package intake

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSessionNotFound = errors.New("intake session not found")
	ErrAwaitingAnswer  = errors.New("awaiting answer")
	ErrSessionComplete = errors.New("intake session already complete")
	ErrNothingToUndo   = errors.New("nothing to undo")
	ErrPromptMismatch  = errors.New("answer is not for the pending prompt")
	ErrInvalidAnswer   = errors.New("invalid answer")
	ErrRecordsDisabled = errors.New("intake records require a database")
)

// ValidationError names required baseline fields that were left blank.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required history: %s", strings.Join(e.Missing, ", "))
}
