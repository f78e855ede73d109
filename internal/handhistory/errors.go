package handhistory

import (
	"errors"
	"fmt"

	"github.com/lox/starshand/internal/lookup"
)

var (
	ErrEmptyInput             = errors.New("empty hand history")
	ErrMalformedHeader        = errors.New("malformed header")
	ErrMissingSeatGrammar     = errors.New("seat line does not match")
	ErrMissingHero            = errors.New("hero hole cards not found")
	ErrUnrecognizedActionLine = errors.New("unrecognized action line")
	ErrMalformedSummary       = errors.New("malformed summary")
	ErrNoWinners              = errors.New("no winners")

	// ErrUnknownEnumValue is the lookup table error, re-exported for callers
	// that only import this package.
	ErrUnknownEnumValue = lookup.ErrUnknownEnumValue
)

// LineError ties a parse failure to the offending line. Line is the index
// into the split line sequence, which counts section markers as lines.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func lineError(s *sections, idx int, err error) error {
	return &LineError{Line: idx, Text: s.line(idx), Err: err}
}
