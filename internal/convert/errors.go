package convert

import (
	"errors"
	"fmt"
)

// Code categorizes conversion conditions.
type Code string

const (
	// CodeUnmappableInput marks words that passed through unconverted.
	// Informational: reported on the result, never a failure.
	CodeUnmappableInput Code = "UNMAPPABLE_INPUT"

	// CodeAmbiguousMapping marks an equal-length phrase collision resolved
	// by registration order. Surfaced as a soft warning.
	CodeAmbiguousMapping Code = "AMBIGUOUS_MAPPING"

	// CodeInsufficientStructure marks a Full-tier request degraded to
	// Standard because no type or rule content was detectable.
	CodeInsufficientStructure Code = "INSUFFICIENT_STRUCTURE_FOR_TIER"

	// CodeMalformedInput marks unbalanced or unknown block structure on the
	// reverse path. This is the only fatal condition.
	CodeMalformedInput Code = "MALFORMED_AISP_INPUT"
)

// Warning is a non-fatal condition attached to a conversion result.
type Warning struct {
	Code     Code   `json:"code"`
	Position int    `json:"position"`
	Text     string `json:"text"`
	Symbol   string `json:"symbol,omitempty"`
}

// MalformedInputError reports unparseable AISP structure on the reverse
// path, naming the offending block.
type MalformedInputError struct {
	Block   string
	Message string
}

func (e *MalformedInputError) Error() string {
	if e.Block != "" {
		return fmt.Sprintf("%s: block %q: %s", CodeMalformedInput, e.Block, e.Message)
	}
	return fmt.Sprintf("%s: %s", CodeMalformedInput, e.Message)
}

// IsMalformedInput returns true if the error is a reverse-path structure
// error. Uses errors.As to handle wrapped errors.
func IsMalformedInput(err error) bool {
	var me *MalformedInputError
	return errors.As(err, &me)
}
