package dataset

import (
	"errors"
	"fmt"
)

// ============================================================================
// ERROR TAXONOMY
// ============================================================================
// Every failure is scoped to one recomputation; nothing here is fatal and
// nothing may corrupt the shared dataset. Callers match with errors.Is.
// ============================================================================

var (
	// ErrEntityNotFound means a country or aggregate name is absent from
	// the dataset.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrDataUnavailable means a live data source could not provide a
	// dataset. The live loader must fail with this rather than return
	// partial data.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrInvalidParameter means a builder received an unsupported
	// parameter value, such as an unknown aggregation method token.
	ErrInvalidParameter = errors.New("invalid parameter")
)

func notFound(entity string) error {
	return fmt.Errorf("%w: %q", ErrEntityNotFound, entity)
}

// ParseMethod validates an aggregation-method token. Unrecognized tokens
// are rejected, never guessed.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodSimple:
		return MethodSimple, nil
	case MethodWeighted:
		return MethodWeighted, nil
	}
	return "", fmt.Errorf("%w: aggregation method %q", ErrInvalidParameter, s)
}
