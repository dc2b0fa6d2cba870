// internal/city/errors.go
package city

import "errors"

var (
	// ErrDuplicatePosition means another building is already anchored at the cell.
	ErrDuplicatePosition = errors.New("a building already exists at this position")
	// ErrInvariantViolated is returned by Registry.Verify.
	ErrInvariantViolated = errors.New("city invariant violated")
)
