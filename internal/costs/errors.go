package costs

import "errors"

// Error taxonomy. Every failure in this package wraps one of these
// sentinels so callers can classify without string matching.
var (
	// ErrDomain marks a month or interval outside the configured age range.
	ErrDomain = errors.New("outside configured age range")

	// ErrConfig marks an invalid projection configuration (inverted range,
	// non-positive step or multiplier).
	ErrConfig = errors.New("invalid projection configuration")

	// ErrLookup marks an unknown bracket or band name.
	ErrLookup = errors.New("unknown name")
)
