// Package costs implements the childcare cost projection engine: age band
// resolution, monthly cost projection, cumulative aggregation, interval
// summaries, and chart tick layout. Everything here is pure arithmetic over
// the caller's inputs; loading reference data and rendering belong elsewhere.
package costs

import (
	"fmt"
	"strings"
)

// Band is one tier of the age partition used for tuition lookup.
type Band int

const (
	Infant Band = iota
	Toddler
	Preschool

	numBands
)

// bandStart[b] is the first month belonging to band b. Boundaries are
// half-open on the upper end: month 12 is Toddler, month 48 is Preschool.
var bandStart = [numBands]int{0, 12, 48}

var bandNames = [numBands]string{"Infant", "Toddler", "Preschool"}

func (b Band) String() string {
	if b < 0 || b >= numBands {
		return fmt.Sprintf("Band(%d)", int(b))
	}
	return bandNames[b]
}

// Bands returns all bands in ascending age order.
func Bands() []Band {
	return []Band{Infant, Toddler, Preschool}
}

// StartMonth returns the first month of the band.
func (b Band) StartMonth() int {
	return bandStart[b]
}

// ParseBand maps a band name to its Band, case-insensitively.
// "4-Year-Old" is accepted as an alias for Preschool, matching the column
// name used by the Child Care Aware reference tables.
func ParseBand(name string) (Band, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "infant":
		return Infant, nil
	case "toddler":
		return Toddler, nil
	case "preschool", "4-year-old":
		return Preschool, nil
	}
	return 0, fmt.Errorf("%w: band %q", ErrLookup, name)
}

// Span is the inclusive month range a projection covers.
type Span struct {
	Min int
	Max int
}

// Validate reports a configuration error for an inverted or negative span.
func (s Span) Validate() error {
	if s.Min < 0 {
		return fmt.Errorf("%w: min month %d is negative", ErrConfig, s.Min)
	}
	if s.Min > s.Max {
		return fmt.Errorf("%w: min month %d > max month %d", ErrConfig, s.Min, s.Max)
	}
	return nil
}

// Contains reports whether the month falls inside the span.
func (s Span) Contains(month int) bool {
	return month >= s.Min && month <= s.Max
}

// ResolveBand returns the band a month of age belongs to. Months outside
// the span are a domain error, never clamped.
func ResolveBand(month int, span Span) (Band, error) {
	if err := span.Validate(); err != nil {
		return 0, err
	}
	if !span.Contains(month) {
		return 0, fmt.Errorf("%w: month %d not in [%d, %d]", ErrDomain, month, span.Min, span.Max)
	}

	band := Infant
	for b := Toddler; b < numBands; b++ {
		if month >= bandStart[b] {
			band = b
		}
	}
	return band, nil
}
