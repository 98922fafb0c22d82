package costs

import "fmt"

// TuitionTable holds the baseline annual tuition per age band, in whole
// dollars, for one region and care type. Immutable once built.
type TuitionTable struct {
	annual [numBands]int64
}

// NewTuitionTable builds a tuition table, rejecting negative costs.
func NewTuitionTable(infant, toddler, preschool int64) (TuitionTable, error) {
	t := TuitionTable{annual: [numBands]int64{infant, toddler, preschool}}
	for b := Infant; b < numBands; b++ {
		if t.annual[b] < 0 {
			return TuitionTable{}, fmt.Errorf("%w: negative annual cost %d for %s",
				ErrConfig, t.annual[b], b)
		}
	}
	return t, nil
}

// Annual returns the baseline annual tuition for a band.
func (t TuitionTable) Annual(b Band) int64 {
	return t.annual[b]
}

// BracketFactor is one named cost-expectation bracket and its multiplier.
type BracketFactor struct {
	Name   string
	Factor float64
}

// MultiplierSet holds the ordered cost brackets to project, with exactly
// one designated for summary display. All brackets are computed and plotted
// for comparison.
type MultiplierSet struct {
	Brackets []BracketFactor
	Selected string
}

// Validate checks that every factor is positive, names are unique, and the
// selected bracket exists.
func (m MultiplierSet) Validate() error {
	if len(m.Brackets) == 0 {
		return fmt.Errorf("%w: no cost brackets", ErrConfig)
	}
	seen := make(map[string]struct{}, len(m.Brackets))
	for _, bf := range m.Brackets {
		if bf.Factor <= 0 {
			return fmt.Errorf("%w: bracket %q has non-positive multiplier %g",
				ErrConfig, bf.Name, bf.Factor)
		}
		if _, dup := seen[bf.Name]; dup {
			return fmt.Errorf("%w: duplicate bracket %q", ErrConfig, bf.Name)
		}
		seen[bf.Name] = struct{}{}
	}
	if _, ok := seen[m.Selected]; !ok {
		return fmt.Errorf("%w: selected bracket %q", ErrLookup, m.Selected)
	}
	return nil
}

// Factor returns the multiplier for a bracket name.
func (m MultiplierSet) Factor(name string) (float64, bool) {
	for _, bf := range m.Brackets {
		if bf.Name == name {
			return bf.Factor, true
		}
	}
	return 0, false
}

// Names returns the bracket names in declaration order.
func (m MultiplierSet) Names() []string {
	names := make([]string, len(m.Brackets))
	for i, bf := range m.Brackets {
		names[i] = bf.Name
	}
	return names
}

// Interval is the caregiving duration to report on, in months of age.
// Both ends are inclusive.
type Interval struct {
	Start int
	End   int
}

// Validate reports a configuration error for an inverted interval.
func (iv Interval) Validate() error {
	if iv.Start > iv.End {
		return fmt.Errorf("%w: interval start %d > end %d", ErrConfig, iv.Start, iv.End)
	}
	return nil
}

// Point is one sampled month with the projected value per bracket.
type Point struct {
	Month  int
	Values map[string]int64
}

// MonthlySeries holds the per-month projected cost, one column per bracket,
// in whole dollars.
type MonthlySeries struct {
	Brackets []string
	Points   []Point
}

// CumulativeSeries is the running sum of a MonthlySeries over the same
// month index, per bracket.
type CumulativeSeries struct {
	Brackets []string
	Points   []Point
}

// Project samples the span at the given step and computes the monthly cost
// per bracket: the month's band tuition times the bracket multiplier,
// divided by 12 and truncated toward zero to whole dollars. Truncation
// happens after the multiplier is applied, so brackets never share rounding
// artifacts from the baseline table.
//
// The span is inclusive of both ends: when step does not evenly divide the
// range, the final month is still sampled.
func Project(table TuitionTable, multipliers MultiplierSet, span Span, step int) (MonthlySeries, error) {
	if err := span.Validate(); err != nil {
		return MonthlySeries{}, err
	}
	if step < 1 {
		return MonthlySeries{}, fmt.Errorf("%w: step %d", ErrConfig, step)
	}
	if err := multipliers.Validate(); err != nil {
		return MonthlySeries{}, err
	}

	series := MonthlySeries{Brackets: multipliers.Names()}

	for month := span.Min; ; month += step {
		if month > span.Max {
			// Keep the range end-inclusive even on an uneven step.
			if last := len(series.Points); last == 0 || series.Points[last-1].Month != span.Max {
				month = span.Max
			} else {
				break
			}
		}

		band, err := ResolveBand(month, span)
		if err != nil {
			return MonthlySeries{}, err
		}
		annual := table.Annual(band)

		values := make(map[string]int64, len(multipliers.Brackets))
		for _, bf := range multipliers.Brackets {
			values[bf.Name] = int64(float64(annual) * bf.Factor / 12)
		}
		series.Points = append(series.Points, Point{Month: month, Values: values})

		if month == span.Max {
			break
		}
	}

	return series, nil
}

// Accumulate computes the per-bracket prefix sum of a monthly series.
// An empty series yields an empty series.
func Accumulate(monthly MonthlySeries) CumulativeSeries {
	cumulative := CumulativeSeries{Brackets: monthly.Brackets}
	if len(monthly.Points) == 0 {
		return cumulative
	}

	running := make(map[string]int64, len(monthly.Brackets))
	cumulative.Points = make([]Point, 0, len(monthly.Points))
	for _, p := range monthly.Points {
		values := make(map[string]int64, len(p.Values))
		for bracket, v := range p.Values {
			running[bracket] += v
			values[bracket] = running[bracket]
		}
		cumulative.Points = append(cumulative.Points, Point{Month: p.Month, Values: values})
	}
	return cumulative
}

// Summary holds the headline figures for one bracket over one interval.
type Summary struct {
	Bracket        string
	Interval       Interval
	TotalCost      int64
	AvgMonthlyCost float64
	DurationMonths int
}

// Summarize computes the interval cost summary for one bracket:
// total = cumulative[end] - cumulative[start], average = mean of the monthly
// values over [start, end] inclusive, duration = end - start.
//
// The bracket must be a known column and both interval ends must be sampled
// months of the series.
func Summarize(cumulative CumulativeSeries, monthly MonthlySeries, bracket string, iv Interval) (Summary, error) {
	if err := iv.Validate(); err != nil {
		return Summary{}, err
	}
	if !hasBracket(cumulative.Brackets, bracket) {
		return Summary{}, fmt.Errorf("%w: bracket %q", ErrLookup, bracket)
	}

	startCum, err := valueAt(cumulative.Points, iv.Start, bracket)
	if err != nil {
		return Summary{}, err
	}
	endCum, err := valueAt(cumulative.Points, iv.End, bracket)
	if err != nil {
		return Summary{}, err
	}

	var sum int64
	var count int
	for _, p := range monthly.Points {
		if p.Month < iv.Start || p.Month > iv.End {
			continue
		}
		sum += p.Values[bracket]
		count++
	}
	if count == 0 {
		return Summary{}, fmt.Errorf("%w: no sampled months in [%d, %d]", ErrDomain, iv.Start, iv.End)
	}

	return Summary{
		Bracket:        bracket,
		Interval:       iv,
		TotalCost:      endCum - startCum,
		AvgMonthlyCost: float64(sum) / float64(count),
		DurationMonths: iv.End - iv.Start,
	}, nil
}

func hasBracket(brackets []string, name string) bool {
	for _, b := range brackets {
		if b == name {
			return true
		}
	}
	return false
}

func valueAt(points []Point, month int, bracket string) (int64, error) {
	for _, p := range points {
		if p.Month == month {
			return p.Values[bracket], nil
		}
	}
	return 0, fmt.Errorf("%w: month %d not sampled by the series", ErrDomain, month)
}
