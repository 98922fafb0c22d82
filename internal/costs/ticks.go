package costs

import (
	"fmt"
	"sort"
)

// Tick is one x-axis tick position. Emphasized ticks mark the ends of the
// highlighted caregiving interval.
type Tick struct {
	Month      int
	Emphasized bool
}

// TickLayout produces the x-axis tick positions for a cost chart: ticks at
// every stride multiple across the span, merged with the interval endpoints,
// deduplicated and sorted. The interval endpoints are always present and
// flagged emphasized; a stride tick that collides with an endpoint keeps the
// emphasis.
func TickLayout(span Span, stride int, iv Interval) ([]Tick, error) {
	if err := span.Validate(); err != nil {
		return nil, err
	}
	if stride < 1 {
		return nil, fmt.Errorf("%w: tick stride %d", ErrConfig, stride)
	}
	if err := iv.Validate(); err != nil {
		return nil, err
	}
	if !span.Contains(iv.Start) || !span.Contains(iv.End) {
		return nil, fmt.Errorf("%w: interval [%d, %d] not in [%d, %d]",
			ErrDomain, iv.Start, iv.End, span.Min, span.Max)
	}

	emphasized := map[int]bool{iv.Start: true, iv.End: true}

	months := make(map[int]struct{})
	for m := span.Min; m <= span.Max; m += stride {
		months[m] = struct{}{}
	}
	months[span.Max] = struct{}{}
	months[iv.Start] = struct{}{}
	months[iv.End] = struct{}{}

	ticks := make([]Tick, 0, len(months))
	for m := range months {
		ticks = append(ticks, Tick{Month: m, Emphasized: emphasized[m]})
	}
	sort.Slice(ticks, func(i, j int) bool { return ticks[i].Month < ticks[j].Month })
	return ticks, nil
}
