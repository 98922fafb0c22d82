// Package pipeline wires configuration, reference data, the projection
// engine, and the cache into a single estimate computation.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/marciooo/nido/internal/config"
	"github.com/marciooo/nido/internal/costs"
	"github.com/marciooo/nido/internal/dataset"
	"github.com/marciooo/nido/internal/store"
)

// Request holds the inputs for one estimate.
type Request struct {
	Region   string
	CareType dataset.CareType
	Bracket  string
	Interval costs.Interval
	Step     int
}

// Result holds everything the presentation layer renders.
type Result struct {
	Request     Request
	Bands       dataset.BandCosts // baseline after tuition overrides
	Table       costs.TuitionTable
	Multipliers costs.MultiplierSet
	Span        costs.Span
	Monthly     costs.MonthlySeries
	Cumulative  costs.CumulativeSeries
	Summary     costs.Summary
	FromCache   bool
}

// DefaultRequest builds a request from the configured defaults.
func DefaultRequest(cfg config.Config) (Request, error) {
	careType, err := dataset.ParseCareType(cfg.General.CareType)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Region:   cfg.General.Region,
		CareType: careType,
		Bracket:  cfg.General.Bracket,
		Interval: cfg.DefaultInterval(),
		Step:     cfg.Ages.Step,
	}, nil
}

// ResolveBands looks up the region's baseline band costs in the dataset and
// applies any configured tuition overrides. A nil set means the embedded
// reference table for the request's care type.
func ResolveBands(cfg config.Config, req Request, set dataset.Set) (dataset.BandCosts, error) {
	if set == nil {
		set = dataset.Default(req.CareType)
	}
	bc, ok := set.Lookup(req.Region)
	if !ok {
		return dataset.BandCosts{}, fmt.Errorf("%w: region %q", costs.ErrLookup, req.Region)
	}

	if ov, ok := cfg.Tuition.Lookup(req.Region); ok {
		if ov.Infant != nil {
			bc.Infant = *ov.Infant
		}
		if ov.Toddler != nil {
			bc.Toddler = *ov.Toddler
		}
		if ov.Preschool != nil {
			bc.Preschool = *ov.Preschool
		}
	}
	return bc, nil
}

// Run computes the full estimate: resolve the tuition table, project the
// monthly series per bracket, accumulate, and summarize over the requested
// interval. A non-nil cache is consulted first and updated on miss; cache
// errors fall back to recomputation, which is authoritative.
func Run(cfg config.Config, req Request, set dataset.Set, cache *store.Cache) (*Result, error) {
	span, err := cfg.Span()
	if err != nil {
		return nil, err
	}
	if !span.Contains(req.Interval.Start) || !span.Contains(req.Interval.End) {
		return nil, fmt.Errorf("%w: interval [%d, %d] not in [%d, %d]",
			costs.ErrDomain, req.Interval.Start, req.Interval.End, span.Min, span.Max)
	}

	multipliers, err := cfg.MultiplierSet(req.Bracket)
	if err != nil {
		return nil, err
	}

	bands, err := ResolveBands(cfg, req, set)
	if err != nil {
		return nil, err
	}
	table, err := bands.Table()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Request:     req,
		Bands:       bands,
		Table:       table,
		Multipliers: multipliers,
		Span:        span,
	}

	fingerprint := store.Fingerprint(table, multipliers, span, req.Step)
	if cache != nil {
		monthly, cumulative, hit, err := cache.GetProjection(fingerprint)
		if err == nil && hit {
			result.Monthly = monthly
			result.Cumulative = cumulative
			result.FromCache = true
		}
	}

	if !result.FromCache {
		monthly, err := costs.Project(table, multipliers, span, req.Step)
		if err != nil {
			return nil, err
		}
		result.Monthly = monthly
		result.Cumulative = costs.Accumulate(monthly)

		if cache != nil {
			// Best effort; a failed save never fails the estimate.
			_ = cache.SaveProjection(fingerprint, req.Region, string(req.CareType),
				result.Monthly, result.Cumulative)
		}
	}

	summary, err := costs.Summarize(result.Cumulative, result.Monthly, req.Bracket, req.Interval)
	if err != nil {
		return nil, err
	}
	result.Summary = summary

	return result, nil
}

// AdjustedBands scales the baseline band costs by the selected bracket's
// multiplier, for the tuition metrics display.
func AdjustedBands(r *Result) dataset.BandCosts {
	factor, ok := r.Multipliers.Factor(r.Request.Bracket)
	if !ok {
		return r.Bands
	}
	return dataset.BandCosts{
		Infant:    int64(float64(r.Bands.Infant) * factor),
		Toddler:   int64(float64(r.Bands.Toddler) * factor),
		Preschool: int64(float64(r.Bands.Preschool) * factor),
	}
}

// CacheDir returns the XDG-compliant cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "nido")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "nido")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "estimates.db")
}
