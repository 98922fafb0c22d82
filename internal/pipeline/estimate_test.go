package pipeline

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/marciooo/nido/internal/config"
	"github.com/marciooo/nido/internal/costs"
	"github.com/marciooo/nido/internal/dataset"
	"github.com/marciooo/nido/internal/store"
)

func testRequest() Request {
	return Request{
		Region:   "National",
		CareType: dataset.CenterBased,
		Bracket:  config.BracketAverage,
		Interval: costs.Interval{Start: 6, End: 48},
		Step:     1,
	}
}

func TestRun_ComputesEstimate(t *testing.T) {
	cfg := config.DefaultConfig()

	result, err := Run(cfg, testRequest(), nil, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Monthly.Points) != 61 {
		t.Errorf("monthly points = %d, want 61", len(result.Monthly.Points))
	}
	if result.Summary.DurationMonths != 42 {
		t.Errorf("duration = %d, want 42", result.Summary.DurationMonths)
	}
	if result.Summary.TotalCost <= 0 {
		t.Errorf("total cost = %d, want > 0", result.Summary.TotalCost)
	}
	if result.FromCache {
		t.Error("uncached run reported FromCache")
	}
}

func TestRun_AppliesTuitionOverride(t *testing.T) {
	cfg := config.DefaultConfig()
	infant := int64(24000)
	cfg.Tuition.Overrides = map[string]config.BandOverride{
		"National": {Infant: &infant},
	}

	result, err := Run(cfg, testRequest(), nil, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Bands.Infant != 24000 {
		t.Errorf("infant baseline = %d, want 24000", result.Bands.Infant)
	}
	// Other bands keep the reference values.
	national, _ := dataset.Default(dataset.CenterBased).Lookup("National")
	if result.Bands.Toddler != national.Toddler {
		t.Errorf("toddler baseline = %d, want %d", result.Bands.Toddler, national.Toddler)
	}

	if got := result.Monthly.Points[0].Values[config.BracketAverage]; got != 2000 {
		t.Errorf("month 0 average = %d, want 2000", got)
	}
}

func TestRun_CacheRoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	cache, err := store.Open(filepath.Join(t.TempDir(), "estimates.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer cache.Close()

	first, err := Run(cfg, testRequest(), nil, cache)
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if first.FromCache {
		t.Error("first run reported FromCache")
	}

	second, err := Run(cfg, testRequest(), nil, cache)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if !second.FromCache {
		t.Error("second run missed the cache")
	}
	if !reflect.DeepEqual(first.Monthly, second.Monthly) {
		t.Error("cached monthly series differs from computed")
	}
	if !reflect.DeepEqual(first.Summary, second.Summary) {
		t.Error("cached summary differs from computed")
	}
}

func TestRun_Errors(t *testing.T) {
	cfg := config.DefaultConfig()

	req := testRequest()
	req.Region = "Atlantis"
	if _, err := Run(cfg, req, nil, nil); !errors.Is(err, costs.ErrLookup) {
		t.Errorf("unknown region error = %v, want ErrLookup", err)
	}

	req = testRequest()
	req.Bracket = "Premium"
	if _, err := Run(cfg, req, nil, nil); !errors.Is(err, costs.ErrLookup) {
		t.Errorf("unknown bracket error = %v, want ErrLookup", err)
	}

	req = testRequest()
	req.Interval = costs.Interval{Start: 6, End: 90}
	if _, err := Run(cfg, req, nil, nil); !errors.Is(err, costs.ErrDomain) {
		t.Errorf("out-of-span interval error = %v, want ErrDomain", err)
	}
}

func TestDefaultRequest(t *testing.T) {
	cfg := config.DefaultConfig()
	req, err := DefaultRequest(cfg)
	if err != nil {
		t.Fatalf("DefaultRequest: %v", err)
	}
	if req.Region != "National" || req.CareType != dataset.CenterBased {
		t.Errorf("request = %+v", req)
	}
	if req.Interval.Start != 6 || req.Interval.End != 48 {
		t.Errorf("interval = %+v, want [6, 48]", req.Interval)
	}
}

func TestAdjustedBands(t *testing.T) {
	cfg := config.DefaultConfig()
	req := testRequest()
	req.Bracket = config.BracketHigh

	result, err := Run(cfg, req, nil, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	adjusted := AdjustedBands(result)
	want := int64(float64(result.Bands.Infant) * 1.35)
	if adjusted.Infant != want {
		t.Errorf("adjusted infant = %d, want %d", adjusted.Infant, want)
	}
}
