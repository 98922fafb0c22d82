package costs

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func testTable(t *testing.T) TuitionTable {
	t.Helper()
	table, err := NewTuitionTable(12000, 9600, 8400)
	if err != nil {
		t.Fatalf("NewTuitionTable: %v", err)
	}
	return table
}

func averageOnly() MultiplierSet {
	return MultiplierSet{
		Brackets: []BracketFactor{{Name: "Average", Factor: 1.0}},
		Selected: "Average",
	}
}

func threeBrackets() MultiplierSet {
	return MultiplierSet{
		Brackets: []BracketFactor{
			{Name: "Low", Factor: 0.75},
			{Name: "Average", Factor: 1.0},
			{Name: "High", Factor: 1.35},
		},
		Selected: "Average",
	}
}

func TestProject_ReferenceScenario(t *testing.T) {
	monthly, err := Project(testTable(t), averageOnly(), Span{Min: 0, Max: 60}, 1)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	if len(monthly.Points) != 61 {
		t.Fatalf("point count = %d, want 61", len(monthly.Points))
	}

	wantByMonth := map[int]int64{0: 1000, 11: 1000, 12: 800, 47: 800, 48: 700, 60: 700}
	for _, p := range monthly.Points {
		if want, ok := wantByMonth[p.Month]; ok && p.Values["Average"] != want {
			t.Errorf("month %d = %d, want %d", p.Month, p.Values["Average"], want)
		}
	}

	cumulative := Accumulate(monthly)
	got, err := valueAt(cumulative.Points, 12, "Average")
	if err != nil {
		t.Fatalf("cumulative[12]: %v", err)
	}
	// 12 infant months (0-11) at 1000 plus month 12 at 800.
	if got != 12800 {
		t.Errorf("cumulative[12] = %d, want 12800", got)
	}
}

func TestProject_TruncatesAfterMultiplier(t *testing.T) {
	// 10000/12 = 833.33; at factor 1.35 the monthly cost is
	// trunc(10000*1.35/12) = trunc(1125.0) = 1125, not trunc(833)*1.35.
	table, err := NewTuitionTable(10000, 10000, 10000)
	if err != nil {
		t.Fatalf("NewTuitionTable: %v", err)
	}
	m := MultiplierSet{
		Brackets: []BracketFactor{{Name: "High", Factor: 1.35}},
		Selected: "High",
	}

	monthly, err := Project(table, m, Span{Min: 0, Max: 0}, 1)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if got := monthly.Points[0].Values["High"]; got != 1125 {
		t.Errorf("month 0 High = %d, want 1125", got)
	}
}

func TestProject_UnevenStepIncludesFinalMonth(t *testing.T) {
	monthly, err := Project(testTable(t), averageOnly(), Span{Min: 0, Max: 10}, 3)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	var months []int
	for _, p := range monthly.Points {
		months = append(months, p.Month)
	}
	want := []int{0, 3, 6, 9, 10}
	if !reflect.DeepEqual(months, want) {
		t.Errorf("sampled months = %v, want %v", months, want)
	}
}

func TestProject_ConfigErrors(t *testing.T) {
	table := testTable(t)

	if _, err := Project(table, averageOnly(), Span{Min: 10, Max: 0}, 1); !errors.Is(err, ErrConfig) {
		t.Errorf("inverted span error = %v, want ErrConfig", err)
	}
	if _, err := Project(table, averageOnly(), Span{Min: 0, Max: 60}, 0); !errors.Is(err, ErrConfig) {
		t.Errorf("zero step error = %v, want ErrConfig", err)
	}

	bad := MultiplierSet{
		Brackets: []BracketFactor{{Name: "Free", Factor: 0}},
		Selected: "Free",
	}
	if _, err := Project(table, bad, Span{Min: 0, Max: 60}, 1); !errors.Is(err, ErrConfig) {
		t.Errorf("zero multiplier error = %v, want ErrConfig", err)
	}
}

func TestProject_Idempotent(t *testing.T) {
	table := testTable(t)
	m := threeBrackets()
	span := Span{Min: 0, Max: 60}

	first, err := Project(table, m, span, 1)
	if err != nil {
		t.Fatalf("first Project: %v", err)
	}
	second, err := Project(table, m, span, 1)
	if err != nil {
		t.Fatalf("second Project: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated Project calls with identical inputs differ")
	}
}

func TestAccumulate_PrefixSumLaw(t *testing.T) {
	monthly, err := Project(testTable(t), threeBrackets(), Span{Min: 0, Max: 60}, 1)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	cumulative := Accumulate(monthly)

	if len(cumulative.Points) != len(monthly.Points) {
		t.Fatalf("cumulative length %d != monthly length %d",
			len(cumulative.Points), len(monthly.Points))
	}

	for _, bracket := range monthly.Brackets {
		var sum int64
		for i, p := range monthly.Points {
			sum += p.Values[bracket]
			if got := cumulative.Points[i].Values[bracket]; got != sum {
				t.Fatalf("bracket %s cumulative[%d] = %d, want %d", bracket, p.Month, got, sum)
			}
		}
	}
}

func TestAccumulate_Empty(t *testing.T) {
	out := Accumulate(MonthlySeries{Brackets: []string{"Average"}})
	if len(out.Points) != 0 {
		t.Errorf("empty series accumulated to %d points", len(out.Points))
	}
}

func TestSummarize_ReferenceInterval(t *testing.T) {
	monthly, err := Project(testTable(t), averageOnly(), Span{Min: 0, Max: 60}, 1)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	cumulative := Accumulate(monthly)

	sum, err := Summarize(cumulative, monthly, "Average", Interval{Start: 6, End: 54})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if sum.DurationMonths != 48 {
		t.Errorf("duration = %d, want 48", sum.DurationMonths)
	}

	start, _ := valueAt(cumulative.Points, 6, "Average")
	end, _ := valueAt(cumulative.Points, 54, "Average")
	if sum.TotalCost != end-start {
		t.Errorf("total = %d, want %d", sum.TotalCost, end-start)
	}

	// Months 6-11 at 1000, 12-47 at 800, 48-54 at 700: 49 samples.
	wantAvg := float64(6*1000+36*800+7*700) / 49
	if math.Abs(sum.AvgMonthlyCost-wantAvg) > 1e-9 {
		t.Errorf("avg monthly = %f, want %f", sum.AvgMonthlyCost, wantAvg)
	}
}

func TestSummarize_ScalesWithMultiplier(t *testing.T) {
	span := Span{Min: 0, Max: 60}
	table := testTable(t)

	base := MultiplierSet{
		Brackets: []BracketFactor{{Name: "X", Factor: 1.0}},
		Selected: "X",
	}
	scaled := MultiplierSet{
		Brackets: []BracketFactor{{Name: "X", Factor: 2.0}},
		Selected: "X",
	}
	iv := Interval{Start: 6, End: 54}

	baseMonthly, err := Project(table, base, span, 1)
	if err != nil {
		t.Fatalf("Project base: %v", err)
	}
	scaledMonthly, err := Project(table, scaled, span, 1)
	if err != nil {
		t.Fatalf("Project scaled: %v", err)
	}

	baseSum, err := Summarize(Accumulate(baseMonthly), baseMonthly, "X", iv)
	if err != nil {
		t.Fatalf("Summarize base: %v", err)
	}
	scaledSum, err := Summarize(Accumulate(scaledMonthly), scaledMonthly, "X", iv)
	if err != nil {
		t.Fatalf("Summarize scaled: %v", err)
	}

	if scaledSum.TotalCost != 2*baseSum.TotalCost {
		t.Errorf("scaled total = %d, want %d", scaledSum.TotalCost, 2*baseSum.TotalCost)
	}
	if math.Abs(scaledSum.AvgMonthlyCost-2*baseSum.AvgMonthlyCost) > 1e-9 {
		t.Errorf("scaled avg = %f, want %f", scaledSum.AvgMonthlyCost, 2*baseSum.AvgMonthlyCost)
	}
	if scaledSum.DurationMonths != baseSum.DurationMonths {
		t.Errorf("duration changed under scaling: %d vs %d",
			scaledSum.DurationMonths, baseSum.DurationMonths)
	}
}

func TestSummarize_Errors(t *testing.T) {
	monthly, err := Project(testTable(t), averageOnly(), Span{Min: 0, Max: 60}, 1)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	cumulative := Accumulate(monthly)

	if _, err := Summarize(cumulative, monthly, "Premium", Interval{Start: 6, End: 54}); !errors.Is(err, ErrLookup) {
		t.Errorf("unknown bracket error = %v, want ErrLookup", err)
	}
	if _, err := Summarize(cumulative, monthly, "Average", Interval{Start: 6, End: 72}); !errors.Is(err, ErrDomain) {
		t.Errorf("interval past series error = %v, want ErrDomain", err)
	}
	if _, err := Summarize(cumulative, monthly, "Average", Interval{Start: 54, End: 6}); !errors.Is(err, ErrConfig) {
		t.Errorf("inverted interval error = %v, want ErrConfig", err)
	}
}

func TestMultiplierSet_Validate(t *testing.T) {
	good := threeBrackets()
	if err := good.Validate(); err != nil {
		t.Errorf("valid set rejected: %v", err)
	}

	dup := MultiplierSet{
		Brackets: []BracketFactor{
			{Name: "Average", Factor: 1.0},
			{Name: "Average", Factor: 1.2},
		},
		Selected: "Average",
	}
	if err := dup.Validate(); !errors.Is(err, ErrConfig) {
		t.Errorf("duplicate bracket error = %v, want ErrConfig", err)
	}

	missing := MultiplierSet{
		Brackets: []BracketFactor{{Name: "Low", Factor: 0.75}},
		Selected: "Average",
	}
	if err := missing.Validate(); !errors.Is(err, ErrLookup) {
		t.Errorf("missing selected error = %v, want ErrLookup", err)
	}
}

func TestNewTuitionTable_RejectsNegative(t *testing.T) {
	if _, err := NewTuitionTable(12000, -1, 8400); !errors.Is(err, ErrConfig) {
		t.Errorf("negative cost error = %v, want ErrConfig", err)
	}
}
