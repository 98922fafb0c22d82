package costs

import (
	"errors"
	"reflect"
	"testing"
)

func TestTickLayout_MergesIntervalEndpoints(t *testing.T) {
	ticks, err := TickLayout(Span{Min: 0, Max: 60}, 10, Interval{Start: 6, End: 54})
	if err != nil {
		t.Fatalf("TickLayout: %v", err)
	}

	var months []int
	emphasized := map[int]bool{}
	for _, tk := range ticks {
		months = append(months, tk.Month)
		emphasized[tk.Month] = tk.Emphasized
	}

	want := []int{0, 6, 10, 20, 30, 40, 50, 54, 60}
	if !reflect.DeepEqual(months, want) {
		t.Fatalf("tick months = %v, want %v", months, want)
	}

	for _, m := range []int{6, 54} {
		if !emphasized[m] {
			t.Errorf("endpoint %d not emphasized", m)
		}
	}
	for _, m := range []int{0, 10, 30, 60} {
		if emphasized[m] {
			t.Errorf("stride tick %d emphasized", m)
		}
	}
}

func TestTickLayout_EndpointOnStrideTick(t *testing.T) {
	ticks, err := TickLayout(Span{Min: 0, Max: 60}, 10, Interval{Start: 10, End: 50})
	if err != nil {
		t.Fatalf("TickLayout: %v", err)
	}

	seen := map[int]int{}
	for _, tk := range ticks {
		seen[tk.Month]++
		if (tk.Month == 10 || tk.Month == 50) && !tk.Emphasized {
			t.Errorf("colliding endpoint %d lost emphasis", tk.Month)
		}
	}
	for m, n := range seen {
		if n > 1 {
			t.Errorf("month %d appears %d times", m, n)
		}
	}
}

func TestTickLayout_Errors(t *testing.T) {
	span := Span{Min: 0, Max: 60}

	if _, err := TickLayout(span, 0, Interval{Start: 6, End: 54}); !errors.Is(err, ErrConfig) {
		t.Errorf("zero stride error = %v, want ErrConfig", err)
	}
	if _, err := TickLayout(span, 10, Interval{Start: 6, End: 72}); !errors.Is(err, ErrDomain) {
		t.Errorf("out-of-span interval error = %v, want ErrDomain", err)
	}
}
