package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/marciooo/nido/internal/costs"
)

func TestDefault_CoversBothCareTypes(t *testing.T) {
	for _, ct := range []CareType{CenterBased, FamilyCare} {
		set := Default(ct)
		if len(set) == 0 {
			t.Fatalf("Default(%s) is empty", ct)
		}
		if _, ok := set.Lookup("National"); !ok {
			t.Errorf("Default(%s) missing National", ct)
		}
		for region, bc := range set {
			if bc.Infant <= 0 || bc.Toddler <= 0 || bc.Preschool <= 0 {
				t.Errorf("%s/%s has a non-positive band cost: %+v", ct, region, bc)
			}
		}
	}
}

func TestSet_LookupCaseInsensitive(t *testing.T) {
	set := Default(CenterBased)

	exact, ok := set.Lookup("Washington")
	if !ok {
		t.Fatal("Washington not found")
	}
	lower, ok := set.Lookup("washington")
	if !ok {
		t.Fatal("lowercase washington not found")
	}
	if exact != lower {
		t.Error("case-insensitive lookup returned different costs")
	}

	if _, ok := set.Lookup("Atlantis"); ok {
		t.Error("unknown region found")
	}
}

func TestSet_TableUnknownRegion(t *testing.T) {
	_, err := Default(FamilyCare).Table("Atlantis")
	if !errors.Is(err, costs.ErrLookup) {
		t.Errorf("unknown region error = %v, want ErrLookup", err)
	}
}

func TestParseCareType(t *testing.T) {
	cases := []struct {
		raw  string
		want CareType
	}{
		{"center-based", CenterBased},
		{"Center Based", CenterBased},
		{"family-care", FamilyCare},
		{"Family Care", FamilyCare},
	}
	for _, tc := range cases {
		got, err := ParseCareType(tc.raw)
		if err != nil {
			t.Fatalf("ParseCareType(%q) error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Errorf("ParseCareType(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}

	if _, err := ParseCareType("nanny-share"); !errors.Is(err, costs.ErrLookup) {
		t.Errorf("unknown care type error = %v, want ErrLookup", err)
	}
}

func TestParse_YAMLDataset(t *testing.T) {
	set, err := Parse([]byte(`
Oregon:
  Infant: 13500
  Toddler: 11800
  Preschool: 10200
Idaho:
  Infant: 8100
  Toddler: 7400
  Preschool: 6900
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	bc, ok := set.Lookup("Oregon")
	if !ok {
		t.Fatal("Oregon not found")
	}
	if bc.Infant != 13500 || bc.Toddler != 11800 || bc.Preschool != 10200 {
		t.Errorf("Oregon costs = %+v", bc)
	}
}

func TestParse_RejectsBadData(t *testing.T) {
	if _, err := Parse([]byte("Oregon:\n  Kindergarten: 5000\n")); !errors.Is(err, costs.ErrLookup) {
		t.Errorf("unknown band error = %v, want ErrLookup", err)
	}
	if _, err := Parse([]byte("Oregon:\n  Infant: -10\n")); !errors.Is(err, costs.ErrConfig) {
		t.Errorf("negative cost error = %v, want ErrConfig", err)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	original := Set{
		"Oregon": {Infant: 13500, Toddler: 11800, Preschool: 10200},
	}
	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal): %v", err)
	}
	if parsed["Oregon"] != original["Oregon"] {
		t.Errorf("round trip changed Oregon: %+v", parsed["Oregon"])
	}
}

func TestImportCSV(t *testing.T) {
	csvData := `State,Infant,Toddler,4-Year-Old
Washington,"$14,554","$12,733","$10,829"
Oregon,13500,11800,10200
`
	set, err := ImportCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}

	wa, ok := set.Lookup("Washington")
	if !ok {
		t.Fatal("Washington not imported")
	}
	if wa.Infant != 14554 || wa.Toddler != 12733 || wa.Preschool != 10829 {
		t.Errorf("Washington costs = %+v", wa)
	}

	or, _ := set.Lookup("Oregon")
	if or.Preschool != 10200 {
		t.Errorf("Oregon preschool = %d, want 10200 (4-Year-Old column)", or.Preschool)
	}
}

func TestImportCSV_Errors(t *testing.T) {
	if _, err := ImportCSV(strings.NewReader("Region,Price\nX,1\n")); !errors.Is(err, costs.ErrConfig) {
		t.Errorf("missing State column error = %v, want ErrConfig", err)
	}
	if _, err := ImportCSV(strings.NewReader("State,Infant\n")); !errors.Is(err, costs.ErrConfig) {
		t.Errorf("empty CSV error = %v, want ErrConfig", err)
	}
}
