// Package dataset provides the baseline tuition reference tables: embedded
// national averages plus loaders for user-supplied YAML datasets and the
// Child Care Aware CSV format.
package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/marciooo/nido/internal/costs"
)

// CareType selects which reference table a region is looked up in.
type CareType string

const (
	CenterBased CareType = "center-based"
	FamilyCare  CareType = "family-care"
)

// ParseCareType maps user input to a care type, accepting both the key form
// ("center-based") and the display form ("Center Based").
func ParseCareType(raw string) (CareType, error) {
	switch strings.ToLower(strings.TrimSpace(strings.ReplaceAll(raw, " ", "-"))) {
	case "center-based", "center":
		return CenterBased, nil
	case "family-care", "family":
		return FamilyCare, nil
	}
	return "", fmt.Errorf("%w: care type %q", costs.ErrLookup, raw)
}

// Display returns the human-readable care type name.
func (ct CareType) Display() string {
	switch ct {
	case FamilyCare:
		return "Family Care"
	default:
		return "Center Based"
	}
}

// BandCosts holds the annual tuition per age band for one region, in whole
// dollars.
type BandCosts struct {
	Infant    int64
	Toddler   int64
	Preschool int64
}

// Table converts band costs into an engine tuition table.
func (bc BandCosts) Table() (costs.TuitionTable, error) {
	return costs.NewTuitionTable(bc.Infant, bc.Toddler, bc.Preschool)
}

// Set is one care type's reference table: region name to band costs.
type Set map[string]BandCosts

// defaultCenterBased holds annual center-based care averages by state,
// derived from the Child Care Aware state tables.
var defaultCenterBased = Set{
	"National":      {Infant: 11896, Toddler: 10158, Preschool: 9254},
	"Alabama":       {Infant: 7800, Toddler: 7196, Preschool: 6804},
	"Arizona":       {Infant: 11214, Toddler: 9874, Preschool: 8934},
	"California":    {Infant: 16945, Toddler: 14954, Preschool: 12168},
	"Colorado":      {Infant: 15325, Toddler: 13426, Preschool: 11355},
	"Florida":       {Infant: 9617, Toddler: 8406, Preschool: 7282},
	"Georgia":       {Infant: 8729, Toddler: 7971, Preschool: 7062},
	"Illinois":      {Infant: 14346, Toddler: 12059, Preschool: 10041},
	"Massachusetts": {Infant: 20913, Toddler: 18586, Preschool: 14256},
	"Michigan":      {Infant: 11038, Toddler: 9724, Preschool: 8890},
	"Minnesota":     {Infant: 16087, Toddler: 13925, Preschool: 11603},
	"New York":      {Infant: 15394, Toddler: 13944, Preschool: 12064},
	"North Carolina": {Infant: 9650, Toddler: 8966, Preschool: 8322},
	"Ohio":          {Infant: 10009, Toddler: 8977, Preschool: 8164},
	"Pennsylvania":  {Infant: 12152, Toddler: 11346, Preschool: 9773},
	"Texas":         {Infant: 9455, Toddler: 8859, Preschool: 8105},
	"Washington":    {Infant: 14554, Toddler: 12733, Preschool: 10829},
}

// defaultFamilyCare holds annual family-care averages by state.
var defaultFamilyCare = Set{
	"National":      {Infant: 8990, Toddler: 8605, Preschool: 8103},
	"Alabama":       {Infant: 6240, Toddler: 5928, Preschool: 5720},
	"Arizona":       {Infant: 8632, Toddler: 8112, Preschool: 7644},
	"California":    {Infant: 11497, Toddler: 10866, Preschool: 10186},
	"Colorado":      {Infant: 10816, Toddler: 10192, Preschool: 9516},
	"Florida":       {Infant: 7813, Toddler: 7234, Preschool: 6661},
	"Georgia":       {Infant: 7040, Toddler: 6729, Preschool: 6396},
	"Illinois":      {Infant: 9214, Toddler: 8814, Preschool: 8372},
	"Massachusetts": {Infant: 14117, Toddler: 13445, Preschool: 12792},
	"Michigan":      {Infant: 8322, Toddler: 7852, Preschool: 7436},
	"Minnesota":     {Infant: 9464, Toddler: 9009, Preschool: 8580},
	"New York":      {Infant: 11648, Toddler: 11128, Preschool: 10608},
	"North Carolina": {Infant: 8082, Toddler: 7722, Preschool: 7410},
	"Ohio":          {Infant: 7930, Toddler: 7540, Preschool: 7202},
	"Pennsylvania":  {Infant: 9386, Toddler: 9022, Preschool: 8606},
	"Texas":         {Infant: 7852, Toddler: 7462, Preschool: 7124},
	"Washington":    {Infant: 10530, Toddler: 9958, Preschool: 9412},
}

// Default returns the embedded reference table for a care type.
func Default(ct CareType) Set {
	if ct == FamilyCare {
		return defaultFamilyCare
	}
	return defaultCenterBased
}

// Lookup finds a region's band costs, matching the region name
// case-insensitively.
func (s Set) Lookup(region string) (BandCosts, bool) {
	if bc, ok := s[region]; ok {
		return bc, true
	}
	want := strings.ToLower(strings.TrimSpace(region))
	for name, bc := range s {
		if strings.ToLower(name) == want {
			return bc, true
		}
	}
	return BandCosts{}, false
}

// Table resolves a region directly to an engine tuition table.
func (s Set) Table(region string) (costs.TuitionTable, error) {
	bc, ok := s.Lookup(region)
	if !ok {
		return costs.TuitionTable{}, fmt.Errorf("%w: region %q", costs.ErrLookup, region)
	}
	return bc.Table()
}

// Regions returns the region names in sorted order.
func (s Set) Regions() []string {
	regions := make([]string, 0, len(s))
	for name := range s {
		regions = append(regions, name)
	}
	sort.Strings(regions)
	return regions
}
