package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/marciooo/nido/internal/costs"
)

// ImportCSV reads a Child Care Aware style state table:
//
//	State,Infant,Toddler,4-Year-Old
//	Washington,14554,12733,10829
//
// Band columns are matched by header name (see costs.ParseBand); extra
// columns are ignored. Dollar signs and thousands separators are stripped
// from values.
func ImportCSV(r io.Reader) (Set, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	stateCol := -1
	bandCols := make(map[int]costs.Band)
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "State") {
			stateCol = i
			continue
		}
		if band, err := costs.ParseBand(name); err == nil {
			bandCols[i] = band
		}
	}
	if stateCol < 0 {
		return nil, fmt.Errorf("%w: CSV has no State column", costs.ErrConfig)
	}
	if len(bandCols) == 0 {
		return nil, fmt.Errorf("%w: CSV has no recognized band columns", costs.ErrConfig)
	}

	set := make(Set)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		line++

		region := strings.TrimSpace(record[stateCol])
		if region == "" {
			continue
		}

		var bc BandCosts
		for col, band := range bandCols {
			if col >= len(record) {
				continue
			}
			annual, err := parseDollars(record[col])
			if err != nil {
				return nil, fmt.Errorf("line %d, region %q: %w", line, region, err)
			}
			if annual < 0 {
				return nil, fmt.Errorf("%w: line %d region %q has negative cost %d",
					costs.ErrConfig, line, region, annual)
			}
			switch band {
			case costs.Infant:
				bc.Infant = annual
			case costs.Toddler:
				bc.Toddler = annual
			case costs.Preschool:
				bc.Preschool = annual
			}
		}
		set[region] = bc
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("%w: CSV has no data rows", costs.ErrConfig)
	}
	return set, nil
}

func parseDollars(raw string) (int64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, nil
	}
	// Some tables carry cents; truncate them.
	if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return int64(f), nil
	}
	return 0, fmt.Errorf("bad dollar amount %q", raw)
}
