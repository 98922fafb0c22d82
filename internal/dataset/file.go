package dataset

import (
	"fmt"
	"os"
	"sort"

	"github.com/marciooo/nido/internal/costs"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML dataset file of the form
//
//	Washington:
//	  Infant: 14554
//	  Toddler: 12733
//	  Preschool: 10829
//
// Unknown band names and negative costs are rejected.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML dataset bytes. See LoadFile for the schema.
func Parse(data []byte) (Set, error) {
	var raw map[string]map[string]int64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: dataset has no regions", costs.ErrConfig)
	}

	set := make(Set, len(raw))
	for region, bands := range raw {
		var bc BandCosts
		for name, annual := range bands {
			band, err := costs.ParseBand(name)
			if err != nil {
				return nil, fmt.Errorf("region %q: %w", region, err)
			}
			if annual < 0 {
				return nil, fmt.Errorf("%w: region %q band %s has negative cost %d",
					costs.ErrConfig, region, band, annual)
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
	return set, nil
}

// Marshal encodes a dataset as YAML with regions in sorted order.
func Marshal(s Set) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, region := range sortedRegions(s) {
		bc := s[region]
		var bands yaml.Node
		if err := bands.Encode(map[string]int64{
			"Infant":    bc.Infant,
			"Toddler":   bc.Toddler,
			"Preschool": bc.Preschool,
		}); err != nil {
			return nil, fmt.Errorf("encoding region %q: %w", region, err)
		}
		var key yaml.Node
		key.SetString(region)
		doc.Content = append(doc.Content, &key, &bands)
	}
	return yaml.Marshal(doc)
}

// WriteFile writes a dataset to a YAML file.
func WriteFile(path string, s Set) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	return nil
}

func sortedRegions(s Set) []string {
	regions := make([]string, 0, len(s))
	for name := range s {
		regions = append(regions, name)
	}
	sort.Strings(regions)
	return regions
}
