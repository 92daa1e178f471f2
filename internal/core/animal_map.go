package core

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"zoocore/pkg/domain"
)

// AnimalMapOptions controls the shape of AnimalMap results. Sex and Sorted
// only apply when IncludeNames is set; an empty Sex keeps every resident.
type AnimalMapOptions struct {
	IncludeNames bool
	Sex          domain.Sex
	Sorted       bool
}

// RegionEntry is one species listed under a region. Residents is nil unless
// resident names were requested.
type RegionEntry struct {
	Species   string
	Residents []string
}

// MarshalJSON encodes the entry as the bare species name, or as
// {"species": [names...]} when resident names are present.
func (e RegionEntry) MarshalJSON() ([]byte, error) {
	if e.Residents == nil {
		return json.Marshal(e.Species)
	}
	return json.Marshal(map[string][]string{e.Species: e.Residents})
}

// AnimalMap groups species by region.
type AnimalMap map[domain.Region][]RegionEntry

// AnimalMap lists the species of every region in collection order. All four
// regions are present even when empty.
func (s *Service) AnimalMap(ctx context.Context, opts AnimalMapOptions) (AnimalMap, error) {
	if opts.IncludeNames && opts.Sex != "" && !opts.Sex.Valid() {
		return nil, fmt.Errorf("sex filter %q: %w", opts.Sex, domain.ErrInvalidArgument)
	}
	result := make(AnimalMap, len(domain.Regions()))
	for _, region := range domain.Regions() {
		result[region] = []RegionEntry{}
	}
	err := s.view(ctx, "animal_map", func(view TransactionView) error {
		for _, sp := range view.ListSpecies() {
			entry := RegionEntry{Species: sp.Name}
			if opts.IncludeNames {
				entry.Residents = residentNames(sp, opts)
			}
			result[sp.Location] = append(result[sp.Location], entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func residentNames(sp Species, opts AnimalMapOptions) []string {
	names := make([]string, 0, len(sp.Residents))
	for _, r := range sp.Residents {
		if opts.Sex != "" && r.Sex != opts.Sex {
			continue
		}
		names = append(names, r.Name)
	}
	if opts.Sorted {
		slices.Sort(names)
	}
	return names
}
