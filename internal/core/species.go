package core

import (
	"context"

	"zoocore/pkg/domain"
)

// SpeciesMatch pairs a requested species id with the species it resolved to.
type SpeciesMatch struct {
	ID      string  `json:"id"`
	Species Species `json:"species"`
	Found   bool    `json:"found"`
}

// SpeciesByIDs resolves each id in order. Unknown ids yield a match with Found
// unset; no ids yields an empty slice.
func (s *Service) SpeciesByIDs(ctx context.Context, ids ...string) ([]SpeciesMatch, error) {
	matches := make([]SpeciesMatch, 0, len(ids))
	err := s.view(ctx, "species_by_ids", func(view TransactionView) error {
		for _, id := range ids {
			sp, ok := view.FindSpecies(id)
			matches = append(matches, SpeciesMatch{ID: id, Species: sp, Found: ok})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// AnimalsOlderThan reports whether every resident of the named species is at
// least age years old. A species without residents satisfies any age.
func (s *Service) AnimalsOlderThan(ctx context.Context, name string, age int) (bool, error) {
	var all bool
	err := s.view(ctx, "animals_older_than", func(view TransactionView) error {
		sp, ok := view.FindSpeciesByName(name)
		if !ok {
			return domain.ErrNotFound{Entity: EntitySpecies, Key: name}
		}
		all = true
		for _, r := range sp.Residents {
			if r.Age < age {
				all = false
				break
			}
		}
		return nil
	})
	return all, err
}

// CountAnimals maps every species name to its number of residents.
func (s *Service) CountAnimals(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	err := s.view(ctx, "count_animals", func(view TransactionView) error {
		for _, sp := range view.ListSpecies() {
			counts[sp.Name] = len(sp.Residents)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// CountResidents returns the number of residents of the named species.
func (s *Service) CountResidents(ctx context.Context, name string) (int, error) {
	var count int
	err := s.view(ctx, "count_residents", func(view TransactionView) error {
		sp, ok := view.FindSpeciesByName(name)
		if !ok {
			return domain.ErrNotFound{Entity: EntitySpecies, Key: name}
		}
		count = len(sp.Residents)
		return nil
	})
	return count, err
}

// OldestFromFirstSpecies returns the oldest resident of the first species the
// employee is responsible for.
func (s *Service) OldestFromFirstSpecies(ctx context.Context, employeeID string) (Resident, error) {
	var oldest Resident
	err := s.view(ctx, "oldest_from_first_species", func(view TransactionView) error {
		e, ok := view.FindEmployee(employeeID)
		if !ok {
			return domain.ErrNotFound{Entity: EntityEmployee, Key: employeeID}
		}
		if len(e.ResponsibleFor) == 0 {
			return domain.ErrNotFound{Entity: EntitySpecies, Key: "responsibility of " + employeeID}
		}
		speciesID := e.ResponsibleFor[0]
		sp, ok := view.FindSpecies(speciesID)
		if !ok {
			return domain.ErrNotFound{Entity: EntitySpecies, Key: speciesID}
		}
		r, ok := sp.Oldest()
		if !ok {
			return domain.ErrNotFound{Entity: EntityResident, Key: sp.Name}
		}
		oldest = r
		return nil
	})
	return oldest, err
}
