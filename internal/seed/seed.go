// Package seed embeds the fixed zoo dataset that populates a store when a
// service is constructed.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"zoocore/internal/infra/persistence/memory"
	"zoocore/pkg/domain"
)

// Dataset contains the YAML source of the fixed zoo dataset.
//
//go:embed zoo.yaml
var Dataset []byte

// Snapshot decodes the embedded dataset. Each call returns an independent copy.
func Snapshot() (memory.Snapshot, error) {
	return Decode(Dataset)
}

// Decode parses a YAML dataset and validates it. Unknown fields are rejected.
func Decode(data []byte) (memory.Snapshot, error) {
	var snap memory.Snapshot
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&snap); err != nil {
		return memory.Snapshot{}, fmt.Errorf("decode seed: %w", err)
	}
	normalize(&snap)
	if err := Validate(snap); err != nil {
		return memory.Snapshot{}, err
	}
	return snap, nil
}

// normalize replaces nil collections with empty ones so callers never see a
// missing residents, managers or responsibility list.
func normalize(snap *memory.Snapshot) {
	for i := range snap.Species {
		if snap.Species[i].Residents == nil {
			snap.Species[i].Residents = []domain.Resident{}
		}
	}
	for i := range snap.Employees {
		if snap.Employees[i].Managers == nil {
			snap.Employees[i].Managers = []string{}
		}
		if snap.Employees[i].ResponsibleFor == nil {
			snap.Employees[i].ResponsibleFor = []string{}
		}
	}
	if snap.Hours == nil {
		snap.Hours = domain.Hours{}
	}
	if snap.Prices == nil {
		snap.Prices = domain.Prices{}
	}
}

// Validate checks dataset invariants and reports every problem found.
func Validate(snap memory.Snapshot) error {
	var errs []error
	speciesIDs := make(map[string]struct{}, len(snap.Species))
	speciesNames := make(map[string]struct{}, len(snap.Species))
	for _, sp := range snap.Species {
		if sp.ID == "" {
			errs = append(errs, fmt.Errorf("species %q: missing id", sp.Name))
		}
		if _, dup := speciesIDs[sp.ID]; dup {
			errs = append(errs, fmt.Errorf("species %q: duplicate id %s", sp.Name, sp.ID))
		}
		speciesIDs[sp.ID] = struct{}{}
		if _, dup := speciesNames[sp.Name]; dup {
			errs = append(errs, fmt.Errorf("species %q: duplicate name", sp.Name))
		}
		speciesNames[sp.Name] = struct{}{}
		if sp.Popularity < 0 || sp.Popularity > 5 {
			errs = append(errs, fmt.Errorf("species %q: popularity %d outside 0..5", sp.Name, sp.Popularity))
		}
		if !sp.Location.Valid() {
			errs = append(errs, fmt.Errorf("species %q: unknown region %q", sp.Name, sp.Location))
		}
		for _, r := range sp.Residents {
			if !r.Sex.Valid() {
				errs = append(errs, fmt.Errorf("species %q: resident %q has unknown sex %q", sp.Name, r.Name, r.Sex))
			}
			if r.Age < 0 {
				errs = append(errs, fmt.Errorf("species %q: resident %q has negative age", sp.Name, r.Name))
			}
		}
	}

	employeeIDs := make(map[string]struct{}, len(snap.Employees))
	for _, e := range snap.Employees {
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("employee %q: missing id", e.FullName()))
		}
		if _, dup := employeeIDs[e.ID]; dup {
			errs = append(errs, fmt.Errorf("employee %q: duplicate id %s", e.FullName(), e.ID))
		}
		employeeIDs[e.ID] = struct{}{}
	}
	for _, e := range snap.Employees {
		for _, id := range e.Managers {
			if _, ok := employeeIDs[id]; !ok {
				errs = append(errs, fmt.Errorf("employee %q: unknown manager %s", e.FullName(), id))
			}
		}
		for _, id := range e.ResponsibleFor {
			if _, ok := speciesIDs[id]; !ok {
				errs = append(errs, fmt.Errorf("employee %q: unknown species %s", e.FullName(), id))
			}
		}
	}

	for day, h := range snap.Hours {
		if !day.Valid() {
			errs = append(errs, fmt.Errorf("hours: unknown day %q", day))
		}
		if h.Open < 0 || h.Open > 24 || h.Close < 0 || h.Close > 24 {
			errs = append(errs, fmt.Errorf("hours: %s out of range (%d-%d)", day, h.Open, h.Close))
		}
	}
	for category, price := range snap.Prices {
		if !category.Valid() {
			errs = append(errs, fmt.Errorf("prices: unknown category %q", category))
		}
		if price < 0 {
			errs = append(errs, fmt.Errorf("prices: %s is negative", category))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid seed: %w", errors.Join(errs...))
}
