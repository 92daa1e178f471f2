// Package memory provides the in-memory store that owns the zoo dataset.
package memory

import (
	"context"
	"fmt"
	"sync"

	"zoocore/pkg/domain"
)

// Compile-time contract assertion ensuring memory.Store adheres to the domain persistence interface.
var _ domain.PersistentStore = (*Store)(nil)

type (
	// Species aliases domain.Species for in-memory persistence operations.
	Species = domain.Species
	// Resident aliases domain.Resident.
	Resident = domain.Resident
	// Employee aliases domain.Employee.
	Employee = domain.Employee
	// Hours aliases domain.Hours.
	Hours = domain.Hours
	// Prices aliases domain.Prices.
	Prices = domain.Prices
	// Change aliases domain.Change captured in transactions.
	Change = domain.Change
	// Result aliases domain.Result summarizing rule evaluation.
	Result = domain.Result
	// RulesEngine aliases domain.RulesEngine used to evaluate rules.
	RulesEngine = domain.RulesEngine
	// Transaction aliases domain.Transaction representing a mutable unit of work.
	Transaction = domain.Transaction
	// TransactionView aliases domain.TransactionView providing read-only state.
	TransactionView = domain.TransactionView
)

// memoryState keeps species and employees as ordered slices; "first" in any
// query means first in insertion order.
type memoryState struct {
	species   []Species
	employees []Employee
	hours     Hours
	prices    Prices
}

// Snapshot captures a point-in-time clone of the store state.
type Snapshot struct {
	Species   []Species  `json:"species" yaml:"species"`
	Employees []Employee `json:"employees" yaml:"employees"`
	Hours     Hours      `json:"hours" yaml:"hours"`
	Prices    Prices     `json:"prices" yaml:"prices"`
}

func newMemoryState() memoryState {
	return memoryState{
		hours:  make(Hours),
		prices: make(Prices),
	}
}

func snapshotFromMemoryState(state memoryState) Snapshot {
	c := state.clone()
	return Snapshot{
		Species:   c.species,
		Employees: c.employees,
		Hours:     c.hours,
		Prices:    c.prices,
	}
}

func memoryStateFromSnapshot(s Snapshot) memoryState {
	return memoryState{
		species:   s.Species,
		employees: s.Employees,
		hours:     s.Hours,
		prices:    s.Prices,
	}.clone()
}

func (s memoryState) clone() memoryState {
	out := memoryState{
		species:   make([]Species, len(s.species)),
		employees: make([]Employee, len(s.employees)),
		hours:     make(Hours, len(s.hours)),
		prices:    make(Prices, len(s.prices)),
	}
	for i, sp := range s.species {
		out.species[i] = cloneSpecies(sp)
	}
	for i, e := range s.employees {
		out.employees[i] = cloneEmployee(e)
	}
	for k, v := range s.hours {
		out.hours[k] = v
	}
	for k, v := range s.prices {
		out.prices[k] = v
	}
	return out
}

func cloneSpecies(s Species) Species {
	cp := s
	cp.Residents = make([]Resident, len(s.Residents))
	copy(cp.Residents, s.Residents)
	return cp
}

func cloneEmployee(e Employee) Employee {
	cp := e
	cp.Managers = cloneStrings(e.Managers)
	cp.ResponsibleFor = cloneStrings(e.ResponsibleFor)
	return cp
}

func cloneStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func clonePrices(p Prices) Prices {
	out := make(Prices, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Store provides an in-memory transactional store for the zoo dataset.
type Store struct {
	mu     sync.RWMutex
	state  memoryState
	engine *RulesEngine
}

// NewStore constructs an empty in-memory store backed by the provided rules engine.
func NewStore(engine *RulesEngine) *Store {
	if engine == nil {
		engine = domain.NewRulesEngine()
	}
	return &Store{
		state:  newMemoryState(),
		engine: engine,
	}
}

// ExportState clones the current store state.
func (s *Store) ExportState() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshotFromMemoryState(s.state)
}

// ImportState replaces the store state with the provided snapshot.
func (s *Store) ImportState(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = memoryStateFromSnapshot(snapshot)
}

type transaction struct {
	state   memoryState
	changes []Change
}

type transactionView struct {
	state *memoryState
}

func newTransactionView(state *memoryState) TransactionView {
	return transactionView{state: state}
}

// ListSpecies returns all species in insertion order.
func (v transactionView) ListSpecies() []Species {
	out := make([]Species, 0, len(v.state.species))
	for _, sp := range v.state.species {
		out = append(out, cloneSpecies(sp))
	}
	return out
}

// FindSpecies returns the species with the given id.
func (v transactionView) FindSpecies(id string) (Species, bool) {
	for _, sp := range v.state.species {
		if sp.ID == id {
			return cloneSpecies(sp), true
		}
	}
	return Species{}, false
}

// FindSpeciesByName returns the species with the given name.
func (v transactionView) FindSpeciesByName(name string) (Species, bool) {
	for _, sp := range v.state.species {
		if sp.Name == name {
			return cloneSpecies(sp), true
		}
	}
	return Species{}, false
}

// ListEmployees returns all employees in insertion order.
func (v transactionView) ListEmployees() []Employee {
	out := make([]Employee, 0, len(v.state.employees))
	for _, e := range v.state.employees {
		out = append(out, cloneEmployee(e))
	}
	return out
}

// FindEmployee returns the first employee with the given id.
func (v transactionView) FindEmployee(id string) (Employee, bool) {
	for _, e := range v.state.employees {
		if e.ID == id {
			return cloneEmployee(e), true
		}
	}
	return Employee{}, false
}

// Hours returns a copy of the opening schedule.
func (v transactionView) Hours() Hours {
	out := make(Hours, len(v.state.hours))
	for k, h := range v.state.hours {
		out[k] = h
	}
	return out
}

// Prices returns a copy of the price table.
func (v transactionView) Prices() Prices {
	return clonePrices(v.state.prices)
}

// RunInTransaction executes fn against a copy of the state, evaluates the
// registered rules, and commits unless fn fails or a blocking violation is found.
func (s *Store) RunInTransaction(ctx context.Context, fn func(tx Transaction) error) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &transaction{state: s.state.clone()}

	if err := fn(tx); err != nil {
		return Result{}, err
	}

	var result Result
	if s.engine != nil {
		view := newTransactionView(&tx.state)
		res, err := s.engine.Evaluate(ctx, view, tx.changes)
		if err != nil {
			return Result{}, err
		}
		result = res
		if res.HasBlocking() {
			return res, domain.RuleViolationError{Result: res}
		}
	}

	s.state = tx.state
	return result, nil
}

// View executes fn against a read-only snapshot of the store state.
func (s *Store) View(ctx context.Context, fn func(TransactionView) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	snapshot := s.state.clone()
	s.mu.RUnlock()

	return fn(newTransactionView(&snapshot))
}

func (tx *transaction) recordChange(change Change) {
	tx.changes = append(tx.changes, change)
}

// Snapshot returns a read-only view over the transactional state.
func (tx *transaction) Snapshot() TransactionView {
	return newTransactionView(&tx.state)
}

// CreateEmployee appends an employee. Ids are not required to be unique;
// duplicates are left for the rules engine to report.
func (tx *transaction) CreateEmployee(e Employee) (Employee, error) {
	if e.ID == "" {
		return Employee{}, fmt.Errorf("employee id required: %w", domain.ErrInvalidArgument)
	}
	e = cloneEmployee(e)
	tx.state.employees = append(tx.state.employees, e)
	tx.recordChange(Change{Entity: domain.EntityEmployee, Action: domain.ActionCreate, After: cloneEmployee(e)})
	return cloneEmployee(e), nil
}

// UpdatePrices mutates the price table in place using the provided mutator.
func (tx *transaction) UpdatePrices(mutator func(Prices) error) (Prices, error) {
	before := clonePrices(tx.state.prices)
	current := clonePrices(tx.state.prices)
	if err := mutator(current); err != nil {
		return nil, err
	}
	tx.state.prices = current
	tx.recordChange(Change{Entity: domain.EntityPrices, Action: domain.ActionUpdate, Before: before, After: clonePrices(current)})
	return clonePrices(current), nil
}
