package domain

import "context"

// Transaction exposes the mutations that a store implementation must support
// within an atomic scope.
type Transaction interface {
	Snapshot() TransactionView
	CreateEmployee(Employee) (Employee, error)
	UpdatePrices(mutator func(Prices) error) (Prices, error)
}

// TransactionView provides read-only access to snapshot data for operations and rules.
type TransactionView interface {
	ListSpecies() []Species
	FindSpecies(id string) (Species, bool)
	FindSpeciesByName(name string) (Species, bool)
	ListEmployees() []Employee
	FindEmployee(id string) (Employee, bool)
	Hours() Hours
	Prices() Prices
}

// PersistentStore is the abstraction the service layer runs against.
type PersistentStore interface {
	RunInTransaction(ctx context.Context, fn func(Transaction) error) (Result, error)
	View(ctx context.Context, fn func(TransactionView) error) error
}
