package core

import (
	"context"
	"fmt"

	"zoocore/pkg/domain"
)

// EmployeeByName returns the first employee whose first or last name equals name.
func (s *Service) EmployeeByName(ctx context.Context, name string) (Employee, bool, error) {
	var (
		found Employee
		ok    bool
	)
	err := s.view(ctx, "employee_by_name", func(view TransactionView) error {
		if name == "" {
			return nil
		}
		for _, e := range view.ListEmployees() {
			if e.MatchesName(name) {
				found, ok = e, true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return Employee{}, false, err
	}
	return found, ok, nil
}

// IsManager reports whether any employee lists id among its managers.
func (s *Service) IsManager(ctx context.Context, id string) (bool, error) {
	var manager bool
	err := s.view(ctx, "is_manager", func(view TransactionView) error {
		for _, e := range view.ListEmployees() {
			if e.ManagedBy(id) {
				manager = true
				return nil
			}
		}
		return nil
	})
	return manager, err
}

// AddEmployee appends an employee. Nil manager or species lists are stored
// empty. Duplicate ids and dangling references are reported in the Result but
// do not prevent the append.
func (s *Service) AddEmployee(ctx context.Context, employee Employee) (Employee, Result, error) {
	normalized := domain.NewEmployee(
		domain.PersonalInfo{ID: employee.ID, FirstName: employee.FirstName, LastName: employee.LastName},
		domain.Associations{Managers: employee.Managers, ResponsibleFor: employee.ResponsibleFor},
	)
	var created Employee
	res, err := s.mutate(ctx, "add_employee", EntityEmployee, normalized.ID, func(tx Transaction) error {
		var err error
		created, err = tx.CreateEmployee(normalized)
		return err
	})
	if err != nil {
		return Employee{}, res, err
	}
	return created, res, nil
}

// EmployeeCoverage maps every employee's full name to the names of the species
// they are responsible for. Unknown species ids are skipped.
func (s *Service) EmployeeCoverage(ctx context.Context) (map[string][]string, error) {
	coverage := make(map[string][]string)
	err := s.view(ctx, "employee_coverage", func(view TransactionView) error {
		for _, e := range view.ListEmployees() {
			coverage[e.FullName()] = coveredSpecies(view, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return coverage, nil
}

// EmployeeCoverageFor returns the coverage of the first employee whose id,
// first name or last name equals idOrName.
func (s *Service) EmployeeCoverageFor(ctx context.Context, idOrName string) (map[string][]string, error) {
	if idOrName == "" {
		return nil, fmt.Errorf("employee id or name required: %w", domain.ErrInvalidArgument)
	}
	var coverage map[string][]string
	err := s.view(ctx, "employee_coverage", func(view TransactionView) error {
		for _, e := range view.ListEmployees() {
			if e.ID == idOrName || e.MatchesName(idOrName) {
				coverage = map[string][]string{e.FullName(): coveredSpecies(view, e)}
				return nil
			}
		}
		return domain.ErrNotFound{Entity: EntityEmployee, Key: idOrName}
	})
	if err != nil {
		return nil, err
	}
	return coverage, nil
}

func coveredSpecies(view TransactionView, e Employee) []string {
	names := make([]string, 0, len(e.ResponsibleFor))
	for _, id := range e.ResponsibleFor {
		if sp, ok := view.FindSpecies(id); ok {
			names = append(names, sp.Name)
		}
	}
	return names
}
