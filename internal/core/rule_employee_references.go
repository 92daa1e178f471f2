package core

import (
	"context"
	"fmt"

	"zoocore/pkg/domain"
)

// NewEmployeeReferencesRule warns when a newly added employee references
// managers or species that do not exist.
func NewEmployeeReferencesRule() domain.Rule {
	return employeeReferencesRule{}
}

type employeeReferencesRule struct{}

func (employeeReferencesRule) Name() string { return "employee_references" }

func (r employeeReferencesRule) Evaluate(_ context.Context, view domain.RuleView, changes []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, e := range createdEmployees(changes) {
		for _, managerID := range e.Managers {
			if _, ok := view.FindEmployee(managerID); ok {
				continue
			}
			res.Violations = append(res.Violations, domain.Violation{
				Rule:     r.Name(),
				Severity: domain.SeverityWarn,
				Message:  fmt.Sprintf("employee %s references unknown manager %s", e.ID, managerID),
				Entity:   domain.EntityEmployee,
				EntityID: e.ID,
			})
		}
		for _, speciesID := range e.ResponsibleFor {
			if _, ok := view.FindSpecies(speciesID); ok {
				continue
			}
			res.Violations = append(res.Violations, domain.Violation{
				Rule:     r.Name(),
				Severity: domain.SeverityWarn,
				Message:  fmt.Sprintf("employee %s is responsible for unknown species %s", e.ID, speciesID),
				Entity:   domain.EntityEmployee,
				EntityID: e.ID,
			})
		}
	}
	return res, nil
}
