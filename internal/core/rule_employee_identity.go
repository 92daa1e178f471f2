package core

import (
	"context"
	"fmt"

	"zoocore/pkg/domain"
)

// NewEmployeeIdentityRule warns when a newly added employee reuses an existing id.
// Adding is still allowed.
func NewEmployeeIdentityRule() domain.Rule {
	return employeeIdentityRule{}
}

type employeeIdentityRule struct{}

func (employeeIdentityRule) Name() string { return "employee_identity" }

func (r employeeIdentityRule) Evaluate(_ context.Context, view domain.RuleView, changes []domain.Change) (domain.Result, error) {
	created := createdEmployees(changes)
	if len(created) == 0 {
		return domain.Result{}, nil
	}
	counts := make(map[string]int)
	for _, e := range view.ListEmployees() {
		counts[e.ID]++
	}

	res := domain.Result{}
	reported := make(map[string]bool)
	for _, e := range created {
		if counts[e.ID] < 2 || reported[e.ID] {
			continue
		}
		reported[e.ID] = true
		res.Violations = append(res.Violations, domain.Violation{
			Rule:     r.Name(),
			Severity: domain.SeverityWarn,
			Message:  fmt.Sprintf("employee id %s is shared by %d employees", e.ID, counts[e.ID]),
			Entity:   domain.EntityEmployee,
			EntityID: e.ID,
		})
	}
	return res, nil
}
