package core

import "zoocore/pkg/domain"

// NewRulesEngine constructs an engine without any rules.
func NewRulesEngine() *RulesEngine {
	return domain.NewRulesEngine()
}

// NewDefaultRulesEngine builds a rules engine with the built-in policy set.
func NewDefaultRulesEngine() *RulesEngine {
	engine := domain.NewRulesEngine()
	engine.Register(NewEmployeeIdentityRule())
	engine.Register(NewEmployeeReferencesRule())
	engine.Register(NewPriceFloorRule())
	return engine
}

// createdEmployees returns the employees created by the supplied changes.
func createdEmployees(changes []Change) []Employee {
	var out []Employee
	for _, change := range changes {
		if change.Entity != EntityEmployee || change.Action != ActionCreate {
			continue
		}
		if e, ok := change.After.(Employee); ok {
			out = append(out, e)
		}
	}
	return out
}
