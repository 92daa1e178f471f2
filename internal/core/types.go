package core

import "zoocore/pkg/domain"

type (
	EntityType         = domain.EntityType
	Severity           = domain.Severity
	Species            = domain.Species
	Resident           = domain.Resident
	Employee           = domain.Employee
	Hours              = domain.Hours
	Prices             = domain.Prices
	Change             = domain.Change
	Action             = domain.Action
	Violation          = domain.Violation
	Result             = domain.Result
	RuleViolationError = domain.RuleViolationError
	Rule               = domain.Rule
	RulesEngine        = domain.RulesEngine
	Transaction        = domain.Transaction
	TransactionView    = domain.TransactionView
	PersistentStore    = domain.PersistentStore
)

const (
	EntitySpecies  = domain.EntitySpecies
	EntityResident = domain.EntityResident
	EntityEmployee = domain.EntityEmployee
	EntityHours    = domain.EntityHours
	EntityPrices   = domain.EntityPrices
)

const (
	SeverityBlock = domain.SeverityBlock
	SeverityWarn  = domain.SeverityWarn
)

const (
	ActionCreate = domain.ActionCreate
	ActionUpdate = domain.ActionUpdate
)
