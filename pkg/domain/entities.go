// Package domain defines the zoo entities, value types, and rule evaluation
// primitives used by zoocore.
package domain

import (
	"slices"
)

// EntityType identifies the type of record stored in the zoo dataset.
type EntityType string

// Supported entity type identifiers used in Change records and errors.
const (
	// EntitySpecies identifies a species record.
	EntitySpecies EntityType = "species"
	// EntityResident identifies an individual animal within a species.
	EntityResident EntityType = "resident"
	// EntityEmployee identifies an employee record.
	EntityEmployee EntityType = "employee"
	// EntityHours identifies the weekly opening schedule.
	EntityHours EntityType = "hours"
	// EntityPrices identifies the ticket price table.
	EntityPrices EntityType = "prices"
)

// Region is one of the four fixed zones of the zoo layout.
type Region string

// Zoo regions.
const (
	RegionNE Region = "NE"
	RegionNW Region = "NW"
	RegionSE Region = "SE"
	RegionSW Region = "SW"
)

// Regions returns every region in layout order.
func Regions() []Region {
	return []Region{RegionNE, RegionNW, RegionSE, RegionSW}
}

// Valid reports whether r is a known region.
func (r Region) Valid() bool {
	return slices.Contains(Regions(), r)
}

// Sex of a resident.
type Sex string

// Resident sexes.
const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Valid reports whether s is a known sex.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Weekday names a day of the opening schedule.
type Weekday string

// Days of the week, as keyed in the opening schedule.
const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays returns the days of the week starting on Monday.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Valid reports whether d is a known weekday.
func (d Weekday) Valid() bool {
	return slices.Contains(Weekdays(), d)
}

// PriceCategory is a ticket category.
type PriceCategory string

// Ticket categories.
const (
	PriceAdult  PriceCategory = "Adult"
	PriceChild  PriceCategory = "Child"
	PriceSenior PriceCategory = "Senior"
)

// PriceCategories returns the ticket categories that carry a price.
func PriceCategories() []PriceCategory {
	return []PriceCategory{PriceAdult, PriceChild, PriceSenior}
}

// Valid reports whether c is a priced category.
func (c PriceCategory) Valid() bool {
	return slices.Contains(PriceCategories(), c)
}

// Severity captures rule outcomes.
type Severity string

// Rule evaluation severities determine commit behavior and logging.
const (
	// SeverityBlock blocks transaction commit.
	SeverityBlock Severity = "block"
	// SeverityWarn logs a warning but allows commit.
	SeverityWarn Severity = "warn"
)

// Resident is an individual animal living in the zoo.
type Resident struct {
	Name string `json:"name" yaml:"name"`
	Sex  Sex    `json:"sex" yaml:"sex"`
	Age  int    `json:"age" yaml:"age"`
}

// Species groups the residents of one kind of animal.
type Species struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Popularity int        `json:"popularity" yaml:"popularity"`
	Location   Region     `json:"location" yaml:"location"`
	Residents  []Resident `json:"residents" yaml:"residents"`
}

// Oldest returns the oldest resident, preferring the earliest on ties.
func (s Species) Oldest() (Resident, bool) {
	if len(s.Residents) == 0 {
		return Resident{}, false
	}
	oldest := s.Residents[0]
	for _, r := range s.Residents[1:] {
		if r.Age > oldest.Age {
			oldest = r
		}
	}
	return oldest, true
}

// PersonalInfo carries the identity fields of an employee.
type PersonalInfo struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Associations carries the relationship fields of an employee.
type Associations struct {
	Managers       []string `json:"managers"`
	ResponsibleFor []string `json:"responsible_for"`
}

// Employee is a member of the zoo staff.
type Employee struct {
	ID             string   `json:"id" yaml:"id"`
	FirstName      string   `json:"first_name" yaml:"first_name"`
	LastName       string   `json:"last_name" yaml:"last_name"`
	Managers       []string `json:"managers" yaml:"managers"`
	ResponsibleFor []string `json:"responsible_for" yaml:"responsible_for"`
}

// NewEmployee merges identity and association fields into one record.
// Slices are copied; nil slices become empty.
func NewEmployee(personal PersonalInfo, assoc Associations) Employee {
	return Employee{
		ID:             personal.ID,
		FirstName:      personal.FirstName,
		LastName:       personal.LastName,
		Managers:       copyIDs(assoc.Managers),
		ResponsibleFor: copyIDs(assoc.ResponsibleFor),
	}
}

// FullName joins first and last name with a single space.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// MatchesName reports whether name equals the first or last name.
func (e Employee) MatchesName(name string) bool {
	return e.FirstName == name || e.LastName == name
}

// ManagedBy reports whether id appears in the employee's managers.
func (e Employee) ManagedBy(id string) bool {
	return slices.Contains(e.Managers, id)
}

func copyIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// OpeningHours holds the opening and closing hour of one day (0..24).
type OpeningHours struct {
	Open  int `json:"open" yaml:"open"`
	Close int `json:"close" yaml:"close"`
}

// Closed reports whether the zoo does not open on that day.
func (h OpeningHours) Closed() bool {
	return h.Open == h.Close
}

// Hours maps each weekday to its opening hours.
type Hours map[Weekday]OpeningHours

// Prices maps each ticket category to its price.
type Prices map[PriceCategory]float64

// Change describes a mutation applied within a transaction.
type Change struct {
	Entity EntityType
	Action Action
	Before any
	After  any
}

// Action indicates the type of modification performed.
type Action string

// Change actions enumerate the mutations captured in a transaction.
const (
	// ActionCreate indicates an entity was created.
	ActionCreate Action = "create"
	// ActionUpdate indicates an entity was updated.
	ActionUpdate Action = "update"
)

// Violation reports a failed rule evaluation.
type Violation struct {
	Rule     string
	Severity Severity
	Message  string
	Entity   EntityType
	EntityID string
}

// Result aggregates violations from the rules engine.
type Result struct {
	Violations []Violation
}

// Merge appends violations from another result.
func (r *Result) Merge(other Result) {
	if len(other.Violations) == 0 {
		return
	}
	r.Violations = append(r.Violations, other.Violations...)
}

// HasBlocking returns true if the result contains blocking violations.
func (r Result) HasBlocking() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityBlock {
			return true
		}
	}
	return false
}

// RuleViolationError is returned when blocking violations are present.
type RuleViolationError struct {
	Result Result
}

func (e RuleViolationError) Error() string {
	return "transaction blocked by rules"
}
