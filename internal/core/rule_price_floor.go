package core

import (
	"context"
	"fmt"
	"math"

	"zoocore/pkg/domain"
)

// NewPriceFloorRule blocks any price update that leaves a price negative,
// non-finite, or too large to count in cents.
func NewPriceFloorRule() domain.Rule {
	return priceFloorRule{}
}

type priceFloorRule struct{}

func (priceFloorRule) Name() string { return "price_floor" }

func (r priceFloorRule) Evaluate(_ context.Context, view domain.RuleView, changes []domain.Change) (domain.Result, error) {
	touched := false
	for _, change := range changes {
		if change.Entity == domain.EntityPrices {
			touched = true
			break
		}
	}
	if !touched {
		return domain.Result{}, nil
	}

	res := domain.Result{}
	prices := view.Prices()
	for _, category := range domain.PriceCategories() {
		price, ok := prices[category]
		if !ok {
			continue
		}
		var msg string
		switch {
		case math.IsNaN(price) || math.IsInf(price, 0):
			msg = fmt.Sprintf("%s price would become non-finite (%v)", category, price)
		case price < 0:
			msg = fmt.Sprintf("%s price would become negative (%.2f)", category, price)
		case math.Round(price*100) > maxCents:
			msg = fmt.Sprintf("%s price would exceed the representable maximum (%v)", category, price)
		default:
			continue
		}
		res.Violations = append(res.Violations, domain.Violation{
			Rule:     r.Name(),
			Severity: domain.SeverityBlock,
			Message:  msg,
			Entity:   domain.EntityPrices,
			EntityID: string(category),
		})
	}
	return res, nil
}
