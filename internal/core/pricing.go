package core

import (
	"context"
	"fmt"
	"math"

	"zoocore/pkg/domain"
)

// CalculateEntry totals the ticket price of a group of entrants. Categories
// without a price are ignored; an empty group costs nothing.
func (s *Service) CalculateEntry(ctx context.Context, entrants map[domain.PriceCategory]int) (float64, error) {
	var total int64
	err := s.view(ctx, "calculate_entry", func(view TransactionView) error {
		prices := view.Prices()
		for _, category := range domain.PriceCategories() {
			count, ok := entrants[category]
			if !ok || count == 0 {
				continue
			}
			if count < 0 {
				return fmt.Errorf("negative %s entrant count %d: %w", category, count, domain.ErrInvalidArgument)
			}
			cents, err := toCents(prices[category])
			if err != nil {
				return fmt.Errorf("%s price: %w", category, err)
			}
			if cents > 0 && int64(count) > (math.MaxInt64-total)/cents {
				return fmt.Errorf("entry total overflows for %d %s entrants: %w", count, category, domain.ErrInvalidArgument)
			}
			total += cents * int64(count)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return fromCents(total), nil
}

// IncreasePrices raises every price by percentage, rounding each result to
// the cent. Negative percentages lower prices; a result below zero is
// rejected by the price floor rule when it is registered.
func (s *Service) IncreasePrices(ctx context.Context, percentage float64) (Prices, Result, error) {
	if math.IsNaN(percentage) || math.IsInf(percentage, 0) {
		return nil, Result{}, fmt.Errorf("percentage %v: %w", percentage, domain.ErrInvalidArgument)
	}
	var updated Prices
	res, err := s.mutate(ctx, "increase_prices", EntityPrices, "", func(tx Transaction) error {
		var err error
		updated, err = tx.UpdatePrices(func(p Prices) error {
			for category, price := range p {
				p[category] = applyIncrease(price, percentage)
			}
			return nil
		})
		return err
	})
	if err != nil {
		return nil, res, err
	}
	return updated, res, nil
}

// maxCents bounds prices to the range where float64 holds whole cents exactly.
const maxCents = 1 << 53

func toCents(price float64) (int64, error) {
	cents := math.Round(price * 100)
	if math.IsNaN(cents) || cents < 0 || cents > maxCents {
		return 0, fmt.Errorf("price %v out of range: %w", price, domain.ErrInvalidArgument)
	}
	return int64(cents), nil
}

func fromCents(cents int64) float64 {
	return float64(cents) / 100
}

// applyIncrease works in cents so repeated increases do not accumulate
// floating point drift. Halves round away from zero.
func applyIncrease(price, percentage float64) float64 {
	cents := math.Round(price * 100)
	return math.Round(cents*(100+percentage)/100) / 100
}
