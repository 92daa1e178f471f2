package core

import (
	"context"
	"errors"
	"math"
	"testing"

	"zoocore/internal/infra/persistence/memory"
	"zoocore/pkg/domain"
)

func currentPrices(t *testing.T, svc *Service) Prices {
	t.Helper()
	var prices Prices
	if err := svc.Store().View(context.Background(), func(v TransactionView) error {
		prices = v.Prices()
		return nil
	}); err != nil {
		t.Fatalf("view: %v", err)
	}
	return prices
}

func TestCalculateEntry(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService(t)

	cases := []struct {
		name     string
		entrants map[domain.PriceCategory]int
		want     float64
	}{
		{name: "nil", entrants: nil, want: 0},
		{name: "empty", entrants: map[domain.PriceCategory]int{}, want: 0},
		{name: "mixed group", entrants: map[domain.PriceCategory]int{domain.PriceAdult: 2, domain.PriceChild: 3, domain.PriceSenior: 1}, want: 187.94},
		{name: "single adult", entrants: map[domain.PriceCategory]int{domain.PriceAdult: 1}, want: 49.99},
		{name: "unknown category ignored", entrants: map[domain.PriceCategory]int{"Infant": 4, domain.PriceChild: 1}, want: 20.99},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.CalculateEntry(ctx, tc.entrants)
			if err != nil {
				t.Fatalf("calculate entry: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %.2f, got %v", tc.want, got)
			}
		})
	}

	invalid := []map[domain.PriceCategory]int{
		{domain.PriceAdult: -1},
		{domain.PriceAdult: math.MaxInt64 / 100},
		{domain.PriceAdult: math.MaxInt64 / 5000, domain.PriceChild: math.MaxInt64 / 5000},
	}
	for _, entrants := range invalid {
		total, err := svc.CalculateEntry(ctx, entrants)
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("entrants %v: expected invalid argument, got total=%v err=%v", entrants, total, err)
		}
	}
}

func TestCalculateEntryRejectsUnrepresentablePrice(t *testing.T) {
	store := memory.NewStore(nil)
	store.ImportState(memory.Snapshot{Prices: Prices{domain.PriceAdult: math.Inf(1), domain.PriceChild: 1e300}})
	svc := NewService(store)

	for _, category := range []domain.PriceCategory{domain.PriceAdult, domain.PriceChild} {
		total, err := svc.CalculateEntry(context.Background(), map[domain.PriceCategory]int{category: 1})
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("%s: expected invalid argument, got total=%v err=%v", category, total, err)
		}
	}
}

func TestIncreasePrices(t *testing.T) {
	cases := []struct {
		name string
		pct  float64
		want Prices
	}{
		{name: "fifty percent", pct: 50, want: Prices{domain.PriceAdult: 74.99, domain.PriceSenior: 37.49, domain.PriceChild: 31.49}},
		{name: "thirty percent", pct: 30, want: Prices{domain.PriceAdult: 64.99, domain.PriceSenior: 32.49, domain.PriceChild: 27.29}},
		{name: "zero", pct: 0, want: Prices{domain.PriceAdult: 49.99, domain.PriceSenior: 24.99, domain.PriceChild: 20.99}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newSeededService(t)
			got, res, err := svc.IncreasePrices(context.Background(), tc.pct)
			if err != nil {
				t.Fatalf("increase prices: %v", err)
			}
			if len(res.Violations) != 0 {
				t.Fatalf("unexpected violations %+v", res.Violations)
			}
			for category, want := range tc.want {
				if got[category] != want {
					t.Fatalf("%s: expected %.2f, got %v", category, want, got[category])
				}
			}
			stored := currentPrices(t, svc)
			for category, want := range tc.want {
				if stored[category] != want {
					t.Fatalf("stored %s: expected %.2f, got %v", category, want, stored[category])
				}
			}
		})
	}
}

func TestIncreasePricesCompounds(t *testing.T) {
	ctx := context.Background()
	twice := newSeededService(t)
	for i := 0; i < 2; i++ {
		if _, _, err := twice.IncreasePrices(ctx, 10); err != nil {
			t.Fatalf("increase prices: %v", err)
		}
	}
	once := newSeededService(t)
	if _, _, err := once.IncreasePrices(ctx, 21); err != nil {
		t.Fatalf("increase prices: %v", err)
	}
	if got := currentPrices(t, twice)[domain.PriceAdult]; got != 60.49 {
		t.Fatalf("expected 60.49 after two 10%% increases, got %v", got)
	}
	if got := currentPrices(t, once)[domain.PriceAdult]; got != 60.49 {
		t.Fatalf("expected 60.49 after a 21%% increase, got %v", got)
	}
}

func TestIncreasePricesBlockedBelowZero(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService(t)

	_, res, err := svc.IncreasePrices(ctx, -150)
	var rve RuleViolationError
	if !errors.As(err, &rve) {
		t.Fatalf("expected rule violation, got %v", err)
	}
	if !res.HasBlocking() || res.Violations[0].Rule != "price_floor" {
		t.Fatalf("expected price_floor violation, got %+v", res.Violations)
	}
	if got := currentPrices(t, svc)[domain.PriceAdult]; got != 49.99 {
		t.Fatalf("blocked increase must leave prices unchanged, got %v", got)
	}
}

func TestIncreasePricesBlockedWhenResultNotFinite(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService(t)

	for _, pct := range []float64{1e308, 1e30} {
		_, res, err := svc.IncreasePrices(ctx, pct)
		var rve RuleViolationError
		if !errors.As(err, &rve) {
			t.Fatalf("percentage %v: expected rule violation, got %v", pct, err)
		}
		if len(res.Violations) != 3 || res.Violations[0].Rule != "price_floor" {
			t.Fatalf("percentage %v: expected price_floor on every category, got %+v", pct, res.Violations)
		}
	}
	total, err := svc.CalculateEntry(ctx, map[domain.PriceCategory]int{domain.PriceAdult: 1})
	if err != nil || total != 49.99 {
		t.Fatalf("blocked increases must leave prices unchanged, got %v %v", total, err)
	}
}

func TestIncreasePricesRejectsNonFinite(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService(t)

	for _, pct := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, _, err := svc.IncreasePrices(ctx, pct); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("percentage %v: expected invalid argument, got %v", pct, err)
		}
	}
}

func TestApplyIncreaseRoundsHalfAwayFromZero(t *testing.T) {
	if got := applyIncrease(0.05, 50); got != 0.08 {
		t.Fatalf("expected 0.08, got %v", got)
	}
	if got := applyIncrease(0.05, -150); got != -0.03 {
		t.Fatalf("expected -0.03, got %v", got)
	}
}
