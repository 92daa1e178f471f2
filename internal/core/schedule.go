package core

import (
	"context"
	"fmt"

	"zoocore/pkg/domain"
)

const closedLabel = "CLOSED"

// Schedule returns the human-readable opening hours of every day.
func (s *Service) Schedule(ctx context.Context) (map[domain.Weekday]string, error) {
	schedule := make(map[domain.Weekday]string)
	err := s.view(ctx, "schedule", func(view TransactionView) error {
		for day, h := range view.Hours() {
			schedule[day] = describeHours(h)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// ScheduleFor returns a single-entry schedule for day.
func (s *Service) ScheduleFor(ctx context.Context, day domain.Weekday) (map[domain.Weekday]string, error) {
	var schedule map[domain.Weekday]string
	err := s.view(ctx, "schedule", func(view TransactionView) error {
		h, ok := view.Hours()[day]
		if !ok {
			return domain.ErrNotFound{Entity: EntityHours, Key: string(day)}
		}
		schedule = map[domain.Weekday]string{day: describeHours(h)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

func describeHours(h domain.OpeningHours) string {
	if h.Closed() {
		return closedLabel
	}
	return fmt.Sprintf("Open from %s until %s", formatHour(h.Open), formatHour(h.Close))
}

// formatHour renders an hour of day on a 12-hour clock; 0 and 24 are midnight.
func formatHour(hour int) string {
	hour %= 24
	switch {
	case hour == 0:
		return "12am"
	case hour < 12:
		return fmt.Sprintf("%dam", hour)
	case hour == 12:
		return "12pm"
	default:
		return fmt.Sprintf("%dpm", hour-12)
	}
}
