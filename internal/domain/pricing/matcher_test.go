package pricing

import (
	"testing"
	"time"

	"viaggio_tours/internal/domain/entities"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func period(id string, start, end time.Time, mealPlanID string, rooms int) entities.PricingPeriod {
	return entities.PricingPeriod{
		ID:            id,
		TourPackageID: "pkg-1",
		StartDate:     start,
		EndDate:       end,
		MealPlanID:    mealPlanID,
		NumberOfRooms: rooms,
	}
}

func TestMatchPeriods_DateBoundaries(t *testing.T) {
	p := period("p1", date(2025, 1, 1), date(2025, 1, 31), "MP1", 2)
	periods := []entities.PricingPeriod{p}

	t.Run("inside range", func(t *testing.T) {
		got := MatchPeriods(periods, date(2025, 1, 15), "MP1", 2)
		if len(got) != 1 || got[0].ID != "p1" {
			t.Fatalf("expected p1, got %+v", got)
		}
	})

	t.Run("start date inclusive", func(t *testing.T) {
		if got := MatchPeriods(periods, date(2025, 1, 1), "MP1", 2); len(got) != 1 {
			t.Fatalf("expected match on start date, got %d", len(got))
		}
	})

	t.Run("end date inclusive", func(t *testing.T) {
		if got := MatchPeriods(periods, date(2025, 1, 31), "MP1", 2); len(got) != 1 {
			t.Fatalf("expected match on end date, got %d", len(got))
		}
	})

	t.Run("before start", func(t *testing.T) {
		if got := MatchPeriods(periods, date(2024, 12, 31), "MP1", 2); len(got) != 0 {
			t.Fatalf("expected no match before start, got %d", len(got))
		}
	})

	t.Run("after end", func(t *testing.T) {
		if got := MatchPeriods(periods, date(2025, 2, 1), "MP1", 2); len(got) != 0 {
			t.Fatalf("expected no match after end, got %d", len(got))
		}
	})

	t.Run("time of day ignored", func(t *testing.T) {
		afternoon := time.Date(2025, 1, 31, 18, 30, 0, 0, time.UTC)
		if got := MatchPeriods(periods, afternoon, "MP1", 2); len(got) != 1 {
			t.Fatalf("expected match regardless of time of day, got %d", len(got))
		}
	})
}

func TestMatchPeriods_Criteria(t *testing.T) {
	periods := []entities.PricingPeriod{
		period("p1", date(2025, 1, 1), date(2025, 1, 31), "MP1", 2),
		period("p2", date(2025, 1, 1), date(2025, 1, 31), "MP2", 2),
		period("p3", date(2025, 1, 1), date(2025, 1, 31), "MP1", 3),
	}

	t.Run("meal plan must match", func(t *testing.T) {
		got := MatchPeriods(periods, date(2025, 1, 10), "MP2", 2)
		if len(got) != 1 || got[0].ID != "p2" {
			t.Fatalf("expected p2, got %+v", got)
		}
	})

	t.Run("room count exact equality", func(t *testing.T) {
		// rooms=4 matches nothing even though p3 has 3 rooms
		if got := MatchPeriods(periods, date(2025, 1, 10), "MP1", 4); len(got) != 0 {
			t.Fatalf("expected no match, got %d", len(got))
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		overlapping := append(periods, period("p4", date(2025, 1, 10), date(2025, 1, 20), "MP1", 2))
		got := MatchPeriods(overlapping, date(2025, 1, 15), "MP1", 2)
		if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p4" {
			t.Fatalf("expected [p1 p4], got %+v", got)
		}
	})
}

func TestMatchPeriods_Degenerate(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		if got := MatchPeriods(nil, date(2025, 1, 1), "MP1", 1); len(got) != 0 {
			t.Fatalf("expected empty result, got %d", len(got))
		}
	})

	t.Run("inverted range never matches", func(t *testing.T) {
		inverted := []entities.PricingPeriod{period("p1", date(2025, 1, 31), date(2025, 1, 1), "MP1", 1)}
		if got := MatchPeriods(inverted, date(2025, 1, 15), "MP1", 1); len(got) != 0 {
			t.Fatalf("expected no match for inverted range, got %d", len(got))
		}
	})
}
