package pricing

import (
	"strings"
	"testing"
	"time"

	"viaggio_tours/internal/domain/entities"
)

func januaryPeriods() []entities.PricingPeriod {
	return []entities.PricingPeriod{
		{
			ID:            "p1",
			TourPackageID: "pkg-1",
			StartDate:     date(2025, 1, 1),
			EndDate:       date(2025, 1, 31),
			MealPlanID:    "MP1",
			NumberOfRooms: 2,
			Components: []entities.PricingComponent{
				{ID: "c1", AttributeName: "Double Occupancy Per Person", Price: "5000"},
			},
		},
	}
}

func TestResolve_ExactMatch(t *testing.T) {
	res, err := Resolve(januaryPeriods(), Query{
		TravelDate:    date(2025, 1, 15),
		MealPlanID:    "MP1",
		NumberOfRooms: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusMatched {
		t.Fatalf("expected matched, got %s (%s)", res.Status, res.Message)
	}
	// room quantity defaults to the queried room count
	if res.TotalPrice != 5000*2*2 {
		t.Fatalf("expected 20000, got %v", res.TotalPrice)
	}
	if res.MatchedPeriodID != "p1" {
		t.Fatalf("expected matched period p1, got %q", res.MatchedPeriodID)
	}
}

func TestResolve_NoPricingDefined(t *testing.T) {
	res, err := Resolve(nil, Query{TravelDate: date(2025, 1, 15), MealPlanID: "MP1", NumberOfRooms: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusNoPricingDefined {
		t.Fatalf("expected no_pricing_defined, got %s", res.Status)
	}
	// distinct message from no_match, to steer the administrator toward
	// creating periods instead of adjusting search criteria
	if !strings.Contains(res.Message, "no pricing periods defined") {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

func TestResolve_NoMatchEchoesCriteria(t *testing.T) {
	res, err := Resolve(januaryPeriods(), Query{
		TravelDate:    date(2025, 1, 15),
		MealPlanID:    "MP1",
		NumberOfRooms: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusNoMatch {
		t.Fatalf("expected no_match, got %s", res.Status)
	}
	for _, want := range []string{"2025-01-15", "MP1", "3 Rooms"} {
		if !strings.Contains(res.Message, want) {
			t.Fatalf("message %q does not cite %q", res.Message, want)
		}
	}
	if res.TotalPrice != 0 || len(res.Breakdown) != 0 {
		t.Fatalf("expected no pricing on no_match")
	}
}

func TestResolve_AmbiguousFailsClosed(t *testing.T) {
	overlapping := append(januaryPeriods(), entities.PricingPeriod{
		ID:            "p2",
		TourPackageID: "pkg-1",
		StartDate:     date(2025, 1, 10),
		EndDate:       date(2025, 1, 20),
		MealPlanID:    "MP1",
		NumberOfRooms: 2,
		Components: []entities.PricingComponent{
			{ID: "c9", AttributeName: "Double", Price: "9999"},
		},
	})

	res, err := Resolve(overlapping, Query{
		TravelDate:    date(2025, 1, 15),
		MealPlanID:    "MP1",
		NumberOfRooms: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusAmbiguous {
		t.Fatalf("expected ambiguous, got %s", res.Status)
	}
	if res.TotalPrice != 0 || res.MatchedPeriodID != "" {
		t.Fatalf("ambiguous resolution must not price: %+v", res)
	}
	if !strings.Contains(res.Message, "2 pricing periods match") {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

func TestResolve_MalformedPriceStillPrices(t *testing.T) {
	periods := januaryPeriods()
	periods[0].Components = append(periods[0].Components, entities.PricingComponent{
		ID: "c2", AttributeName: "Extra Bed", Price: "",
	})

	res, err := Resolve(periods, Query{
		TravelDate:    date(2025, 1, 15),
		MealPlanID:    "MP1",
		NumberOfRooms: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusMatched {
		t.Fatalf("expected matched, got %s", res.Status)
	}
	if res.TotalPrice != 20000 {
		t.Fatalf("expected 20000 with bad entry as 0, got %v", res.TotalPrice)
	}
	if len(res.MalformedComponentIDs) != 1 {
		t.Fatalf("expected one malformed component, got %v", res.MalformedComponentIDs)
	}
}

func TestResolve_MarkupAndOverridesFlowThrough(t *testing.T) {
	res, err := Resolve(januaryPeriods(), Query{
		TravelDate:              date(2025, 1, 15),
		MealPlanID:              "MP1",
		NumberOfRooms:           2,
		MarkupPercent:           10,
		ComponentRoomQuantities: map[string]int{"c1": 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 5000×2×1 = 10000 base, +10% = 11000
	if res.TotalPrice != 11000 {
		t.Fatalf("expected 11000, got %v", res.TotalPrice)
	}
	if res.AppliedMarkup == nil || res.AppliedMarkup.Amount != 1000 {
		t.Fatalf("unexpected markup: %+v", res.AppliedMarkup)
	}
	if res.Breakdown[0].Description != "5000 × 2 occupancy = 10000" {
		t.Fatalf("unexpected description: %q", res.Breakdown[0].Description)
	}
}

// Quick purity check: Resolve must not mutate its input.
func TestResolve_InputUntouched(t *testing.T) {
	periods := januaryPeriods()
	before := periods[0]
	_, _ = Resolve(periods, Query{TravelDate: time.Now(), MealPlanID: "MP1", NumberOfRooms: 2})
	if periods[0].ID != before.ID || len(periods[0].Components) != len(before.Components) {
		t.Fatalf("input mutated")
	}
}
