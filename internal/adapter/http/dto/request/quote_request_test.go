package request

import (
	"errors"
	"testing"
)

func TestResolveQuoteRequest_ResolveRooms(t *testing.T) {
	r := ResolveQuoteRequest{NumberOfRooms: 3}
	if got, err := r.ResolveRooms(); err != nil || got != 3 {
		t.Fatalf("expected 3, got %d (%v)", got, err)
	}

	r2 := ResolveQuoteRequest{
		RoomAllocations: []RoomAllocationRequest{
			{Quantity: 2},
			{Quantity: 0},
			{Quantity: -1},
			{Quantity: 1},
		},
	}
	if got, err := r2.ResolveRooms(); err != nil || got != 3 {
		t.Fatalf("expected 3 from allocations, got %d (%v)", got, err)
	}

	r3 := ResolveQuoteRequest{}
	if _, err := r3.ResolveRooms(); !errors.Is(err, ErrInvalidRoomCount) {
		t.Fatalf("expected ErrInvalidRoomCount, got %v", err)
	}
}

func TestResolveQuoteRequest_ResolveTravelDate(t *testing.T) {
	r := ResolveQuoteRequest{TravelDate: " 2025-01-15 "}
	d, err := r.ResolveTravelDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2025 || d.Month() != 1 || d.Day() != 15 {
		t.Fatalf("unexpected date: %v", d)
	}

	r2 := ResolveQuoteRequest{TravelDate: "15/01/2025"}
	if _, err := r2.ResolveTravelDate(); !errors.Is(err, ErrInvalidTravelDate) {
		t.Fatalf("expected ErrInvalidTravelDate, got %v", err)
	}
}

func TestPricingPeriodRequest_ToEntity(t *testing.T) {
	r := PricingPeriodRequest{
		StartDate:     "2025-01-01",
		EndDate:       "2025-01-31",
		MealPlanID:    " MP1 ",
		NumberOfRooms: 2,
		Components: []PricingComponentRequest{
			{AttributeName: "Double Occupancy Per Person", Price: " 5000 "},
		},
	}

	p := r.ToEntity(" pkg-1 ")
	if p.TourPackageID != "pkg-1" || p.MealPlanID != "MP1" {
		t.Fatalf("expected trimmed ids, got %+v", p)
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		t.Fatalf("expected parsed dates, got %+v", p)
	}
	if len(p.Components) != 1 || p.Components[0].Price != "5000" {
		t.Fatalf("unexpected components: %+v", p.Components)
	}
}
