package pricing

import (
	"testing"

	"viaggio_tours/internal/domain/entities"
)

func TestPriceComponent(t *testing.T) {
	t.Run("double occupancy two rooms", func(t *testing.T) {
		c := entities.PricingComponent{ID: "c1", AttributeName: "Double Occupancy Per Person", Price: "5000"}
		got := PriceComponent(c, 2)
		if !got.PriceOK {
			t.Fatalf("expected parsed price")
		}
		if got.Amount != 20000 {
			t.Fatalf("expected 20000, got %v", got.Amount)
		}
		if got.OccupancyMultiplier != 2 || got.RoomQuantity != 2 {
			t.Fatalf("unexpected factors: %+v", got)
		}
		if got.Description != "5000 × 2 occupancy × 2 rooms = 20000" {
			t.Fatalf("unexpected description: %q", got.Description)
		}
	})

	t.Run("single room omits rooms clause", func(t *testing.T) {
		c := entities.PricingComponent{ID: "c1", AttributeName: "Extra Bed", Price: "1200"}
		got := PriceComponent(c, 1)
		if got.Amount != 1200 {
			t.Fatalf("expected 1200, got %v", got.Amount)
		}
		if got.Description != "1200 × 1 occupancy = 1200" {
			t.Fatalf("unexpected description: %q", got.Description)
		}
	})

	t.Run("malformed price degrades to zero", func(t *testing.T) {
		for _, price := range []string{"", "   ", "abc", "12,50"} {
			c := entities.PricingComponent{ID: "c1", AttributeName: "Double", Price: price}
			got := PriceComponent(c, 3)
			if got.PriceOK {
				t.Fatalf("price %q: expected PriceOK=false", price)
			}
			if got.Amount != 0 {
				t.Fatalf("price %q: expected 0 amount, got %v", price, got.Amount)
			}
		}
	})
}

func TestParseAmount(t *testing.T) {
	if v, ok := ParseAmount(" 99.5 "); !ok || v != 99.5 {
		t.Fatalf("expected 99.5/true, got %v/%v", v, ok)
	}
	if v, ok := ParseAmount(""); ok || v != 0 {
		t.Fatalf("expected 0/false, got %v/%v", v, ok)
	}
	if v, ok := ParseAmount("n/a"); ok || v != 0 {
		t.Fatalf("expected 0/false, got %v/%v", v, ok)
	}
}
